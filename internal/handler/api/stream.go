package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gin-auction-service/internal/handler/httperr"
	"gin-auction-service/internal/pkg/errs"
	"gin-auction-service/internal/usecase/queries"
	"gin-auction-service/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeDeadline  = 10 * time.Second
	pingInterval   = 30 * time.Second
	pongWait       = 35 * time.Second // must be > pingInterval
	maxMessageSize = 512              // clients only send pongs and close frames
)

var errStreamDisabled = errs.New("event stream is disabled")

// StreamHandler pushes auction events to websocket clients. A nil subscriber
// means no event bus is configured and the endpoint answers 503.
type StreamHandler struct {
	subscriber shared.EventSubscriber
	q          queries.AuctionQueries
	upgrader   websocket.Upgrader
	logger     *slog.Logger
}

func NewStreamHandler(subscriber shared.EventSubscriber, q queries.AuctionQueries, allowedOrigins []string, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		subscriber: subscriber,
		q:          q,
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || len(allowedOrigins) == 0 {
					return true
				}
				for _, o := range allowedOrigins {
					if o == "*" || o == origin {
						return true
					}
				}
				return false
			},
		},
	}
}

// @Summary Stream auction events
// @Description Websocket stream of bid and status events for one auction. The first message is a snapshot.
// @Tags auctions
// @Param id path string true "Auction ID"
// @Success 101
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /auctions/{id}/events [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	if h.subscriber == nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, errStreamDisabled, "Live updates are not available", nil)
		return
	}
	auctionID, ok := parseAuctionID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// The subscription must exist before the snapshot is read, otherwise a bid
	// committed in between is neither in the snapshot nor on the channel.
	events, err := h.subscriber.Subscribe(ctx, auctionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Live updates are not available", nil)
		return
	}

	view, err := h.q.GetAuction(ctx, auctionID)
	if err != nil {
		cancel()
		abortWithUseCaseError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.Warn("websocket upgrade failed", "auction_id", auctionID.String(), "error", err.Error())
		return
	}
	defer conn.Close()

	go h.readPump(conn, cancel)

	if err := writeEvent(conn, snapshotEvent(view)); err != nil {
		return
	}

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if coveredBySnapshot(ev, view) {
				continue
			}
			if err := writeEvent(conn, ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains client frames so pongs and close frames are processed; any read
// error ends the stream.
func (h *StreamHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// coveredBySnapshot reports a bid event that committed before the snapshot read.
// bid_count only grows, so it orders bid events against the snapshot.
func coveredBySnapshot(ev shared.Event, snapshot *queries.AuctionView) bool {
	return ev.Type == shared.EventBidPlaced && ev.BidCount <= snapshot.BidCount
}

func writeEvent(conn *websocket.Conn, ev shared.Event) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteJSON(ev)
}

func snapshotEvent(v *queries.AuctionView) shared.Event {
	return shared.Event{
		Type:         shared.EventAuctionSnapshot,
		AuctionID:    v.ID,
		Status:       v.Status,
		CurrentPrice: v.CurrentPrice.StringFixed(2),
		BidCount:     v.BidCount,
		WinnerID:     v.WinnerID,
		OccurredAt:   v.UpdatedAt,
	}
}

