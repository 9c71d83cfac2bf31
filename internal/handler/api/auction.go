package api

import (
	"context"
	"net/http"

	reqdto "gin-auction-service/internal/handler/dto/request"
	resdto "gin-auction-service/internal/handler/dto/response"
	"gin-auction-service/internal/handler/httperr"
	"gin-auction-service/internal/usecase/commands"
	"gin-auction-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuctionHandler struct {
	cmds commands.AuctionCommands
	q    queries.AuctionQueries
}

func NewAuctionHandler(cmds commands.AuctionCommands, q queries.AuctionQueries) *AuctionHandler {
	return &AuctionHandler{cmds: cmds, q: q}
}

// @Summary Create auction
// @Description Create a pending auction owned by the caller
// @Tags auctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAuctionRequest true "Create auction request"
// @Success 201 {object} resdto.AuctionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auctions [post]
func (h *AuctionHandler) Create(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateAuction(c.Request.Context(), req.ToCommand(ownerID))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.render(c, http.StatusCreated, view)
}

// @Summary Get auction
// @Tags auctions
// @Produce json
// @Param id path string true "Auction ID"
// @Success 200 {object} resdto.AuctionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auctions/{id} [get]
func (h *AuctionHandler) Get(c *gin.Context) {
	id, ok := parseAuctionID(c)
	if !ok {
		return
	}
	view, err := h.q.GetAuction(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.render(c, http.StatusOK, view)
}

// @Summary List auctions
// @Description List auctions newest first, optionally filtered by status or owner
// @Tags auctions
// @Produce json
// @Param status query string false "pending, active, completed or cancelled"
// @Param owner_id query string false "Owner ID"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.AuctionListResponse
// @Failure 400 {object} httperr.Response
// @Router /auctions [get]
func (h *AuctionHandler) List(c *gin.Context) {
	var query reqdto.ListAuctionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, next, err := h.q.ListAuctions(c.Request.Context(), query.Filters(), &queries.Cursor{After: query.After}, query.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromAuctionList(views, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render auctions", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Activate auction
// @Description Open a pending auction for bidding (owner only)
// @Tags auctions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Success 200 {object} resdto.AuctionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auctions/{id}/activate [post]
func (h *AuctionHandler) Activate(c *gin.Context) {
	h.transition(c, h.cmds.ActivateAuction)
}

// @Summary Cancel auction
// @Description Cancel a pending auction, or an active one without bids (owner only)
// @Tags auctions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Success 200 {object} resdto.AuctionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auctions/{id}/cancel [post]
func (h *AuctionHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.CancelAuction)
}

func (h *AuctionHandler) transition(c *gin.Context, run func(ctx context.Context, actorID, auctionID uuid.UUID) (*queries.AuctionView, error)) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}
	auctionID, ok := parseAuctionID(c)
	if !ok {
		return
	}

	view, err := run(c.Request.Context(), actorID, auctionID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.render(c, http.StatusOK, view)
}

func (h *AuctionHandler) render(c *gin.Context, status int, view *queries.AuctionView) {
	res, err := resdto.FromAuctionView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render auction", nil)
		return
	}
	c.JSON(status, res)
}
