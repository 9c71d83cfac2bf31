package api

import (
	"net/http"

	reqdto "gin-auction-service/internal/handler/dto/request"
	resdto "gin-auction-service/internal/handler/dto/response"
	"gin-auction-service/internal/handler/httperr"
	"gin-auction-service/internal/usecase/commands"
	"gin-auction-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	cmds commands.BidCommands
	q    queries.AuctionQueries
}

func NewBidHandler(cmds commands.BidCommands, q queries.AuctionQueries) *BidHandler {
	return &BidHandler{cmds: cmds, q: q}
}

// @Summary Place bid
// @Description Place a bid above the current price of an active auction
// @Tags bids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Param request body reqdto.PlaceBidRequest true "Bid amount as number or string"
// @Success 201 {object} resdto.PlaceBidResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /auctions/{id}/bids [post]
func (h *BidHandler) Place(c *gin.Context) {
	bidderID, ok := requireUserID(c)
	if !ok {
		return
	}
	auctionID, ok := parseAuctionID(c)
	if !ok {
		return
	}

	var req reqdto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.PlaceBid(c.Request.Context(), req.ToCommand(bidderID, auctionID))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromPlaceBidResult(result.Bid, result.Auction)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render bid", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List bids
// @Description List bids of an auction, newest first
// @Tags bids
// @Produce json
// @Param id path string true "Auction ID"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.BidListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auctions/{id}/bids [get]
func (h *BidHandler) List(c *gin.Context) {
	auctionID, ok := parseAuctionID(c)
	if !ok {
		return
	}

	var query reqdto.ListBidsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, next, err := h.q.ListBids(c.Request.Context(), auctionID, &queries.Cursor{After: query.After}, query.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromBidList(views, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render bids", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
