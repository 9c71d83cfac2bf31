package api

import (
	"errors"
	"net/http"

	"gin-auction-service/internal/handler/httperr"
	"gin-auction-service/internal/handler/middleware"
	"gin-auction-service/internal/pkg/errs"
	"gin-auction-service/internal/usecase/commands"
	"gin-auction-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errs.New("no authenticated user in context")

const retryAfterSeconds = "1"

// failure is the HTTP shape of a use-case error.
type failure struct {
	status  int
	message string
}

func classify(err error) failure {
	switch {
	case errors.Is(err, commands.ErrInvalidAmount):
		return failure{http.StatusBadRequest, "Amount must be positive with at most two decimal places"}
	case errors.Is(err, commands.ErrAuctionNotFound), errors.Is(err, queries.ErrAuctionNotFound):
		return failure{http.StatusNotFound, "Auction not found"}
	case errors.Is(err, commands.ErrAuctionNotActive):
		return failure{http.StatusNotFound, "Auction is not accepting bids"}
	case errors.Is(err, commands.ErrBidTooLow):
		return failure{http.StatusBadRequest, "Bid must exceed the current price"}
	case errors.Is(err, commands.ErrOwnerBid):
		return failure{http.StatusForbidden, "Owners cannot bid on their own auction"}
	case errors.Is(err, commands.ErrTransientConflict):
		return failure{http.StatusServiceUnavailable, "Auction is busy, please retry"}
	case errors.Is(err, commands.ErrInvalidAuction):
		return failure{http.StatusBadRequest, "Invalid auction: " + err.Error()}
	case errors.Is(err, commands.ErrNotAuctionOwner):
		return failure{http.StatusForbidden, "Only the owner can modify this auction"}
	case errors.Is(err, commands.ErrInvalidTransition):
		return failure{http.StatusConflict, "Auction cannot change to the requested status"}
	case errors.Is(err, queries.ErrInvalidCursor):
		return failure{http.StatusBadRequest, "Invalid cursor"}
	case errors.Is(err, queries.ErrInvalidStatusFilter):
		return failure{http.StatusBadRequest, "Invalid status filter"}
	default:
		return failure{http.StatusInternalServerError, "Internal server error"}
	}
}

func abortWithUseCaseError(c *gin.Context, err error) {
	f := classify(err)
	if f.status == http.StatusServiceUnavailable {
		c.Header("Retry-After", retryAfterSeconds)
	}
	httperr.AbortWithError(c, f.status, err, f.message, nil)
}

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
	}
	return userID, ok
}

func parseAuctionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid auction id", nil)
		return uuid.Nil, false
	}
	return id, true
}
