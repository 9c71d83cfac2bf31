package request

import (
	"gin-auction-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlaceBidRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

func (r *PlaceBidRequest) ToCommand(bidderID, auctionID uuid.UUID) commands.PlaceBidCommand {
	return commands.PlaceBidCommand{
		BidderID:  bidderID,
		AuctionID: auctionID,
		Amount:    *r.Amount,
	}
}
