package request

import (
	"time"

	"gin-auction-service/internal/usecase/commands"
	"gin-auction-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money fields accept JSON numbers or strings; decimal keeps the literal digits so
// precision checks see exactly what the client sent.
type CreateAuctionRequest struct {
	Title        string           `json:"title" binding:"required,max=200"`
	Description  string           `json:"description" binding:"max=2000"`
	StartPrice   *decimal.Decimal `json:"startPrice" binding:"required"`
	ReservePrice *decimal.Decimal `json:"reservePrice"`
	StartTime    time.Time        `json:"startTime" binding:"required"`
	EndTime      time.Time        `json:"endTime" binding:"required,gtfield=StartTime"`
}

func (r *CreateAuctionRequest) ToCommand(ownerID uuid.UUID) commands.CreateAuctionCommand {
	return commands.CreateAuctionCommand{
		OwnerID:      ownerID,
		Title:        r.Title,
		Description:  r.Description,
		StartPrice:   *r.StartPrice,
		ReservePrice: r.ReservePrice,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
	}
}

type ListAuctionsQuery struct {
	Status  *string `form:"status"`
	OwnerID string  `form:"owner_id" binding:"omitempty,uuid"`
	After   string  `form:"after"`
	Limit   int     `form:"limit" binding:"omitempty,min=1,max=200"`
}

// Filters assumes the query passed binding, so OwnerID is empty or a valid UUID.
func (q *ListAuctionsQuery) Filters() queries.AuctionFilters {
	filters := queries.AuctionFilters{Status: q.Status}
	if id, err := uuid.Parse(q.OwnerID); err == nil {
		filters.OwnerID = &id
	}
	return filters
}

type ListBidsQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}
