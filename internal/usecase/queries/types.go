package queries

import (
	"time"

	"gin-auction-service/internal/domain/auction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuctionView represents read-optimized auction data
type AuctionView struct {
	ID           uuid.UUID        `json:"id"`
	OwnerID      uuid.UUID        `json:"owner_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	StartPrice   decimal.Decimal  `json:"start_price"`
	ReservePrice *decimal.Decimal `json:"reserve_price,omitempty"`
	CurrentPrice decimal.Decimal  `json:"current_price"`
	Status       string           `json:"status"`
	BidCount     int              `json:"bid_count"`
	StartTime    time.Time        `json:"start_time"`
	EndTime      time.Time        `json:"end_time"`
	WinnerID     *uuid.UUID       `json:"winner_id,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// BidView represents read-optimized bid data
type BidView struct {
	ID        uuid.UUID       `json:"id"`
	AuctionID uuid.UUID       `json:"auction_id"`
	UserID    uuid.UUID       `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

type AuctionFilters struct {
	Status  *string
	OwnerID *uuid.UUID
}

// AuctionViewFromDomain lets command results share the query response shape.
func AuctionViewFromDomain(a *auction.Auction) *AuctionView {
	v := &AuctionView{
		ID:           a.ID(),
		OwnerID:      a.OwnerID(),
		Title:        a.Title(),
		Description:  a.Description(),
		StartPrice:   a.StartPrice().Decimal(),
		CurrentPrice: a.CurrentPrice().Decimal(),
		Status:       a.Status().String(),
		BidCount:     a.BidCount(),
		StartTime:    a.StartTime(),
		EndTime:      a.EndTime(),
		WinnerID:     a.WinnerID(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
	if rp := a.ReservePrice(); rp != nil {
		d := rp.Decimal()
		v.ReservePrice = &d
	}
	return v
}

func BidViewFromDomain(b *auction.Bid) *BidView {
	return &BidView{
		ID:        b.ID(),
		AuctionID: b.AuctionID(),
		UserID:    b.UserID(),
		Amount:    b.Amount().Decimal(),
		CreatedAt: b.CreatedAt(),
	}
}
