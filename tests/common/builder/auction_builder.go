//go:build unit || e2e

package builder

import (
	"time"

	"gin-auction-service/internal/domain/auction"
	reqdto "gin-auction-service/internal/handler/dto/request"
	"gin-auction-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BaseTime is the fixed "now" unit tests run at.
var BaseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type AuctionBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Description  string
	StartPrice   string
	ReservePrice *string
	CurrentPrice string
	Status       auction.Status
	BidCount     int
	StartTime    time.Time
	EndTime      time.Time
	WinnerID     *uuid.UUID
	CreatedAt    time.Time
}

// NewAuctionBuilder defaults to an active auction at 100.00 without bids whose
// window is BaseTime +/- 1h.
func NewAuctionBuilder() *AuctionBuilder {
	return &AuctionBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Title:        "Vintage camera",
		Description:  "Working condition, original box",
		StartPrice:   "100.00",
		CurrentPrice: "100.00",
		Status:       auction.StatusActive,
		StartTime:    BaseTime.Add(-time.Hour),
		EndTime:      BaseTime.Add(time.Hour),
		CreatedAt:    BaseTime.Add(-2 * time.Hour),
	}
}

func (b *AuctionBuilder) With(mutate func(*AuctionBuilder)) *AuctionBuilder {
	mutate(b)
	return b
}

func MustMoney(s string) auction.Money {
	m, err := auction.ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Build methods
func (b *AuctionBuilder) BuildDomain() *auction.Auction {
	var reserve *auction.Money
	if b.ReservePrice != nil {
		m := MustMoney(*b.ReservePrice)
		reserve = &m
	}
	return auction.Reconstruct(auction.ReconstructParams{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Title:        b.Title,
		Description:  b.Description,
		StartPrice:   MustMoney(b.StartPrice),
		ReservePrice: reserve,
		CurrentPrice: MustMoney(b.CurrentPrice),
		Status:       b.Status,
		BidCount:     b.BidCount,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		WinnerID:     b.WinnerID,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	})
}

func (b *AuctionBuilder) BuildView() *queries.AuctionView {
	return queries.AuctionViewFromDomain(b.BuildDomain())
}

func (b *AuctionBuilder) BuildCreateRequestDTO() reqdto.CreateAuctionRequest {
	start := decimal.RequireFromString(b.StartPrice)
	req := reqdto.CreateAuctionRequest{
		Title:       b.Title,
		Description: b.Description,
		StartPrice:  &start,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
	}
	if b.ReservePrice != nil {
		reserve := decimal.RequireFromString(*b.ReservePrice)
		req.ReservePrice = &reserve
	}
	return req
}

// Fluent builder methods
func (b *AuctionBuilder) WithID(id uuid.UUID) *AuctionBuilder {
	b.ID = id
	return b
}

func (b *AuctionBuilder) WithOwnerID(ownerID uuid.UUID) *AuctionBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *AuctionBuilder) WithStatus(status auction.Status) *AuctionBuilder {
	b.Status = status
	return b
}

func (b *AuctionBuilder) WithWindow(start, end time.Time) *AuctionBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *AuctionBuilder) WithStartPrice(price string) *AuctionBuilder {
	b.StartPrice = price
	b.CurrentPrice = price
	return b
}

func (b *AuctionBuilder) WithCurrentPrice(price string) *AuctionBuilder {
	b.CurrentPrice = price
	return b
}

func (b *AuctionBuilder) WithReservePrice(price string) *AuctionBuilder {
	b.ReservePrice = &price
	return b
}

func (b *AuctionBuilder) WithBidCount(n int) *AuctionBuilder {
	b.BidCount = n
	return b
}

func (b *AuctionBuilder) WithCreatedAt(t time.Time) *AuctionBuilder {
	b.CreatedAt = t
	return b
}

func (b *AuctionBuilder) AsPending() *AuctionBuilder {
	b.Status = auction.StatusPending
	return b
}

func (b *AuctionBuilder) AsEnded() *AuctionBuilder {
	b.StartTime = BaseTime.Add(-2 * time.Hour)
	b.EndTime = BaseTime.Add(-time.Minute)
	return b
}

type BidBuilder struct {
	AuctionID uuid.UUID
	UserID    uuid.UUID
	Amount    string
	CreatedAt time.Time
}

func NewBidBuilder(auctionID uuid.UUID) *BidBuilder {
	return &BidBuilder{
		AuctionID: auctionID,
		UserID:    uuid.New(),
		Amount:    "150.00",
		CreatedAt: BaseTime.Add(-30 * time.Minute),
	}
}

func (b *BidBuilder) WithUserID(userID uuid.UUID) *BidBuilder {
	b.UserID = userID
	return b
}

func (b *BidBuilder) WithAmount(amount string) *BidBuilder {
	b.Amount = amount
	return b
}

func (b *BidBuilder) WithCreatedAt(t time.Time) *BidBuilder {
	b.CreatedAt = t
	return b
}

func (b *BidBuilder) BuildDomain() *auction.Bid {
	return auction.ReconstructBid(uuid.New(), b.AuctionID, b.UserID, MustMoney(b.Amount), b.CreatedAt)
}

func (b *BidBuilder) BuildView() *queries.BidView {
	return queries.BidViewFromDomain(b.BuildDomain())
}
