package shared

//go:generate mockgen -source=types.go -destination=../../../tests/mock/shared/types.go -package=sharedmock

import (
	"context"
	"time"

	"gin-auction-service/internal/domain/auction"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBidPlaced        EventType = "bid.placed"
	EventAuctionActivated EventType = "auction.activated"
	EventAuctionCancelled EventType = "auction.cancelled"
	EventAuctionCompleted EventType = "auction.completed"
	// EventAuctionSnapshot is only sent to a new stream subscriber, never published.
	EventAuctionSnapshot EventType = "auction.snapshot"
)

// Event is what gets fanned out to live subscribers after a commit.
type Event struct {
	Type         EventType  `json:"type"`
	AuctionID    uuid.UUID  `json:"auctionId"`
	Status       string     `json:"status"`
	CurrentPrice string     `json:"currentPrice"`
	BidCount     int        `json:"bidCount"`
	BidID        *uuid.UUID `json:"bidId,omitempty"`
	BidderID     *uuid.UUID `json:"bidderId,omitempty"`
	Amount       string     `json:"amount,omitempty"`
	WinnerID     *uuid.UUID `json:"winnerId,omitempty"`
	OccurredAt   time.Time  `json:"occurredAt"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// EventSubscriber delivers events for one auction until ctx is done, then closes the channel.
type EventSubscriber interface {
	Subscribe(ctx context.Context, auctionID uuid.UUID) (<-chan Event, error)
}

func NewAuctionEvent(t EventType, a *auction.Auction) Event {
	return Event{
		Type:         t,
		AuctionID:    a.ID(),
		Status:       a.Status().String(),
		CurrentPrice: a.CurrentPrice().String(),
		BidCount:     a.BidCount(),
		WinnerID:     a.WinnerID(),
		OccurredAt:   a.UpdatedAt(),
	}
}

func NewBidPlacedEvent(b *auction.Bid, a *auction.Auction) Event {
	ev := NewAuctionEvent(EventBidPlaced, a)
	bidID, bidderID := b.ID(), b.UserID()
	ev.BidID = &bidID
	ev.BidderID = &bidderID
	ev.Amount = b.Amount().String()
	ev.OccurredAt = b.CreatedAt()
	return ev
}
