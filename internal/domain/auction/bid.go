package auction

import (
	"time"

	"github.com/google/uuid"
)

// Bid is append-only; there are no mutators.
type Bid struct {
	id        uuid.UUID
	auctionID uuid.UUID
	userID    uuid.UUID
	amount    Money
	createdAt time.Time
}

func NewBid(auctionID, userID uuid.UUID, amount Money, now time.Time) *Bid {
	return &Bid{
		id:        uuid.New(),
		auctionID: auctionID,
		userID:    userID,
		amount:    amount,
		createdAt: now,
	}
}

func ReconstructBid(id, auctionID, userID uuid.UUID, amount Money, createdAt time.Time) *Bid {
	return &Bid{
		id:        id,
		auctionID: auctionID,
		userID:    userID,
		amount:    amount,
		createdAt: createdAt,
	}
}

// At returns a copy of the bid stamped at t.
func (b *Bid) At(t time.Time) *Bid {
	c := *b
	c.createdAt = t
	return &c
}

func (b *Bid) ID() uuid.UUID        { return b.id }
func (b *Bid) AuctionID() uuid.UUID { return b.auctionID }
func (b *Bid) UserID() uuid.UUID    { return b.userID }
func (b *Bid) Amount() Money        { return b.amount }
func (b *Bid) CreatedAt() time.Time { return b.createdAt }
