package shared

import (
	"context"
	"time"

	"gin-auction-service/internal/domain/auction"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations; commit on nil, rollback otherwise
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Auctions() AuctionRepository
	Bids() BidRepository
	Reads() CommandReads
}

type CommandReads interface {
	AuctionByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error)
	// HighestBid returns nil, nil when the auction has no bids.
	HighestBid(ctx context.Context, auctionID uuid.UUID) (*auction.Bid, error)
	EndedActiveAuctions(ctx context.Context, now time.Time, limit int) ([]*auction.Auction, error)
}

type AuctionRepository interface {
	Create(ctx context.Context, a *auction.Auction) error
	// ApplyBid stores next's price and bid count only while the stored price still
	// equals expectedPrice and the auction is biddable at next.UpdatedAt(). The
	// returned updatedAt is taken under the row lock, see Auction.NextWriteTime.
	// A failed condition is reported as infra.KindConflict.
	ApplyBid(ctx context.Context, next *auction.Auction, expectedPrice auction.Money) (*auction.Auction, error)
	// Transition stores status, winner and updatedAt while the stored status and
	// bid count still equal the expected ones. A failed condition is infra.KindConflict.
	Transition(ctx context.Context, a *auction.Auction, expectedStatus auction.Status, expectedBidCount int) error
}

type BidRepository interface {
	Create(ctx context.Context, b *auction.Bid) error
}
