package repository

import (
	"context"

	"gin-auction-service/internal/domain/auction"
	"gin-auction-service/internal/infra"
	"gin-auction-service/internal/infra/db"
	"gin-auction-service/internal/infra/repository/converter"
	"gin-auction-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertBidSQL = `
INSERT INTO bids (id, auction_id, user_id, amount, created_at)
VALUES ($1, $2, $3, $4::numeric, $5)`

	selectHighestBidSQL = `SELECT ` + converter.BidColumns + `
FROM bids
WHERE auction_id = $1
ORDER BY amount DESC, created_at ASC
LIMIT 1`
)

type BidRepository struct {
	db db.DBTX
}

func NewBidRepository(db db.DBTX) *BidRepository {
	return &BidRepository{db: db}
}

func (r *BidRepository) Create(ctx context.Context, b *auction.Bid) error {
	_, err := r.db.Exec(ctx, insertBidSQL,
		b.ID(),
		b.AuctionID(),
		b.UserID(),
		b.Amount().String(),
		b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create bid", err)
	}
	return nil
}

// Highest returns nil, nil when the auction has no bids.
func (r *BidRepository) Highest(ctx context.Context, auctionID uuid.UUID) (*auction.Bid, error) {
	br, err := converter.ScanBidRow(r.db.QueryRow(ctx, selectHighestBidSQL, auctionID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find highest bid", err)
	}

	b, err := converter.BidRowToDomain(br)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert bid row", err)
	}
	return b, nil
}
