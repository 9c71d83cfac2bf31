package readstore

import (
	"context"
	"time"

	"gin-auction-service/internal/infra"
	"gin-auction-service/internal/infra/db"
	"gin-auction-service/internal/infra/repository/converter"
	"gin-auction-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	listBidsFirstPageSQL = `SELECT ` + converter.BidColumns + `
FROM bids
WHERE auction_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

	listBidsKeysetSQL = `SELECT ` + converter.BidColumns + `
FROM bids
WHERE auction_id = $1
	AND (created_at, id) < ($3, $4)
ORDER BY created_at DESC, id DESC
LIMIT $2`
)

type BidReadStore struct {
	db db.DBTX
}

func NewBidReadStore(db db.DBTX) *BidReadStore {
	return &BidReadStore{db: db}
}

func (r *BidReadStore) ListByAuctionFirstPage(ctx context.Context, auctionID uuid.UUID, limit int32) ([]*queries.BidView, error) {
	rows, err := r.db.Query(ctx, listBidsFirstPageSQL, auctionID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bids", err)
	}
	return collectBidViews(rows)
}

func (r *BidReadStore) ListByAuctionKeyset(ctx context.Context, auctionID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BidView, error) {
	rows, err := r.db.Query(ctx, listBidsKeysetSQL, auctionID, limit, lastCreatedAt, lastID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bids by keyset", err)
	}
	return collectBidViews(rows)
}

func collectBidViews(rows pgx.Rows) ([]*queries.BidView, error) {
	defer rows.Close()

	views := make([]*queries.BidView, 0)
	for rows.Next() {
		row, err := converter.ScanBidRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan bid row", err)
		}
		b, err := converter.BidRowToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert bid row", err)
		}
		views = append(views, queries.BidViewFromDomain(b))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bid rows", err)
	}
	return views, nil
}
