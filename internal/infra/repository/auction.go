package repository

import (
	"context"
	"time"

	"gin-auction-service/internal/domain/auction"
	"gin-auction-service/internal/infra"
	"gin-auction-service/internal/infra/db"
	"gin-auction-service/internal/infra/repository/converter"
	"gin-auction-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertAuctionSQL = `
INSERT INTO auctions (
	id, owner_id, title, description, start_price, reserve_price, current_price,
	status, bid_count, start_time, end_time, winner_id, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5::numeric, $6::numeric, $7::numeric,
	$8, $9, $10, $11, $12, $13, $14
)`

	// The price guard is the optimistic concurrency check; the window guard keeps
	// a bid from landing after the auction was closed or cancelled concurrently.
	applyBidSQL = `
UPDATE auctions
SET current_price = $2::numeric,
	bid_count = bid_count + 1,
	updated_at = GREATEST($4, updated_at + interval '1 microsecond')
WHERE id = $1
	AND current_price = $3::numeric
	AND status = 'active'
	AND start_time <= $4
	AND end_time >= $4
RETURNING ` + converter.AuctionColumns

	transitionSQL = `
UPDATE auctions
SET status = $2,
	winner_id = $3,
	updated_at = $4
WHERE id = $1
	AND status = $5
	AND bid_count = $6`

	selectAuctionByIDSQL = `SELECT ` + converter.AuctionColumns + ` FROM auctions WHERE id = $1`

	selectEndedActiveSQL = `SELECT ` + converter.AuctionColumns + `
FROM auctions
WHERE status = 'active' AND end_time < $1
ORDER BY end_time, id
LIMIT $2`
)

type AuctionRepository struct {
	db db.DBTX
}

func NewAuctionRepository(db db.DBTX) *AuctionRepository {
	return &AuctionRepository{db: db}
}

func (r *AuctionRepository) Create(ctx context.Context, a *auction.Auction) error {
	var reserve = pgconv.DecimalPtrToPgtype(nil)
	if rp := a.ReservePrice(); rp != nil {
		d := rp.Decimal()
		reserve = pgconv.DecimalPtrToPgtype(&d)
	}

	_, err := r.db.Exec(ctx, insertAuctionSQL,
		a.ID(),
		a.OwnerID(),
		a.Title(),
		a.Description(),
		a.StartPrice().String(),
		reserve,
		a.CurrentPrice().String(),
		a.Status().String(),
		a.BidCount(),
		a.StartTime(),
		a.EndTime(),
		pgconv.UUIDPtrToPgtype(a.WinnerID()),
		a.CreatedAt(),
		a.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create auction", err)
	}
	return nil
}

func (r *AuctionRepository) ApplyBid(ctx context.Context, next *auction.Auction, expectedPrice auction.Money) (*auction.Auction, error) {
	row := r.db.QueryRow(ctx, applyBidSQL,
		next.ID(),
		next.CurrentPrice().String(),
		expectedPrice.String(),
		next.UpdatedAt(),
	)
	ar, err := converter.ScanAuctionRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("auction changed since it was read", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to apply bid", err)
	}

	stored, err := converter.AuctionRowToDomain(ar)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert auction row", err)
	}
	return stored, nil
}

func (r *AuctionRepository) Transition(ctx context.Context, a *auction.Auction, expectedStatus auction.Status, expectedBidCount int) error {
	tag, err := r.db.Exec(ctx, transitionSQL,
		a.ID(),
		a.Status().String(),
		pgconv.UUIDPtrToPgtype(a.WinnerID()),
		a.UpdatedAt(),
		expectedStatus.String(),
		expectedBidCount,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to transition auction", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "auction changed since it was read")
	}
	return nil
}

func (r *AuctionRepository) FindByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	ar, err := converter.ScanAuctionRow(r.db.QueryRow(ctx, selectAuctionByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("auction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find auction by ID", err)
	}

	a, err := converter.AuctionRowToDomain(ar)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert auction row", err)
	}
	return a, nil
}

// ListEndedActive returns active auctions whose end time is before now, oldest first.
func (r *AuctionRepository) ListEndedActive(ctx context.Context, now time.Time, limit int) ([]*auction.Auction, error) {
	rows, err := r.db.Query(ctx, selectEndedActiveSQL, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ended auctions", err)
	}
	defer rows.Close()

	var out []*auction.Auction
	for rows.Next() {
		ar, err := converter.ScanAuctionRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan auction row", err)
		}
		a, err := converter.AuctionRowToDomain(ar)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert auction row", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate auction rows", err)
	}
	return out, nil
}
