package readstore

import (
	"context"
	"time"

	"gin-auction-service/internal/infra"
	"gin-auction-service/internal/infra/db"
	"gin-auction-service/internal/infra/repository/converter"
	"gin-auction-service/internal/pkg/pgconv"
	"gin-auction-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	selectAuctionViewSQL = `SELECT ` + converter.AuctionColumns + ` FROM auctions WHERE id = $1`

	listAuctionsFirstPageSQL = `SELECT ` + converter.AuctionColumns + `
FROM auctions
WHERE ($1::text IS NULL OR status = $1)
	AND ($2::uuid IS NULL OR owner_id = $2)
ORDER BY created_at DESC, id DESC
LIMIT $3`

	listAuctionsKeysetSQL = `SELECT ` + converter.AuctionColumns + `
FROM auctions
WHERE ($1::text IS NULL OR status = $1)
	AND ($2::uuid IS NULL OR owner_id = $2)
	AND (created_at, id) < ($4, $5)
ORDER BY created_at DESC, id DESC
LIMIT $3`
)

type AuctionReadStore struct {
	db db.DBTX
}

func NewAuctionReadStore(db db.DBTX) *AuctionReadStore {
	return &AuctionReadStore{db: db}
}

func (r *AuctionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuctionView, error) {
	row, err := converter.ScanAuctionRow(r.db.QueryRow(ctx, selectAuctionViewSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("auction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get auction view by id", err)
	}
	return toAuctionView(row)
}

func (r *AuctionReadStore) ListFirstPage(ctx context.Context, filters queries.AuctionFilters, limit int32) ([]*queries.AuctionView, error) {
	rows, err := r.db.Query(ctx, listAuctionsFirstPageSQL, statusParam(filters), pgconv.UUIDPtrToPgtype(filters.OwnerID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list auctions", err)
	}
	return collectAuctionViews(rows)
}

func (r *AuctionReadStore) ListKeyset(ctx context.Context, filters queries.AuctionFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.AuctionView, error) {
	rows, err := r.db.Query(ctx, listAuctionsKeysetSQL,
		statusParam(filters),
		pgconv.UUIDPtrToPgtype(filters.OwnerID),
		limit,
		lastCreatedAt,
		lastID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list auctions by keyset", err)
	}
	return collectAuctionViews(rows)
}

func statusParam(filters queries.AuctionFilters) pgtype.Text {
	if filters.Status == nil {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(*filters.Status)
}

func collectAuctionViews(rows pgx.Rows) ([]*queries.AuctionView, error) {
	defer rows.Close()

	views := make([]*queries.AuctionView, 0)
	for rows.Next() {
		row, err := converter.ScanAuctionRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan auction row", err)
		}
		v, err := toAuctionView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate auction rows", err)
	}
	return views, nil
}

func toAuctionView(row converter.AuctionRow) (*queries.AuctionView, error) {
	a, err := converter.AuctionRowToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert auction row", err)
	}
	return queries.AuctionViewFromDomain(a), nil
}
