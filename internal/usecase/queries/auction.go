package queries

//go:generate mockgen -source=auction.go -destination=../../../tests/mock/queries/auction.go -package=queriesmock

import (
	"context"
	"time"

	"gin-auction-service/internal/domain/auction"
	"gin-auction-service/internal/infra"
	"gin-auction-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAuctionNotFound     = errs.New("auction not found")
	ErrInvalidStatusFilter = errs.New("invalid status filter")
)

type AuctionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuctionView, error)
	ListFirstPage(ctx context.Context, filters AuctionFilters, limit int32) ([]*AuctionView, error)
	ListKeyset(ctx context.Context, filters AuctionFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*AuctionView, error)
}

type BidReadStore interface {
	ListByAuctionFirstPage(ctx context.Context, auctionID uuid.UUID, limit int32) ([]*BidView, error)
	ListByAuctionKeyset(ctx context.Context, auctionID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BidView, error)
}

type AuctionQueries interface {
	GetAuction(ctx context.Context, id uuid.UUID) (*AuctionView, error)
	ListAuctions(ctx context.Context, filters AuctionFilters, cursor *Cursor, limit int) ([]*AuctionView, *Cursor, error)
	ListBids(ctx context.Context, auctionID uuid.UUID, cursor *Cursor, limit int) ([]*BidView, *Cursor, error)
}

type auctionQueriesImpl struct {
	auctions AuctionReadStore
	bids     BidReadStore
}

func NewAuctionQueries(auctions AuctionReadStore, bids BidReadStore) AuctionQueries {
	return &auctionQueriesImpl{auctions: auctions, bids: bids}
}

func (q *auctionQueriesImpl) GetAuction(ctx context.Context, id uuid.UUID) (*AuctionView, error) {
	v, err := q.auctions.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAuctionNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *auctionQueriesImpl) ListAuctions(ctx context.Context, filters AuctionFilters, cursor *Cursor, limit int) ([]*AuctionView, *Cursor, error) {
	if filters.Status != nil && !auction.Status(*filters.Status).IsValid() {
		return nil, nil, ErrInvalidStatusFilter
	}

	limit = ValidateLimit(limit)
	var rows []*AuctionView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.auctions.ListFirstPage(ctx, filters, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.auctions.ListKeyset(ctx, filters, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, func(v *AuctionView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return rows, next, nil
}

// ListBids returns the newest bids first. A missing auction is ErrAuctionNotFound
// rather than an empty page.
func (q *auctionQueriesImpl) ListBids(ctx context.Context, auctionID uuid.UUID, cursor *Cursor, limit int) ([]*BidView, *Cursor, error) {
	if _, err := q.GetAuction(ctx, auctionID); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*BidView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.bids.ListByAuctionFirstPage(ctx, auctionID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.bids.ListByAuctionKeyset(ctx, auctionID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, func(v *BidView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return rows, next, nil
}
