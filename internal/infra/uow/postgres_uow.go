package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gin-auction-service/internal/domain/auction"
	"gin-auction-service/internal/infra"
	"gin-auction-service/internal/infra/db"
	"gin-auction-service/internal/infra/repository"
	"gin-auction-service/internal/pkg/errs"
	"gin-auction-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var errTransactionBegin = errs.New("failed to begin transaction")

type PostgresUoW struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		logger: logger,
	}
}

// Within runs fn in one ReadCommitted transaction. It does not retry: callers own
// their retry policy, and serialization failures or deadlocks surface as
// infra.KindConflict so they can be told apart from hard failures.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return infra.WrapRepoErr("begin", errs.Mark(err, errTransactionBegin))
	}

	err = fn(ctx, newPgTx(pgxTx))
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = infra.WrapRepoErr("failed to commit transaction", err)
	}

	// Rollback uses a fresh context so a cancelled request still releases the connection.
	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if rollbackErr := pgxTx.Rollback(rbCtx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			u.logger.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}

	return err
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.pool)
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	auctionRepo  shared.AuctionRepository
	bidRepo      shared.BidRepository
	commandReads shared.CommandReads
}

func newPgTx(dbtx db.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx}
}

func (t *pgTx) Auctions() shared.AuctionRepository {
	if t.auctionRepo == nil {
		t.auctionRepo = repository.NewAuctionRepository(t.dbtx)
	}
	return t.auctionRepo
}

func (t *pgTx) Bids() shared.BidRepository {
	if t.bidRepo == nil {
		t.bidRepo = repository.NewBidRepository(t.dbtx)
	}
	return t.bidRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	auctions *repository.AuctionRepository
	bids     *repository.BidRepository
}

func newCommandReads(dbtx db.DBTX) *commandReads {
	return &commandReads{
		auctions: repository.NewAuctionRepository(dbtx),
		bids:     repository.NewBidRepository(dbtx),
	}
}

func (r *commandReads) AuctionByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	return r.auctions.FindByID(ctx, id)
}

func (r *commandReads) HighestBid(ctx context.Context, auctionID uuid.UUID) (*auction.Bid, error) {
	return r.bids.Highest(ctx, auctionID)
}

func (r *commandReads) EndedActiveAuctions(ctx context.Context, now time.Time, limit int) ([]*auction.Auction, error) {
	return r.auctions.ListEndedActive(ctx, now, limit)
}
