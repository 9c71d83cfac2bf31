package commands

//go:generate mockgen -source=bid.go -destination=../../../tests/mock/commands/bid.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gin-auction-service/internal/domain/auction"
	"gin-auction-service/internal/infra"
	"gin-auction-service/internal/pkg/backoff"
	"gin-auction-service/internal/pkg/clock"
	"gin-auction-service/internal/pkg/config"
	"gin-auction-service/internal/pkg/errs"
	"gin-auction-service/internal/usecase/queries"
	"gin-auction-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount      = errs.New("invalid bid amount")
	ErrAuctionNotFound    = errs.New("auction not found")
	ErrAuctionNotActive   = errs.New("auction is not active")
	ErrBidTooLow          = errs.New("bid too low")
	ErrOwnerBid           = errs.New("owner cannot bid on own auction")
	ErrTransientConflict  = errs.New("bid conflicted with concurrent updates")
	ErrBidPlacementFailed = errs.New("bid placement failed")
)

type PlaceBidCommand struct {
	BidderID  uuid.UUID
	AuctionID uuid.UUID
	Amount    decimal.Decimal
}

type PlaceBidResult struct {
	Bid     *queries.BidView
	Auction *queries.AuctionView
}

type BidCommands interface {
	PlaceBid(ctx context.Context, cmd PlaceBidCommand) (*PlaceBidResult, error)
}

// BidPolicy bounds the optimistic retry loop of PlaceBid.
type BidPolicy struct {
	MaxAttempts     int
	Backoff         *backoff.Exponential
	StoreTimeout    time.Duration
	RejectOwnerBids bool
}

func NewBidPolicy(cfg config.BidConfig) BidPolicy {
	return BidPolicy{
		MaxAttempts:     cfg.MaxAttempts,
		Backoff:         backoff.NewExponential(cfg.RetryBase, cfg.RetryMax),
		StoreTimeout:    cfg.StoreTimeout,
		RejectOwnerBids: cfg.RejectOwnerBids,
	}
}

type bidUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
	sleeper   clock.Sleeper
	policy    BidPolicy
	logger    *slog.Logger
}

func NewBidUseCase(
	uow shared.UnitOfWork,
	publisher shared.EventPublisher,
	clk clock.Clock,
	sleeper clock.Sleeper,
	policy BidPolicy,
	logger *slog.Logger,
) BidCommands {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.Backoff == nil {
		policy.Backoff = backoff.NewExponential(0, 0)
	}
	return &bidUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		sleeper:   sleeper,
		policy:    policy,
		logger:    logger,
	}
}

// PlaceBid validates the amount, then reads the auction and commits the bid with
// a write conditioned on the price it read. A lost race is retried with a fresh
// read; every rule is re-checked against the newer state.
func (uc *bidUseCaseImpl) PlaceBid(ctx context.Context, cmd PlaceBidCommand) (*PlaceBidResult, error) {
	amount, err := auction.NewMoney(cmd.Amount)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAmount)
	}

	if uc.policy.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.policy.StoreTimeout)
		defer cancel()
	}

	var lastErr error
	for attempt := 0; attempt < uc.policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			wait := uc.policy.Backoff.Delay(attempt - 1)
			uc.logger.Warn("retrying bid after conflict",
				"auction_id", cmd.AuctionID.String(),
				"attempt", attempt+1,
				"wait_ms", wait.Milliseconds(),
				"error", lastErr.Error())
			if serr := uc.sleeper.Sleep(ctx, wait); serr != nil {
				return nil, uc.translate(serr)
			}
		}

		bid, stored, err := uc.tryPlace(ctx, cmd.BidderID, cmd.AuctionID, amount)
		if err == nil {
			publishAfterCommit(ctx, uc.publisher, uc.logger, shared.NewBidPlacedEvent(bid, stored))
			return &PlaceBidResult{
				Bid:     queries.BidViewFromDomain(bid),
				Auction: queries.AuctionViewFromDomain(stored),
			}, nil
		}
		if !infra.IsKind(err, infra.KindConflict) {
			return nil, uc.translate(err)
		}
		lastErr = err
	}

	uc.logger.Error("bid retries exhausted",
		"auction_id", cmd.AuctionID.String(),
		"attempts", uc.policy.MaxAttempts,
		"error", lastErr.Error())
	return nil, errs.Mark(errs.Wrapf(lastErr, "gave up after %d attempts", uc.policy.MaxAttempts), ErrTransientConflict)
}

func (uc *bidUseCaseImpl) tryPlace(ctx context.Context, bidderID, auctionID uuid.UUID, amount auction.Money) (*auction.Bid, *auction.Auction, error) {
	var (
		placed *auction.Bid
		stored *auction.Auction
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().AuctionByID(ctx, auctionID)
		if err != nil {
			return err
		}

		bid, next, err := current.PlaceBid(bidderID, amount, storeTime(uc.clock), uc.policy.RejectOwnerBids)
		if err != nil {
			return err
		}

		// The row lock taken here serializes bidders; the bid insert follows in the same tx.
		updated, err := tx.Auctions().ApplyBid(ctx, next, current.CurrentPrice())
		if err != nil {
			return err
		}
		// Stamp the bid with the row's write time so list order matches commit order.
		bid = bid.At(updated.UpdatedAt())
		if err := tx.Bids().Create(ctx, bid); err != nil {
			return err
		}

		placed, stored = bid, updated
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return placed, stored, nil
}

func (uc *bidUseCaseImpl) translate(err error) error {
	switch {
	case errors.Is(err, auction.ErrNotActive):
		return errs.Mark(err, ErrAuctionNotActive)
	case errors.Is(err, auction.ErrBidTooLow):
		return errs.Mark(err, ErrBidTooLow)
	case errors.Is(err, auction.ErrOwnerBid):
		return errs.Mark(err, ErrOwnerBid)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrAuctionNotFound)
	case errors.Is(err, context.DeadlineExceeded):
		// The store did not answer in time; the bid may be retried by the client.
		return errs.Mark(err, ErrTransientConflict)
	default:
		return errs.Mark(err, ErrBidPlacementFailed)
	}
}
