package commands

//go:generate mockgen -source=auction.go -destination=../../../tests/mock/commands/auction.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gin-auction-service/internal/domain/auction"
	"gin-auction-service/internal/infra"
	"gin-auction-service/internal/pkg/clock"
	"gin-auction-service/internal/pkg/errs"
	"gin-auction-service/internal/usecase/queries"
	"gin-auction-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAuction    = errs.New("invalid auction")
	ErrNotAuctionOwner   = errs.New("not the auction owner")
	ErrInvalidTransition = errs.New("invalid auction status transition")
)

const closeBatchSize = 100

type CreateAuctionCommand struct {
	OwnerID      uuid.UUID
	Title        string
	Description  string
	StartPrice   decimal.Decimal
	ReservePrice *decimal.Decimal
	StartTime    time.Time
	EndTime      time.Time
}

type AuctionCommands interface {
	CreateAuction(ctx context.Context, cmd CreateAuctionCommand) (*queries.AuctionView, error)
	ActivateAuction(ctx context.Context, actorID, auctionID uuid.UUID) (*queries.AuctionView, error)
	CancelAuction(ctx context.Context, actorID, auctionID uuid.UUID) (*queries.AuctionView, error)
	CloseEndedAuctions(ctx context.Context) (int, error)
}

type auctionUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewAuctionUseCase(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, logger *slog.Logger) AuctionCommands {
	return &auctionUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

func (uc *auctionUseCaseImpl) CreateAuction(ctx context.Context, cmd CreateAuctionCommand) (*queries.AuctionView, error) {
	startPrice, err := auction.NewMoney(cmd.StartPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAuction)
	}
	var reservePrice *auction.Money
	if cmd.ReservePrice != nil {
		rp, err := auction.NewMoney(*cmd.ReservePrice)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidAuction)
		}
		reservePrice = &rp
	}

	a, err := auction.NewAuction(auction.NewAuctionParams{
		OwnerID:      cmd.OwnerID,
		Title:        cmd.Title,
		Description:  cmd.Description,
		StartPrice:   startPrice,
		ReservePrice: reservePrice,
		StartTime:    cmd.StartTime.UTC().Truncate(time.Microsecond),
		EndTime:      cmd.EndTime.UTC().Truncate(time.Microsecond),
	}, storeTime(uc.clock))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAuction)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Auctions().Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return queries.AuctionViewFromDomain(a), nil
}

func (uc *auctionUseCaseImpl) ActivateAuction(ctx context.Context, actorID, auctionID uuid.UUID) (*queries.AuctionView, error) {
	return uc.transition(ctx, auctionID, shared.EventAuctionActivated, func(a *auction.Auction, now time.Time) error {
		return a.Activate(actorID, now)
	})
}

func (uc *auctionUseCaseImpl) CancelAuction(ctx context.Context, actorID, auctionID uuid.UUID) (*queries.AuctionView, error) {
	return uc.transition(ctx, auctionID, shared.EventAuctionCancelled, func(a *auction.Auction, now time.Time) error {
		return a.Cancel(actorID, now)
	})
}

// transition applies change to a fresh read and stores it only if status and bid
// count are still what was read. A concurrent bid or transition turns into
// ErrInvalidTransition.
func (uc *auctionUseCaseImpl) transition(
	ctx context.Context,
	auctionID uuid.UUID,
	eventType shared.EventType,
	change func(a *auction.Auction, now time.Time) error,
) (*queries.AuctionView, error) {
	var updated *auction.Auction
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Reads().AuctionByID(ctx, auctionID)
		if err != nil {
			return err
		}
		expectedStatus, expectedBidCount := a.Status(), a.BidCount()

		if err := change(a, storeTime(uc.clock)); err != nil {
			return err
		}
		if err := tx.Auctions().Transition(ctx, a, expectedStatus, expectedBidCount); err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, translateTransitionErr(err)
	}

	publishAfterCommit(ctx, uc.publisher, uc.logger, shared.NewAuctionEvent(eventType, updated))
	return queries.AuctionViewFromDomain(updated), nil
}

func translateTransitionErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrAuctionNotFound)
	case errors.Is(err, auction.ErrNotOwner):
		return errs.Mark(err, ErrNotAuctionOwner)
	case errors.Is(err, auction.ErrInvalidTransition),
		errors.Is(err, auction.ErrWindowInPast),
		infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrInvalidTransition)
	default:
		return err
	}
}

// CloseEndedAuctions completes one batch of active auctions whose end time has
// passed. Auctions that fail are skipped and reported in the joined error.
func (uc *auctionUseCaseImpl) CloseEndedAuctions(ctx context.Context) (int, error) {
	now := storeTime(uc.clock)
	ended, err := uc.uow.CommandReads().EndedActiveAuctions(ctx, now, closeBatchSize)
	if err != nil {
		return 0, err
	}

	closed := 0
	var errList []error
	for _, a := range ended {
		completed, err := uc.complete(ctx, a.ID(), now)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) || errors.Is(err, auction.ErrInvalidTransition) {
				uc.logger.Info("auction changed while closing, will retry next run", "auction_id", a.ID().String())
				continue
			}
			errList = append(errList, errs.Wrapf(err, "close auction %s", a.ID()))
			continue
		}
		closed++
		publishAfterCommit(ctx, uc.publisher, uc.logger, shared.NewAuctionEvent(shared.EventAuctionCompleted, completed))
	}
	return closed, errors.Join(errList...)
}

func (uc *auctionUseCaseImpl) complete(ctx context.Context, auctionID uuid.UUID, now time.Time) (*auction.Auction, error) {
	var completed *auction.Auction
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Reads().AuctionByID(ctx, auctionID)
		if err != nil {
			return err
		}
		highest, err := tx.Reads().HighestBid(ctx, auctionID)
		if err != nil {
			return err
		}

		expectedBidCount := a.BidCount()
		if err := a.Complete(highest, now); err != nil {
			return err
		}
		if err := tx.Auctions().Transition(ctx, a, auction.StatusActive, expectedBidCount); err != nil {
			return err
		}
		completed = a
		return nil
	})
	return completed, err
}

// storeTime matches the microsecond precision PostgreSQL keeps for timestamptz.
func storeTime(clk clock.Clock) time.Time {
	return clk.Now().UTC().Truncate(time.Microsecond)
}
