//go:build unit

package auction_test

import (
	"testing"
	"time"

	"gin-auction-service/internal/domain/auction"
	"gin-auction-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuction(t *testing.T) {
	now := builder.BaseTime
	start := builder.MustMoney("100.00")

	base := func() auction.NewAuctionParams {
		return auction.NewAuctionParams{
			OwnerID:    uuid.New(),
			Title:      "  Vintage camera ",
			StartPrice: start,
			StartTime:  now,
			EndTime:    now.Add(24 * time.Hour),
		}
	}

	t.Run("creates pending auction priced at start", func(t *testing.T) {
		a, err := auction.NewAuction(base(), now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, "Vintage camera", a.Title())
		assert.Equal(t, auction.StatusPending, a.Status())
		assert.True(t, a.CurrentPrice().Equal(start))
		assert.Zero(t, a.BidCount())
		assert.Nil(t, a.WinnerID())
		assert.Equal(t, now, a.CreatedAt())
		assert.Equal(t, now, a.UpdatedAt())
	})

	testCases := []struct {
		name   string
		mutate func(*auction.NewAuctionParams)
		errIs  error
	}{
		{name: "blank title", mutate: func(p *auction.NewAuctionParams) { p.Title = "   " }, errIs: auction.ErrInvalidTitle},
		{name: "reserve below start", mutate: func(p *auction.NewAuctionParams) {
			r := builder.MustMoney("99.99")
			p.ReservePrice = &r
		}, errIs: auction.ErrReserveBelowStart},
		{name: "end before start", mutate: func(p *auction.NewAuctionParams) { p.EndTime = p.StartTime }, errIs: auction.ErrInvalidTimeWindow},
		{name: "window already over", mutate: func(p *auction.NewAuctionParams) {
			p.StartTime = now.Add(-2 * time.Hour)
			p.EndTime = now.Add(-time.Hour)
		}, errIs: auction.ErrWindowInPast},
		{name: "zero start price", mutate: func(p *auction.NewAuctionParams) { p.StartPrice = auction.Money{} }, errIs: auction.ErrNonPositiveAmount},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := base()
			tc.mutate(&p)
			_, err := auction.NewAuction(p, now)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestAuction_CheckBid(t *testing.T) {
	now := builder.BaseTime
	bidder := uuid.New()

	testCases := []struct {
		name       string
		auction    *builder.AuctionBuilder
		bidder     uuid.UUID
		amount     string
		at         time.Time
		rejectOwner bool
		errIs      error
	}{
		{name: "higher bid accepted", auction: builder.NewAuctionBuilder(), bidder: bidder, amount: "150.00", at: now},
		{name: "one cent above accepted", auction: builder.NewAuctionBuilder(), bidder: bidder, amount: "100.01", at: now},
		{name: "equal to current rejected", auction: builder.NewAuctionBuilder(), bidder: bidder, amount: "100.00", at: now, errIs: auction.ErrBidTooLow},
		{name: "lower rejected", auction: builder.NewAuctionBuilder(), bidder: bidder, amount: "50.00", at: now, errIs: auction.ErrBidTooLow},
		{name: "pending rejected", auction: builder.NewAuctionBuilder().WithStatus(auction.StatusPending), bidder: bidder, amount: "150.00", at: now, errIs: auction.ErrNotActive},
		{name: "completed rejected", auction: builder.NewAuctionBuilder().WithStatus(auction.StatusCompleted), bidder: bidder, amount: "150.00", at: now, errIs: auction.ErrNotActive},
		{name: "before start rejected", auction: builder.NewAuctionBuilder().WithWindow(now.Add(time.Minute), now.Add(time.Hour)), bidder: bidder, amount: "150.00", at: now, errIs: auction.ErrNotActive},
		{name: "after end rejected", auction: builder.NewAuctionBuilder().WithWindow(now.Add(-time.Hour), now.Add(-time.Second)), bidder: bidder, amount: "150.00", at: now, errIs: auction.ErrNotActive},
		{name: "exactly at end accepted", auction: builder.NewAuctionBuilder().WithWindow(now.Add(-time.Hour), now), bidder: bidder, amount: "150.00", at: now},
		{name: "owner evaluated like any bidder", auction: builder.NewAuctionBuilder().WithOwnerID(bidder), bidder: bidder, amount: "150.00", at: now},
		{name: "owner rejected when the policy says so", auction: builder.NewAuctionBuilder().WithOwnerID(bidder), bidder: bidder, amount: "150.00", at: now, rejectOwner: true, errIs: auction.ErrOwnerBid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := tc.auction.BuildDomain()
			err := a.CheckBid(tc.bidder, builder.MustMoney(tc.amount), tc.at, tc.rejectOwner)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuction_PlaceBid(t *testing.T) {
	now := builder.BaseTime
	a := builder.NewAuctionBuilder().WithBidCount(2).WithCurrentPrice("120.00").BuildDomain()
	bidder := uuid.New()

	bid, next, err := a.PlaceBid(bidder, builder.MustMoney("150.00"), now, false)
	require.NoError(t, err)

	assert.Equal(t, a.ID(), bid.AuctionID())
	assert.Equal(t, bidder, bid.UserID())
	assert.Equal(t, now, bid.CreatedAt())
	assert.Equal(t, "150.00", next.CurrentPrice().String())
	assert.Equal(t, 3, next.BidCount())
	assert.Equal(t, now, next.UpdatedAt())

	assert.Equal(t, "120.00", a.CurrentPrice().String(), "original snapshot must stay untouched")
	assert.Equal(t, 2, a.BidCount())
}

func TestAuction_NextWriteTime(t *testing.T) {
	last := builder.BaseTime
	a := builder.NewAuctionBuilder().WithCreatedAt(last).BuildDomain()

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{name: "later clock is kept", now: last.Add(time.Second), want: last.Add(time.Second)},
		{name: "same instant moves past the last write", now: last, want: last.Add(time.Microsecond)},
		{name: "lagging clock moves past the last write", now: last.Add(-time.Minute), want: last.Add(time.Microsecond)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.NextWriteTime(tt.now))
		})
	}
}

func TestAuction_Transitions(t *testing.T) {
	now := builder.BaseTime
	owner := uuid.New()

	t.Run("owner activates pending", func(t *testing.T) {
		a := builder.NewAuctionBuilder().WithOwnerID(owner).WithStatus(auction.StatusPending).BuildDomain()
		require.NoError(t, a.Activate(owner, now))
		assert.Equal(t, auction.StatusActive, a.Status())
	})

	t.Run("stranger cannot activate", func(t *testing.T) {
		a := builder.NewAuctionBuilder().WithOwnerID(owner).WithStatus(auction.StatusPending).BuildDomain()
		assert.ErrorIs(t, a.Activate(uuid.New(), now), auction.ErrNotOwner)
	})

	t.Run("active cannot be activated again", func(t *testing.T) {
		a := builder.NewAuctionBuilder().WithOwnerID(owner).BuildDomain()
		assert.ErrorIs(t, a.Activate(owner, now), auction.ErrInvalidTransition)
	})

	t.Run("cancel active without bids", func(t *testing.T) {
		a := builder.NewAuctionBuilder().WithOwnerID(owner).BuildDomain()
		require.NoError(t, a.Cancel(owner, now))
		assert.Equal(t, auction.StatusCancelled, a.Status())
	})

	t.Run("cancel with bids rejected", func(t *testing.T) {
		a := builder.NewAuctionBuilder().WithOwnerID(owner).WithBidCount(1).WithCurrentPrice("110.00").BuildDomain()
		assert.ErrorIs(t, a.Cancel(owner, now), auction.ErrInvalidTransition)
	})
}

func TestAuction_Complete(t *testing.T) {
	now := builder.BaseTime
	ended := func() *builder.AuctionBuilder {
		return builder.NewAuctionBuilder().WithWindow(now.Add(-2*time.Hour), now.Add(-time.Minute))
	}
	bidder := uuid.New()

	t.Run("winner recorded when reserve met", func(t *testing.T) {
		a := ended().WithReservePrice("150.00").WithCurrentPrice("150.00").WithBidCount(3).BuildDomain()
		top := auction.NewBid(a.ID(), bidder, builder.MustMoney("150.00"), now.Add(-time.Hour))

		require.NoError(t, a.Complete(top, now))
		assert.Equal(t, auction.StatusCompleted, a.Status())
		require.NotNil(t, a.WinnerID())
		assert.Equal(t, bidder, *a.WinnerID())
	})

	t.Run("no winner below reserve", func(t *testing.T) {
		a := ended().WithReservePrice("500.00").WithCurrentPrice("150.00").WithBidCount(1).BuildDomain()
		top := auction.NewBid(a.ID(), bidder, builder.MustMoney("150.00"), now.Add(-time.Hour))

		require.NoError(t, a.Complete(top, now))
		assert.Nil(t, a.WinnerID())
	})

	t.Run("no bids no winner", func(t *testing.T) {
		a := ended().BuildDomain()
		require.NoError(t, a.Complete(nil, now))
		assert.Nil(t, a.WinnerID())
	})

	t.Run("still running", func(t *testing.T) {
		a := builder.NewAuctionBuilder().BuildDomain()
		assert.ErrorIs(t, a.Complete(nil, now), auction.ErrInvalidTransition)
	})
}
