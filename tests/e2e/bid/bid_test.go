//go:build e2e

package bid_test

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"gin-auction-service/internal/handler/dto/response"
	"gin-auction-service/tests/common/builder"
	"gin-auction-service/tests/common/dbtest"
	"gin-auction-service/tests/common/httptest"
	"gin-auction-service/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const bidsURL = "/api/auctions/%s/bids"

type BidSuite struct {
	e2e.SharedSuite
}

func TestBidSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BidSuite))
}

// openAuction inserts an active auction whose window contains the wall clock.
func (s *BidSuite) openAuction(current string) uuid.UUID {
	now := time.Now()
	b := builder.NewAuctionBuilder().
		WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
		WithCreatedAt(now.Add(-2 * time.Hour)).
		WithStartPrice(current)
	return dbtest.CreateTestAuction(s.T(), s.DB, b)
}

func (s *BidSuite) place(auctionID uuid.UUID, bidderID uuid.UUID, amount string) (int, string) {
	return s.placeWithToken(auctionID, s.Token(bidderID), amount)
}

// placeWithToken is safe to call from worker goroutines.
func (s *BidSuite) placeWithToken(auctionID uuid.UUID, token, amount string) (int, string) {
	w := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf(bidsURL, auctionID), fmt.Sprintf(`{"amount":%q}`, amount), token)
	return w.Code, w.Body.String()
}

// =============================================================================
// TestPlaceBid
// =============================================================================

func (s *BidSuite) TestPlaceBid() {
	s.Run("Normal case: a higher bid raises the price and is recorded", func() {
		t := s.T()
		auctionID := s.openAuction("100.00")
		bidderID := uuid.New()

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(bidsURL, auctionID), `{"amount":"150.00"}`, s.Token(bidderID))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var got response.PlaceBidResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "150.00", got.Bid.Amount)
		require.Equal(t, bidderID.String(), got.Bid.UserID)
		require.Equal(t, "150.00", got.Auction.CurrentPrice)
		require.Equal(t, 1, got.Auction.BidCount)

		state := dbtest.LoadAuctionState(t, s.DB, auctionID)
		want := dbtest.AuctionState{Status: "active", CurrentPrice: decimal.RequireFromString("150.00"), BidCount: 1}
		if diff := cmp.Diff(want, state, cmp.Comparer(decimal.Decimal.Equal)); diff != "" {
			t.Errorf("auction state mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, 1, dbtest.CountBids(t, s.DB, auctionID))
	})

	s.Run("Error case: bids at or below the current price are rejected", func() {
		t := s.T()
		auctionID := s.openAuction("100.00")

		for _, amount := range []string{"100.00", "99.99"} {
			code, body := s.place(auctionID, uuid.New(), amount)
			require.Equal(t, http.StatusBadRequest, code, body)
			require.Contains(t, body, "exceed the current price")
		}
		require.Equal(t, 0, dbtest.CountBids(t, s.DB, auctionID))
	})

	s.Run("Error case: more than two decimals never touches the auction", func() {
		t := s.T()
		auctionID := s.openAuction("100.00")

		code, body := s.place(auctionID, uuid.New(), "150.999")
		require.Equal(t, http.StatusBadRequest, code, body)

		state := dbtest.LoadAuctionState(t, s.DB, auctionID)
		require.True(t, state.CurrentPrice.Equal(decimal.RequireFromString("100.00")))
		require.Equal(t, 0, state.BidCount)
	})

	s.Run("Error case: unknown and closed auctions are 404", func() {
		t := s.T()

		code, _ := s.place(uuid.New(), uuid.New(), "150.00")
		require.Equal(t, http.StatusNotFound, code)

		ended := dbtest.CreateTestAuction(t, s.DB, builder.NewAuctionBuilder().
			WithWindow(time.Now().Add(-2*time.Hour), time.Now().Add(-time.Minute)))
		code, body := s.place(ended, uuid.New(), "150.00")
		require.Equal(t, http.StatusNotFound, code)
		require.Contains(t, body, "not accepting bids")

		pending := dbtest.CreateTestAuction(t, s.DB, builder.NewAuctionBuilder().AsPending().
			WithWindow(time.Now().Add(-time.Hour), time.Now().Add(time.Hour)))
		code, _ = s.place(pending, uuid.New(), "150.00")
		require.Equal(t, http.StatusNotFound, code)
	})

	s.Run("Normal case: the owner's bid is evaluated like any other", func() {
		t := s.T()
		ownerID := uuid.New()
		now := time.Now()
		auctionID := dbtest.CreateTestAuction(t, s.DB, builder.NewAuctionBuilder().
			WithOwnerID(ownerID).
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour)))

		code, body := s.place(auctionID, ownerID, "150.00")
		require.Equal(t, http.StatusCreated, code, body)
		require.Equal(t, 1, dbtest.CountBids(t, s.DB, auctionID))
	})

	s.Run("Error case: 401 without a valid token", func() {
		t := s.T()
		auctionID := s.openAuction("100.00")
		url := fmt.Sprintf(bidsURL, auctionID)

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, url, `{"amount":"150.00"}`, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		expired := s.JWT.CreateExpiredToken(t, uuid.New())
		w = httptest.PerformRawRequest(t, s.Router, http.MethodPost, url, `{"amount":"150.00"}`, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestConcurrentBids - row contention against a real database
// =============================================================================

func (s *BidSuite) TestConcurrentBids() {
	s.Run("Normal case: the higher of two racing bids always wins", func() {
		t := s.T()
		auctionID := s.openAuction("100.00")

		var g errgroup.Group
		codes := make([]int, 2)
		for i, amount := range []string{"150.00", "200.00"} {
			token := s.Token(uuid.New())
			g.Go(func() error {
				codes[i], _ = s.placeWithToken(auctionID, token, amount)
				return nil
			})
		}
		require.NoError(t, g.Wait())

		state := dbtest.LoadAuctionState(t, s.DB, auctionID)
		require.True(t, state.CurrentPrice.Equal(decimal.RequireFromString("200.00")), state.CurrentPrice.String())

		// The 150 bid may lose the race to 200 and be rejected as too low.
		accepted := 0
		for _, c := range codes {
			if c == http.StatusCreated {
				accepted++
			} else {
				require.Equal(t, http.StatusBadRequest, c)
			}
		}
		require.Equal(t, accepted, state.BidCount)
		require.Equal(t, accepted, dbtest.CountBids(t, s.DB, auctionID))
	})

	s.Run("Normal case: many bidders keep price and count consistent", func() {
		t := s.T()
		auctionID := s.openAuction("100.00")

		const bidders = 16
		var (
			g        errgroup.Group
			accepted atomic.Int32
		)
		for i := range bidders {
			amount := decimal.NewFromInt(101 + int64(i)).StringFixed(2)
			token := s.Token(uuid.New())
			g.Go(func() error {
				code, body := s.placeWithToken(auctionID, token, amount)
				switch code {
				case http.StatusCreated:
					accepted.Add(1)
				case http.StatusBadRequest, http.StatusServiceUnavailable:
				default:
					return fmt.Errorf("unexpected status %d: %s", code, body)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		state := dbtest.LoadAuctionState(t, s.DB, auctionID)
		require.Equal(t, int(accepted.Load()), state.BidCount)
		require.Equal(t, state.BidCount, dbtest.CountBids(t, s.DB, auctionID))

		var highest string
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT coalesce(max(amount), 100)::text FROM bids WHERE auction_id = $1", auctionID).Scan(&highest)
		require.NoError(t, err)
		require.True(t, state.CurrentPrice.Equal(decimal.RequireFromString(highest)),
			"current %s, highest bid %s", state.CurrentPrice, highest)

		// Each commit raised the price, so created_at order must match amount order.
		rows, err := s.DB.Query(s.T().Context(),
			"SELECT amount::text, created_at FROM bids WHERE auction_id = $1 ORDER BY created_at, id", auctionID)
		require.NoError(t, err)
		defer rows.Close()
		prevAmount := decimal.Zero
		var prevAt time.Time
		for rows.Next() {
			var (
				amount string
				at     time.Time
			)
			require.NoError(t, rows.Scan(&amount, &at))
			got := decimal.RequireFromString(amount)
			require.True(t, got.GreaterThan(prevAmount), "bid %s stamped after %s", got, prevAmount)
			require.True(t, at.After(prevAt), "created_at %s not after %s", at, prevAt)
			prevAmount, prevAt = got, at
		}
		require.NoError(t, rows.Err())
	})
}

// =============================================================================
// TestListBids
// =============================================================================

func (s *BidSuite) TestListBids() {
	s.Run("Normal case: newest first with cursor paging", func() {
		t := s.T()
		auctionID := s.openAuction("100.00")
		base := time.Now().Add(-30 * time.Minute).UTC().Truncate(time.Millisecond)
		for i, amount := range []string{"110.00", "120.00", "130.00"} {
			dbtest.CreateTestBid(t, s.DB, auctionID, uuid.New(), amount, base.Add(time.Duration(i)*time.Minute))
		}

		url := fmt.Sprintf(bidsURL, auctionID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?limit=2", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page1 response.BidListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page1))
		require.Equal(t, []string{"130.00", "120.00"}, amounts(page1.Items))
		require.NotEmpty(t, page1.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?limit=2&after="+page1.NextCursor, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page2 response.BidListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page2))
		require.Equal(t, []string{"110.00"}, amounts(page2.Items))
		require.Empty(t, page2.NextCursor)
	})

	s.Run("Error case: 404 for an unknown auction", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(bidsURL, uuid.New()), nil, "")
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

func amounts(items []response.BidResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Amount)
	}
	return out
}
