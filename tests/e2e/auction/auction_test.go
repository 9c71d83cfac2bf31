//go:build e2e

package auction_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"gin-auction-service/internal/handler/dto/response"
	"gin-auction-service/tests/common/builder"
	"gin-auction-service/tests/common/dbtest"
	"gin-auction-service/tests/common/httptest"
	"gin-auction-service/tests/common/testutil"
	"gin-auction-service/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	auctionsURL = "/api/auctions"
	auctionURL  = "/api/auctions/%s"
	activateURL = "/api/auctions/%s/activate"
	cancelURL   = "/api/auctions/%s/cancel"
)

type AuctionSuite struct {
	e2e.SharedSuite
}

func TestAuctionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuctionSuite))
}

// =============================================================================
// TestLifecycle - create, activate, bid, read back
// =============================================================================

func (s *AuctionSuite) TestLifecycle() {
	s.Run("Normal case: owner creates and activates, bidders see the live price", func() {
		t := s.T()
		ownerID := uuid.New()
		now := time.Now().UTC().Truncate(time.Second)

		reqBody := builder.NewAuctionBuilder().
			WithWindow(now.Add(-time.Minute), now.Add(time.Hour)).
			WithStartPrice("100.00").
			WithReservePrice("180.00").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, auctionsURL, reqBody, s.Token(ownerID))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.AuctionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		reserve := "180.00"
		want := response.AuctionResponse{
			OwnerID:      ownerID.String(),
			Title:        reqBody.Title,
			Description:  reqBody.Description,
			StartPrice:   "100.00",
			ReservePrice: &reserve,
			CurrentPrice: "100.00",
			Status:       "pending",
			StartTime:    reqBody.StartTime,
			EndTime:      reqBody.EndTime,
		}
		ignoreGenerated := cmpopts.IgnoreFields(response.AuctionResponse{}, "ID", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(want, created, ignoreGenerated, cmpopts.EquateApproxTime(time.Millisecond)); diff != "" {
			t.Errorf("created auction mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(activateURL, created.ID), nil, s.Token(ownerID))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRawRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/auctions/%s/bids", created.ID), `{"amount":"150.50"}`, s.Token(uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(auctionURL, created.ID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var got response.AuctionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "active", got.Status)
		require.Equal(t, "150.50", got.CurrentPrice)
		require.Equal(t, 1, got.BidCount)
	})

	s.Run("Error case: invalid auctions are rejected with 400", func() {
		t := s.T()
		now := time.Now()
		reqBody := builder.NewAuctionBuilder().
			WithWindow(now.Add(-2*time.Hour), now.Add(-time.Hour)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, auctionsURL, reqBody, s.Token(uuid.New()))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid auction")

		reqBody = builder.NewAuctionBuilder().WithWindow(now, now.Add(time.Hour)).BuildCreateRequestDTO()
		body := testutil.DtoMap(t, reqBody, testutil.Field("startPrice", "10.001"))
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, auctionsURL, body, s.Token(uuid.New()))
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestTransitions
// =============================================================================

func (s *AuctionSuite) TestTransitions() {
	s.Run("Normal case: owner cancels an active auction without bids", func() {
		t := s.T()
		ownerID := uuid.New()
		now := time.Now()
		id := dbtest.CreateTestAuction(t, s.DB, builder.NewAuctionBuilder().
			WithOwnerID(ownerID).WithWindow(now.Add(-time.Hour), now.Add(time.Hour)))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, id), nil, s.Token(ownerID))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, "cancelled", dbtest.LoadAuctionState(t, s.DB, id).Status)
	})

	s.Run("Error case: cancelling after a bid conflicts", func() {
		t := s.T()
		ownerID := uuid.New()
		now := time.Now()
		id := dbtest.CreateTestAuction(t, s.DB, builder.NewAuctionBuilder().
			WithOwnerID(ownerID).
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
			WithCurrentPrice("120.00").
			WithBidCount(1))
		dbtest.CreateTestBid(t, s.DB, id, uuid.New(), "120.00", now.Add(-time.Minute))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, id), nil, s.Token(ownerID))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "cannot change")
		require.Equal(t, "active", dbtest.LoadAuctionState(t, s.DB, id).Status)
	})

	s.Run("Error case: only the owner may activate", func() {
		t := s.T()
		now := time.Now()
		id := dbtest.CreateTestAuction(t, s.DB, builder.NewAuctionBuilder().AsPending().
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour)))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(activateURL, id), nil, s.Token(uuid.New()))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Only the owner")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(activateURL, uuid.New()), nil, s.Token(uuid.New()))
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestListAuctions
// =============================================================================

func (s *AuctionSuite) TestListAuctions() {
	s.Run("Normal case: newest first, filtered by status and owner, paged", func() {
		t := s.T()
		ownerID := uuid.New()
		now := time.Now().UTC().Truncate(time.Millisecond)

		var ownActive []string
		for i := range 3 {
			id := dbtest.CreateTestAuction(t, s.DB, builder.NewAuctionBuilder().
				WithOwnerID(ownerID).
				WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
				WithCreatedAt(now.Add(time.Duration(-10+i)*time.Minute)))
			ownActive = append([]string{id.String()}, ownActive...)
		}
		dbtest.CreateTestAuction(t, s.DB, builder.NewAuctionBuilder().AsPending().WithOwnerID(ownerID).
			WithWindow(now.Add(time.Hour), now.Add(2*time.Hour)))
		dbtest.CreateTestAuction(t, s.DB, builder.NewAuctionBuilder().
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour)))

		query := fmt.Sprintf("%s?status=active&owner_id=%s&limit=2", auctionsURL, ownerID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, query, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page1 response.AuctionListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page1))
		require.NotEmpty(t, page1.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, query+"&after="+page1.NextCursor, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page2 response.AuctionListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page2))
		require.Empty(t, page2.NextCursor)

		if diff := cmp.Diff(ownActive, append(ids(page1.Items), ids(page2.Items)...)); diff != "" {
			t.Errorf("listed ids mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: unknown status filter", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, auctionsURL+"?status=sold", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("Error case: live stream is unavailable without an event bus", func() {
		id := dbtest.CreateTestAuction(s.T(), s.DB, builder.NewAuctionBuilder())
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(auctionURL, id)+"/events", nil, "")
		require.Equal(s.T(), http.StatusServiceUnavailable, w.Code)
	})
}

// =============================================================================
// TestHealth
// =============================================================================

func (s *AuctionSuite) TestHealth() {
	s.Run("Normal case: health is served at the root, not under /api", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"status":"ok"`)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/health", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func ids(items []response.AuctionResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
