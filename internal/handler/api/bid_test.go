//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"gin-auction-service/internal/handler/api"
	"gin-auction-service/internal/handler/middleware"
	resdto "gin-auction-service/internal/handler/dto/response"
	"gin-auction-service/internal/usecase/commands"
	"gin-auction-service/internal/usecase/queries"
	"gin-auction-service/tests/common/builder"
	"gin-auction-service/tests/common/httptest"
	commandsmock "gin-auction-service/tests/mock/commands"
	queriesmock "gin-auction-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BidHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBidCommands
	mockQueries  *queriesmock.MockAuctionQueries
	bidderID     uuid.UUID
}

func (s *BidHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBidCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAuctionQueries(s.mockCtrl)
	handler := api.NewBidHandler(s.mockCommands, s.mockQueries)
	s.bidderID = uuid.New()

	s.router.POST("/auctions/:id/bids", fakeAuth(s.bidderID), handler.Place)
	s.router.GET("/auctions/:id/bids", handler.List)
}

func (s *BidHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBidHandlerSuite(t *testing.T) {
	suite.Run(t, new(BidHandlerTestSuite))
}

// fakeAuth stands in for AuthMiddleware: any bearer token authenticates as userID.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetUserID(c, userID)
		c.Next()
	}
}

func placeResult(auctionID uuid.UUID, amount string) *commands.PlaceBidResult {
	return &commands.PlaceBidResult{
		Bid:     builder.NewBidBuilder(auctionID).WithAmount(amount).BuildView(),
		Auction: builder.NewAuctionBuilder().WithID(auctionID).WithCurrentPrice(amount).WithBidCount(1).BuildView(),
	}
}

// ================================================================================
// TestPlace
// ================================================================================

func (s *BidHandlerTestSuite) TestPlace() {
	auctionID := uuid.New()
	url := "/auctions/" + auctionID.String() + "/bids"

	s.Run("success: 201 with the bid and the updated auction", func() {
		s.mockCommands.EXPECT().
			PlaceBid(gomock.Any(), commands.PlaceBidCommand{
				BidderID:  s.bidderID,
				AuctionID: auctionID,
				Amount:    decimal.RequireFromString("150.00"),
			}).
			Return(placeResult(auctionID, "150.00"), nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"amount":"150.00"}`, "token")

		var body resdto.PlaceBidResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("150.00", body.Bid.Amount)
		s.Equal("150.00", body.Auction.CurrentPrice)
		s.Equal(1, body.Auction.BidCount)
		s.Equal(auctionID.String(), body.Auction.ID)
	})

	s.Run("amount accepts JSON numbers and strings without rounding", func() {
		cases := map[string]string{
			`{"amount":150.5}`:    "150.5",
			`{"amount":"150.50"}`: "150.50",
			`{"amount":"150.5"}`:  "150.5",
			`{"amount":150.999}`:  "150.999",
		}
		for raw, want := range cases {
			s.mockCommands.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, cmd commands.PlaceBidCommand) (*commands.PlaceBidResult, error) {
					s.True(decimal.RequireFromString(want).Equal(cmd.Amount), "got %s", cmd.Amount)
					return placeResult(auctionID, "150.50"), nil
				}).Times(1)

			rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, raw, "token")
			s.Equal(http.StatusCreated, rec.Code, raw)
		}
	})

	s.Run("error: 400 for malformed requests", func() {
		for _, raw := range []string{`{}`, `{"amount":null}`, `{"amount":"abc"}`, `not json`} {
			rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, raw, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 400 for a malformed auction id", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/auctions/nope/bids", `{"amount":"1.00"}`, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid auction id")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"amount":"150.00"}`, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"invalid amount", commands.ErrInvalidAmount, http.StatusBadRequest, "two decimal places"},
			{"bid too low", commands.ErrBidTooLow, http.StatusBadRequest, "exceed the current price"},
			{"auction not found", commands.ErrAuctionNotFound, http.StatusNotFound, "Auction not found"},
			{"auction not active", commands.ErrAuctionNotActive, http.StatusNotFound, "not accepting bids"},
			{"owner bid", commands.ErrOwnerBid, http.StatusForbidden, "Owners cannot bid"},
			{"transient conflict", commands.ErrTransientConflict, http.StatusServiceUnavailable, "retry"},
			{"placement failed", commands.ErrBidPlacementFailed, http.StatusInternalServerError, "Internal server error"},
			{"unknown error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"amount":"150.00"}`, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				if tc.expectedStatus == http.StatusServiceUnavailable {
					httptest.AssertRetryAfter(s.T(), rec, 1)
				}
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BidHandlerTestSuite) TestList() {
	auctionID := uuid.New()
	url := "/auctions/" + auctionID.String() + "/bids"

	s.Run("success: 200 with items and next cursor", func() {
		views := []*queries.BidView{builder.NewBidBuilder(auctionID).WithAmount("120.00").BuildView()}
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().ListBids(gomock.Any(), auctionID, &queries.Cursor{After: "abc"}, 5).
			Return(views, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=abc&limit=5", nil, "")

		var body resdto.BidListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("120.00", body.Items[0].Amount)
		s.Equal("next-page", body.NextCursor)
	})

	s.Run("error: 400 for out of range limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=201", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 404 for a missing auction", func() {
		s.mockQueries.EXPECT().ListBids(gomock.Any(), auctionID, gomock.Any(), 0).
			Return(nil, nil, queries.ErrAuctionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Auction not found")
	})

	s.Run("error: 400 for a bad cursor", func() {
		s.mockQueries.EXPECT().ListBids(gomock.Any(), auctionID, gomock.Any(), 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=zzz", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}
