//go:build unit

package response_test

import (
	"testing"

	"gin-auction-service/internal/handler/dto/response"
	"gin-auction-service/internal/usecase/queries"
	"gin-auction-service/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAuctionView(t *testing.T) {
	winner := uuid.New()
	view := builder.NewAuctionBuilder().
		WithStartPrice("100").
		WithCurrentPrice("150.5").
		WithReservePrice("200").
		WithBidCount(3).
		BuildView()
	view.WinnerID = &winner

	got, err := response.FromAuctionView(view)
	require.NoError(t, err)

	reserve := "200.00"
	winnerStr := winner.String()
	want := response.AuctionResponse{
		ID:           view.ID.String(),
		OwnerID:      view.OwnerID.String(),
		Title:        view.Title,
		Description:  view.Description,
		StartPrice:   "100.00",
		ReservePrice: &reserve,
		CurrentPrice: "150.50",
		Status:       "active",
		BidCount:     3,
		StartTime:    view.StartTime,
		EndTime:      view.EndTime,
		WinnerID:     &winnerStr,
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromAuctionView mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAuctionViewOmitsAbsentOptionals(t *testing.T) {
	got, err := response.FromAuctionView(builder.NewAuctionBuilder().BuildView())
	require.NoError(t, err)

	assert.Nil(t, got.ReservePrice)
	assert.Nil(t, got.WinnerID)
}

func TestFromBidList(t *testing.T) {
	auctionID := uuid.New()
	views := []*queries.BidView{
		builder.NewBidBuilder(auctionID).WithAmount("130").BuildView(),
		builder.NewBidBuilder(auctionID).WithAmount("120.1").BuildView(),
	}

	got, err := response.FromBidList(views, &queries.Cursor{After: "c1"})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "130.00", got.Items[0].Amount)
	assert.Equal(t, "120.10", got.Items[1].Amount)
	assert.Equal(t, auctionID.String(), got.Items[0].AuctionID)
	assert.Equal(t, "c1", got.NextCursor)

	empty, err := response.FromBidList(nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.NextCursor)
}
