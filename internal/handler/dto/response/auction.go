package response

import (
	"time"

	"gin-auction-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// AuctionResponse renders the owner as userId.
type AuctionResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"userId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartPrice   string    `json:"startPrice"`
	ReservePrice *string   `json:"reservePrice,omitempty"`
	CurrentPrice string    `json:"currentPrice"`
	Status       string    `json:"status"`
	BidCount     int       `json:"bidCount"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	WinnerID     *string   `json:"winnerId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type BidResponse struct {
	ID        string    `json:"id"`
	AuctionID string    `json:"auctionId"`
	UserID    string    `json:"userId"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

type PlaceBidResponse struct {
	Bid     BidResponse     `json:"bid"`
	Auction AuctionResponse `json:"auction"`
}

type AuctionListResponse struct {
	Items      []AuctionResponse `json:"items"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

type BidListResponse struct {
	Items      []BidResponse `json:"items"`
	NextCursor string        `json:"nextCursor,omitempty"`
}

// Money is always rendered with two decimals, ids as canonical strings.
var viewCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
		{
			SrcType: (*decimal.Decimal)(nil),
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				d, _ := src.(*decimal.Decimal)
				if d == nil {
					return (*string)(nil), nil
				}
				s := d.StringFixed(2)
				return &s, nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: (*uuid.UUID)(nil),
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				id, _ := src.(*uuid.UUID)
				if id == nil {
					return (*string)(nil), nil
				}
				s := id.String()
				return &s, nil
			},
		},
	},
}

func FromAuctionView(v *queries.AuctionView) (AuctionResponse, error) {
	var out AuctionResponse
	err := copier.CopyWithOption(&out, v, viewCopyOption)
	return out, err
}

func FromBidView(v *queries.BidView) (BidResponse, error) {
	var out BidResponse
	err := copier.CopyWithOption(&out, v, viewCopyOption)
	return out, err
}

func FromPlaceBidResult(bid *queries.BidView, auction *queries.AuctionView) (*PlaceBidResponse, error) {
	b, err := FromBidView(bid)
	if err != nil {
		return nil, err
	}
	a, err := FromAuctionView(auction)
	if err != nil {
		return nil, err
	}
	return &PlaceBidResponse{Bid: b, Auction: a}, nil
}

func FromAuctionList(views []*queries.AuctionView, next *queries.Cursor) (*AuctionListResponse, error) {
	items := make([]AuctionResponse, 0, len(views))
	for _, v := range views {
		item, err := FromAuctionView(v)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &AuctionListResponse{Items: items, NextCursor: cursorString(next)}, nil
}

func FromBidList(views []*queries.BidView, next *queries.Cursor) (*BidListResponse, error) {
	items := make([]BidResponse, 0, len(views))
	for _, v := range views {
		item, err := FromBidView(v)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &BidListResponse{Items: items, NextCursor: cursorString(next)}, nil
}

func cursorString(c *queries.Cursor) string {
	if c == nil {
		return ""
	}
	return c.After
}
