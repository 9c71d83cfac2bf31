package converter

import (
	"time"

	"gin-auction-service/internal/domain/auction"
	"gin-auction-service/internal/pkg/errs"
	"gin-auction-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Numeric columns are cast to text; see pgconv.DecimalFromText.
const (
	AuctionColumns = `id, owner_id, title, description, start_price::text, reserve_price::text,
	current_price::text, status, bid_count, start_time, end_time, winner_id, created_at, updated_at`

	BidColumns = `id, auction_id, user_id, amount::text, created_at`
)

type AuctionRow struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Description  string
	StartPrice   string
	ReservePrice pgtype.Text
	CurrentPrice string
	Status       string
	BidCount     int32
	StartTime    time.Time
	EndTime      time.Time
	WinnerID     pgtype.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ScanAuctionRow reads one row selected with AuctionColumns. pgx.Rows satisfies pgx.Row.
func ScanAuctionRow(row pgx.Row) (AuctionRow, error) {
	var r AuctionRow
	err := row.Scan(
		&r.ID,
		&r.OwnerID,
		&r.Title,
		&r.Description,
		&r.StartPrice,
		&r.ReservePrice,
		&r.CurrentPrice,
		&r.Status,
		&r.BidCount,
		&r.StartTime,
		&r.EndTime,
		&r.WinnerID,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

func AuctionRowToDomain(r AuctionRow) (*auction.Auction, error) {
	startPrice, err := moneyFromText(r.StartPrice)
	if err != nil {
		return nil, errs.Wrap(err, "start_price")
	}
	currentPrice, err := moneyFromText(r.CurrentPrice)
	if err != nil {
		return nil, errs.Wrap(err, "current_price")
	}

	var reservePrice *auction.Money
	if r.ReservePrice.Valid {
		m, err := moneyFromText(r.ReservePrice.String)
		if err != nil {
			return nil, errs.Wrap(err, "reserve_price")
		}
		reservePrice = &m
	}

	status := auction.Status(r.Status)
	if !status.IsValid() {
		return nil, errs.New("unknown auction status: " + r.Status)
	}

	return auction.Reconstruct(auction.ReconstructParams{
		ID:           r.ID,
		OwnerID:      r.OwnerID,
		Title:        r.Title,
		Description:  r.Description,
		StartPrice:   startPrice,
		ReservePrice: reservePrice,
		CurrentPrice: currentPrice,
		Status:       status,
		BidCount:     int(r.BidCount),
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		WinnerID:     pgconv.UUIDPtrFromPgtype(r.WinnerID),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}), nil
}

type BidRow struct {
	ID        uuid.UUID
	AuctionID uuid.UUID
	UserID    uuid.UUID
	Amount    string
	CreatedAt time.Time
}

func ScanBidRow(row pgx.Row) (BidRow, error) {
	var r BidRow
	err := row.Scan(&r.ID, &r.AuctionID, &r.UserID, &r.Amount, &r.CreatedAt)
	return r, err
}

func BidRowToDomain(r BidRow) (*auction.Bid, error) {
	amount, err := moneyFromText(r.Amount)
	if err != nil {
		return nil, errs.Wrap(err, "amount")
	}
	return auction.ReconstructBid(r.ID, r.AuctionID, r.UserID, amount, r.CreatedAt), nil
}

func moneyFromText(s string) (auction.Money, error) {
	d, err := pgconv.DecimalFromText(s)
	if err != nil {
		return auction.Money{}, err
	}
	return auction.NewMoney(d)
}
