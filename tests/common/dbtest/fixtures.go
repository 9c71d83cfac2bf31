//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"gin-auction-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by the suite pool and by a pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestAuction inserts the builder's auction as is, bypassing the use cases,
// so tests can start from any status or time window.
func CreateTestAuction(t *testing.T, db DBLike, b *builder.AuctionBuilder) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO auctions (id, owner_id, title, description, start_price, reserve_price, current_price,
		                      status, bid_count, start_time, end_time, winner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7::numeric, $8, $9, $10, $11, $12, $13, $13)`,
		b.ID, b.OwnerID, b.Title, b.Description, b.StartPrice, b.ReservePrice, b.CurrentPrice,
		string(b.Status), b.BidCount, b.StartTime, b.EndTime, b.WinnerID, b.CreatedAt)
	require.NoError(t, err)

	return b.ID
}

func CreateTestBid(t *testing.T, db DBLike, auctionID, userID uuid.UUID, amount string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO bids (id, auction_id, user_id, amount, created_at) VALUES ($1, $2, $3, $4::numeric, $5)",
		id, auctionID, userID, amount, createdAt)
	require.NoError(t, err)

	return id
}

// AuctionState is what the auction row holds right now.
type AuctionState struct {
	Status       string
	CurrentPrice decimal.Decimal
	BidCount     int
	WinnerID     *uuid.UUID
}

func LoadAuctionState(t *testing.T, db DBLike, auctionID uuid.UUID) AuctionState {
	t.Helper()

	var (
		state AuctionState
		price string
	)
	err := db.QueryRow(context.Background(),
		"SELECT status, current_price::text, bid_count, winner_id FROM auctions WHERE id = $1", auctionID).
		Scan(&state.Status, &price, &state.BidCount, &state.WinnerID)
	require.NoError(t, err)
	state.CurrentPrice = decimal.RequireFromString(price)

	return state
}

func CountBids(t *testing.T, db DBLike, auctionID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM bids WHERE auction_id = $1", auctionID).Scan(&n)
	require.NoError(t, err)

	return n
}

// truncates every table the service owns
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE bids, auctions RESTART IDENTITY CASCADE")
	return err
}
