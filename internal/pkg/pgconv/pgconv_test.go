//go:build unit

package pgconv_test

import (
	"testing"

	"gin-auction-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFromText(t *testing.T) {
	d, err := pgconv.DecimalFromText("150.10")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("150.1")))

	_, err = pgconv.DecimalFromText("abc")
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumericText)
}

func TestDecimalPtrFromPgtype(t *testing.T) {
	got, err := pgconv.DecimalPtrFromPgtype(pgtype.Text{})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = pgconv.DecimalPtrFromPgtype(pgtype.Text{String: "99.99", Valid: true})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "99.99", got.StringFixed(2))
}

func TestDecimalToText(t *testing.T) {
	assert.Equal(t, "100.00", pgconv.DecimalToText(decimal.NewFromInt(100)))
	assert.False(t, pgconv.DecimalPtrToPgtype(nil).Valid)
}

func TestUUIDConversions(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id, pgconv.UUIDFromPgtype(pgconv.UUIDToPgtype(id)))
	assert.Equal(t, uuid.Nil, pgconv.UUIDFromPgtype(pgtype.UUID{}))
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}
