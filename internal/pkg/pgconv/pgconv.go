package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var ErrInvalidNumericText = errors.New("invalid numeric text")

func UUIDFromPgtype(pu pgtype.UUID) uuid.UUID {
	if !pu.Valid {
		return uuid.Nil
	}
	return uuid.UUID(pu.Bytes)
}

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// Numeric columns are selected as ::text so they reach Go without a float detour.
func DecimalFromText(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errors.Join(ErrInvalidNumericText, err)
	}
	return d, nil
}

func DecimalPtrFromPgtype(pt pgtype.Text) (*decimal.Decimal, error) {
	if !pt.Valid {
		return nil, nil
	}
	d, err := DecimalFromText(pt.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DecimalToText renders a value for a $n::numeric parameter.
func DecimalToText(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func DecimalPtrToPgtype(d *decimal.Decimal) pgtype.Text {
	if d == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: DecimalToText(*d), Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
