package auction

import (
	"errors"

	"github.com/shopspring/decimal"
)

const moneyScale = 2

// maxMoney fits a numeric(14,2) column.
var maxMoney = decimal.RequireFromString("999999999999.99")

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrAmountPrecision   = errors.New("amount must have at most two decimal places")
	ErrMalformedAmount   = errors.New("amount is not a number")
	ErrAmountTooLarge    = errors.New("amount exceeds the supported maximum")
)

// Money is a positive currency value with at most two fractional digits.
type Money struct {
	value decimal.Decimal
}

func NewMoney(v decimal.Decimal) (Money, error) {
	if !v.IsPositive() {
		return Money{}, ErrNonPositiveAmount
	}
	if !v.Equal(v.Truncate(moneyScale)) {
		return Money{}, ErrAmountPrecision
	}
	if v.GreaterThan(maxMoney) {
		return Money{}, ErrAmountTooLarge
	}
	return Money{value: v}, nil
}

func ParseMoney(s string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrMalformedAmount
	}
	return NewMoney(v)
}

func MoneyFromMinorUnits(cents int64) (Money, error) {
	return NewMoney(decimal.New(cents, -moneyScale))
}

func (m Money) Decimal() decimal.Decimal {
	return m.value
}

func (m Money) MinorUnits() int64 {
	return m.value.Shift(moneyScale).IntPart()
}

func (m Money) GreaterThan(other Money) bool {
	return m.value.GreaterThan(other.value)
}

func (m Money) LessThan(other Money) bool {
	return m.value.LessThan(other.value)
}

func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

func (m Money) IsZero() bool {
	return m.value.IsZero()
}

func (m Money) String() string {
	return m.value.StringFixed(moneyScale)
}
