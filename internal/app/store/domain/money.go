package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with exact decimal arithmetic.
// It wraps decimal.Decimal to avoid floating-point drift in price and
// promotion calculations. Money is an immutable value type; every
// operation returns a new value.
type Money struct {
	dec decimal.Decimal
}

// NewMoney creates a Money from whole currency units.
func NewMoney(units int64) Money {
	return Money{dec: decimal.NewFromInt(units)}
}

// NewMoneyFromFloat creates a Money from a float value.
// Intended for fixture and shell code; prefer NewMoneyFromString where
// the amount originates from user input.
func NewMoneyFromFloat(v float64) Money {
	return Money{dec: decimal.NewFromFloat(v)}
}

// NewMoneyFromString parses a decimal string like "1450" or "249.99".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{dec: d}, nil
}

// newMoneyFromDecimal wraps an existing decimal without copying; decimal
// values are immutable so sharing is safe.
func newMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{dec: d}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{dec: m.dec.Add(other.dec)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{dec: m.dec.Sub(other.dec)}
}

// Mul returns m * other.
func (m Money) Mul(other Money) Money {
	return Money{dec: m.dec.Mul(other.dec)}
}

// MulInt returns m * n.
func (m Money) MulInt(n int64) Money {
	return Money{dec: m.dec.Mul(decimal.NewFromInt(n))}
}

// Half returns m / 2.
func (m Money) Half() Money {
	return Money{dec: m.dec.Div(decimal.NewFromInt(2))}
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.dec.IsZero()
}

// IsNegative returns true if the amount is below zero.
func (m Money) IsNegative() bool {
	return m.dec.IsNegative()
}

// IsPositive returns true if the amount is above zero.
func (m Money) IsPositive() bool {
	return m.dec.IsPositive()
}

// LessThan returns true if m < other.
func (m Money) LessThan(other Money) bool {
	return m.dec.LessThan(other.dec)
}

// GreaterThan returns true if m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.dec.GreaterThan(other.dec)
}

// Equal returns true if m and other represent the same amount.
func (m Money) Equal(other Money) bool {
	return m.dec.Equal(other.dec)
}

// Float64 returns an approximate float representation for display only.
func (m Money) Float64() float64 {
	f, _ := m.dec.Float64()
	return f
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.dec.StringFixed(2)
}

// MarshalJSON encodes the amount the way the wrapped decimal does.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.dec.MarshalJSON()
}

// UnmarshalJSON decodes a JSON number or numeric string.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.dec.UnmarshalJSON(data)
}
