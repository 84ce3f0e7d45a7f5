package decimal

import (
	"github.com/shopspring/decimal"
)

// CentPlaces is the scale prices are stored and compared at.
const CentPlaces int32 = 2

// Money represents a price with exact decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the amount to cents
func (m Money) Round() Money {
	return m.RoundTo(CentPlaces)
}

// RoundTo rounds half away from zero at the given number of decimal places.
func (m Money) RoundTo(places int32) Money {
	return Money{m.Decimal.Round(places)}
}

// TaxAt returns the tax due on m at rate, rounded to cents.
func (m Money) TaxAt(rate decimal.Decimal) Money {
	return m.Mul(rate).Round()
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Sum adds up amounts; an empty call yields zero.
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount fixed at two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(CentPlaces)
}
