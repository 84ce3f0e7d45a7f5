package pricing

import (
	"github.com/storefront/price-render/pkg/decimal"
)

// AdjustmentCode names a kind of price adjustment, e.g. "tax".
type AdjustmentCode string

// Amount is a price together with the adjustments that make it up.
type Amount interface {
	// Value returns the full amount, minus any adjustments named in exclude.
	Value(exclude ...AdjustmentCode) decimal.Money
	// BaseAmount returns the amount before any adjustment.
	BaseAmount() decimal.Money
	// AdjustmentAmount returns the contribution of one adjustment, zero if absent.
	AdjustmentAmount(code AdjustmentCode) decimal.Money
	HasAdjustment(code AdjustmentCode) bool
}

// BaseAmount is the immutable Amount implementation.
type BaseAmount struct {
	base        decimal.Money
	total       decimal.Money
	adjustments map[AdjustmentCode]decimal.Money
}

// NewAmount builds an amount from a base value and its adjustments.
// The adjustments map is copied.
func NewAmount(base decimal.Money, adjustments map[AdjustmentCode]decimal.Money) *BaseAmount {
	a := &BaseAmount{
		base:        base,
		adjustments: make(map[AdjustmentCode]decimal.Money, len(adjustments)),
	}
	parts := []decimal.Money{base}
	for code, v := range adjustments {
		a.adjustments[code] = v
		parts = append(parts, v)
	}
	a.total = decimal.Sum(parts...)
	return a
}

func (a *BaseAmount) Value(exclude ...AdjustmentCode) decimal.Money {
	v := a.total
	seen := make(map[AdjustmentCode]bool, len(exclude))
	for _, code := range exclude {
		if seen[code] {
			continue
		}
		seen[code] = true
		if adj, ok := a.adjustments[code]; ok {
			v = v.Sub(adj)
		}
	}
	return v
}

func (a *BaseAmount) BaseAmount() decimal.Money { return a.base }

func (a *BaseAmount) AdjustmentAmount(code AdjustmentCode) decimal.Money {
	if adj, ok := a.adjustments[code]; ok {
		return adj
	}
	return decimal.Zero()
}

func (a *BaseAmount) HasAdjustment(code AdjustmentCode) bool {
	_, ok := a.adjustments[code]
	return ok
}
