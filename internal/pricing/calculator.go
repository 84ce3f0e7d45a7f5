package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	money "github.com/storefront/price-render/pkg/decimal"
)

// TaxCode is the adjustment code of sales tax.
const TaxCode AdjustmentCode = "tax"

// Calculator builds amounts from net catalog prices.
type Calculator struct{}

// NewCalculator creates a new calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// WithTax returns an amount whose base is net and whose tax adjustment is
// net*rate rounded to cents. A zero rate still records a zero tax adjustment.
func (c *Calculator) WithTax(net money.Money, rate decimal.Decimal) (*BaseAmount, error) {
	if net.IsNegative() {
		return nil, fmt.Errorf("net price %s cannot be negative", net)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("tax rate %s cannot be negative", rate)
	}
	return NewAmount(net, map[AdjustmentCode]money.Money{
		TaxCode: net.TaxAt(rate),
	}), nil
}
