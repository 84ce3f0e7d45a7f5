package output

import "github.com/shopspring/decimal"

// FormatAmount formats a decimal with 2 decimals and no currency symbol.
func FormatAmount(amount decimal.Decimal) string { return amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// EffectiveRate returns tax as a percentage of net, zero for a zero net.
func EffectiveRate(net, tax decimal.Decimal) decimal.Decimal {
	if net.IsZero() {
		return decimal.Zero
	}
	return tax.Div(net).Mul(decimal.NewFromInt(100))
}
