package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	assert.Equal(t, "12.35", m.String(), "rounded for display")

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	assert.True(t, m2.Decimal.Equal(d))

	m3 := NewMoneyFromDecimal(stddec.RequireFromString("123.45"))
	assert.Equal(t, "123.45", m3.String())
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"-2.345", "-2.35"},
		{"8", "8.00"},
	}
	for _, c := range cases {
		m := NewMoneyFromDecimal(stddec.RequireFromString(c.in))
		assert.Equal(t, c.out, m.Round().String(), "round(%s)", c.in)
	}

	m := NewMoneyFromDecimal(stddec.RequireFromString("1.23456"))
	assert.Equal(t, "1.235", m.RoundTo(3).Decimal.String())
}

func TestTaxAt(t *testing.T) {
	net := NewMoney(19.99)
	assert.Equal(t, "3.80", net.TaxAt(stddec.NewFromFloat(0.19)).String())
	assert.True(t, net.TaxAt(stddec.Zero).IsZero())
}

func TestArithmeticAndComparisons(t *testing.T) {
	a := NewMoney(10.10)
	b := NewMoney(5.05)

	assert.Equal(t, "15.15", a.Add(b).String())
	assert.Equal(t, "5.05", a.Sub(b).String())
	assert.Equal(t, "25.25", a.Mul(stddec.NewFromFloat(2.5)).String())

	assert.True(t, a.Equal(NewMoney(10.1)))
	assert.True(t, b.Sub(a).IsNegative())
	assert.True(t, Zero().IsZero())
}

func TestSum(t *testing.T) {
	assert.True(t, Sum().IsZero())
	assert.Equal(t, "6.60", Sum(NewMoney(1.1), NewMoney(2.2), NewMoney(3.3)).String())
}
