package render

import (
	"github.com/stretchr/testify/mock"

	"github.com/storefront/price-render/internal/pricing"
	"github.com/storefront/price-render/pkg/decimal"
)

type mockPolicy struct{ mock.Mock }

func (m *mockPolicy) DisplayBothPrices() bool        { return m.Called().Bool(0) }
func (m *mockPolicy) DisplayPriceIncludingTax() bool { return m.Called().Bool(0) }
func (m *mockPolicy) DisplayPriceExcludingTax() bool { return m.Called().Bool(0) }

// stubPolicy answers from fixed flags without recording calls.
type stubPolicy struct{ both, including, excluding bool }

func (s stubPolicy) DisplayBothPrices() bool        { return s.both }
func (s stubPolicy) DisplayPriceIncludingTax() bool { return s.including }
func (s stubPolicy) DisplayPriceExcludingTax() bool { return s.excluding }

type mockFormatter struct{ mock.Mock }

func (m *mockFormatter) Format(value decimal.Money, includeContainer bool) string {
	return m.Called(value, includeContainer).String(0)
}

type mockAmount struct{ mock.Mock }

func (m *mockAmount) Value(exclude ...pricing.AdjustmentCode) decimal.Money {
	args := make([]interface{}, len(exclude))
	for i, code := range exclude {
		args[i] = code
	}
	return m.Called(args...).Get(0).(decimal.Money)
}

func (m *mockAmount) BaseAmount() decimal.Money {
	return m.Called().Get(0).(decimal.Money)
}

func (m *mockAmount) AdjustmentAmount(code pricing.AdjustmentCode) decimal.Money {
	return m.Called(code).Get(0).(decimal.Money)
}

func (m *mockAmount) HasAdjustment(code pricing.AdjustmentCode) bool {
	return m.Called(code).Bool(0)
}

type mockSaleable struct{ mock.Mock }

func (m *mockSaleable) ID() string { return m.Called().String(0) }

type mockAmountRender struct{ mock.Mock }

func (m *mockAmountRender) Amount() pricing.Amount {
	return m.Called().Get(0).(pricing.Amount)
}

func (m *mockAmountRender) SaleableItem() pricing.Saleable {
	return m.Called().Get(0).(pricing.Saleable)
}

func (m *mockAmountRender) SetDisplayValue(v decimal.Money)   { m.Called(v) }
func (m *mockAmountRender) SetPriceDisplayLabel(label string) { m.Called(label) }
func (m *mockAmountRender) SetPriceID(id string)              { m.Called(id) }
func (m *mockAmountRender) SetPriceWrapperCSS(class string)   { m.Called(class) }
