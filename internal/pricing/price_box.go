package pricing

import "github.com/storefront/price-render/pkg/decimal"

// PriceBox is the amount being rendered for one saleable item. Adjustment
// renderers read the amount and item from it and write display fields back.
type PriceBox struct {
	amount Amount
	item   Saleable

	displayValue *decimal.Money
	label        string
	priceID      string
	wrapperCSS   string
}

// NewPriceBox wraps amount and the item it was computed for.
func NewPriceBox(amount Amount, item Saleable) *PriceBox {
	return &PriceBox{amount: amount, item: item}
}

func (b *PriceBox) Amount() Amount         { return b.amount }
func (b *PriceBox) SaleableItem() Saleable { return b.item }

// DisplayValue is the value to show, the full amount unless overridden.
func (b *PriceBox) DisplayValue() decimal.Money {
	if b.displayValue != nil {
		return *b.displayValue
	}
	return b.amount.Value()
}

func (b *PriceBox) SetDisplayValue(v decimal.Money) { b.displayValue = &v }

func (b *PriceBox) PriceDisplayLabel() string       { return b.label }
func (b *PriceBox) SetPriceDisplayLabel(l string)   { b.label = l }
func (b *PriceBox) PriceID() string                 { return b.priceID }
func (b *PriceBox) SetPriceID(id string)            { b.priceID = id }
func (b *PriceBox) PriceWrapperCSS() string         { return b.wrapperCSS }
func (b *PriceBox) SetPriceWrapperCSS(class string) { b.wrapperCSS = class }
