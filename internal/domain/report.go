package domain

import (
	"github.com/shopspring/decimal"

	"github.com/storefront/price-render/internal/tax"
)

// PriceReport holds the rendered prices of every configured product.
type PriceReport struct {
	Locale        string          `json:"locale"`
	Currency      string          `json:"currency"`
	CatalogPrices tax.DisplayType `json:"catalog_prices"`
	Zone          string          `json:"zone"`
	Lines         []PriceLine     `json:"lines"`
}

// PriceLine is the render outcome for one product.
type PriceLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Mode      string          `json:"mode"`
	Net       decimal.Decimal `json:"net"`
	Tax       decimal.Decimal `json:"tax"`
	Gross     decimal.Decimal `json:"gross"`
	// DisplayValue is the single value a price box shows after rendering.
	DisplayValue decimal.Decimal `json:"display_value"`
	Prices       []DisplayPrice  `json:"prices"`
}

// DisplayPrice is one labelled, formatted price of a line.
type DisplayPrice struct {
	Label      string          `json:"label,omitempty"`
	ID         string          `json:"id"`
	WrapperCSS string          `json:"wrapper_css,omitempty"`
	Value      decimal.Decimal `json:"value"`
	Formatted  string          `json:"formatted"`
}
