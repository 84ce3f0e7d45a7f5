package domain

import (
	"github.com/shopspring/decimal"

	"github.com/storefront/price-render/internal/tax"
)

// Configuration is the store file read by the price renderer.
type Configuration struct {
	Store    StoreSettings    `yaml:"store" json:"store"`
	Products []CatalogProduct `yaml:"products" json:"products"`
}

// StoreSettings holds the display settings shared by every product.
type StoreSettings struct {
	Locale   string `yaml:"locale" json:"locale"`
	Currency string `yaml:"currency" json:"currency"`
	// CatalogPrices decides whether prices show tax; 1/2/3 or excluding/including/both.
	CatalogPrices  tax.DisplayType `yaml:"catalog_prices" json:"catalog_prices"`
	DefaultTaxRate decimal.Decimal `yaml:"default_tax_rate" json:"default_tax_rate"`

	// Optional rendering settings
	Zone     string `yaml:"zone,omitempty" json:"zone,omitempty"`
	IDSuffix string `yaml:"id_suffix,omitempty" json:"id_suffix,omitempty"`
}

// CatalogProduct is one priced item. Price is net of tax.
type CatalogProduct struct {
	ID      string           `yaml:"id" json:"id"`
	Name    string           `yaml:"name" json:"name"`
	Price   decimal.Decimal  `yaml:"price" json:"price"`
	TaxRate *decimal.Decimal `yaml:"tax_rate,omitempty" json:"tax_rate,omitempty"`
}

// EffectiveTaxRate returns the product's own rate, or the store default.
func (p CatalogProduct) EffectiveTaxRate(store StoreSettings) decimal.Decimal {
	if p.TaxRate != nil {
		return *p.TaxRate
	}
	return store.DefaultTaxRate
}
