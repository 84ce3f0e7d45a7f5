package engine

import (
	"context"
	"fmt"

	"github.com/storefront/price-render/internal/currency"
	"github.com/storefront/price-render/internal/domain"
	"github.com/storefront/price-render/internal/pricing"
	"github.com/storefront/price-render/internal/render"
	"github.com/storefront/price-render/internal/tax"
	money "github.com/storefront/price-render/pkg/decimal"
)

// PriceEngine renders the configured catalog through the tax adjustment.
type PriceEngine struct {
	Calculator *pricing.Calculator
	Logger     render.Logger
}

// NewPriceEngine creates a new price engine
func NewPriceEngine() *PriceEngine {
	return &PriceEngine{
		Calculator: pricing.NewCalculator(),
		Logger:     render.NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *PriceEngine) SetLogger(l render.Logger) {
	if l == nil {
		pe.Logger = render.NopLogger{}
		return
	}
	pe.Logger = l
}

// Run renders every product of config with one adjustment renderer, in file order.
func (pe *PriceEngine) Run(ctx context.Context, config *domain.Configuration) (*domain.PriceReport, error) {
	store := config.Store
	formatter, err := currency.NewFormatter(store.Locale, store.Currency)
	if err != nil {
		return nil, err
	}
	zone, err := render.ParseZone(store.Zone)
	if err != nil {
		return nil, err
	}

	adj := render.NewAdjustment(
		tax.NewDisplayConfig(store.CatalogPrices),
		formatter,
		render.WithLogger(pe.Logger),
		render.WithZone(zone),
	)
	adj.SetIDSuffix(store.IDSuffix)

	report := &domain.PriceReport{
		Locale:        store.Locale,
		Currency:      formatter.Currency(),
		CatalogPrices: store.CatalogPrices,
		Zone:          zone.String(),
		Lines:         make([]domain.PriceLine, 0, len(config.Products)),
	}
	for _, p := range config.Products {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := pe.renderProduct(adj, store, p)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", p.Name, err)
		}
		report.Lines = append(report.Lines, line)
	}
	pe.Logger.Infof("rendered %d prices (%s, %s)", len(report.Lines), store.CatalogPrices, report.Currency)
	return report, nil
}

func (pe *PriceEngine) renderProduct(adj *render.Adjustment, store domain.StoreSettings, p domain.CatalogProduct) (domain.PriceLine, error) {
	amount, err := pe.Calculator.WithTax(money.NewMoneyFromDecimal(p.Price), p.EffectiveTaxRate(store))
	if err != nil {
		return domain.PriceLine{}, err
	}
	box := pricing.NewPriceBox(amount, pricing.Product{SKU: p.ID, Name: p.Name})
	res, err := adj.Render(box, render.Arguments{})
	if err != nil {
		return domain.PriceLine{}, err
	}
	pe.Logger.Debugf("rendered %s (%s) in %s mode", p.Name, p.ID, res.Mode())

	line := domain.PriceLine{
		ProductID:    p.ID,
		Name:         p.Name,
		Mode:         res.Mode().String(),
		Net:          amount.BaseAmount().Decimal,
		Tax:          amount.AdjustmentAmount(adj.AdjustmentCode()).Decimal,
		Gross:        amount.Value().Decimal,
		DisplayValue: box.DisplayValue().Decimal,
	}
	for _, price := range res.Prices(false) {
		line.Prices = append(line.Prices, domain.DisplayPrice{
			Label:      price.Label,
			ID:         price.ID,
			WrapperCSS: price.WrapperCSS,
			Value:      price.Value.Decimal,
			Formatted:  price.Formatted,
		})
	}
	return line, nil
}
