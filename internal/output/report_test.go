package output_test

import (
	"bytes"
	"path/filepath"
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/price-render/internal/config"
	"github.com/storefront/price-render/internal/domain"
	"github.com/storefront/price-render/internal/output"
	"github.com/storefront/price-render/internal/tax"
)

func TestGenerateReport(t *testing.T) {
	report := &domain.PriceReport{Locale: "en", Currency: "USD", CatalogPrices: tax.DisplayIncludingTax}

	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(report, "json", &buf))
	assert.Contains(t, buf.String(), `"catalog_prices": "including"`)

	buf.Reset()
	require.NoError(t, output.GenerateReport(report, "txt", &buf))
	assert.Contains(t, buf.String(), "CATALOG PRICE SUMMARY")
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	var buf bytes.Buffer
	err := output.GenerateReport(&domain.PriceReport{}, "definitely-not-a-format", &buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "Try one of: console, csv, json")
	assert.Zero(t, buf.Len())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, output.WriteFile(output.CSVFormatter{}, &domain.PriceReport{}, path))
	assert.FileExists(t, path)
}

func TestSaveConfigurationRoundTrip(t *testing.T) {
	rate := stddec.NewFromFloat(0.07)
	cfg := &domain.Configuration{
		Store: domain.StoreSettings{
			Locale:         "de-DE",
			Currency:       "EUR",
			CatalogPrices:  tax.DisplayBoth,
			DefaultTaxRate: stddec.NewFromFloat(0.19),
		},
		Products: []domain.CatalogProduct{
			{ID: "1", Name: "Stamp", Price: stddec.NewFromFloat(12.5), TaxRate: &rate},
		},
	}
	path := filepath.Join(t.TempDir(), "store.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, path))

	loaded, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, tax.DisplayBoth, loaded.Store.CatalogPrices)
	assert.True(t, loaded.Store.DefaultTaxRate.Equal(cfg.Store.DefaultTaxRate))
	require.Len(t, loaded.Products, 1)
	assert.True(t, loaded.Products[0].Price.Equal(stddec.NewFromFloat(12.5)))
	require.NotNil(t, loaded.Products[0].TaxRate)
	assert.True(t, loaded.Products[0].TaxRate.Equal(rate))
}
