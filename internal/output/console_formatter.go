package output

import (
	"bytes"
	"fmt"

	"github.com/storefront/price-render/internal/domain"
)

// ConsoleFormatter prints one block per product with each displayed price.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.PriceReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "CATALOG PRICE SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Store: %s / %s  Catalog prices: %s  Zone: %s\n", report.Locale, report.Currency, report.CatalogPrices, report.Zone)
	for _, line := range report.Lines {
		fmt.Fprintln(&buf)
		id := line.ProductID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(&buf, "%s [%s] mode=%s net=%s tax=%s (%s) gross=%s\n",
			line.Name,
			id,
			line.Mode,
			FormatAmount(line.Net),
			FormatAmount(line.Tax),
			FormatPercentage(EffectiveRate(line.Net, line.Tax)),
			FormatAmount(line.Gross),
		)
		for _, p := range line.Prices {
			label := p.Label
			if label == "" {
				label = "Price"
			}
			fmt.Fprintf(&buf, "  %-10s %12s  #%s\n", label, p.Formatted, p.ID)
		}
	}
	return buf.Bytes(), nil
}
