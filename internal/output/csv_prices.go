package output

import (
	"bytes"
	"encoding/csv"

	"github.com/storefront/price-render/internal/domain"
)

// CSVFormatter writes one row per displayed price, products in report order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.PriceReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"ProductID", "Name", "Mode", "Net", "Tax", "Gross", "DisplayValue", "Label", "ElementID", "WrapperCSS", "Value", "Formatted"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, line := range report.Lines {
		for _, p := range line.Prices {
			row := []string{
				line.ProductID,
				line.Name,
				line.Mode,
				FormatAmount(line.Net),
				FormatAmount(line.Tax),
				FormatAmount(line.Gross),
				FormatAmount(line.DisplayValue),
				p.Label,
				p.ID,
				p.WrapperCSS,
				FormatAmount(p.Value),
				p.Formatted,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
