package output

import (
	"encoding/json"

	"github.com/storefront/price-render/internal/domain"
)

// JSONFormatter serializes the price report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.PriceReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
