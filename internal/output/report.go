package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/storefront/price-render/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes report to w in the named format.
func GenerateReport(report *domain.PriceReport, format string, w io.Writer) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, report, w)
}

// SaveConfiguration writes config as YAML, readable by config.InputParser.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
