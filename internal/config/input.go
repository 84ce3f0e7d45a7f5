package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/storefront/price-render/internal/domain"
	"github.com/storefront/price-render/internal/render"
)

// InputParser handles parsing of store configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateStore(&config.Store); err != nil {
		return fmt.Errorf("store settings validation failed: %w", err)
	}

	if len(config.Products) == 0 {
		return fmt.Errorf("no products provided")
	}

	seen := make(map[string]bool, len(config.Products))
	for i, product := range config.Products {
		if err := ip.validateProduct(&product); err != nil {
			return fmt.Errorf("product %d validation failed: %w", i, err)
		}
		if product.ID != "" {
			if seen[product.ID] {
				return fmt.Errorf("product %d: duplicate id %q", i, product.ID)
			}
			seen[product.ID] = true
		}
	}

	return nil
}

// validateStore checks the shared display settings
func (ip *InputParser) validateStore(store *domain.StoreSettings) error {
	if store.Locale == "" {
		return fmt.Errorf("locale is required")
	}
	if _, err := language.Parse(store.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", store.Locale, err)
	}
	if store.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if _, err := currency.ParseISO(strings.ToUpper(store.Currency)); err != nil {
		return fmt.Errorf("invalid currency %q: %w", store.Currency, err)
	}
	if !store.CatalogPrices.Valid() {
		return fmt.Errorf("catalog_prices is required (excluding, including or both)")
	}
	if err := validateRate(store.DefaultTaxRate); err != nil {
		return fmt.Errorf("default tax rate: %w", err)
	}
	if _, err := render.ParseZone(store.Zone); err != nil {
		return err
	}
	return nil
}

// validateProduct validates a single catalog product
func (ip *InputParser) validateProduct(product *domain.CatalogProduct) error {
	if product.Name == "" {
		return fmt.Errorf("name is required")
	}
	if product.Price.LessThan(decimal.Zero) {
		return fmt.Errorf("price cannot be negative")
	}
	if product.TaxRate != nil {
		if err := validateRate(*product.TaxRate); err != nil {
			return fmt.Errorf("tax rate: %w", err)
		}
	}
	return nil
}

func validateRate(rate decimal.Decimal) error {
	if rate.LessThan(decimal.Zero) || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("must be between 0 and 1, got %s", rate)
	}
	return nil
}
