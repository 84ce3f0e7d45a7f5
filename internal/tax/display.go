package tax

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownDisplayType is returned for display types outside 1..3.
var ErrUnknownDisplayType = errors.New("unknown tax display type")

// DisplayType is the store setting for how catalog prices show tax.
// The numeric values match the stored configuration encoding.
type DisplayType int

const (
	DisplayExcludingTax DisplayType = 1
	DisplayIncludingTax DisplayType = 2
	DisplayBoth         DisplayType = 3
)

var displayTypeNames = map[DisplayType]string{
	DisplayExcludingTax: "excluding",
	DisplayIncludingTax: "including",
	DisplayBoth:         "both",
}

func (d DisplayType) String() string {
	if n, ok := displayTypeNames[d]; ok {
		return n
	}
	return "DisplayType(" + strconv.Itoa(int(d)) + ")"
}

func (d DisplayType) Valid() bool {
	_, ok := displayTypeNames[d]
	return ok
}

// ParseDisplayType accepts either the numeric code or the name
// ("excluding", "including", "both"), case-insensitively.
func ParseDisplayType(s string) (DisplayType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if d := DisplayType(n); d.Valid() {
			return d, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrUnknownDisplayType, n)
	}
	for d, name := range displayTypeNames {
		if name == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDisplayType, s)
}

// UnmarshalText lets DisplayType be read from YAML as a number or a name.
func (d *DisplayType) UnmarshalText(text []byte) error {
	parsed, err := ParseDisplayType(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DisplayType) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDisplayType, int(d))
	}
	return []byte(d.String()), nil
}

// DisplayConfig answers price display questions from a single store setting.
type DisplayConfig struct {
	CatalogPrices DisplayType
}

// NewDisplayConfig creates a display config for the given setting
func NewDisplayConfig(t DisplayType) *DisplayConfig {
	return &DisplayConfig{CatalogPrices: t}
}

func (c *DisplayConfig) DisplayBothPrices() bool {
	return c.CatalogPrices == DisplayBoth
}

func (c *DisplayConfig) DisplayPriceIncludingTax() bool {
	return c.CatalogPrices == DisplayIncludingTax
}

func (c *DisplayConfig) DisplayPriceExcludingTax() bool {
	return c.CatalogPrices == DisplayExcludingTax
}
