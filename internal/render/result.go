package render

import (
	"github.com/storefront/price-render/internal/pricing"
	"github.com/storefront/price-render/pkg/decimal"
)

const (
	LabelInclTax = "Incl. Tax"
	LabelExclTax = "Excl. Tax"

	CSSInclTax = "price-including-tax"
	CSSExclTax = "price-excluding-tax"

	IDPrefixInclTax = "price-including-tax-"
	IDPrefixExclTax = "price-excluding-tax-"
	IDPrefixPrice   = "product-price-"
)

// Mode is the price display mode chosen for a render.
type Mode int

const (
	ModeIncludingTax Mode = iota
	ModeExcludingTax
	ModeBoth
)

func (m Mode) String() string {
	switch m {
	case ModeIncludingTax:
		return "including"
	case ModeExcludingTax:
		return "excluding"
	case ModeBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Price is one labelled price to show for a rendered amount.
type Price struct {
	Label      string        `json:"label,omitempty"`
	ID         string        `json:"id"`
	WrapperCSS string        `json:"wrapper_css,omitempty"`
	Value      decimal.Money `json:"value"`
	Formatted  string        `json:"formatted"`
}

// Result is the outcome of one Render call. Its mode, zone and id suffix are
// fixed at Render time. Amounts, and the item id outside both-prices mode,
// are read from the rendered AmountRender on each call.
type Result struct {
	box       AmountRender
	formatter CurrencyFormatter
	code      pricing.AdjustmentCode
	mode      Mode
	zone      Zone
	idSuffix  string

	itemID      string
	itemIDKnown bool
}

func (r *Result) Mode() Mode           { return r.mode }
func (r *Result) Zone() Zone           { return r.zone }
func (r *Result) IDSuffix() string     { return r.idSuffix }
func (r *Result) Amount() AmountRender { return r.box }

// ItemID returns the id of the rendered saleable item, "" when it has none.
func (r *Result) ItemID() string {
	id := r.itemID
	if !r.itemIDKnown {
		id = saleableID(r.box.SaleableItem())
	}
	if !pricing.HasID(id) {
		return ""
	}
	return id
}

// DisplayAmountExclTax formats the amount without this adjustment, inside
// the price container.
func (r *Result) DisplayAmountExclTax() string {
	return r.formatter.Format(r.box.Amount().Value(r.code), true)
}

// DisplayAmount formats the full amount.
func (r *Result) DisplayAmount(includeContainer bool) string {
	return r.formatter.Format(r.box.Amount().Value(), includeContainer)
}

// BuildIDWithPrefix returns prefix followed by the item id and the id
// suffix, each only when set.
func (r *Result) BuildIDWithPrefix(prefix string) string {
	return prefix + r.ItemID() + r.idSuffix
}

// Prices lists the prices to show, in display order.
func (r *Result) Prices(includeContainer bool) []Price {
	amount := r.box.Amount()
	price := func(label, idPrefix, css string, v decimal.Money) Price {
		return Price{
			Label:      label,
			ID:         r.BuildIDWithPrefix(idPrefix),
			WrapperCSS: css,
			Value:      v,
			Formatted:  r.formatter.Format(v, includeContainer),
		}
	}
	switch r.mode {
	case ModeBoth:
		inclLabel := LabelInclTax
		if r.zone == ZoneItemOption {
			inclLabel = ""
		}
		return []Price{
			price(inclLabel, IDPrefixInclTax, CSSInclTax, amount.Value()),
			price(LabelExclTax, IDPrefixExclTax, CSSExclTax, amount.Value(r.code)),
		}
	case ModeExcludingTax:
		return []Price{price("", IDPrefixPrice, "", amount.Value(r.code))}
	default:
		return []Price{price("", IDPrefixPrice, "", amount.Value())}
	}
}
