package render

import (
	"errors"

	"github.com/storefront/price-render/internal/pricing"
	"github.com/storefront/price-render/pkg/decimal"
)

var (
	// ErrUnbound is returned by display accessors called before Render.
	ErrUnbound = errors.New("adjustment renderer: no amount rendered yet")
	// ErrNilAmount is returned when Render is given no amount.
	ErrNilAmount = errors.New("adjustment renderer: nil amount")
)

// TaxDisplayPolicy decides how catalog prices show tax.
type TaxDisplayPolicy interface {
	DisplayBothPrices() bool
	DisplayPriceIncludingTax() bool
	DisplayPriceExcludingTax() bool
}

// CurrencyFormatter turns a price into display text. includeContainer asks
// for the price markup wrapper around the text.
type CurrencyFormatter interface {
	Format(value decimal.Money, includeContainer bool) string
}

// AmountRender is the price being rendered. Adjustments read the amount and
// item from it and write display fields back; *pricing.PriceBox implements it.
type AmountRender interface {
	Amount() pricing.Amount
	SaleableItem() pricing.Saleable
	SetDisplayValue(v decimal.Money)
	SetPriceDisplayLabel(label string)
	SetPriceID(id string)
	SetPriceWrapperCSS(class string)
}

// Arguments override renderer settings for a single Render call.
type Arguments struct {
	Zone     *Zone
	IDSuffix *string
}

// Option configures an Adjustment.
type Option func(*Adjustment)

// WithLogger sets the logger used for policy warnings.
func WithLogger(l Logger) Option {
	return func(a *Adjustment) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithZone sets the initial zone.
func WithZone(z Zone) Option {
	return func(a *Adjustment) { a.zone = z }
}

// Adjustment renders the tax adjustment of a price: it picks the tax
// inclusive, exclusive or both variants from the display policy and builds
// the element ids for them.
//
// An Adjustment keeps the last rendered result for its accessors and must
// not be shared between goroutines without external locking. Results
// returned by Render are immutable and safe to share.
type Adjustment struct {
	policy    TaxDisplayPolicy
	formatter CurrencyFormatter
	logger    Logger

	zone     Zone
	idSuffix string
	bound    *Result
}

// NewAdjustment creates a tax adjustment renderer.
func NewAdjustment(policy TaxDisplayPolicy, formatter CurrencyFormatter, opts ...Option) *Adjustment {
	a := &Adjustment{
		policy:    policy,
		formatter: formatter,
		logger:    NopLogger{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AdjustmentCode returns the code of the adjustment this renderer handles.
func (a *Adjustment) AdjustmentCode() pricing.AdjustmentCode {
	return pricing.TaxCode
}

// DefaultExclusions returns the adjustments left out of the base price by
// default. It always contains AdjustmentCode.
func (a *Adjustment) DefaultExclusions() []pricing.AdjustmentCode {
	return []pricing.AdjustmentCode{a.AdjustmentCode()}
}

func (a *Adjustment) DisplayBothPrices() bool {
	return a.policy.DisplayBothPrices()
}

func (a *Adjustment) DisplayPriceIncludingTax() bool {
	return a.policy.DisplayPriceIncludingTax()
}

func (a *Adjustment) DisplayPriceExcludingTax() bool {
	return a.policy.DisplayPriceExcludingTax()
}

func (a *Adjustment) Zone() Zone           { return a.zone }
func (a *Adjustment) SetZone(z Zone)       { a.zone = z }
func (a *Adjustment) IDSuffix() string     { return a.idSuffix }
func (a *Adjustment) SetIDSuffix(s string) { a.idSuffix = s }

// Render applies the display policy to box and binds the result for the
// accessor methods. The policy is consulted once per decision.
func (a *Adjustment) Render(box AmountRender, args Arguments) (*Result, error) {
	if box == nil {
		return nil, ErrNilAmount
	}
	r := &Result{
		box:       box,
		formatter: a.formatter,
		code:      a.AdjustmentCode(),
		zone:      a.zone,
		idSuffix:  a.idSuffix,
	}
	if args.Zone != nil {
		r.zone = *args.Zone
	}
	if args.IDSuffix != nil {
		r.idSuffix = *args.IDSuffix
	}

	switch {
	case a.DisplayBothPrices():
		r.mode = ModeBoth
		r.itemID = saleableID(box.SaleableItem())
		r.itemIDKnown = true
		if r.zone != ZoneItemOption {
			box.SetPriceDisplayLabel(LabelInclTax)
		}
		box.SetPriceWrapperCSS(CSSInclTax)
		box.SetPriceID(r.BuildIDWithPrefix(IDPrefixInclTax))
	case a.DisplayPriceExcludingTax():
		r.mode = ModeExcludingTax
		box.SetDisplayValue(box.Amount().Value(r.code))
	default:
		r.mode = ModeIncludingTax
		if !a.DisplayPriceIncludingTax() {
			a.logger.Warnf("tax display policy enables no price mode; rendering including tax")
		}
	}

	a.bound = r
	return r, nil
}

// Result returns the last rendered result, or ErrUnbound.
func (a *Adjustment) Result() (*Result, error) {
	if a.bound == nil {
		return nil, ErrUnbound
	}
	return a.bound, nil
}

// DisplayAmountExclTax formats the last rendered amount without tax.
func (a *Adjustment) DisplayAmountExclTax() (string, error) {
	r, err := a.Result()
	if err != nil {
		return "", err
	}
	return r.DisplayAmountExclTax(), nil
}

// DisplayAmount formats the last rendered amount.
func (a *Adjustment) DisplayAmount(includeContainer bool) (string, error) {
	r, err := a.Result()
	if err != nil {
		return "", err
	}
	return r.DisplayAmount(includeContainer), nil
}

// BuildIDWithPrefix builds an element id for the last rendered amount.
func (a *Adjustment) BuildIDWithPrefix(prefix string) (string, error) {
	r, err := a.Result()
	if err != nil {
		return "", err
	}
	return r.BuildIDWithPrefix(prefix), nil
}

func saleableID(item pricing.Saleable) string {
	if item == nil {
		return ""
	}
	return item.ID()
}
