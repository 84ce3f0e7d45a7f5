package currency

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/storefront/price-render/pkg/decimal"
)

const (
	containerOpen  = `<span class="price">`
	containerClose = `</span>`
)

// Formatter renders prices in one currency for one locale.
type Formatter struct {
	unit   currency.Unit
	symbol string
	scale  int
	style  numberStyle
}

// NewFormatter creates a formatter for a BCP 47 locale and an ISO 4217 code.
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}
	p := message.NewPrinter(tag)
	scale, _ := currency.Standard.Rounding(unit)
	return &Formatter{
		unit:   unit,
		symbol: p.Sprint(currency.Symbol(unit)),
		scale:  scale,
		style:  localeStyle(p),
	}, nil
}

// Currency returns the ISO code of the formatter's currency.
func (f *Formatter) Currency() string { return f.unit.String() }

// Format rounds value to the currency's standard scale and renders it with
// the locale's digits, grouping and decimal separator. The locale's symbol
// always leads the number; locale specific symbol placement is not applied.
// With includeContainer the result is wrapped in the price span.
func (f *Formatter) Format(value decimal.Money, includeContainer bool) string {
	rounded := value.RoundTo(int32(f.scale))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	digits := f.style.format(rounded.Decimal.Abs().StringFixed(int32(f.scale)))
	out := sign + f.symbol + digits
	if includeContainer {
		return containerOpen + out + containerClose
	}
	return out
}

// numberStyle holds the number symbols of a locale, read back from the
// printer once so that amounts never pass through float64.
type numberStyle struct {
	digits    [10]string
	decimal   string
	group     string
	primary   int
	secondary int
}

var latnStyle = numberStyle{
	digits:    [10]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
	decimal:   ".",
	group:     ",",
	primary:   3,
	secondary: 3,
}

func localeStyle(p *message.Printer) numberStyle {
	s := latnStyle
	values := make(map[rune]int, 10)
	for d := 0; d < 10; d++ {
		r := []rune(p.Sprint(number.Decimal(d)))
		if len(r) != 1 {
			return latnStyle
		}
		s.digits[d] = string(r)
		values[r[0]] = d
	}

	// 1234567.5 shows every separator the locale uses.
	var runs, seps []string
	var cur, sep strings.Builder
	for _, r := range p.Sprint(number.Decimal(1234567.5, number.Scale(1))) {
		if _, ok := values[r]; ok {
			if sep.Len() > 0 {
				if len(runs) > 0 {
					seps = append(seps, sep.String())
				}
				sep.Reset()
			}
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			runs = append(runs, cur.String())
			cur.Reset()
		}
		sep.WriteRune(r)
	}
	if cur.Len() > 0 {
		runs = append(runs, cur.String())
	}
	if len(runs) < 2 || len(seps) != len(runs)-1 {
		return latnStyle
	}

	s.decimal = seps[len(seps)-1]
	s.group, s.primary, s.secondary = "", 0, 0
	if n := len(runs); n >= 3 {
		s.group = seps[0]
		s.primary = len([]rune(runs[n-2]))
		s.secondary = s.primary
		if n >= 4 {
			s.secondary = len([]rune(runs[n-3]))
		}
	}
	return s
}

// format renders a plain non-negative decimal string such as "1234.50".
func (s numberStyle) format(plain string) string {
	intPart, fracPart, hasFrac := strings.Cut(plain, ".")

	var b strings.Builder
	for i, c := range intPart {
		if s.group != "" && i > 0 && s.breakBefore(len(intPart)-i) {
			b.WriteString(s.group)
		}
		b.WriteString(s.digits[c-'0'])
	}
	if hasFrac {
		b.WriteString(s.decimal)
		for _, c := range fracPart {
			b.WriteString(s.digits[c-'0'])
		}
	}
	return b.String()
}

// breakBefore reports whether a group separator goes before a digit that
// has remaining integer digits, itself included.
func (s numberStyle) breakBefore(remaining int) bool {
	if s.primary <= 0 || remaining < s.primary {
		return false
	}
	if remaining == s.primary {
		return true
	}
	return s.secondary > 0 && (remaining-s.primary)%s.secondary == 0
}
