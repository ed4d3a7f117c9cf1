// ABOUTME: Locale-aware display formatting for money, counts, and percentages
// ABOUTME: Wraps golang.org/x/text message printers and currency units
package stats

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
	symbol  string
}

// symbols covers the currencies the dashboard is configured with. Other
// codes print as the ISO code followed by a space.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"BRL": "R$",
	"KES": "KSh",
}

// NewFormatter builds a formatter for a BCP 47 locale and an ISO 4217 code.
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("failed to parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("failed to parse currency %q: %w", code, err)
	}
	sym, ok := symbols[unit.String()]
	if !ok {
		sym = unit.String() + " "
	}
	return &Formatter{printer: message.NewPrinter(tag), unit: unit, symbol: sym}, nil
}

// DefaultFormatter formats US dollars for en-US.
func DefaultFormatter() *Formatter {
	f, _ := NewFormatter("en-US", "USD")
	return f
}

// Currency formats whole units, e.g. $3,250.
func (f *Formatter) Currency(amount int64) string {
	if amount < 0 {
		return "-" + f.symbol + f.Number(-amount)
	}
	return f.symbol + f.Number(amount)
}

// Number formats an integer with locale grouping, e.g. 125,000.
func (f *Formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

func (f *Formatter) Percent2(v float64) string {
	return f.printer.Sprintf("%.2f", v)
}

func (f *Formatter) Percent1(v float64) string {
	return f.printer.Sprintf("%.1f", v)
}

func (f *Formatter) CurrencyCode() string {
	return f.unit.String()
}
