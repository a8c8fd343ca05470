// Package currency formats whole-rupee amounts for display: en-IN digit
// grouping, a currency symbol and a spelled-out words form.
package currency

import (
	"strings"

	"github.com/Rhymond/go-money"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cashbook/internal/domain"
)

// Formatter renders integer amounts of a single currency.
type Formatter struct {
	cur     *money.Currency
	printer *message.Printer
	unit    string
	units   string
}

// NewRupeeFormatter returns the formatter used by the cash ledger.
func NewRupeeFormatter() *Formatter {
	return &Formatter{
		cur:     money.GetCurrency(domain.CurrencyCode),
		printer: message.NewPrinter(language.MustParse("en-IN")),
		unit:    "rupee",
		units:   "rupees",
	}
}

// Code returns the ISO 4217 code.
func (f *Formatter) Code() string { return f.cur.Code }

// Symbol returns the currency grapheme, "₹" for rupees.
func (f *Formatter) Symbol() string { return f.cur.Grapheme }

// Group returns n with locale digit grouping, e.g. 1234567 -> "12,34,567".
func (f *Formatter) Group(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Display returns the grouped amount prefixed with the currency symbol.
func (f *Formatter) Display(n int64) string {
	if n < 0 {
		return "-" + f.Symbol() + f.Group(-n)
	}
	return f.Symbol() + f.Group(n)
}

// Words spells n out in the Indian numbering system with the first letter
// capitalized, e.g. 2500 -> "Two thousand five hundred rupees".
func (f *Formatter) Words(n int64) string {
	unit := f.units
	if n == 1 || n == -1 {
		unit = f.unit
	}

	var parts []string
	switch {
	case n == 0:
		parts = []string{"zero"}
	case n < 0:
		parts = append([]string{"minus"}, indianWords(uint64(-n))...)
	default:
		parts = indianWords(uint64(n))
	}
	parts = append(parts, unit)
	return capitalize(strings.Join(parts, " "))
}

var smallNumbers = [...]string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tensNames = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

const (
	crore    = 10_000_000
	lakh     = 100_000
	thousand = 1_000
)

// indianWords spells a positive number using crore, lakh, thousand and hundred.
// Amounts of a hundred crore and above repeat the scale ("one hundred crore").
func indianWords(n uint64) []string {
	var parts []string
	if n >= crore {
		parts = append(parts, indianWords(n/crore)...)
		parts = append(parts, "crore")
		n %= crore
	}
	if v := n / lakh; v > 0 {
		parts = append(parts, belowHundred(v)...)
		parts = append(parts, "lakh")
		n %= lakh
	}
	if v := n / thousand; v > 0 {
		parts = append(parts, belowHundred(v)...)
		parts = append(parts, "thousand")
		n %= thousand
	}
	if v := n / 100; v > 0 {
		parts = append(parts, smallNumbers[v], "hundred")
		n %= 100
	}
	return append(parts, belowHundred(n)...)
}

func belowHundred(n uint64) []string {
	switch {
	case n == 0:
		return nil
	case n < 20:
		return []string{smallNumbers[n]}
	case n%10 == 0:
		return []string{tensNames[n/10]}
	default:
		return []string{tensNames[n/10], smallNumbers[n%10]}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
