// Package format renders schedule values for display in one locale.
package format

import (
	"math"

	"github.com/iwvelando/loan-amortization/pkg/constants"
	"github.com/iwvelando/loan-amortization/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formats currency and percentages with locale-aware separators.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New returns a Formatter for tag that prefixes currency values with symbol.
func New(tag language.Tag, symbol string) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Currency returns a currency string with the symbol and thousands
// separators (e.g. "R$ 1.234,56", "-R$ 0,50"). Values that display as zero
// never carry a minus sign.
func (f *Formatter) Currency(amount float64) string {
	amount = displayValue(amount)
	formatted := f.Number(math.Abs(amount))
	if f.symbol != "" {
		formatted = f.symbol + " " + formatted
	}
	if amount < 0 {
		return "-" + formatted
	}
	return formatted
}

// Number returns amount with two decimals and separators, without a symbol.
func (f *Formatter) Number(amount float64) string {
	return f.printer.Sprintf("%.2f", displayValue(amount))
}

// Percent formats a fraction (0.01) as a percentage with four decimals ("1,0000%").
func (f *Formatter) Percent(fraction float64) string {
	return f.printer.Sprintf("%.4f%%", mathutil.ToPercentage(fraction))
}

// displayValue hides floating-point noise: anything below the display
// tolerance, or that rounds to zero cents, is shown as a positive zero.
func displayValue(amount float64) float64 {
	return mathutil.ZeroIfNegligible(mathutil.Round(amount), constants.DisplayTolerance)
}
