// Package locale resolves the display language and translates user-facing
// text through the golang.org/x/text message catalog.
package locale

import (
	"errors"
	"fmt"

	"github.com/iwvelando/loan-amortization/pkg/amortization"
	"github.com/iwvelando/loan-amortization/pkg/validation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale translates messages for one language.
type Locale struct {
	Tag     language.Tag
	printer *message.Printer
}

// New parses a BCP 47 tag such as "pt-BR" or "en".
func New(lang string) (*Locale, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}
	return &Locale{Tag: tag, printer: message.NewPrinter(tag)}, nil
}

// MustNew is like New but panics on an invalid tag.
func MustNew(lang string) *Locale {
	l, err := New(lang)
	if err != nil {
		panic(err)
	}
	return l
}

// T translates key and formats it with args.
func (l *Locale) T(key string, args ...interface{}) string {
	return l.printer.Sprintf(key, args...)
}

// ErrorMessage returns the user-facing message for a validation failure.
// Errors that are not validation failures are returned verbatim.
func (l *Locale) ErrorMessage(err error) string {
	switch {
	case errors.Is(err, validation.ErrInvalidPrincipal):
		return l.T(MsgInvalidPrincipal)
	case errors.Is(err, validation.ErrInvalidRate):
		return l.T(MsgInvalidRate)
	case errors.Is(err, validation.ErrInvalidPeriodCount):
		return l.T(MsgInvalidPeriodCount)
	case errors.Is(err, validation.ErrInvalidSystem):
		return l.T(MsgInvalidSystem)
	}
	return err.Error()
}

// BaseLabel names the constant value of a system: the amortization for SAC
// and the payment for Price.
func (l *Locale) BaseLabel(system amortization.System) string {
	if system == amortization.Price {
		return l.T(LabelBasePayment)
	}
	return l.T(LabelBaseAmortization)
}

// Labels holds the translated captions of the calculator screens.
type Labels struct {
	Title          string
	Principal      string
	Rate           string
	Periods        string
	System         string
	Calculate      string
	Clear          string
	Period         string
	OpeningBalance string
	Amortization   string
	Interest       string
	Payment        string
	ClosingBalance string
	BaseValue      string
	TotalPayment   string
	TotalInterest  string
	FinalBalance   string
}

// Labels translates every caption at once.
func (l *Locale) Labels() Labels {
	return Labels{
		Title:          l.T(LabelTitle),
		Principal:      l.T(LabelPrincipal),
		Rate:           l.T(LabelRate),
		Periods:        l.T(LabelPeriods),
		System:         l.T(LabelSystem),
		Calculate:      l.T(LabelCalculate),
		Clear:          l.T(LabelClear),
		Period:         l.T(LabelPeriod),
		OpeningBalance: l.T(LabelOpeningBalance),
		Amortization:   l.T(LabelAmortization),
		Interest:       l.T(LabelInterest),
		Payment:        l.T(LabelPayment),
		ClosingBalance: l.T(LabelClosingBalance),
		BaseValue:      l.T(LabelBaseValue),
		TotalPayment:   l.T(LabelTotalPayment),
		TotalInterest:  l.T(LabelTotalInterest),
		FinalBalance:   l.T(LabelFinalBalance),
	}
}
