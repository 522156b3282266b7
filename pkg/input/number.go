// Package input normalizes user-entered numeric text into numbers.
//
// Users type amounts the way their locale writes them ("1.234,56",
// "1,234.56", "R$ 1000", "1,5%"), so separators are inferred from the text
// rather than from a configured locale.
package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrNotANumber is returned when the text does not hold a number.
var ErrNotANumber = errors.New("not a number")

// Normalize rewrites locale-formatted numeric text into a plain decimal
// string with '.' as the decimal point:
//
//   - whitespace is removed;
//   - with both ',' and '.', whichever appears last is the decimal point;
//   - a separator that appears more than once, alone, groups thousands;
//   - a single ',' alone is the decimal point;
//   - anything other than digits, '.' and '-' is dropped (currency symbols, '%').
func Normalize(text string) string {
	var b strings.Builder
	for _, r := range text {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	s := b.String()

	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")
	switch {
	case commas > 0 && dots > 0:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case commas > 1:
		s = strings.ReplaceAll(s, ",", "")
	case commas == 1:
		s = strings.ReplaceAll(s, ",", ".")
	case dots > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
}

// ParseDecimal parses locale-formatted text into an exact decimal.
func ParseDecimal(text string) (decimal.Decimal, error) {
	normalized := Normalize(text)
	if normalized == "" || normalized == "-" || normalized == "." {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	return d, nil
}

// ParseNumber parses locale-formatted text into a float64.
func ParseNumber(text string) (float64, error) {
	d, err := ParseDecimal(text)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}
