package input

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain integer", "1000", "1000"},
		{"Dot decimal", "1000.50", "1000.50"},
		{"Comma decimal", "1000,50", "1000.50"},
		{"Brazilian grouping", "1.234.567,89", "1234567.89"},
		{"English grouping", "1,234,567.89", "1234567.89"},
		{"Comma groups only", "1,234,567", "1234567"},
		{"Dot groups only", "1.234.567", "1234567"},
		{"Currency symbol and spaces", " R$ 1.500,00 ", "1500.00"},
		{"Percent sign", "1,5%", "1.5"},
		{"Negative", "-5", "-5"},
		{"Inner whitespace", "1 000", "1000"},
		{"Letters only", "abc", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"Integer", "1000", 1000},
		{"Comma decimal", "0,5", 0.5},
		{"Brazilian amount", "R$ 250.000,00", 250000},
		{"English amount", "$250,000.00", 250000},
		{"Rate percentage", "1,25", 1.25},
		{"Negative principal", "-5", -5},
		{"Zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestParseNumberRejectsNonNumbers(t *testing.T) {
	for _, text := range []string{"", "   ", "abc", "-", "1-2", "--5", "R$"} {
		t.Run(text, func(t *testing.T) {
			got, err := ParseNumber(text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNotANumber), "expected ErrNotANumber, got %v", err)
			assert.False(t, math.IsNaN(got))
		})
	}
}

func TestParseDecimalIsExact(t *testing.T) {
	d, err := ParseDecimal("0,1")
	require.NoError(t, err)

	assert.Equal(t, "0.1", d.String())
	assert.True(t, d.Add(d).Add(d).Equal(d.Mul(decimal.NewFromInt(3))))
}
