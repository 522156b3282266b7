package amortization

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseSystem(t *testing.T) {
	tests := []struct {
		input    string
		expected System
		wantErr  bool
	}{
		{"sac", SAC, false},
		{"SAC", SAC, false},
		{" Sac ", SAC, false},
		{"price", Price, false},
		{"Price", Price, false},
		{"PRICE", Price, false},
		{"", 0, true},
		{"french", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSystem(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSystem) {
					t.Fatalf("ParseSystem(%q) error = %v, expected ErrUnknownSystem", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSystem(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseSystem(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSystemLabels(t *testing.T) {
	if SAC.Label() != "SAC" || Price.Label() != "Price" {
		t.Errorf("unexpected labels %q and %q", SAC.Label(), Price.Label())
	}
	if SAC.String() != "sac" || Price.String() != "price" {
		t.Errorf("unexpected identifiers %q and %q", SAC.String(), Price.String())
	}
	if System(0).Valid() {
		t.Errorf("zero System must not be valid")
	}
}

func TestSystemJSON(t *testing.T) {
	data, err := json.Marshal(Request{Principal: 1, PeriodicRate: 0, PeriodCount: 1, System: Price})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded Request
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.System != Price {
		t.Errorf("expected Price after round trip, got %v", decoded.System)
	}

	if err := json.Unmarshal([]byte(`{"system":"annuity"}`), &decoded); err == nil {
		t.Errorf("expected error for unknown system")
	}
	if _, err := json.Marshal(Request{}); err == nil {
		t.Errorf("expected error marshaling an unset system")
	}
}
