package amortization

import (
	"errors"
	"fmt"
	"strings"
)

// System selects the repayment system of a schedule.
type System int

const (
	// SAC keeps the amortization constant; the payment shrinks with the interest.
	SAC System = iota + 1
	// Price keeps the payment constant (French/annuity method).
	Price
)

// ErrUnknownSystem is returned when a system name is neither SAC nor Price.
var ErrUnknownSystem = errors.New("unknown amortization system")

// Systems lists the supported systems in display order.
var Systems = []System{SAC, Price}

// ParseSystem maps a case-insensitive name ("sac", "price") to a System.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sac":
		return SAC, nil
	case "price":
		return Price, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
}

// Valid reports whether s is one of the supported systems.
func (s System) Valid() bool {
	return s == SAC || s == Price
}

// String returns the lower-case identifier used in forms, flags and JSON.
func (s System) String() string {
	switch s {
	case SAC:
		return "sac"
	case Price:
		return "price"
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// Label returns the user-facing name of the system.
func (s System) Label() string {
	switch s {
	case SAC:
		return "SAC"
	case Price:
		return "Price"
	}
	return s.String()
}

// MarshalText implements encoding.TextMarshaler.
func (s System) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSystem, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *System) UnmarshalText(text []byte) error {
	parsed, err := ParseSystem(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
