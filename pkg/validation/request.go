// Package validation provides common validation utilities.
package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/loan-amortization/pkg/amortization"
	"github.com/iwvelando/loan-amortization/pkg/mathutil"
)

// Validation failure kinds. They are wrapped in a *FieldError; match them
// with errors.Is.
var (
	ErrInvalidPrincipal   = errors.New("invalid principal")
	ErrInvalidRate        = errors.New("invalid rate")
	ErrInvalidPeriodCount = errors.New("invalid period count")
	ErrInvalidSystem      = errors.New("invalid system")
)

// Field names reported by FieldError.
const (
	FieldPrincipal = "principal"
	FieldRate      = "rate"
	FieldPeriods   = "periods"
	FieldSystem    = "system"
)

// FieldError reports which input failed and why.
type FieldError struct {
	Field  string
	Err    error
	Detail string
}

func (e *FieldError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Detail)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Kind returns the short identifier of the failure ("InvalidPrincipal", ...).
func (e *FieldError) Kind() string {
	return KindOf(e.Err)
}

// KindOf maps a validation error to its identifier, or "" for other errors.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidPrincipal):
		return "InvalidPrincipal"
	case errors.Is(err, ErrInvalidRate):
		return "InvalidRate"
	case errors.Is(err, ErrInvalidPeriodCount):
		return "InvalidPeriodCount"
	case errors.Is(err, ErrInvalidSystem):
		return "InvalidSystem"
	}
	return ""
}

// Inputs carries the numbers parsed from a form before they become an
// amortization.Request. Unparsable fields are NaN; Periods is a float so that
// fractional counts can be rejected rather than truncated.
type Inputs struct {
	Principal   float64
	RatePercent float64
	Periods     float64
	System      string
}

// ValidateInputs checks the inputs in order principal, rate, period count,
// system and returns the first failure as a *FieldError. On success it
// returns the request to hand to amortization.ComputeSchedule.
func ValidateInputs(in Inputs) (amortization.Request, error) {
	if !mathutil.IsFinite(in.Principal) || in.Principal <= 0 {
		return amortization.Request{}, &FieldError{Field: FieldPrincipal, Err: ErrInvalidPrincipal,
			Detail: fmt.Sprintf("must be a finite number greater than zero, got %v", in.Principal)}
	}
	if !mathutil.IsFinite(in.RatePercent) || in.RatePercent < 0 {
		return amortization.Request{}, &FieldError{Field: FieldRate, Err: ErrInvalidRate,
			Detail: fmt.Sprintf("must be a finite number not below zero, got %v", in.RatePercent)}
	}
	if !mathutil.IsFinite(in.Periods) || in.Periods < 1 || in.Periods != math.Trunc(in.Periods) ||
		in.Periods > math.MaxInt32 {
		return amortization.Request{}, &FieldError{Field: FieldPeriods, Err: ErrInvalidPeriodCount,
			Detail: fmt.Sprintf("must be a positive integer, got %v", in.Periods)}
	}
	system, err := amortization.ParseSystem(in.System)
	if err != nil {
		return amortization.Request{}, &FieldError{Field: FieldSystem, Err: ErrInvalidSystem, Detail: err.Error()}
	}

	return amortization.Request{
		Principal:    in.Principal,
		PeriodicRate: mathutil.FromPercentage(in.RatePercent),
		PeriodCount:  int(in.Periods),
		System:       system,
	}, nil
}

// ValidateRequest checks a request built directly (CLI flags, JSON) rather
// than from form text.
func ValidateRequest(req amortization.Request) error {
	_, err := ValidateInputs(Inputs{
		Principal:   req.Principal,
		RatePercent: mathutil.ToPercentage(req.PeriodicRate),
		Periods:     float64(req.PeriodCount),
		System:      req.System.String(),
	})
	return err
}

// ValidatePeriodLimit rejects period counts above limit; a limit of 0 or
// less disables the check.
func ValidatePeriodLimit(periods, limit int) error {
	if limit > 0 && periods > limit {
		return &FieldError{Field: FieldPeriods, Err: ErrInvalidPeriodCount,
			Detail: fmt.Sprintf("must not exceed %d, got %d", limit, periods)}
	}
	return nil
}
