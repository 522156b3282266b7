package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/iwvelando/loan-amortization/pkg/amortization"
)

func TestValidateInputs(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name          string
		inputs        Inputs
		expectedErr   error
		expectedField string
	}{
		{"Valid SAC", Inputs{1000, 1, 2, "sac"}, nil, ""},
		{"Valid Price with zero rate", Inputs{1000, 0, 12, "price"}, nil, ""},
		{"Negative principal", Inputs{-5, 1, 2, "sac"}, ErrInvalidPrincipal, FieldPrincipal},
		{"Zero principal", Inputs{0, 1, 2, "sac"}, ErrInvalidPrincipal, FieldPrincipal},
		{"Unparsable principal", Inputs{nan, 1, 2, "sac"}, ErrInvalidPrincipal, FieldPrincipal},
		{"Infinite principal", Inputs{inf, 1, 2, "sac"}, ErrInvalidPrincipal, FieldPrincipal},
		{"Negative rate", Inputs{1000, -0.1, 2, "sac"}, ErrInvalidRate, FieldRate},
		{"Unparsable rate", Inputs{1000, nan, 2, "sac"}, ErrInvalidRate, FieldRate},
		{"Infinite rate", Inputs{1000, inf, 2, "sac"}, ErrInvalidRate, FieldRate},
		{"Zero periods", Inputs{1000, 1, 0, "sac"}, ErrInvalidPeriodCount, FieldPeriods},
		{"Negative periods", Inputs{1000, 1, -3, "sac"}, ErrInvalidPeriodCount, FieldPeriods},
		{"Fractional periods", Inputs{1000, 1, 2.5, "sac"}, ErrInvalidPeriodCount, FieldPeriods},
		{"Unparsable periods", Inputs{1000, 1, nan, "sac"}, ErrInvalidPeriodCount, FieldPeriods},
		{"Infinite periods", Inputs{1000, 1, inf, "sac"}, ErrInvalidPeriodCount, FieldPeriods},
		{"Unknown system", Inputs{1000, 1, 2, "german"}, ErrInvalidSystem, FieldSystem},
		{"Principal wins over rate", Inputs{-1, -1, 0, "x"}, ErrInvalidPrincipal, FieldPrincipal},
		{"Rate wins over periods", Inputs{1, -1, 0, "x"}, ErrInvalidRate, FieldRate},
		{"Periods win over system", Inputs{1, 1, 0, "x"}, ErrInvalidPeriodCount, FieldPeriods},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ValidateInputs(tt.inputs)
			if tt.expectedErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected *FieldError, got %T", err)
			}
			if fieldErr.Field != tt.expectedField {
				t.Errorf("expected field %q, got %q", tt.expectedField, fieldErr.Field)
			}
			if req != (amortization.Request{}) {
				t.Errorf("expected empty request on failure, got %+v", req)
			}
		})
	}
}

func TestValidateInputsBuildsRequest(t *testing.T) {
	req, err := ValidateInputs(Inputs{Principal: 1000, RatePercent: 1, Periods: 2, System: "Price"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Principal != 1000 || req.PeriodCount != 2 || req.System != amortization.Price {
		t.Errorf("unexpected request %+v", req)
	}
	if math.Abs(req.PeriodicRate-0.01) > 1e-15 {
		t.Errorf("expected periodic rate 0.01, got %v", req.PeriodicRate)
	}
}

func TestFieldErrorKind(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{ErrInvalidPrincipal, "InvalidPrincipal"},
		{ErrInvalidRate, "InvalidRate"},
		{ErrInvalidPeriodCount, "InvalidPeriodCount"},
		{ErrInvalidSystem, "InvalidSystem"},
		{errors.New("other"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			fieldErr := &FieldError{Field: "x", Err: tt.err}
			if fieldErr.Kind() != tt.expected {
				t.Errorf("Kind() = %q, expected %q", fieldErr.Kind(), tt.expected)
			}
		})
	}
}

func TestFieldErrorMessage(t *testing.T) {
	err := &FieldError{Field: FieldPrincipal, Err: ErrInvalidPrincipal, Detail: "got -5"}
	if err.Error() != "invalid principal: got -5" {
		t.Errorf("unexpected message %q", err.Error())
	}

	bare := &FieldError{Field: FieldRate, Err: ErrInvalidRate}
	if bare.Error() != "invalid rate" {
		t.Errorf("unexpected message %q", bare.Error())
	}
}

func TestValidateRequest(t *testing.T) {
	valid := amortization.Request{Principal: 100, PeriodicRate: 0.05, PeriodCount: 1, System: amortization.SAC}
	if err := ValidateRequest(valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	missingSystem := valid
	missingSystem.System = 0
	if err := ValidateRequest(missingSystem); !errors.Is(err, ErrInvalidSystem) {
		t.Errorf("expected ErrInvalidSystem, got %v", err)
	}

	zeroPeriods := valid
	zeroPeriods.PeriodCount = 0
	if err := ValidateRequest(zeroPeriods); !errors.Is(err, ErrInvalidPeriodCount) {
		t.Errorf("expected ErrInvalidPeriodCount, got %v", err)
	}
}

func TestValidatePeriodLimit(t *testing.T) {
	if err := ValidatePeriodLimit(5000, 0); err != nil {
		t.Errorf("expected no limit when limit is 0, got %v", err)
	}
	if err := ValidatePeriodLimit(360, 360); err != nil {
		t.Errorf("expected limit to be inclusive, got %v", err)
	}
	if err := ValidatePeriodLimit(361, 360); !errors.Is(err, ErrInvalidPeriodCount) {
		t.Errorf("expected ErrInvalidPeriodCount, got %v", err)
	}
}
