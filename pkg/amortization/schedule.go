// Package amortization computes fixed-rate loan amortization schedules under
// the SAC (constant amortization) and Price (constant payment) systems.
//
// The package does no validation, I/O or logging: callers validate requests
// (see pkg/validation) before calling ComputeSchedule, and every call is
// independent, so schedules may be computed concurrently.
package amortization

import (
	"math"

	"github.com/iwvelando/loan-amortization/pkg/constants"
	"github.com/iwvelando/loan-amortization/pkg/mathutil"
)

// Request holds the inputs of one schedule calculation.
type Request struct {
	Principal    float64 `json:"principal"`
	PeriodicRate float64 `json:"periodicRate"` // fraction, 0.01 for 1%
	PeriodCount  int     `json:"periodCount"`
	System       System  `json:"system"`
}

// Row holds the values for a given period.
type Row struct {
	Period         int     `json:"period"`
	OpeningBalance float64 `json:"openingBalance"`
	Amortization   float64 `json:"amortization"`
	Interest       float64 `json:"interest"`
	Payment        float64 `json:"payment"`
	ClosingBalance float64 `json:"closingBalance"`
}

// Result is a complete schedule plus its totals.
type Result struct {
	System System `json:"system"`
	Rows   []Row  `json:"rows"`
	// BaseValue is the constant amortization for SAC and the constant
	// payment for Price.
	BaseValue     float64 `json:"baseValue"`
	TotalInterest float64 `json:"totalInterest"`
	TotalPayment  float64 `json:"totalPayment"`
	FinalBalance  float64 `json:"finalBalance"`
}

// PricePayment returns the constant payment that fully amortizes principal
// over periods at rate, using the closed-form annuity formula
// P·i·f/(f-1) with f = (1+i)^n.
func PricePayment(principal, rate float64, periods int) float64 {
	if rate == 0 {
		return principal / float64(periods)
	}

	// growth is f-1, computed without cancellation for rates near zero.
	growth := math.Expm1(float64(periods) * math.Log1p(rate))
	if math.IsInf(growth, 1) {
		// Limit of the formula as f grows without bound.
		return principal * rate
	}
	return principal * rate * (growth + 1) / growth
}

// SACAmortization returns the constant amortization of a SAC schedule.
func SACAmortization(principal float64, periods int) float64 {
	return principal / float64(periods)
}

// ComputeSchedule produces the period-by-period schedule for a validated
// request. Behavior is undefined for requests that fail validation.
func ComputeSchedule(req Request) Result {
	result := Result{
		System: req.System,
		Rows:   make([]Row, 0, req.PeriodCount),
	}

	if req.System == Price {
		result.BaseValue = PricePayment(req.Principal, req.PeriodicRate, req.PeriodCount)
	} else {
		result.BaseValue = SACAmortization(req.Principal, req.PeriodCount)
	}

	balance := req.Principal
	for period := 1; period <= req.PeriodCount; period++ {
		row := Row{
			Period:         period,
			OpeningBalance: balance,
			Interest:       balance * req.PeriodicRate,
		}

		if req.System == Price {
			row.Payment = result.BaseValue
			row.Amortization = row.Payment - row.Interest
		} else {
			row.Amortization = result.BaseValue
			row.Payment = row.Amortization + row.Interest
		}

		row.ClosingBalance = balance - row.Amortization
		if period == req.PeriodCount && !mathutil.Negligible(row.ClosingBalance, constants.Epsilon*math.Max(1, req.Principal)) {
			// The payment cannot move the balance at this precision (very
			// high growth), so the last period settles what is left.
			row.Amortization = balance
			row.Payment = row.Amortization + row.Interest
		}
		if period == req.PeriodCount || mathutil.Negligible(row.ClosingBalance, constants.Epsilon) {
			// Absorb floating-point drift.
			row.ClosingBalance = 0
		}

		result.Rows = append(result.Rows, row)
		result.TotalInterest += row.Interest
		result.TotalPayment += row.Payment
		balance = row.ClosingBalance
	}

	result.FinalBalance = balance
	return result
}
