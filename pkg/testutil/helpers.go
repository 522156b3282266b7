// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/loan-amortization/pkg/amortization"
	"github.com/iwvelando/loan-amortization/pkg/mathutil"
)

// FindRow finds a row by period in the rows slice.
// Returns a pointer to the row if found, nil otherwise.
func FindRow(rows []amortization.Row, period int) *amortization.Row {
	for i := range rows {
		if rows[i].Period == period {
			return &rows[i]
		}
	}
	return nil
}

// CheckScheduleInvariants verifies the properties every valid schedule holds:
// row count, sequential periods, chaining, zero final balance, per-row
// payment identity, totals, and conservation of the principal.
func CheckScheduleInvariants(t *testing.T, req amortization.Request, result amortization.Result, tolerance float64) {
	t.Helper()

	if len(result.Rows) != req.PeriodCount {
		t.Fatalf("expected %d rows, got %d", req.PeriodCount, len(result.Rows))
	}
	if result.Rows[0].OpeningBalance != req.Principal {
		t.Errorf("first opening balance = %v, expected principal %v", result.Rows[0].OpeningBalance, req.Principal)
	}

	var amortized, interest, payment float64
	for i, row := range result.Rows {
		if row.Period != i+1 {
			t.Errorf("row %d has period %d", i, row.Period)
		}
		if i+1 < len(result.Rows) && row.ClosingBalance != result.Rows[i+1].OpeningBalance {
			t.Errorf("period %d closing %v does not chain into opening %v",
				row.Period, row.ClosingBalance, result.Rows[i+1].OpeningBalance)
		}
		if !mathutil.WithinTolerance(row.Payment, row.Amortization+row.Interest, tolerance) {
			t.Errorf("period %d payment %v != amortization %v + interest %v",
				row.Period, row.Payment, row.Amortization, row.Interest)
		}
		if row.Interest < 0 {
			t.Errorf("period %d has negative interest %v", row.Period, row.Interest)
		}
		amortized += row.Amortization
		interest += row.Interest
		payment += row.Payment
	}

	last := result.Rows[len(result.Rows)-1]
	if last.ClosingBalance != 0 {
		t.Errorf("last closing balance = %v, expected exactly 0", last.ClosingBalance)
	}
	if result.FinalBalance != 0 {
		t.Errorf("final balance = %v, expected exactly 0", result.FinalBalance)
	}
	if !mathutil.WithinTolerance(amortized, req.Principal, tolerance) {
		t.Errorf("sum of amortization = %v, expected principal %v", amortized, req.Principal)
	}
	if !mathutil.WithinTolerance(interest, result.TotalInterest, tolerance) {
		t.Errorf("total interest = %v, rows sum to %v", result.TotalInterest, interest)
	}
	if !mathutil.WithinTolerance(payment, result.TotalPayment, tolerance) {
		t.Errorf("total payment = %v, rows sum to %v", result.TotalPayment, payment)
	}
}
