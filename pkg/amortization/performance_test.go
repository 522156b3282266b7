package amortization

import (
	"sync"
	"testing"
	"time"
)

// TestPerformance logs how long long schedules take.
func TestPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping performance test in short mode.")
	}

	for _, system := range Systems {
		req := Request{Principal: 1_000_000, PeriodicRate: 0.001, PeriodCount: 100_000, System: system}

		start := time.Now()
		result := ComputeSchedule(req)
		elapsed := time.Since(start)

		if len(result.Rows) != req.PeriodCount {
			t.Fatalf("%s: expected %d rows, got %d", system.Label(), req.PeriodCount, len(result.Rows))
		}
		if result.FinalBalance != 0 {
			t.Fatalf("%s: expected zero final balance, got %v", system.Label(), result.FinalBalance)
		}
		t.Logf("%s with %d periods: %v", system.Label(), req.PeriodCount, elapsed)
	}
}

// TestDataConsistency computes the same schedules concurrently and checks
// that every goroutine sees identical results.
func TestDataConsistency(t *testing.T) {
	requests := []Request{
		{Principal: 1000, PeriodicRate: 0.01, PeriodCount: 2, System: SAC},
		{Principal: 1000, PeriodicRate: 0.01, PeriodCount: 2, System: Price},
		{Principal: 175000, PeriodicRate: 0.045 / 12, PeriodCount: 360, System: Price},
		{Principal: 250000, PeriodicRate: 0.0075, PeriodCount: 420, System: SAC},
	}

	expected := make([]Result, len(requests))
	for i, req := range requests {
		expected[i] = ComputeSchedule(req)
	}

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan string, workers*len(requests))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, req := range requests {
				got := ComputeSchedule(req)
				if got.TotalPayment != expected[i].TotalPayment || got.TotalInterest != expected[i].TotalInterest ||
					len(got.Rows) != len(expected[i].Rows) {
					errs <- req.System.Label()
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for label := range errs {
		t.Errorf("%s schedule differed between concurrent runs", label)
	}
}

func BenchmarkComputeSchedule(b *testing.B) {
	for _, system := range Systems {
		req := Request{Principal: 300000, PeriodicRate: 0.008, PeriodCount: 360, System: system}
		b.Run(system.Label(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = ComputeSchedule(req)
			}
		})
	}
}
