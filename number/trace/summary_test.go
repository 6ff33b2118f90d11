package trace

import "testing"

func TestSummarize_NilTrace_ReturnsZeroSummary(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalCompositions != 0 || summary.StableCount != 0 || summary.MaxDistinctPrimes != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
	if summary.PrimeCountDistribution == nil {
		t.Error("expected non-nil distribution map")
	}
}

func TestSummarize_CountsStableAndDistribution(t *testing.T) {
	// GIVEN three compositions with 2, 2 and 3 distinct primes, one not stable
	ct := NewCompositionTrace()
	ct.Record(CompositionRecord{Product: "58", DistinctPrimes: 2, Stable: true})
	ct.Record(CompositionRecord{Product: "116", DistinctPrimes: 2, Stable: true})
	ct.Record(CompositionRecord{Product: "1080", DistinctPrimes: 3, Stable: false})

	// WHEN summarized
	summary := Summarize(ct)

	// THEN totals and distribution match
	if summary.TotalCompositions != 3 {
		t.Errorf("TotalCompositions = %d, want 3", summary.TotalCompositions)
	}
	if summary.StableCount != 2 {
		t.Errorf("StableCount = %d, want 2", summary.StableCount)
	}
	if summary.MaxDistinctPrimes != 3 {
		t.Errorf("MaxDistinctPrimes = %d, want 3", summary.MaxDistinctPrimes)
	}
	if summary.PrimeCountDistribution[2] != 2 || summary.PrimeCountDistribution[3] != 1 {
		t.Errorf("unexpected distribution %v", summary.PrimeCountDistribution)
	}
}
