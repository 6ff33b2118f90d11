package trace

// TraceSummary aggregates statistics from a CompositionTrace.
type TraceSummary struct {
	TotalCompositions      int
	StableCount            int
	MaxDistinctPrimes      int
	PrimeCountDistribution map[int]int // distinct prime count → number of compositions
}

// Summarize computes aggregate statistics from a CompositionTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(ct *CompositionTrace) *TraceSummary {
	summary := &TraceSummary{
		PrimeCountDistribution: make(map[int]int),
	}
	if ct == nil {
		return summary
	}

	summary.TotalCompositions = len(ct.Compositions)
	for _, c := range ct.Compositions {
		if c.Stable {
			summary.StableCount++
		}
		if c.DistinctPrimes > summary.MaxDistinctPrimes {
			summary.MaxDistinctPrimes = c.DistinctPrimes
		}
		summary.PrimeCountDistribution[c.DistinctPrimes]++
	}
	return summary
}
