// Package trace records compositions for later analysis.
// This package has no dependencies on number/ — it stores pure data types.
package trace

// CompositionRecord captures a single composition and its stability verdict.
type CompositionRecord struct {
	Left           string
	Right          string
	Product        string
	Factors        string // factor set of the product, e.g. "{2^1, 29^1}"
	DistinctPrimes int
	Stable         bool
}
