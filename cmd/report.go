package cmd

import (
	"fmt"
	"io"
	"math/big"

	"github.com/riemann-kernel/kernel/number"
)

// reportObserver prints the stability notification as part of a report.
func reportObserver(w io.Writer) number.StabilityObserver {
	return number.StabilityObserverFunc(func(e number.StabilityEvent) {
		fmt.Fprintf(w, "Stable isotope: Half-alloc resonance (distinct=%d, capacity=%d)\n", e.DistinctPrimes, e.Capacity)
	})
}

// writeFactorReport prints the decomposition of n.
func writeFactorReport(w io.Writer, n *number.Number) {
	fmt.Fprintln(w, "=== Factorization ===")
	fmt.Fprintf(w, "Kind            : %s\n", n.Kind())
	fmt.Fprintf(w, "Value           : %s\n", n.Value())
	fmt.Fprintf(w, "Factors         : %s\n", n.Factors())
	fmt.Fprintf(w, "Distinct Primes : %d\n", n.DistinctPrimes())
	fmt.Fprintf(w, "Alloc Ratio     : %g\n", n.AllocRatio())
}

// writeComposeReport composes a and b and prints the result.
func writeComposeReport(w io.Writer, a, b *number.Number) error {
	fmt.Fprintln(w, "=== Composition ===")
	fmt.Fprintf(w, "Left            : %s\n", a)
	fmt.Fprintf(w, "Right           : %s\n", b)

	result, err := number.NewComposer(number.WithObserver(reportObserver(w))).Compose(a, b)
	if err != nil {
		return fmt.Errorf("compose %s with %s: %w", a.Value(), b.Value(), err)
	}
	fmt.Fprintf(w, "Product         : %s\n", result.Value())
	fmt.Fprintf(w, "Factors         : %s\n", result.Factors())
	fmt.Fprintf(w, "Distinct Primes : %d\n", result.DistinctPrimes())
	return nil
}

// writeScaleReport prints whether n is scale invariant under lambda.
func writeScaleReport(w io.Writer, n *number.Number, lambda *big.Int) {
	fmt.Fprintln(w, "=== Scale Invariance ===")
	fmt.Fprintf(w, "Number          : %s\n", n)
	fmt.Fprintf(w, "Lambda          : %s\n", lambda)
	ok := number.NewComposer(number.WithObserver(reportObserver(w))).IsScaleInvariant(n, lambda)
	fmt.Fprintf(w, "Scale Invariant : %t\n", ok)
}

// writePresetsReport prints every preset seed with its factor set.
func writePresetsReport(w io.Writer, cfg PresetsConfig) error {
	fmt.Fprintln(w, "=== Presets ===")
	for _, p := range cfg.Presets {
		seed, err := parseBigInt(p.Seed)
		if err != nil {
			return fmt.Errorf("preset %s: %w", p.Name, err)
		}
		fmt.Fprintf(w, "%-14s %12s  %s\n", p.Name, seed.String(), number.NewComposite(seed).Factors())
	}
	return nil
}

// writeKernelReport runs the demonstration: Prime(2) ∘ Prime(29), then a scale check.
func writeKernelReport(w io.Writer, lambda *big.Int) error {
	fmt.Fprintln(w, "Initializing Riemann Kernel...")

	c := number.NewComposer(number.WithObserver(reportObserver(w)))
	p2 := number.NewPrime(big.NewInt(2))
	p29 := number.NewPrime(big.NewInt(29))

	page58, err := c.Compose(p2, p29)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Document composed: page count = %s\n", page58.Value())

	if c.IsScaleInvariant(page58, lambda) {
		fmt.Fprintln(w, "Scale invariant: Zeros pinned at 1/2")
	}
	fmt.Fprintln(w, "|primes| = numbers")
	fmt.Fprintln(w, "Middleware Active. RH compiled.")
	return nil
}
