package number

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// PrimeFactor is a single prime and its multiplicity within a decomposed integer.
// Identity is the (prime, exponent) pair.
type PrimeFactor struct {
	prime    *big.Int
	exponent int
}

// NewPrimeFactor copies p so later mutation by the caller cannot leak in.
func NewPrimeFactor(p *big.Int, exponent int) PrimeFactor {
	return PrimeFactor{prime: new(big.Int).Set(p), exponent: exponent}
}

// Prime returns a copy of the prime.
func (f PrimeFactor) Prime() *big.Int {
	if f.prime == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(f.prime)
}

// Exponent returns the multiplicity of the prime.
func (f PrimeFactor) Exponent() int { return f.exponent }

// Equal reports whether both factors have the same prime and exponent.
func (f PrimeFactor) Equal(other PrimeFactor) bool {
	return f.exponent == other.exponent && f.Prime().Cmp(other.Prime()) == 0
}

// Key is the canonical "p^e" form used for set identity.
func (f PrimeFactor) Key() string {
	return fmt.Sprintf("%s^%d", f.Prime().String(), f.exponent)
}

func (f PrimeFactor) String() string { return f.Key() }

// FactorSet is an immutable set of PrimeFactor, unique by (prime, exponent).
// Factors are held in ascending prime order; the zero value is the empty set.
type FactorSet struct {
	factors []PrimeFactor
}

// NewFactorSet builds a set from fs, dropping duplicate (prime, exponent) pairs.
func NewFactorSet(fs ...PrimeFactor) FactorSet {
	seen := make(map[string]bool, len(fs))
	out := make([]PrimeFactor, 0, len(fs))
	for _, f := range fs {
		k := f.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, NewPrimeFactor(f.Prime(), f.exponent))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].prime.Cmp(out[j].prime); c != 0 {
			return c < 0
		}
		return out[i].exponent < out[j].exponent
	})
	return FactorSet{factors: out}
}

// Len returns the number of distinct (prime, exponent) entries.
func (s FactorSet) Len() int { return len(s.factors) }

// Factors returns a copy of the entries in ascending prime order.
func (s FactorSet) Factors() []PrimeFactor {
	out := make([]PrimeFactor, len(s.factors))
	copy(out, s.factors)
	return out
}

// Contains reports whether f is a member of the set.
func (s FactorSet) Contains(f PrimeFactor) bool {
	for _, g := range s.factors {
		if g.Equal(f) {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold the same entries.
func (s FactorSet) Equal(other FactorSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := range s.factors {
		if !s.factors[i].Equal(other.factors[i]) {
			return false
		}
	}
	return true
}

// Product multiplies prime^exponent over the set. The empty set yields 1.
func (s FactorSet) Product() *big.Int {
	product := big.NewInt(1)
	for _, f := range s.factors {
		term := new(big.Int).Exp(f.prime, big.NewInt(int64(f.exponent)), nil)
		product.Mul(product, term)
	}
	return product
}

func (s FactorSet) String() string {
	parts := make([]string, len(s.factors))
	for i, f := range s.factors {
		parts[i] = f.Key()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
