package number

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/sirupsen/logrus"
)

// AllocRatio is the allocation ratio carried by every Number, whatever its kind.
const AllocRatio = 0.5

// Kind is the closed set of number variants. Each kind has its own
// decomposition rule, applied once when the Number is built.
type Kind int

const (
	KindComposite Kind = iota
	KindPrime
	KindScalar
)

var kindNames = map[Kind]string{
	KindComposite: "composite",
	KindPrime:     "prime",
	KindScalar:    "scalar",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a kind name (case-insensitive) to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown number kind %q (want composite, prime or scalar)", s)
}

// Number is an integer together with the prime factors produced by its kind.
// Value and factors are fixed at construction and never change afterwards.
type Number struct {
	kind    Kind
	value   *big.Int
	factors FactorSet
}

// New builds a Number of the given kind and decomposes it.
func New(kind Kind, value *big.Int) *Number {
	n := &Number{kind: kind, value: new(big.Int).Set(value)}
	n.factors = decompose(kind, n.value)
	logrus.Debugf("decomposed %s %s into %s", kind, n.value, n.factors)
	return n
}

// NewPrime trusts the caller that value is prime; no primality check is made.
func NewPrime(value *big.Int) *Number { return New(KindPrime, value) }

// NewComposite factorizes value by trial division.
func NewComposite(value *big.Int) *Number { return New(KindComposite, value) }

// NewScalar builds a pure multiplicative scale with no factors.
func NewScalar(value *big.Int) *Number { return New(KindScalar, value) }

func decompose(kind Kind, value *big.Int) FactorSet {
	switch kind {
	case KindPrime:
		if value.Sign() == 0 {
			return FactorSet{}
		}
		return NewFactorSet(NewPrimeFactor(value, 1))
	case KindComposite:
		return Factorize(value)
	default:
		// Scalars are scale only, not composed quantities.
		return FactorSet{}
	}
}

// Factorize decomposes n by trial division over increasing divisors starting at 2,
// while divisor² ≤ remainder. A remainder above 1 after the loop is itself prime.
// Values ≤ 1 produce the empty set.
func Factorize(n *big.Int) FactorSet {
	one := big.NewInt(1)
	if n.Cmp(one) <= 0 {
		return FactorSet{}
	}

	rem := new(big.Int).Set(n)
	var factors []PrimeFactor
	q, r := new(big.Int), new(big.Int)
	sq := new(big.Int)
	for d := big.NewInt(2); sq.Mul(d, d).Cmp(rem) <= 0; d.Add(d, one) {
		exp := 0
		for {
			q.QuoRem(rem, d, r)
			if r.Sign() != 0 {
				break
			}
			rem.Set(q)
			exp++
		}
		if exp > 0 {
			factors = append(factors, NewPrimeFactor(d, exp))
		}
	}
	if rem.Cmp(one) > 0 {
		factors = append(factors, NewPrimeFactor(rem, 1))
	}
	return NewFactorSet(factors...)
}

// Kind returns the variant the Number was built as.
func (n *Number) Kind() Kind { return n.kind }

// Value returns a copy of the integer value.
func (n *Number) Value() *big.Int { return new(big.Int).Set(n.value) }

// Factors returns the factor set computed at construction.
func (n *Number) Factors() FactorSet { return n.factors }

// AllocRatio is always the package constant AllocRatio.
func (n *Number) AllocRatio() float64 { return AllocRatio }

// DistinctPrimes counts the distinct primes among the factors.
func (n *Number) DistinctPrimes() int {
	seen := make(map[string]bool, n.factors.Len())
	for _, f := range n.factors.factors {
		seen[f.prime.String()] = true
	}
	return len(seen)
}

func (n *Number) String() string {
	return fmt.Sprintf("%s(%s) %s", n.kind, n.value, n.factors)
}
