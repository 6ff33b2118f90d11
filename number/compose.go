package number

import (
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/riemann-kernel/kernel/number/trace"
)

// Operand is anything that can take part in a composition.
// *Number is the only implementation in this package; its ratio is always AllocRatio.
type Operand interface {
	Value() *big.Int
	AllocRatio() float64
}

// StabilityEvent is emitted after every composition whose result is half-filled stable.
type StabilityEvent struct {
	Result         *Number
	DistinctPrimes int
	Capacity       int
}

// StabilityObserver receives stability notifications from a Composer.
type StabilityObserver interface {
	Stable(event StabilityEvent)
}

// StabilityObserverFunc adapts a function to StabilityObserver.
type StabilityObserverFunc func(event StabilityEvent)

func (f StabilityObserverFunc) Stable(event StabilityEvent) { f(event) }

// LogObserver announces stability through logrus.
type LogObserver struct{}

func (LogObserver) Stable(event StabilityEvent) {
	logrus.WithFields(logrus.Fields{
		"value":           event.Result.value.String(),
		"distinct_primes": event.DistinctPrimes,
		"capacity":        event.Capacity,
	}).Info("Stable isotope: Half-alloc resonance")
}

// Composer multiplies operands and re-factorizes the product.
type Composer struct {
	observer StabilityObserver
	trace    *trace.CompositionTrace
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithObserver replaces the default LogObserver. A nil observer silences notifications.
func WithObserver(o StabilityObserver) ComposerOption {
	return func(c *Composer) { c.observer = o }
}

// WithTrace records every composition into t.
func WithTrace(t *trace.CompositionTrace) ComposerOption {
	return func(c *Composer) { c.trace = t }
}

// NewComposer returns a Composer that logs stability notifications unless overridden.
func NewComposer(opts ...ComposerOption) *Composer {
	c := &Composer{observer: LogObserver{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose multiplies a and b and returns the product as a freshly factorized Composite.
// It fails with a *SymmetryError only when both operands violate AllocRatio.
func (c *Composer) Compose(a, b Operand) (*Number, error) {
	if a.AllocRatio() != AllocRatio && b.AllocRatio() != AllocRatio {
		return nil, &SymmetryError{Left: a.AllocRatio(), Right: b.AllocRatio()}
	}

	product := new(big.Int).Mul(a.Value(), b.Value())
	result := NewComposite(product)

	distinct := result.DistinctPrimes()
	capacity := distinct * 2
	stable := isHalfFilledStable(distinct, capacity)
	if stable && c.observer != nil {
		c.observer.Stable(StabilityEvent{Result: result, DistinctPrimes: distinct, Capacity: capacity})
	}
	if c.trace != nil {
		c.trace.Record(trace.CompositionRecord{
			Left:           a.Value().String(),
			Right:          b.Value().String(),
			Product:        product.String(),
			Factors:        result.factors.String(),
			DistinctPrimes: distinct,
			Stable:         stable,
		})
	}
	return result, nil
}

// IsScaleInvariant composes n with Scalar(lambda) and reports whether the
// result keeps AllocRatio. It holds for every n and every lambda.
func (c *Composer) IsScaleInvariant(n Operand, lambda *big.Int) bool {
	scaled, err := c.Compose(n, NewScalar(lambda))
	if err != nil {
		return false
	}
	return scaled.AllocRatio() == AllocRatio
}

// half-filled orbital: distinct primes fill exactly half the capacity.
func isHalfFilledStable(distinct, capacity int) bool {
	return distinct == capacity/2
}

var defaultComposer = NewComposer()

// Compose uses a Composer that logs stability notifications.
func Compose(a, b Operand) (*Number, error) { return defaultComposer.Compose(a, b) }

// IsScaleInvariant uses a Composer that logs stability notifications.
func IsScaleInvariant(n Operand, lambda *big.Int) bool {
	return defaultComposer.IsScaleInvariant(n, lambda)
}

// Compose is the method form of the package-level Compose.
func (n *Number) Compose(other Operand) (*Number, error) { return Compose(n, other) }

// IsScaleInvariant is the method form of the package-level IsScaleInvariant.
func (n *Number) IsScaleInvariant(lambda *big.Int) bool { return IsScaleInvariant(n, lambda) }
