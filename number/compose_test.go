package number

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riemann-kernel/kernel/number/trace"
)

// skewedOperand reports an allocation ratio other than AllocRatio.
type skewedOperand struct {
	value *big.Int
	ratio float64
}

func (s skewedOperand) Value() *big.Int      { return new(big.Int).Set(s.value) }
func (s skewedOperand) AllocRatio() float64 { return s.ratio }

// countingComposer returns a Composer whose notifications increment *count.
func countingComposer(count *int, opts ...ComposerOption) *Composer {
	obs := StabilityObserverFunc(func(StabilityEvent) { *count++ })
	return NewComposer(append([]ComposerOption{WithObserver(obs)}, opts...)...)
}

func TestCompose_TwoPrimes_ProducesDocument(t *testing.T) {
	// GIVEN Prime(2) and Prime(29)
	a := NewPrime(big.NewInt(2))
	b := NewPrime(big.NewInt(29))

	// WHEN composed
	result, err := Compose(a, b)

	// THEN the result is Composite(58) with factors {2^1, 29^1}
	require.NoError(t, err)
	assert.Equal(t, int64(58), result.Value().Int64())
	assert.Equal(t, KindComposite, result.Kind())
	want := NewFactorSet(NewPrimeFactor(big.NewInt(2), 1), NewPrimeFactor(big.NewInt(29), 1))
	assert.True(t, result.Factors().Equal(want), "factors = %s", result.Factors())
}

func TestCompose_ValueIsProduct(t *testing.T) {
	values := []int64{-12, -1, 0, 1, 2, 29, 58, 1080, 118098}
	c := NewComposer(WithObserver(nil))
	for _, x := range values {
		for _, y := range values {
			result, err := c.Compose(NewComposite(big.NewInt(x)), NewComposite(big.NewInt(y)))
			require.NoError(t, err)
			assert.Equal(t, x*y, result.Value().Int64(), "%d * %d", x, y)
		}
	}
}

func TestCompose_NoOverflow(t *testing.T) {
	// GIVEN operands whose product overflows int64
	a := NewScalar(big.NewInt(1 << 62))
	b := NewPrime(big.NewInt(4294967311))

	result, err := NewComposer(WithObserver(nil)).Compose(a, b)
	require.NoError(t, err)

	want := new(big.Int).Mul(big.NewInt(1<<62), big.NewInt(4294967311))
	assert.Equal(t, 0, result.Value().Cmp(want))
	assert.Equal(t, 0, result.Factors().Product().Cmp(want))
}

func TestCompose_RefactorizesProduct(t *testing.T) {
	// GIVEN a Scalar, which carries no factors, and a Prime
	a := NewScalar(big.NewInt(1080))
	b := NewPrime(big.NewInt(3))

	// WHEN composed
	result, err := NewComposer(WithObserver(nil)).Compose(a, b)
	require.NoError(t, err)

	// THEN the product is factorized from scratch: 3240 = 2^3 · 3^4 · 5
	assert.Equal(t, "{2^3, 3^4, 5^1}", result.Factors().String())
}

func TestCompose_NotifiesStabilityOnEveryComposition(t *testing.T) {
	// GIVEN a composer counting notifications
	count := 0
	c := countingComposer(&count)

	// WHEN composing a variety of operands, including empty factor sets
	pairs := [][2]*Number{
		{NewPrime(big.NewInt(2)), NewPrime(big.NewInt(29))},
		{NewScalar(big.NewInt(0)), NewComposite(big.NewInt(5))},
		{NewComposite(big.NewInt(1)), NewComposite(big.NewInt(1))},
		{NewComposite(big.NewInt(29160000)), NewScalar(big.NewInt(-7))},
	}
	for _, p := range pairs {
		_, err := c.Compose(p[0], p[1])
		require.NoError(t, err)
	}

	// THEN every composition is reported stable
	assert.Equal(t, len(pairs), count)
}

func TestCompose_RecordsTrace(t *testing.T) {
	ct := trace.NewCompositionTrace()
	c := NewComposer(WithObserver(nil), WithTrace(ct))

	_, err := c.Compose(NewPrime(big.NewInt(2)), NewPrime(big.NewInt(29)))
	require.NoError(t, err)
	_, err = c.Compose(NewComposite(big.NewInt(1080)), NewScalar(big.NewInt(1)))
	require.NoError(t, err)

	require.Len(t, ct.Compositions, 2)
	assert.Equal(t, trace.CompositionRecord{
		Left: "2", Right: "29", Product: "58", Factors: "{2^1, 29^1}", DistinctPrimes: 2, Stable: true,
	}, ct.Compositions[0])

	summary := trace.Summarize(ct)
	assert.Equal(t, 2, summary.TotalCompositions)
	assert.Equal(t, 2, summary.StableCount)
	assert.Equal(t, 3, summary.MaxDistinctPrimes)
}

func TestCompose_BothOperandsSkewed_ReturnsSymmetryError(t *testing.T) {
	// GIVEN two operands forced away from 0.5
	a := skewedOperand{value: big.NewInt(2), ratio: 0.25}
	b := skewedOperand{value: big.NewInt(29), ratio: 0.75}
	count := 0

	// WHEN composed
	result, err := countingComposer(&count).Compose(a, b)

	// THEN composition fails with a SymmetryError and no notification
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "Alloc violation")
	assert.True(t, errors.Is(err, ErrSymmetry))

	var symErr *SymmetryError
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, 0.25, symErr.Left)
	assert.Equal(t, 0.75, symErr.Right)
	assert.Equal(t, 0, count)
}

func TestCompose_OneOperandSkewed_Succeeds(t *testing.T) {
	// Only a violation on both sides fails.
	skewed := skewedOperand{value: big.NewInt(2), ratio: 0.1}
	c := NewComposer(WithObserver(nil))

	result, err := c.Compose(skewed, NewPrime(big.NewInt(29)))
	require.NoError(t, err)
	assert.Equal(t, int64(58), result.Value().Int64())

	result, err = c.Compose(NewPrime(big.NewInt(29)), skewed)
	require.NoError(t, err)
	assert.Equal(t, int64(58), result.Value().Int64())
}

func TestIsScaleInvariant_HoldsForEveryLambda(t *testing.T) {
	c := NewComposer(WithObserver(nil))
	numbers := []*Number{
		NewPrime(big.NewInt(2)),
		NewComposite(big.NewInt(58)),
		NewScalar(big.NewInt(0)),
	}
	for _, n := range numbers {
		for _, lambda := range []int64{-29, -1, 0, 1, 2, 1080} {
			assert.True(t, c.IsScaleInvariant(n, big.NewInt(lambda)), "%s with lambda %d", n, lambda)
		}
	}
}

func TestIsScaleInvariant_SkewedOperand_StillHolds(t *testing.T) {
	// The scalar side always carries AllocRatio, so the check cannot fail.
	skewed := skewedOperand{value: big.NewInt(58), ratio: 0}
	assert.True(t, NewComposer(WithObserver(nil)).IsScaleInvariant(skewed, big.NewInt(2)))
}

func TestNumber_MethodForms(t *testing.T) {
	page58, err := NewPrime(big.NewInt(2)).Compose(NewPrime(big.NewInt(29)))
	require.NoError(t, err)
	assert.Equal(t, "58", page58.Value().String())
	assert.True(t, page58.IsScaleInvariant(big.NewInt(2)))
}

func TestIsHalfFilledStable_IsTautology(t *testing.T) {
	for distinct := 0; distinct <= 64; distinct++ {
		if !isHalfFilledStable(distinct, distinct*2) {
			t.Fatalf("expected stable for %d distinct primes", distinct)
		}
	}
}
