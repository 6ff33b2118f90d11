package number

import (
	"errors"
	"fmt"
)

// ErrSymmetry is matched by every SymmetryError through errors.Is.
var ErrSymmetry = errors.New("Alloc violation: Zeta segfault")

// SymmetryError reports that both operands of a composition carried an
// allocation ratio other than AllocRatio.
type SymmetryError struct {
	Left  float64
	Right float64
}

func (e *SymmetryError) Error() string {
	return fmt.Sprintf("%s (Re(ρ) ≠ 1/2 → Prime density OOM): left=%g right=%g", ErrSymmetry, e.Left, e.Right)
}

func (e *SymmetryError) Unwrap() error { return ErrSymmetry }
