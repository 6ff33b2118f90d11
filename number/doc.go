// Package number provides the factorization-and-composition kernel.
//
// # Reading Guide
//
//   - factor.go: PrimeFactor and FactorSet, the immutable factor multiset
//   - number.go: Kind (prime, composite, scalar) and the Number value, decomposed once at construction
//   - compose.go: Compose and IsScaleInvariant, the symmetry check and the stability notification
//   - errors.go: SymmetryError, raised only when both operands violate AllocRatio
//
// Every Number carries AllocRatio (0.5). Operands built by this package can
// therefore never trigger a SymmetryError; the branch is reachable through
// the Operand interface with values that report a different ratio.
//
// Composition records can be collected with number/trace.
package number
