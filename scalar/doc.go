// Package scalar defines the numeric domains a linear solve can run over.
//
// What
//
//   - Scalar is a type-set constraint (float64 | complex128). Arithmetic
//     (+, -, *, /) uses the native Go operators for both members, so every
//     algorithm in this module is written once and instantiated twice.
//   - Abs, IsZero, IsFinite, Format and Parse cover the capabilities that
//     differ between the real and the complex domain.
//
// Why
//
//	Partial pivoting compares magnitudes. For reals this is the absolute
//	value; for complex numbers it is the Euclidean norm of (re, im), never a
//	component-wise comparison. Keeping that rule in one function guarantees
//	the pivot selector cannot disagree with the formatter or the parser about
//	which domain it is in.
//
// Complexity
//
//	Every function is O(1).
package scalar
