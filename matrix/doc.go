// Package matrix provides the dense container the linear solver mutates.
//
// What & Why:
//
//	Dense[T] is a row-major, single-allocation, bounds-checked matrix over a
//	scalar.Scalar field (float64 or complex128). A column vector is simply a
//	Dense with one column, which lets a single row operation update the
//	coefficient matrix and the right-hand side in lock-step.
//
// Safety:
//
//	At, Set, Row and RawRow validate indices and return ErrOutOfRange instead
//	of panicking; nothing grows implicitly. RawRow aliases the backing storage
//	so row kernels can update a row without copying it.
//
// Complexity:
//
//	Rows, Cols, At and Set run in O(1).
//	Clone, Values and Equal run in O(rows*cols).
//	MulVec runs in O(rows*cols).
//
// Concurrency:
//
//	A Dense is not safe for concurrent mutation. The caller owns it.
package matrix
