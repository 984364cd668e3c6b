// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// Solve solves a·x = b in place: on success b holds x and the leading square
// block of a is the identity.
//
// Implementation:
//   - Stage 1 (Validate): a, b non-nil; a.Cols() == b.Rows(); b.Cols() == 1.
//     A violation returns ErrIncompatibleDimensions before anything is mutated.
//   - Stage 2 (Eliminate): forward elimination with partial pivoting.
//   - Stage 3 (BackSubstitute): reduce to the identity.
//
// Errors from either phase propagate unchanged apart from the "Solve:"
// prefix; match them with errors.Is. There is no retry and no rollback.
//
// Complexity: O(n³) time, O(1) extra memory.
func Solve[T scalar.Scalar](a, b *matrix.Dense[T], opts ...Option[T]) error {
	if a == nil || b == nil {
		return opErrorf(opSolve, ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return opErrorf(opSolve, fmt.Errorf("A and b must have compatible dimensions (A is %dx%d, b has %d rows): %w",
			a.Rows(), a.Cols(), b.Rows(), ErrIncompatibleDimensions))
	}
	if b.Cols() != 1 {
		return opErrorf(opSolve, fmt.Errorf("b must be a column vector (b has %d columns): %w", b.Cols(), ErrIncompatibleDimensions))
	}

	e := newEngine(a, b, opts)
	if err := e.eliminate(); err != nil {
		return opErrorf(opSolve, err)
	}
	if err := e.backSubstitute(); err != nil {
		return opErrorf(opSolve, err)
	}

	return nil
}
