// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// Eliminate reduces m to row-echelon form by forward elimination with
// partial pivoting, transforming v in lock-step.
//
// Implementation:
//   - For col = 0 .. max(rows, cols)-1:
//     Stage 1: SelectPivot(m, col) and swap the winner into row col.
//     Stage 2: for every r > col, add -m[r][col]/pivot times row col to row r.
//
// Rectangular inputs are accepted as long as (m, v) are row-paired; a
// column without a candidate row reports ErrSingular, and a row that v does
// not have reports ErrRowOutOfBounds.
//
// Complexity: O(n³) time, O(1) extra memory.
func Eliminate[T scalar.Scalar](m, v *matrix.Dense[T], opts ...Option[T]) error {
	if err := validatePair(m, v); err != nil {
		return opErrorf(opEliminate, err)
	}

	return newEngine(m, v, opts).eliminate()
}

func (e *engine[T]) eliminate() error {
	var (
		n      = max(e.m.Rows(), e.m.Cols())
		col, r int
		p      int
		pivot  T
		x      T
		err    error
	)
	for col = 0; col < n; col++ {
		if p, err = SelectPivot(e.m, col); err != nil {
			return opErrorf(opEliminate, err)
		}
		pivot, _ = e.at(p, col) // p and col were validated by SelectPivot
		e.opts.OnPivot(col, p, pivot)
		if err = e.swap(col, p); err != nil {
			return opErrorf(opEliminate, err)
		}

		for r = col + 1; r < e.m.Rows(); r++ {
			x, _ = e.at(r, col)
			if err = e.addScaled(r, col, -x/pivot); err != nil {
				return opErrorf(opEliminate, err)
			}
		}
	}

	return nil
}
