// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// BackSubstitute takes m in row-echelon form and reduces it in place to the
// identity, so that v ends up holding the solution x.
//
// Working from the last column to the first, it zeroes column col above the
// diagonal with AddScaledRow and then scales row col by 1/pivot. Row 0 is
// normalized by the same loop.
//
// Errors:
//   - ErrIncompatibleDimensions / ErrNilMatrix for unpaired operands.
//   - ErrSingular if a diagonal entry is exactly zero (m was not echelon).
//   - matrix.ErrOutOfRange if m has fewer rows than columns.
//
// Complexity: O(n²) row updates, O(n³) scalar operations.
func BackSubstitute[T scalar.Scalar](m, v *matrix.Dense[T], opts ...Option[T]) error {
	if err := validatePair(m, v); err != nil {
		return opErrorf(opBackSubstitute, err)
	}

	return newEngine(m, v, opts).backSubstitute()
}

func (e *engine[T]) backSubstitute() error {
	var (
		col, r int
		pivot  T
		x      T
		err    error
	)
	for col = e.m.Cols() - 1; col >= 0; col-- {
		if pivot, err = e.at(col, col); err != nil {
			return opErrorf(opBackSubstitute, err)
		}
		if scalar.IsZero(pivot) {
			return opErrorf(opBackSubstitute, fmt.Errorf("diagonal %d: %w", col, ErrSingular))
		}

		for r = col - 1; r >= 0; r-- {
			x, _ = e.at(r, col)
			if err = e.addScaled(r, col, -x/pivot); err != nil {
				return opErrorf(opBackSubstitute, err)
			}
		}
		if err = e.scale(col, 1/pivot); err != nil {
			return opErrorf(opBackSubstitute, err)
		}
	}

	return nil
}
