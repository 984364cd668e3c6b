// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// SelectPivot returns the row in col..m.Rows()-1 whose entry in column col
// has the largest magnitude. The comparison is strict, so among rows of
// equal magnitude the earliest wins.
//
// Errors:
//   - ErrNilMatrix     when m is nil.
//   - ErrOutOfRange    (matrix) when col is not a column of m.
//   - ErrSingular      when the best magnitude is exactly zero, or no
//     candidate row exists (col >= m.Rows()).
//
// Complexity: O(rows).
func SelectPivot[T scalar.Scalar](m *matrix.Dense[T], col int) (int, error) {
	if m == nil {
		return 0, opErrorf(opSelectPivot, ErrNilMatrix)
	}
	if col < 0 || col >= m.Cols() {
		return 0, opErrorf(opSelectPivot, fmt.Errorf("column %d of %d: %w", col, m.Cols(), matrix.ErrOutOfRange))
	}

	var (
		best    = col
		bestMag float64
		mag     float64
		v       T
		r       int
	)
	for r = col; r < m.Rows(); r++ {
		v, _ = m.At(r, col) // indices validated above
		mag = scalar.Abs(v)
		if mag > bestMag {
			best, bestMag = r, mag
		}
	}
	if bestMag == 0 {
		return 0, opErrorf(opSelectPivot, fmt.Errorf("column %d: %w", col, ErrSingular))
	}

	return best, nil
}
