// SPDX-License-Identifier: MIT

package crosscheck

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// solveGonum solves with gonum's LU-based VecDense.SolveVec. Any condition
// warning gonum raises is treated as a failure.
func solveGonum(a, b *matrix.Dense[float64]) ([]float64, error) {
	ga := mat.NewDense(a.Rows(), a.Cols(), a.Values())
	gb := mat.NewVecDense(b.Rows(), b.Values())

	var x mat.VecDense
	if err := x.SolveVec(ga, gb); err != nil {
		return nil, fmt.Errorf("%w: gonum: %w", ErrReference, err)
	}

	return mat.Col(nil, 0, &x), nil
}
