// SPDX-License-Identifier: MIT

package crosscheck

import (
	"fmt"

	"github.com/edp1096/sparse"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// sparseConfig mirrors the real-valued configuration used for MNA systems.
func sparseConfig() *sparse.Configuration {
	return &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               true,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}
}

// solveSparse loads the non-zero entries of a into a sparse matrix, factors
// it and solves. The sparse package indexes rows and columns from 1.
func solveSparse(a, b *matrix.Dense[float64]) ([]float64, error) {
	n := a.Rows()
	sm, err := sparse.Create(int64(n), sparseConfig())
	if err != nil {
		return nil, fmt.Errorf("%w: sparse: %w", ErrReference, err)
	}
	defer sm.Destroy()

	sm.Clear()
	var (
		i, j int
		row  []float64
	)
	for i = 0; i < n; i++ {
		if row, err = a.Row(i); err != nil {
			return nil, fmt.Errorf("%w: sparse: %w", ErrReference, err)
		}
		for j = 0; j < n; j++ {
			if row[j] != 0 {
				sm.GetElement(int64(i+1), int64(j+1)).Real += row[j]
			}
		}
	}
	if err = sm.Factor(); err != nil {
		return nil, fmt.Errorf("%w: sparse: %w", ErrReference, err)
	}

	rhs := make([]float64, n+1)
	copy(rhs[1:], b.Values())
	x, err := sm.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("%w: sparse: %w", ErrReference, err)
	}
	if len(x) < n+1 {
		return nil, fmt.Errorf("%w: sparse: %d values for %d unknowns", ErrReference, len(x)-1, n)
	}

	out := make([]float64, n)
	copy(out, x[1:n+1])

	return out, nil
}
