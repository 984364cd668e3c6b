// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/gaussjordan/scalar"

// MulVec computes y = a·x for a column vector x and returns y as a new
// a.Rows()×1 Dense. Neither operand is mutated.
//
// Errors:
//   - ErrNilMatrix         when a or x is nil.
//   - ErrNotColumnVector   when x has more than one column.
//   - ErrDimensionMismatch when a.Cols() != x.Rows().
//
// Complexity: O(r*c) time, O(r) memory.
func MulVec[T scalar.Scalar](a, x *Dense[T]) (*Dense[T], error) {
	if err := ValidateColumnVector(x); err != nil {
		return nil, validatorErrorf("MulVec", err)
	}
	if err := ValidateMulCompatible(a, x); err != nil {
		return nil, validatorErrorf("MulVec", err)
	}

	y := &Dense[T]{r: a.r, c: 1, data: make([]T, a.r)}
	var (
		i, j int
		sum  T
		row  []T
	)
	for i = 0; i < a.r; i++ {
		sum = 0
		row = a.data[i*a.c : (i+1)*a.c]
		for j = 0; j < a.c; j++ {
			sum += row[j] * x.data[j]
		}
		y.data[i] = sum
	}

	return y, nil
}
