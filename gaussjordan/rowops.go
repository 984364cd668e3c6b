// SPDX-License-Identifier: MIT
// Package gaussjordan: elementary row operations.
//
// Each operation takes the coefficient matrix m and its right-hand side v and
// applies the same mutation to both. Preconditions are checked up front, so a
// rejected call never leaves a half-applied row behind.

package gaussjordan

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// validatePair checks that m and v are non-nil and row-paired:
// m.Cols() == v.Rows() and v is a column vector.
func validatePair[T scalar.Scalar](m, v *matrix.Dense[T]) error {
	if m == nil || v == nil {
		return ErrNilMatrix
	}
	if m.Cols() != v.Rows() {
		return fmt.Errorf("%dx%d matrix with %d-row vector: %w", m.Rows(), m.Cols(), v.Rows(), ErrIncompatibleDimensions)
	}
	if v.Cols() != 1 {
		return fmt.Errorf("vector has %d columns: %w", v.Cols(), ErrIncompatibleDimensions)
	}

	return nil
}

// validateRow checks that row r exists in both m and v.
func validateRow[T scalar.Scalar](m, v *matrix.Dense[T], r int) error {
	if r < 0 || r >= m.Rows() || r >= v.Rows() {
		return fmt.Errorf("row %d (matrix has %d, vector has %d): %w", r, m.Rows(), v.Rows(), ErrRowOutOfBounds)
	}

	return nil
}

// rowPair returns row r of m and of v as slices aliasing their storage.
func rowPair[T scalar.Scalar](m, v *matrix.Dense[T], r int) (mr, vr []T, err error) {
	if mr, err = m.RawRow(r); err != nil {
		return nil, nil, err
	}
	if vr, err = v.RawRow(r); err != nil {
		return nil, nil, err
	}

	return mr, vr, nil
}

// SwapRows exchanges rows r1 and r2 of m and of v. Swapping a row with
// itself is a validated no-op.
// Complexity: O(cols).
func SwapRows[T scalar.Scalar](m, v *matrix.Dense[T], r1, r2 int) error {
	if err := validatePair(m, v); err != nil {
		return opErrorf(opSwapRows, err)
	}
	if err := validateRow(m, v, r1); err != nil {
		return opErrorf(opSwapRows, err)
	}
	if err := validateRow(m, v, r2); err != nil {
		return opErrorf(opSwapRows, err)
	}
	if r1 == r2 {
		return nil
	}

	a, va, err := rowPair(m, v, r1)
	if err != nil {
		return opErrorf(opSwapRows, err)
	}
	b, vb, err := rowPair(m, v, r2)
	if err != nil {
		return opErrorf(opSwapRows, err)
	}
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
	va[0], vb[0] = vb[0], va[0]

	return nil
}

// ScaleRow multiplies row `row` of m, and entry `row` of v, by factor.
// A zero factor is not rejected here; callers enforce non-zero pivots.
// Complexity: O(cols).
func ScaleRow[T scalar.Scalar](m, v *matrix.Dense[T], row int, factor T) error {
	if err := validatePair(m, v); err != nil {
		return opErrorf(opScaleRow, err)
	}
	if err := validateRow(m, v, row); err != nil {
		return opErrorf(opScaleRow, err)
	}

	r, vr, err := rowPair(m, v, row)
	if err != nil {
		return opErrorf(opScaleRow, err)
	}
	for j := range r {
		r[j] *= factor
	}
	vr[0] *= factor

	return nil
}

// AddScaledRow performs target += factor*source on m and v entrywise.
// target may equal source.
// Complexity: O(cols).
func AddScaledRow[T scalar.Scalar](m, v *matrix.Dense[T], target, source int, factor T) error {
	if err := validatePair(m, v); err != nil {
		return opErrorf(opAddScaledRow, err)
	}
	if err := validateRow(m, v, target); err != nil {
		return opErrorf(opAddScaledRow, err)
	}
	if err := validateRow(m, v, source); err != nil {
		return opErrorf(opAddScaledRow, err)
	}

	dst, vd, err := rowPair(m, v, target)
	if err != nil {
		return opErrorf(opAddScaledRow, err)
	}
	src, vs, err := rowPair(m, v, source)
	if err != nil {
		return opErrorf(opAddScaledRow, err)
	}
	for j := range dst {
		dst[j] += factor * src[j]
	}
	vd[0] += factor * vs[0]

	return nil
}
