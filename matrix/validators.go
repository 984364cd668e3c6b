// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape checks shared by the solver
//     and the cross-check helpers.
//   - Return sentinels wrapped with the validator tag so call sites can match
//     with errors.Is and still read which guard fired.
//
// All checks are pure, deterministic and allocate nothing beyond the error.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T scalar.Scalar](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateColumnVector ensures v is non-nil and has exactly one column.
// Complexity: O(1).
func ValidateColumnVector[T scalar.Scalar](v *Dense[T]) error {
	if err := ValidateNotNil(v); err != nil {
		return validatorErrorf("ValidateColumnVector", err)
	}
	if v.Cols() != 1 {
		return validatorErrorf("ValidateColumnVector", ErrNotColumnVector)
	}

	return nil
}

// ValidateMulCompatible ensures a·b is defined: both non-nil and
// a.Cols() == b.Rows().
// Complexity: O(1).
func ValidateMulCompatible[T scalar.Scalar](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf component.
// Complexity: O(r*c).
func ValidateFinite[T scalar.Scalar](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	for k, v := range m.data {
		if !scalar.IsFinite(v) {
			return validatorErrorf("ValidateFinite", denseErrorf("At", k/m.c, k%m.c, ErrNaNInf))
		}
	}

	return nil
}
