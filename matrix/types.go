// SPDX-License-Identifier: MIT

// Package matrix: read-only view shared by consumers that only inspect
// shape and elements (formatters, residual checks).
package matrix

import "github.com/katalvlaran/gaussjordan/scalar"

// Reader is the read-only surface of a matrix.
//
// Complexity notes: all methods are expected O(1).
type Reader[T scalar.Scalar] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)
}

var (
	_ Reader[float64]    = (*Dense[float64])(nil)
	_ Reader[complex128] = (*Dense[complex128])(nil)
)
