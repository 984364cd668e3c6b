// SPDX-License-Identifier: MIT
// Package gaussjordan: sentinel error set.
// All operations return these sentinels, wrapped with the failing operation's
// name via fmt.Errorf("%s: %w"). Match with errors.Is.

package gaussjordan

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleDimensions is returned when A and b (or a matrix and the
	// vector paired with it in a row operation) cannot be combined:
	// m.Cols() != v.Rows(), or v is not a column vector.
	ErrIncompatibleDimensions = errors.New("gaussjordan: incompatible dimensions")

	// ErrRowOutOfBounds is returned when a row operation references a row
	// that does not exist in the matrix or its paired vector.
	ErrRowOutOfBounds = errors.New("gaussjordan: row out of bounds")

	// ErrSingular is returned when no non-zero pivot exists in the remaining
	// part of a column; the system has no unique solution.
	ErrSingular = errors.New("gaussjordan: singular matrix")

	// ErrNilMatrix indicates a nil matrix or vector argument.
	ErrNilMatrix = errors.New("gaussjordan: nil matrix")
)

// Operation tags used to prefix wrapped errors.
const (
	opSwapRows       = "SwapRows"
	opScaleRow       = "ScaleRow"
	opAddScaledRow   = "AddScaledRow"
	opSelectPivot    = "SelectPivot"
	opEliminate      = "Eliminate"
	opBackSubstitute = "BackSubstitute"
	opSolve          = "Solve"
)

// opErrorf wraps err with an operation tag. err must be non-nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
