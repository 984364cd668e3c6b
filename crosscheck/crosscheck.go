// SPDX-License-Identifier: MIT

package crosscheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

var (
	// ErrUnsupportedDomain is returned when a reference backend is asked to
	// solve a complex system.
	ErrUnsupportedDomain = errors.New("crosscheck: reference solvers support the real domain only")

	// ErrUnknownBackend is returned by ParseBackend for an unrecognised name.
	ErrUnknownBackend = errors.New("crosscheck: unknown backend")

	// ErrReference wraps a failure reported by a reference backend.
	ErrReference = errors.New("crosscheck: reference solve failed")

	// ErrMismatch is returned when two solutions disagree beyond tolerance.
	ErrMismatch = errors.New("crosscheck: solutions differ")
)

// Backend names a reference solver.
type Backend string

const (
	// BackendGonum solves with gonum.org/v1/gonum/mat (dense LU).
	BackendGonum Backend = "gonum"
	// BackendSparse solves with github.com/edp1096/sparse (sparse LU).
	BackendSparse Backend = "sparse"
)

// Backends lists every supported backend name.
var Backends = []Backend{BackendGonum, BackendSparse}

// ParseBackend maps a name to a Backend.
func ParseBackend(name string) (Backend, error) {
	for _, b := range Backends {
		if string(b) == name {
			return b, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Residual returns max_i |(a·x)_i − b_i|. Neither operand is mutated.
// Complexity: O(rows*cols).
func Residual[T scalar.Scalar](a, x, b *matrix.Dense[T]) (float64, error) {
	ax, err := matrix.MulVec(a, x)
	if err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}
	if err = matrix.ValidateColumnVector(b); err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}
	if b.Rows() != ax.Rows() {
		return 0, fmt.Errorf("Residual: b has %d rows, A·x has %d: %w", b.Rows(), ax.Rows(), matrix.ErrDimensionMismatch)
	}

	var worst float64
	got, want := ax.Values(), b.Values()
	for i := range got {
		worst = math.Max(worst, scalar.Abs(got[i]-want[i]))
	}

	return worst, nil
}

// Reference solves a·x = b with the given backend and returns x. a and b are
// not mutated.
func Reference[T scalar.Scalar](backend Backend, a, b *matrix.Dense[T]) ([]float64, error) {
	if scalar.DomainOf[T]() != scalar.Real {
		return nil, ErrUnsupportedDomain
	}
	ra, _ := any(a).(*matrix.Dense[float64])
	rb, _ := any(b).(*matrix.Dense[float64])
	if ra == nil || rb == nil {
		return nil, fmt.Errorf("Reference: %w", matrix.ErrNilMatrix)
	}
	if ra.Rows() != ra.Cols() || ra.Cols() != rb.Rows() || rb.Cols() != 1 {
		return nil, fmt.Errorf("Reference: A is %dx%d, b is %dx%d: %w",
			ra.Rows(), ra.Cols(), rb.Rows(), rb.Cols(), matrix.ErrDimensionMismatch)
	}

	switch backend {
	case BackendGonum:
		return solveGonum(ra, rb)
	case BackendSparse:
		return solveSparse(ra, rb)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Compare checks |got_i − want_i| ≤ tol·max(1, |want_i|) for every i and
// reports the first index that fails.
func Compare(got, want []float64, tol float64) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: %d values vs %d", ErrMismatch, len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol*math.Max(1, math.Abs(want[i])) {
			return fmt.Errorf("%w: x[%d] = %g, reference %g", ErrMismatch, i, got[i], want[i])
		}
	}

	return nil
}
