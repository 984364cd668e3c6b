// SPDX-License-Identifier: MIT

package scalar

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
)

// ErrParse is returned by Parse when a token is not a valid number.
var ErrParse = errors.New("scalar: invalid number")

// Scalar is the field a matrix is defined over: real or complex.
type Scalar interface {
	float64 | complex128
}

// Domain names the numeric field of a Scalar type.
type Domain int

const (
	// Real is the float64 domain.
	Real Domain = iota
	// Complex is the complex128 domain.
	Complex
)

// String implements fmt.Stringer.
func (d Domain) String() string {
	if d == Complex {
		return "complex"
	}

	return "real"
}

// Width reports how many numeric tokens encode one scalar of this domain
// in text form: 1 for real, 2 (re, im) for complex.
func (d Domain) Width() int {
	if d == Complex {
		return 2
	}

	return 1
}

// DomainOf reports the domain of T.
func DomainOf[T Scalar]() Domain {
	var zero T
	if _, ok := any(zero).(complex128); ok {
		return Complex
	}

	return Real
}

// Parts splits v into its real and imaginary parts. For real scalars the
// imaginary part is always 0.
func Parts[T Scalar](v T) (re, im float64) {
	switch x := any(v).(type) {
	case complex128:
		return real(x), imag(x)
	case float64:
		return x, 0
	}

	return 0, 0
}

// FromParts builds a T from real and imaginary parts. The imaginary part is
// discarded for the real domain.
func FromParts[T Scalar](re, im float64) T {
	var zero T
	if _, ok := any(zero).(complex128); ok {
		return any(complex(re, im)).(T)
	}

	return any(re).(T)
}

// Abs returns the magnitude of v: |v| for reals, the Euclidean norm of
// (re, im) for complex values.
// Complexity: O(1).
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case complex128:
		return cmplx.Abs(x)
	case float64:
		return math.Abs(x)
	}

	return 0
}

// IsZero reports whether v is exactly zero. No tolerance is applied.
func IsZero[T Scalar](v T) bool {
	var zero T

	return v == zero
}

// IsFinite reports whether every component of v is neither NaN nor ±Inf.
func IsFinite[T Scalar](v T) bool {
	re, im := Parts(v)

	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}

// Format renders v with three decimal digits:
//
//	"0"                both parts zero
//	"a"                imaginary part zero
//	"bi"               real part zero
//	"a + bi", "a - bi" otherwise
func Format[T Scalar](v T) string {
	re, im := Parts(v)
	switch {
	case re == 0 && im == 0:
		return "0"
	case im == 0:
		return fmt.Sprintf("%.3f", re)
	case re == 0:
		return fmt.Sprintf("%.3fi", im)
	case im < 0:
		return fmt.Sprintf("%.3f - %.3fi", re, -im)
	default:
		return fmt.Sprintf("%.3f + %.3fi", re, im)
	}
}

// Parse reads one number token as a float64 component. The caller combines
// components with FromParts according to Domain.Width.
func Parse(tok string) (float64, error) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, tok)
	}

	return f, nil
}
