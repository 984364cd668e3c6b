// SPDX-License-Identifier: MIT

package gaussjordan

import "github.com/katalvlaran/gaussjordan/scalar"

// OpKind identifies a row operation.
type OpKind int

const (
	// OpSwap exchanges rows Target and Source.
	OpSwap OpKind = iota
	// OpScale multiplies row Target by Factor.
	OpScale
	// OpAddScaled adds Factor times row Source to row Target.
	OpAddScaled
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	switch k {
	case OpSwap:
		return "swap"
	case OpScale:
		return "scale"
	case OpAddScaled:
		return "add-scaled"
	default:
		return "unknown"
	}
}

// RowOp describes one applied row mutation. For OpScale, Source equals
// Target; for OpSwap, Factor is zero.
type RowOp[T scalar.Scalar] struct {
	Kind   OpKind
	Target int
	Source int
	Factor T
}

// Option configures a solve via functional arguments.
type Option[T scalar.Scalar] func(*Options[T])

// Options holds the hooks applied during elimination and substitution.
type Options[T scalar.Scalar] struct {
	// OnPivot is called once per elimination column after the pivot row has
	// been chosen and before it is swapped into place.
	OnPivot func(col, row int, pivot T)

	// OnRowOp is called after every successful row mutation.
	OnRowOp func(op RowOp[T])
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions[T scalar.Scalar]() Options[T] {
	return Options[T]{
		OnPivot: func(int, int, T) {},
		OnRowOp: func(RowOp[T]) {},
	}
}

// WithOnPivot registers a pivot observer. A nil fn is ignored.
func WithOnPivot[T scalar.Scalar](fn func(col, row int, pivot T)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnPivot = fn
		}
	}
}

// WithOnRowOp registers a row-operation observer. A nil fn is ignored.
func WithOnRowOp[T scalar.Scalar](fn func(op RowOp[T])) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnRowOp = fn
		}
	}
}

func buildOptions[T scalar.Scalar](opts []Option[T]) Options[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
