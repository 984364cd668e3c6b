// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// engine binds a row-paired (m, v) to the configured hooks so that every
// applied row operation is reported exactly once, after it succeeds.
type engine[T scalar.Scalar] struct {
	m, v *matrix.Dense[T]
	opts Options[T]
}

func newEngine[T scalar.Scalar](m, v *matrix.Dense[T], opts []Option[T]) *engine[T] {
	return &engine[T]{m: m, v: v, opts: buildOptions(opts)}
}

func (e *engine[T]) swap(r1, r2 int) error {
	if err := SwapRows(e.m, e.v, r1, r2); err != nil {
		return err
	}
	if r1 != r2 {
		e.opts.OnRowOp(RowOp[T]{Kind: OpSwap, Target: r1, Source: r2})
	}

	return nil
}

func (e *engine[T]) scale(row int, factor T) error {
	if err := ScaleRow(e.m, e.v, row, factor); err != nil {
		return err
	}
	e.opts.OnRowOp(RowOp[T]{Kind: OpScale, Target: row, Source: row, Factor: factor})

	return nil
}

func (e *engine[T]) addScaled(target, source int, factor T) error {
	if err := AddScaledRow(e.m, e.v, target, source, factor); err != nil {
		return err
	}
	e.opts.OnRowOp(RowOp[T]{Kind: OpAddScaled, Target: target, Source: source, Factor: factor})

	return nil
}

// at reads m[r][c]; out-of-range access surfaces as a wrapped matrix error.
func (e *engine[T]) at(r, c int) (T, error) {
	return e.m.At(r, c)
}
