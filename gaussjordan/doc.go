// Package gaussjordan solves a dense linear system A·x = b by Gauss–Jordan
// elimination with partial pivoting, over real or complex scalars.
//
// What
//
//   - Row operators (SwapRows, ScaleRow, AddScaledRow) mutate a coefficient
//     matrix and its right-hand side in lock-step.
//   - SelectPivot picks, for a column, the row at or below the diagonal with
//     the largest magnitude (strict >, so ties keep the earliest row).
//   - Eliminate reduces A to row-echelon form.
//   - BackSubstitute drives the echelon form on to the identity, leaving the
//     solution in b.
//   - Solve validates shapes and runs both phases.
//
// In-place contract
//
//	Solve mutates both arguments. On success A's leading square block is the
//	identity and b holds x. On a shape error nothing is touched. On any other
//	error the partial state is left as is; there is no rollback.
//
// Numeric policy
//
//	Singularity is exact: a pivot column whose candidates are all exactly
//	zero yields ErrSingular. Tiny but non-zero pivots are accepted; no
//	conditioning estimate is made. Magnitude is |x| for float64 and the
//	Euclidean norm for complex128 (see scalar.Abs).
//
// Observability
//
//	WithOnPivot and WithOnRowOp register hooks that see every pivot choice and
//	every row mutation, in execution order.
//
// Complexity
//
//   - Time:   O(n³) for an n×n system.
//   - Memory: O(1) beyond the two caller-owned buffers.
//
// Concurrency
//
//	Single-threaded and synchronous. The caller must not touch A or b from
//	another goroutine while Solve runs.
package gaussjordan
