// Package gaussjordan is a small, dependency-light toolkit for solving dense
// linear systems A·x = b by Gauss–Jordan elimination with partial pivoting,
// over real (float64) or complex (complex128) numbers.
//
// What is inside?
//
//   - Generic algorithm: one implementation, two scalar domains.
//   - Bounds-checked, row-major dense storage; errors instead of panics.
//   - Exact singularity detection with sentinel errors (errors.Is friendly).
//   - Hooks to observe every pivot and row operation.
//   - Independent cross-checks against gonum and a sparse LU solver.
//
// Under the hood, everything is organized under subpackages:
//
//	scalar/       the Scalar constraint; magnitude, formatting, parsing
//	matrix/       Dense[T] container, validators, MulVec
//	gaussjordan/  row operations, pivot selection, elimination, back substitution, Solve
//	textio/       reading matrices from text and rendering them
//	crosscheck/   residuals and reference solves (gonum, sparse)
//	cmd/linsolve  command-line front end
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 3}})
//	b, _ := matrix.NewVectorFrom([]float64{5, 10})
//	if err := gaussjordan.Solve(a, b); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(b.Values()) // [1 3]
//
// See the examples/ directory for nodal and AC circuit analyses.
package gaussjordan
