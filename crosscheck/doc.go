// Package crosscheck verifies a solution produced by package gaussjordan.
//
// Two independent checks are offered:
//
//   - Residual computes ‖A·x − b‖∞ in the solve's own scalar domain, real or
//     complex.
//   - Reference re-solves a real system with an independent solver, either
//     gonum's dense LU (BackendGonum) or the sparse LU from
//     github.com/edp1096/sparse (BackendSparse), and Compare checks the two
//     answers agree within a relative tolerance.
//
// Reference solvers only cover the real domain; complex input yields
// ErrUnsupportedDomain.
package crosscheck
