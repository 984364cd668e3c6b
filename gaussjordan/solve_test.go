package gaussjordan_test

import (
	"fmt"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gaussjordan/gaussjordan"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// tol is the relative tolerance for A·x ≈ b checks.
const tol = 1e-9

// requireSolves asserts ‖a·x − b‖∞ ≤ tol·max(1, ‖b‖∞).
func requireSolves[T float64 | complex128](t *testing.T, a, x, b *matrix.Dense[T]) {
	t.Helper()
	ax, err := matrix.MulVec(a, x)
	require.NoError(t, err)

	var worst, scale float64 = 0, 1
	got, want := ax.Values(), b.Values()
	for i := range want {
		worst = max(worst, scalar.Abs(got[i]-want[i]))
		scale = max(scale, scalar.Abs(want[i]))
	}
	require.LessOrEqual(t, worst, tol*scale, "residual too large: A·x=%v b=%v", got, want)
}

// randomSystem returns a diagonally dominant (hence non-singular) n×n system.
func randomSystem[T float64 | complex128](rng *rand.Rand, n int) (*matrix.Dense[T], *matrix.Dense[T]) {
	draw := func() T { return scalar.FromParts[T](2*rng.Float64()-1, 2*rng.Float64()-1) }
	a, _ := matrix.NewDense[T](n, n)
	b, _ := matrix.NewVector[T](n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = a.Set(i, j, draw())
		}
		d, _ := a.At(i, i)
		_ = a.Set(i, i, d+scalar.FromParts[T](float64(n)+1, 0))
		_ = b.Set(i, 0, draw())
	}

	return a, b
}

type SolveSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *SolveSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(20261016))
}

// TestRandomReal checks A·x = b within tolerance for random non-singular systems.
func (s *SolveSuite) TestRandomReal() {
	for n := 1; n <= 12; n++ {
		s.Run(fmt.Sprintf("n=%d", n), func() {
			a, b := randomSystem[float64](s.rng, n)
			a0, b0 := a.Clone(), b.Clone()
			s.Require().NoError(gaussjordan.Solve(a, b))
			requireSolves(s.T(), a0, b, b0)
		})
	}
}

func (s *SolveSuite) TestRandomComplex() {
	for n := 1; n <= 8; n++ {
		s.Run(fmt.Sprintf("n=%d", n), func() {
			a, b := randomSystem[complex128](s.rng, n)
			a0, b0 := a.Clone(), b.Clone()
			s.Require().NoError(gaussjordan.Solve(a, b))
			requireSolves(s.T(), a0, b, b0)
		})
	}
}

// TestLeavesIdentity checks the reduced-row-echelon end state of A.
func (s *SolveSuite) TestLeavesIdentity() {
	a, b := randomSystem[float64](s.rng, 5)
	s.Require().NoError(gaussjordan.Solve(a, b))
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			v, err := a.At(i, j)
			s.Require().NoError(err)
			if i == j {
				s.InDelta(1.0, v, tol)
			} else {
				s.InDelta(0.0, v, tol)
			}
		}
	}
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func TestSolveScenarioReal(t *testing.T) {
	a, b := pair(t, [][]float64{{2, 1}, {1, 3}}, []float64{5, 10})
	require.NoError(t, gaussjordan.Solve(a, b))

	x := b.Values()
	require.InDelta(t, 1.0, x[0], tol)
	require.InDelta(t, 3.0, x[1], tol)
}

// TestSolveNeedsPivoting uses a zero leading entry that only a row swap can fix.
func TestSolveNeedsPivoting(t *testing.T) {
	a, b := pair(t, [][]float64{{0, 2, 1}, {1, 1, 1}, {4, 0, -1}}, []float64{7, 6, 1})
	a0, b0 := a.Clone(), b.Clone()
	require.NoError(t, gaussjordan.Solve(a, b))
	requireSolves(t, a0, b, b0)
}

func TestSolveScenarioSingular(t *testing.T) {
	a, b := pair(t, [][]float64{{1, 0}, {0, 0}}, []float64{1, 1})
	err := gaussjordan.Solve(a, b)
	require.ErrorIs(t, err, gaussjordan.ErrSingular)
	require.Contains(t, err.Error(), "column 1")
}

func TestSolveScenarioComplex(t *testing.T) {
	a, b := pair(t, [][]complex128{{1, 1i}, {1i, 1}}, []complex128{1, 0})
	a0, b0 := a.Clone(), b.Clone()
	require.NoError(t, gaussjordan.Solve(a, b))
	requireSolves(t, a0, b, b0)

	x := b.Values()
	require.InDelta(t, 0, cmplx.Abs(x[0]-0.5), tol)
	require.InDelta(t, 0, cmplx.Abs(x[1]+0.5i), tol)
}

// TestSolveComplexDependentRows: [[1, i], [i, -1]] has determinant 0; the
// second row is i times the first, so elimination must report it.
func TestSolveComplexDependentRows(t *testing.T) {
	a, b := pair(t, [][]complex128{{1, 1i}, {1i, -1}}, []complex128{1, 0})
	require.ErrorIs(t, gaussjordan.Solve(a, b), gaussjordan.ErrSingular)
}

// TestSolveIncompatibleNoMutation checks the shape guard runs before any mutation.
func TestSolveIncompatibleNoMutation(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})
	require.NoError(t, err)
	b, err := matrix.NewVectorFrom([]float64{1, 2})
	require.NoError(t, err)
	a0, b0 := a.Clone(), b.Clone()

	err = gaussjordan.Solve(a, b)
	require.ErrorIs(t, err, gaussjordan.ErrIncompatibleDimensions)
	require.Contains(t, err.Error(), "compatible dimensions")
	require.True(t, a.Equal(a0))
	require.True(t, b.Equal(b0))

	wide, err := matrix.NewDense[float64](3, 2)
	require.NoError(t, err)
	err = gaussjordan.Solve(a, wide)
	require.ErrorIs(t, err, gaussjordan.ErrIncompatibleDimensions)
	require.Contains(t, err.Error(), "column vector")

	require.ErrorIs(t, gaussjordan.Solve[float64](nil, b), gaussjordan.ErrNilMatrix)
}

func TestSolveRectangular(t *testing.T) {
	// underdetermined: 2 equations, 3 unknowns
	a, b := pair(t, [][]float64{{1, 0, 1}, {0, 1, 1}}, []float64{1, 2, 3})
	require.ErrorIs(t, gaussjordan.Solve(a, b), gaussjordan.ErrSingular)

	// overdetermined: b pairs with A's columns, so row 2 has no entry in b
	a, b = pair(t, [][]float64{{1, 0}, {0, 1}, {1, 1}}, []float64{1, 2})
	require.ErrorIs(t, gaussjordan.Solve(a, b), gaussjordan.ErrRowOutOfBounds)
}

func TestSolveTinyPivotsAccepted(t *testing.T) {
	// no tolerance: any non-zero pivot is usable, however small
	a, b := pair(t, [][]float64{{1e-300, 0}, {0, 1e-300}}, []float64{1e-300, 2e-300})
	require.NoError(t, gaussjordan.Solve(a, b))
	x := b.Values()
	require.InDelta(t, 1, x[0], tol)
	require.InDelta(t, 2, x[1], tol)

	ca, cb := pair(t, [][]complex128{{1e-150i, 0}, {0, 1}}, []complex128{2e-150i, 3})
	require.NoError(t, gaussjordan.Solve(ca, cb))
	require.InDelta(t, 0, cmplx.Abs(cb.Values()[0]-2), tol)
	require.InDelta(t, 0, cmplx.Abs(cb.Values()[1]-3), tol)
}

func TestSolveOneByOne(t *testing.T) {
	a, b := pair(t, [][]complex128{{2i}}, []complex128{4})
	require.NoError(t, gaussjordan.Solve(a, b))
	require.InDelta(t, 0, cmplx.Abs(b.Values()[0]+2i), tol)
}

func TestHooks(t *testing.T) {
	a, b := pair(t, [][]float64{{2, 1}, {1, 3}}, []float64{5, 10})

	type pivotCall struct {
		col, row int
		pivot    float64
	}
	var pivots []pivotCall
	var kinds []gaussjordan.OpKind

	err := gaussjordan.Solve(a, b,
		gaussjordan.WithOnPivot(func(col, row int, p float64) { pivots = append(pivots, pivotCall{col, row, p}) }),
		gaussjordan.WithOnRowOp(func(op gaussjordan.RowOp[float64]) { kinds = append(kinds, op.Kind) }),
		gaussjordan.WithOnPivot[float64](nil), // ignored
	)
	require.NoError(t, err)

	require.Len(t, pivots, 2)
	require.Equal(t, pivotCall{0, 0, 2}, pivots[0])
	require.Equal(t, 1, pivots[1].row)
	require.InDelta(t, 2.5, pivots[1].pivot, tol)

	// eliminate row 1; clear column 1 above; normalize rows 1 and 0
	require.Equal(t, []gaussjordan.OpKind{
		gaussjordan.OpAddScaled,
		gaussjordan.OpAddScaled,
		gaussjordan.OpScale,
		gaussjordan.OpScale,
	}, kinds)
}

func TestHooksReportSwap(t *testing.T) {
	a, b := pair(t, [][]float64{{1, 1}, {3, 1}}, []float64{2, 4})
	var ops []gaussjordan.RowOp[float64]
	require.NoError(t, gaussjordan.Solve(a, b,
		gaussjordan.WithOnRowOp(func(op gaussjordan.RowOp[float64]) { ops = append(ops, op) })))

	require.NotEmpty(t, ops)
	require.Equal(t, gaussjordan.RowOp[float64]{Kind: gaussjordan.OpSwap, Target: 0, Source: 1}, ops[0])
	require.Equal(t, "swap", ops[0].Kind.String())
	require.InDelta(t, 1.0, b.Values()[0], tol)
	require.InDelta(t, 1.0, b.Values()[1], tol)
}

func TestEliminateAndBackSubstituteSeparately(t *testing.T) {
	a, b := pair(t, [][]float64{{2, 1}, {1, 3}}, []float64{5, 10})
	require.NoError(t, gaussjordan.Eliminate(a, b))

	below, err := a.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, below, "row-echelon: zero below the pivot")

	require.NoError(t, gaussjordan.BackSubstitute(a, b))
	require.InDelta(t, 1.0, b.Values()[0], tol)
	require.InDelta(t, 3.0, b.Values()[1], tol)

	// a non-echelon input with a zero diagonal is rejected, not divided by
	z, v := pair(t, [][]float64{{1, 1}, {1, 0}}, []float64{1, 1})
	require.ErrorIs(t, gaussjordan.BackSubstitute(z, v), gaussjordan.ErrSingular)
}
