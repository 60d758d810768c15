// SPDX-License-Identifier: MIT

package decompose_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/symdec/decompose"
	"github.com/katalvlaran/symdec/symbolic"
)

// requireL2Match asserts the recovered (A, b) reproduce the expression
// numerically: e(pt) = ‖A·pt + b‖₂ at every sample point. Checking through
// the norm rather than against literal A entries keeps the assertion
// independent of eigenvector sign choices.
func requireL2Match(t *testing.T, e symbolic.Expression, a *mat.Dense, b *mat.VecDense, vars []symbolic.Variable, pts [][]float64) {
	t.Helper()
	rank, _ := a.Dims()
	for _, pt := range pts {
		require.Len(t, pt, len(vars))
		env := make(map[symbolic.Variable]float64, len(vars))
		for i, v := range vars {
			env[v] = pt[i]
		}
		want, err := e.Eval(env)
		require.NoError(t, err)

		var av mat.VecDense
		av.MulVec(a, mat.NewVecDense(len(vars), pt))
		norm := 0.0
		for i := 0; i < rank; i++ {
			d := av.AtVec(i) + b.AtVec(i)
			norm += d * d
		}
		require.InDelta(t, want, math.Sqrt(norm), 1e-8)
	}
}

// TestDecomposeL2NormEuclidean matches the plain Euclidean norm
// sqrt(x² + y² + z²).
func TestDecomposeL2NormEuclidean(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")
	z := symbolic.NewVariable("z")

	e := symbolic.Sqrt(symbolic.Add(
		symbolic.Pow(symbolic.Var(x), symbolic.Constant(2)),
		symbolic.Pow(symbolic.Var(y), symbolic.Constant(2)),
		symbolic.Pow(symbolic.Var(z), symbolic.Constant(2)),
	))
	ok, a, b, vars, err := decompose.DecomposeL2NormExpression(e)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, vars, 3)

	rank, cols := a.Dims()
	require.Equal(t, 3, rank)
	require.Equal(t, 3, cols)

	// A'A must equal the half-scaled quadratic form, here the identity.
	var ata mat.Dense
	ata.Mul(a.T(), a)
	require.True(t, mat.EqualApprox(mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}), &ata, 1e-9))

	requireL2Match(t, e, a, b, vars, [][]float64{
		{0, 0, 0}, {1, 2, 3}, {-4, 0.5, 2},
	})
}

// TestDecomposeL2NormAffineArgument matches the norm of a full affine map,
// sqrt((x−1)² + (x+y)²), including the recovered offset.
func TestDecomposeL2NormAffineArgument(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")
	xe, ye := symbolic.Var(x), symbolic.Var(y)

	e := symbolic.Sqrt(symbolic.Add(
		symbolic.Pow(symbolic.Sub(xe, symbolic.Constant(1)), symbolic.Constant(2)),
		symbolic.Pow(symbolic.Add(xe, ye), symbolic.Constant(2)),
	))
	ok, a, b, vars, err := decompose.DecomposeL2NormExpression(e)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, vars, 2)

	requireL2Match(t, e, a, b, vars, [][]float64{
		{0, 0}, {1, -1}, {2.5, 3}, {-1, 4},
	})
}

// TestDecomposeL2NormRankDeficient: a rank-one radicand like (x+y)² still
// matches, with a single-row factor.
func TestDecomposeL2NormRankDeficient(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")

	e := symbolic.Sqrt(symbolic.Pow(
		symbolic.Add(symbolic.Var(x), symbolic.Var(y)), symbolic.Constant(2)))
	ok, a, b, vars, err := decompose.DecomposeL2NormExpression(e)
	require.NoError(t, err)
	require.True(t, ok)

	rank, _ := a.Dims()
	require.Equal(t, 1, rank)
	requireL2Match(t, e, a, b, vars, [][]float64{{1, 2}, {-3, 3}, {0.5, 0.25}})
}

// TestDecomposeL2NormNoMatch: every mismatch shape reports false with a nil
// error, never a failure.
func TestDecomposeL2NormNoMatch(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")
	xe, ye := symbolic.Var(x), symbolic.Var(y)
	sq := func(e symbolic.Expression) symbolic.Expression {
		return symbolic.Pow(e, symbolic.Constant(2))
	}

	cases := map[string]symbolic.Expression{
		"not a sqrt node":     symbolic.Add(xe, symbolic.Constant(1)),
		"degree one radicand": symbolic.Sqrt(xe),
		"degree four radicand": symbolic.Sqrt(symbolic.Pow(xe, symbolic.Constant(4))),
		"non-polynomial radicand": symbolic.Sqrt(symbolic.Sin(xe)),
		"indefinite quadratic":    symbolic.Sqrt(symbolic.Sub(sq(xe), sq(ye))),
		// x² + y: PSD but the linear part lies outside the row space of A.
		"inconsistent linear term": symbolic.Sqrt(symbolic.Add(sq(xe), ye)),
		// x² + 1: constant term inconsistent with b'b.
		"inconsistent constant": symbolic.Sqrt(symbolic.Add(sq(xe), symbolic.Constant(1))),
	}
	for name, e := range cases {
		ok, _, _, _, err := decompose.DecomposeL2NormExpression(e)
		require.NoError(t, err, name)
		require.False(t, ok, name)
	}
}

// TestL2NormToleranceOptions: a slightly perturbed Euclidean norm fails at
// the default tolerance and matches under a loosened one.
func TestL2NormToleranceOptions(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")
	sq := func(e symbolic.Expression) symbolic.Expression {
		return symbolic.Pow(e, symbolic.Constant(2))
	}

	// x² + y² + 1e−6: the constant term misses b'b = 0 by 1e−6.
	e := symbolic.Sqrt(symbolic.Add(
		sq(symbolic.Var(x)), sq(symbolic.Var(y)), symbolic.Constant(1e-6)))

	ok, _, _, _, err := decompose.DecomposeL2NormExpression(e)
	require.NoError(t, err)
	require.False(t, ok)

	ok, _, _, _, err = decompose.DecomposeL2NormExpression(e,
		decompose.WithCoefficientTolerance(1e-5))
	require.NoError(t, err)
	require.True(t, ok)
}

// TestOptionConstructorsPanic: nonsensical tolerances are programmer error.
func TestOptionConstructorsPanic(t *testing.T) {
	require.Panics(t, func() { decompose.WithPSDTolerance(-1) })
	require.Panics(t, func() { decompose.WithPSDTolerance(math.NaN()) })
	require.Panics(t, func() { decompose.WithCoefficientTolerance(math.Inf(1)) })
}
