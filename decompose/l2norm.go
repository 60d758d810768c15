// SPDX-License-Identifier: MIT

// Package decompose: L2-norm pattern matching.
//
// Algorithm Outline:
//  1. The expression must be a square-root node whose radicand is a
//     polynomial of total degree exactly 2; anything else is "no match".
//  2. Extract the variable ordering from the whole expression (preserving
//     any asymmetric variable use), decompose the radicand under the
//     0.5·x'Qx + r'x + s convention, and rescale Q ← 0.5·Q.
//  3. Factor Q = A'A via the eigen-based PSD kernel; a non-PSD radicand is
//     a normal "no match", not an error.
//  4. Solve the least-squares system A'·b = 0.5·r and verify both
//     consistency residuals: ‖A'b − 0.5r‖_∞ ≤ tol and |s − b'b| ≤ tol.
//     Only a fully consistent system is a match.

package decompose

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/symdec/symbolic"
)

// DecomposeL2NormExpression detects whether e is the Euclidean norm of an
// affine map, e = ‖A·x + b‖₂, and recovers A, b and the variable ordering
// x when it is.
//
// Inputs:
//   - e: any expression.
//   - opts: WithPSDTolerance / WithCoefficientTolerance; defaults are
//     DefaultPSDTolerance and DefaultCoefficientTolerance.
//
// Returns:
//   - ok: whether the pattern holds exactly (within the tolerances). All
//     mismatch outcomes — wrong node kind, wrong degree, non-PSD quadratic
//     form, inconsistent linear system — report ok=false with a nil error:
//     non-matching input is an expected, common case.
//   - A, b, vars: populated only when ok.
//
// Errors: only genuine failures surface as errors (a symbolic coefficient
// in the radicand); pattern mismatch never does.
func DecomposeL2NormExpression(e symbolic.Expression, opts ...Option) (ok bool, a *mat.Dense, b *mat.VecDense, vars []symbolic.Variable, err error) {
	o := gatherOptions(opts)

	if e.Kind() != symbolic.KindSqrt {
		return false, nil, nil, nil, nil
	}
	arg := e.Arg()
	if !arg.IsPolynomial() {
		return false, nil, nil, nil, nil
	}
	poly, perr := symbolic.NewPolynomial(arg)
	if perr != nil {
		return false, nil, nil, nil, nil
	}
	if poly.TotalDegree() != 2 {
		return false, nil, nil, nil, nil
	}

	// The whole expression, not just the radicand, fixes the variable
	// ordering so asymmetric variable use is preserved.
	vars, index := ExtractVariablesFromExpression(e)
	q, r, s, qerr := DecomposeQuadraticPolynomial(poly, index)
	if qerr != nil {
		return false, nil, nil, nil, qerr
	}
	n := len(vars)
	qHalf := mat.NewSymDense(n, nil)
	qHalf.ScaleSym(0.5, q)

	a = decomposePSDMatrixIntoXtX(qHalf, o.psdTol)
	if a == nil {
		return false, nil, nil, nil, nil
	}

	// Least squares for b in A'·b = 0.5·r.
	rhs := mat.NewVecDense(n, nil)
	rhs.ScaleVec(0.5, r)
	at := a.T()
	rank, _ := a.Dims()
	b = mat.NewVecDense(rank, nil)
	if serr := b.SolveVec(at, rhs); serr != nil {
		// Rank-deficient or ill-conditioned system: the pattern does not
		// hold exactly.
		return false, nil, nil, nil, nil
	}

	var res mat.VecDense
	res.MulVec(at, b)
	maxResidual := 0.0
	for i := 0; i < n; i++ {
		if d := math.Abs(res.AtVec(i) - rhs.AtVec(i)); d > maxResidual {
			maxResidual = d
		}
	}
	if maxResidual > o.coeffTol {
		return false, nil, nil, nil, nil
	}
	if math.Abs(s-mat.Dot(b, b)) > o.coeffTol {
		return false, nil, nil, nil, nil
	}
	return true, a, b, vars, nil
}
