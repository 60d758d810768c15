// SPDX-License-Identifier: MIT

// Package decompose: quadratic extraction under the exact convention
//
//	e = 0.5·x'Qx + b'x + c
//
// Q is kept symmetric by construction — cross terms are written to both
// slots as they are scanned, never symmetrized after the fact — and a pure
// square xᵢ² contributes 2·coefficient to Q[i][i], which is what makes the
// 0.5 convention exact.

package decompose

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/symdec/symbolic"
)

// DecomposeQuadraticPolynomial scans the monomial→coefficient map of p and
// populates (Q, b, c) with e = 0.5·x'Qx + b'x + c under the variable order
// of index.
//
// Inputs:
//   - p: a polynomial of total degree ≤ 2 with numeric coefficients.
//   - index: variable→position mapping of size n; every variable of p must
//     be present with a position in [0, n).
//
// Returns:
//   - Q: n×n symmetric matrix (symmetric by construction).
//   - b: n-vector of linear coefficients.
//   - c: the constant term.
//
// Errors:
//   - ErrDimensionMismatch       — empty index, or a variable of p missing
//     from it or indexed out of range.
//   - ErrDegreeExceeded          — a monomial of degree > 2; it cannot be
//     handled by a quadratic decomposition.
//   - ErrNonConstantCoefficient  — a symbolic coefficient.
//
// Determinism: the scan follows the canonical monomial order of p; every
// update is an accumulation, so the result does not depend on scan order.
func DecomposeQuadraticPolynomial(p symbolic.Polynomial, index map[symbolic.Variable]int) (*mat.SymDense, *mat.VecDense, float64, error) {
	n := len(index)
	if n == 0 {
		return nil, nil, 0, fmt.Errorf("%w: empty variable index", ErrDimensionMismatch)
	}
	q := mat.NewSymDense(n, nil)
	b := mat.NewVecDense(n, nil)
	c := 0.0

	pos := func(v symbolic.Variable) (int, error) {
		i, ok := index[v]
		if !ok || i < 0 || i >= n {
			return 0, fmt.Errorf("%w: variable %s not in index", ErrDimensionMismatch, v)
		}
		return i, nil
	}

	for _, t := range p.Terms() {
		coeff, isConst := t.Coefficient.ConstantValue()
		if !isConst {
			return nil, nil, 0, fmt.Errorf("%w: %s", ErrNonConstantCoefficient, t.Coefficient)
		}
		mono := t.Monomial
		if mono.TotalDegree() > 2 {
			return nil, nil, 0, fmt.Errorf("%w: %s cannot be handled by DecomposeQuadraticPolynomial", ErrDegreeExceeded, mono)
		}
		powers := mono.Powers()
		switch len(powers) {
		case 2:
			// Cross term xᵢ·xⱼ: both powers are 1 (total degree ≤ 2).
			i, err := pos(powers[0].Var)
			if err != nil {
				return nil, nil, 0, err
			}
			j, err := pos(powers[1].Var)
			if err != nil {
				return nil, nil, 0, err
			}
			q.SetSym(i, j, q.At(i, j)+coeff)
		case 1:
			i, err := pos(powers[0].Var)
			if err != nil {
				return nil, nil, 0, err
			}
			if powers[0].Power == 2 {
				// Pure square a·xᵢ²: the factor of 2 makes 0.5·x'Qx exact.
				q.SetSym(i, i, q.At(i, i)+2*coeff)
			} else {
				b.SetVec(i, b.AtVec(i)+coeff)
			}
		default:
			c += coeff
		}
	}
	return q, b, c, nil
}
