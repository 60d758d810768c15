// SPDX-License-Identifier: MIT

// Package decompose: linear and affine extraction. Decomposes vectors of
// polynomial expressions of total degree ≤ 1 into coefficient matrices and
// constant vectors, with strict fail-fast validation. The linear variant
// additionally forbids constant terms: a linear form must vanish at the
// origin, so a non-zero constant is reported as non-linear, exactly like a
// degree violation.

package decompose

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/symdec/symbolic"
)

// IsAffineIn reports whether every expression in exprs is affine in the
// given variables: a polynomial with total degree ≤ 1 relative to vars.
// An empty exprs is affine by convention.
func IsAffineIn(exprs []symbolic.Expression, vars symbolic.Variables) bool {
	for _, e := range exprs {
		if !e.IsPolynomial() {
			return false
		}
		p, err := symbolic.NewPolynomialIn(e, vars)
		if err != nil || p.TotalDegree() > 1 {
			return false
		}
	}
	return true
}

// IsAffine reports whether every expression in exprs is affine in its own
// variables. An empty exprs is affine by convention.
func IsAffine(exprs []symbolic.Expression) bool {
	for _, e := range exprs {
		if !IsAffineIn([]symbolic.Expression{e}, e.Vars()) {
			return false
		}
	}
	return true
}

// DecomposeLinearExpressions decomposes a vector of expressions, linear in
// vars, into the coefficient matrix M with exprs = M·vars.
//
// Inputs:
//   - exprs: expression rows; each must be a polynomial of total degree ≤ 1
//     in vars, with no constant term.
//   - vars: the explicit, ordered variable list; its order is the column
//     order of M.
//
// Returns:
//   - *mat.Dense: the len(exprs)×len(vars) coefficient matrix.
//
// Errors:
//   - ErrDimensionMismatch       — exprs or vars is empty.
//   - ErrNonPolynomial           — a row is not a polynomial.
//   - ErrNonLinear               — a row has degree > 1 in vars, or carries
//     a constant term (that would be affine, not linear).
//   - ErrNonConstantCoefficient  — a coefficient is symbolic (references a
//     variable outside vars).
//
// Complexity: O(rows · terms) polynomial scans plus the matrix fill.
func DecomposeLinearExpressions(exprs []symbolic.Expression, vars []symbolic.Variable) (*mat.Dense, error) {
	if len(exprs) == 0 || len(vars) == 0 {
		return nil, fmt.Errorf("%w: %d expressions, %d variables", ErrDimensionMismatch, len(exprs), len(vars))
	}
	m := mat.NewDense(len(exprs), len(vars), nil)
	varSet := symbolic.NewVariables(vars...)
	for i, e := range exprs {
		p, err := linearRow(e, varSet)
		if err != nil {
			return nil, err
		}
		if c, ok := p.Coefficient(symbolic.Monomial{}); ok {
			// A constant term makes the row affine; the linear contract
			// requires none.
			return nil, fmt.Errorf("%w: %s has constant term %s", ErrNonLinear, e, c)
		}
		row, err := coefficientRow(p, vars)
		if err != nil {
			return nil, err
		}
		m.SetRow(i, row)
	}
	return m, nil
}

// DecomposeAffineExpressions decomposes a vector of expressions, affine in
// vars, into M and v with exprs = M·vars + v.
//
// Same contract as DecomposeLinearExpressions except that constant terms
// are permitted and collected into v.
func DecomposeAffineExpressions(exprs []symbolic.Expression, vars []symbolic.Variable) (*mat.Dense, *mat.VecDense, error) {
	if len(exprs) == 0 || len(vars) == 0 {
		return nil, nil, fmt.Errorf("%w: %d expressions, %d variables", ErrDimensionMismatch, len(exprs), len(vars))
	}
	m := mat.NewDense(len(exprs), len(vars), nil)
	v := mat.NewVecDense(len(exprs), nil)
	varSet := symbolic.NewVariables(vars...)
	for i, e := range exprs {
		p, err := linearRow(e, varSet)
		if err != nil {
			return nil, nil, err
		}
		row, err := coefficientRow(p, vars)
		if err != nil {
			return nil, nil, err
		}
		m.SetRow(i, row)
		if c, ok := p.Coefficient(symbolic.Monomial{}); ok {
			cv, isConst := c.ConstantValue()
			if !isConst {
				return nil, nil, fmt.Errorf("%w: %s", ErrNonConstantCoefficient, c)
			}
			v.SetVec(i, cv)
		}
	}
	return m, v, nil
}

// linearRow validates one row: polynomial, total degree ≤ 1 in vars.
func linearRow(e symbolic.Expression, vars symbolic.Variables) (symbolic.Polynomial, error) {
	if !e.IsPolynomial() {
		return symbolic.Polynomial{}, fmt.Errorf("%w: %s", ErrNonPolynomial, e)
	}
	p, err := symbolic.NewPolynomialIn(e, vars)
	if err != nil {
		return symbolic.Polynomial{}, fmt.Errorf("%w: %s", ErrNonPolynomial, e)
	}
	if p.TotalDegree() > 1 {
		return symbolic.Polynomial{}, fmt.Errorf("%w: %s has degree %d in the given variables", ErrNonLinear, e, p.TotalDegree())
	}
	return p, nil
}

// coefficientRow collects the coefficient of each variable, 0 when absent,
// rejecting symbolic coefficients.
func coefficientRow(p symbolic.Polynomial, vars []symbolic.Variable) ([]float64, error) {
	row := make([]float64, len(vars))
	for j, v := range vars {
		c, ok := p.Coefficient(symbolic.NewMonomial(symbolic.VarPower{Var: v, Power: 1}))
		if !ok {
			continue
		}
		cv, isConst := c.ConstantValue()
		if !isConst {
			return nil, fmt.Errorf("%w: %s", ErrNonConstantCoefficient, c)
		}
		row[j] = cv
	}
	return row, nil
}

// DecomposeAffineExpression decomposes a single affine expression against a
// caller-supplied variable index.
//
// Inputs:
//   - e: a polynomial of total degree ≤ 1 (in all of its variables).
//   - index: variable→column mapping; every variable of e must be present.
//
// Returns:
//   - coeffs: a len(index) coefficient vector.
//   - constant: the constant term.
//   - nonzero: how many coefficients are non-zero — callers use this to
//     detect degenerate/constant rows.
//
// Errors: ErrDimensionMismatch (empty index, or a variable of e missing
// from it), ErrNonPolynomial, ErrNonLinear, ErrNonConstantCoefficient.
func DecomposeAffineExpression(e symbolic.Expression, index map[symbolic.Variable]int) (coeffs *mat.VecDense, constant float64, nonzero int, err error) {
	if len(index) == 0 {
		return nil, 0, 0, fmt.Errorf("%w: empty variable index", ErrDimensionMismatch)
	}
	if !e.IsPolynomial() {
		return nil, 0, 0, fmt.Errorf("%w: %s", ErrNonPolynomial, e)
	}
	p, perr := symbolic.NewPolynomial(e)
	if perr != nil {
		return nil, 0, 0, fmt.Errorf("%w: %s", ErrNonPolynomial, e)
	}
	coeffs = mat.NewVecDense(len(index), nil)
	for _, t := range p.Terms() {
		cv, isConst := t.Coefficient.ConstantValue()
		if !isConst {
			return nil, 0, 0, fmt.Errorf("%w: %s", ErrNonConstantCoefficient, t.Coefficient)
		}
		switch d := t.Monomial.TotalDegree(); {
		case d > 1:
			return nil, 0, 0, fmt.Errorf("%w: %s", ErrNonLinear, e)
		case d == 1:
			v := t.Monomial.Powers()[0].Var
			j, ok := index[v]
			if !ok || j < 0 || j >= len(index) {
				return nil, 0, 0, fmt.Errorf("%w: variable %s not in index", ErrDimensionMismatch, v)
			}
			coeffs.SetVec(j, cv)
			if cv != 0 {
				nonzero++
			}
		default:
			constant = cv
		}
	}
	return coeffs, constant, nonzero, nil
}

// DecomposeAffine is the free-variable affine decomposition: it indexes the
// variables of exprs itself (first-occurrence order) and returns A, b and
// the variable ordering with exprs = A·vars + b.
//
// Inputs where every row is constant reference no variables at all; that is
// rejected with ErrDimensionMismatch rather than modeled as a zero-column A
// (gonum dense types have no zero-dimension form). Callers with constant
// rows read them directly via DecomposeAffineExpression against their own
// index.
func DecomposeAffine(exprs []symbolic.Expression) (*mat.Dense, *mat.VecDense, []symbolic.Variable, error) {
	vars, index := ExtractVariables(exprs)
	if len(exprs) == 0 || len(vars) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: %d expressions, %d variables", ErrDimensionMismatch, len(exprs), len(vars))
	}
	a := mat.NewDense(len(exprs), len(vars), nil)
	b := mat.NewVecDense(len(exprs), nil)
	for i, e := range exprs {
		coeffs, constant, _, err := DecomposeAffineExpression(e, index)
		if err != nil {
			return nil, nil, nil, err
		}
		a.SetRow(i, coeffs.RawVector().Data)
		b.SetVec(i, constant)
	}
	return a, b, vars, nil
}
