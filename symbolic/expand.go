// SPDX-License-Identifier: MIT

// Package symbolic: the Expand normalization.
//
// Algorithm Outline:
//  1. Leaves are returned as-is.
//  2. Additions expand each summand and rebuild through the canonical
//     constructor, which flattens and merges.
//  3. Multiplications expand each factor, expand natural powers of sums by
//     repeated multiplication, then distribute the running product over any
//     addition factor — the result of expanding a polynomial product is a
//     flat sum of monomial terms with numeric coefficients.
//  4. Powers with an addition base and a natural exponent multiply out;
//     other powers fold through the Pow constructor.
//  5. Opaque nodes expand their arguments in place and keep their kind.
//
// Expand is the precondition normalization required by the
// lumped-parameter factorizer: after Expand, no multiplication factor with
// a natural exponent hides an addition, which is what makes the factorizer's
// mixed-variable power case unreachable in practice.

package symbolic

// Expand returns the expanded canonical form of e: nested sums and products
// are flattened, numeric constants folded, products distributed over sums,
// and natural-number powers of sums multiplied out. The receiver is not
// modified.
func (e Expression) Expand() Expression {
	switch e.kind {
	case KindConstant, KindVariable:
		return e
	case KindAdd:
		ts := make([]Term, len(e.terms))
		for i, t := range e.terms {
			ts[i] = Term{Coeff: t.Coeff, Expr: t.Expr.Expand()}
		}
		return newAdd(e.val, ts)
	case KindMul:
		res := Constant(e.val)
		for _, f := range e.factors {
			res = distribMul(res, expandFactor(f.Base.Expand(), f.Exponent.Expand()))
		}
		return res
	case KindPow:
		return expandFactor(e.args[0].Expand(), e.args[1].Expand())
	case KindDiv:
		return Div(e.args[0].Expand(), e.args[1].Expand())
	case KindUninterpreted:
		args := make([]Expression, len(e.args))
		for i, a := range e.args {
			args[i] = a.Expand()
		}
		return Expression{kind: KindUninterpreted, name: e.name, args: args}
	default:
		args := make([]Expression, len(e.args))
		for i, a := range e.args {
			args[i] = a.Expand()
		}
		return Expression{kind: e.kind, args: args}
	}
}

// expandFactor expands base^exp for already-expanded base and exp. A
// natural power of an addition is multiplied out by repeated distribution;
// everything else goes through the Pow constructor.
func expandFactor(base, exp Expression) Expression {
	if base.kind == KindAdd {
		if n, ok := natConst(exp); ok && n >= 1 {
			res := base
			for i := 1; i < n; i++ {
				res = distribMul(res, base)
			}
			return res
		}
	}
	return Pow(base, exp)
}

// distribMul multiplies two expanded expressions, distributing over any
// addition operand so the result stays in expanded form.
func distribMul(a, b Expression) Expression {
	if a.kind != KindAdd && b.kind != KindAdd {
		return Mul(a, b)
	}
	ca, ta := additionView(a)
	cb, tb := additionView(b)

	ts := make([]Term, 0, len(ta)+len(tb)+len(ta)*len(tb))
	for _, t := range ta {
		if cb != 0 {
			ts = append(ts, Term{Coeff: t.Coeff * cb, Expr: t.Expr})
		}
	}
	for _, t := range tb {
		if ca != 0 {
			ts = append(ts, Term{Coeff: t.Coeff * ca, Expr: t.Expr})
		}
	}
	for _, ti := range ta {
		for _, tj := range tb {
			ts = append(ts, Term{Coeff: ti.Coeff * tj.Coeff, Expr: Mul(ti.Expr, tj.Expr)})
		}
	}
	return newAdd(ca*cb, ts)
}

// additionView presents any expression as constant + Σ coeffᵢ·exprᵢ:
// a constant is (c, nil), an addition is its parts, anything else is
// (0, [1·e]).
func additionView(e Expression) (float64, []Term) {
	switch e.kind {
	case KindConstant:
		return e.val, nil
	case KindAdd:
		return e.val, e.terms
	default:
		return 0, []Term{{Coeff: 1, Expr: e}}
	}
}
