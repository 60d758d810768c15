// SPDX-License-Identifier: MIT

// Package symbolic: the canonical sum-of-monomials view of a polynomial
// expression relative to a chosen indeterminate set.
//
// A Polynomial maps monomials over the indeterminates to coefficient
// expressions. Variables outside the indeterminate set end up inside the
// coefficients, which is why coefficients are expressions rather than
// numbers; callers that require numeric coefficients check IsConstant on
// each one. Term order follows the monomial total order and is stable.

package symbolic

import (
	"fmt"
	"sort"
	"strings"
)

// VarPower is one variable↦power entry of a monomial. Power is always ≥ 1.
type VarPower struct {
	Var   Variable
	Power int
}

// Monomial is a product of variable powers, kept sorted by variable name.
// The zero value is the unit monomial (degree 0).
type Monomial struct {
	powers []VarPower
}

// NewMonomial builds a monomial from the given powers; duplicates merge by
// summing and non-positive powers are dropped.
func NewMonomial(powers ...VarPower) Monomial {
	merged := make(map[Variable]int, len(powers))
	for _, p := range powers {
		if p.Power > 0 {
			merged[p.Var] += p.Power
		}
	}
	out := make([]VarPower, 0, len(merged))
	for v, p := range merged {
		out = append(out, VarPower{Var: v, Power: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Var.name < out[j].Var.name })
	return Monomial{powers: out}
}

// TotalDegree is the sum of the powers; 0 for the unit monomial.
func (m Monomial) TotalDegree() int {
	d := 0
	for _, p := range m.powers {
		d += p.Power
	}
	return d
}

// Powers returns the variable↦power entries sorted by variable name.
// The slice is a copy.
func (m Monomial) Powers() []VarPower {
	out := make([]VarPower, len(m.powers))
	copy(out, m.powers)
	return out
}

// String renders the monomial, e.g. "x^2*y"; the unit monomial is "1".
func (m Monomial) String() string {
	if len(m.powers) == 0 {
		return "1"
	}
	parts := make([]string, len(m.powers))
	for i, p := range m.powers {
		if p.Power == 1 {
			parts[i] = p.Var.name
		} else {
			parts[i] = fmt.Sprintf("%s^%d", p.Var.name, p.Power)
		}
	}
	return strings.Join(parts, "*")
}

// compareMonomials orders monomials by total degree, then lexicographically
// by (variable name, power). Deterministic and total.
func compareMonomials(a, b Monomial) int {
	if c := a.TotalDegree() - b.TotalDegree(); c != 0 {
		return c
	}
	for i := 0; i < len(a.powers) && i < len(b.powers); i++ {
		if c := strings.Compare(a.powers[i].Var.name, b.powers[i].Var.name); c != 0 {
			return c
		}
		if c := a.powers[i].Power - b.powers[i].Power; c != 0 {
			return c
		}
	}
	return len(a.powers) - len(b.powers)
}

// PolyTerm is one monomial with its coefficient expression.
type PolyTerm struct {
	Monomial    Monomial
	Coefficient Expression
}

// Polynomial is the canonical monomial↦coefficient view of a polynomial
// expression. The zero value represents the zero polynomial.
type Polynomial struct {
	terms []PolyTerm
}

// NewPolynomial builds the polynomial view of e with every variable of e
// as an indeterminate. Fails with ErrNonPolynomial when e is not a
// polynomial.
func NewPolynomial(e Expression) (Polynomial, error) {
	return NewPolynomialIn(e, e.Vars())
}

// NewPolynomialIn builds the polynomial view of e treating exactly the
// variables in indets as indeterminates; every other variable is folded
// into the coefficients. Fails with ErrNonPolynomial when e is not a
// polynomial over all of its variables.
func NewPolynomialIn(e Expression, indets Variables) (Polynomial, error) {
	if !e.IsPolynomial() {
		return Polynomial{}, fmt.Errorf("%w: %s", ErrNonPolynomial, e)
	}
	c0, ts := additionView(e.Expand())

	var p Polynomial
	if c0 != 0 {
		p.add(Monomial{}, Constant(c0))
	}
	for _, t := range ts {
		mono, coeff := splitMonomial(t.Expr, indets)
		p.add(mono, Scale(t.Coeff, coeff))
	}

	// Like terms can cancel to an exact zero; drop them so every surviving
	// coefficient is meaningful.
	out := p.terms[:0:0]
	for _, t := range p.terms {
		if !t.Coefficient.IsZero() {
			out = append(out, t)
		}
	}
	p.terms = out
	return p, nil
}

// add merges coeff into the term keyed by mono, keeping terms sorted under
// compareMonomials.
func (p *Polynomial) add(mono Monomial, coeff Expression) {
	i := sort.Search(len(p.terms), func(i int) bool {
		return compareMonomials(p.terms[i].Monomial, mono) >= 0
	})
	if i < len(p.terms) && compareMonomials(p.terms[i].Monomial, mono) == 0 {
		p.terms[i].Coefficient = Add(p.terms[i].Coefficient, coeff)
		return
	}
	p.terms = append(p.terms, PolyTerm{})
	copy(p.terms[i+1:], p.terms[i:])
	p.terms[i] = PolyTerm{Monomial: mono, Coefficient: coeff}
}

// splitMonomial partitions one expanded, monic term into its monomial over
// indets and the residual coefficient multiplier built from everything
// else. The input is a term expression of a canonical expanded addition:
// a variable, a power of a variable, or a monic multiplication of those.
func splitMonomial(e Expression, indets Variables) (Monomial, Expression) {
	switch e.kind {
	case KindVariable:
		if indets.Has(e.vr) {
			return NewMonomial(VarPower{Var: e.vr, Power: 1}), Constant(1)
		}
		return Monomial{}, e
	case KindPow:
		if e.args[0].kind == KindVariable {
			if n, ok := natConst(e.args[1]); ok && indets.Has(e.args[0].vr) {
				return NewMonomial(VarPower{Var: e.args[0].vr, Power: n}), Constant(1)
			}
		}
		return Monomial{}, e
	case KindMul:
		powers := make([]VarPower, 0, len(e.factors))
		rest := make([]Expression, 0, len(e.factors)+1)
		rest = append(rest, Constant(e.val))
		for _, f := range e.factors {
			n, natural := natConst(f.Exponent)
			if natural && f.Base.kind == KindVariable && indets.Has(f.Base.vr) {
				powers = append(powers, VarPower{Var: f.Base.vr, Power: n})
				continue
			}
			rest = append(rest, Pow(f.Base, f.Exponent))
		}
		return NewMonomial(powers...), Mul(rest...)
	default:
		return Monomial{}, e
	}
}

// TotalDegree is the highest monomial total degree; 0 for the zero
// polynomial.
func (p Polynomial) TotalDegree() int {
	d := 0
	for _, t := range p.terms {
		if td := t.Monomial.TotalDegree(); td > d {
			d = td
		}
	}
	return d
}

// Terms returns the monomial↦coefficient entries in canonical monomial
// order. The slice is a copy.
func (p Polynomial) Terms() []PolyTerm {
	out := make([]PolyTerm, len(p.terms))
	copy(out, p.terms)
	return out
}

// Coefficient returns the coefficient of mono and whether the monomial is
// present.
func (p Polynomial) Coefficient(mono Monomial) (Expression, bool) {
	i := sort.Search(len(p.terms), func(i int) bool {
		return compareMonomials(p.terms[i].Monomial, mono) >= 0
	})
	if i < len(p.terms) && compareMonomials(p.terms[i].Monomial, mono) == 0 {
		return p.terms[i].Coefficient, true
	}
	return Expression{}, false
}
