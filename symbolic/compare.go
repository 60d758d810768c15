// SPDX-License-Identifier: MIT

// Package symbolic: the structural total order over expressions.
// Compare is the single ordering used everywhere — term and factor order
// inside canonical nodes, monomial-map ordering in Polynomial, and the
// ordered accumulation maps in package decompose. Matching is purely
// structural: it relies on the canonical form maintained by constructors
// (2·x and x·2 collapse to the same value before ever being compared).

package symbolic

import "strings"

// Compare imposes a deterministic total order over expressions: first by
// kind, then recursively by structure. It returns a negative value when
// a < b, zero when a and b are structurally equal, positive otherwise.
func Compare(a, b Expression) int {
	if a.kind != b.kind {
		return int(a.kind) - int(b.kind)
	}
	switch a.kind {
	case KindConstant:
		return compareFloat(a.val, b.val)
	case KindVariable:
		return strings.Compare(a.vr.name, b.vr.name)
	case KindAdd:
		if c := compareFloat(a.val, b.val); c != 0 {
			return c
		}
		if c := len(a.terms) - len(b.terms); c != 0 {
			return c
		}
		for i := range a.terms {
			if c := Compare(a.terms[i].Expr, b.terms[i].Expr); c != 0 {
				return c
			}
			if c := compareFloat(a.terms[i].Coeff, b.terms[i].Coeff); c != 0 {
				return c
			}
		}
		return 0
	case KindMul:
		if c := compareFloat(a.val, b.val); c != 0 {
			return c
		}
		if c := len(a.factors) - len(b.factors); c != 0 {
			return c
		}
		for i := range a.factors {
			if c := Compare(a.factors[i].Base, b.factors[i].Base); c != 0 {
				return c
			}
			if c := Compare(a.factors[i].Exponent, b.factors[i].Exponent); c != 0 {
				return c
			}
		}
		return 0
	case KindUninterpreted:
		if c := strings.Compare(a.name, b.name); c != 0 {
			return c
		}
		fallthrough
	default:
		if c := len(a.args) - len(b.args); c != 0 {
			return c
		}
		for i := range a.args {
			if c := Compare(a.args[i], b.args[i]); c != 0 {
				return c
			}
		}
		return 0
	}
}

// Equal reports structural equality: Compare(e, o) == 0.
func (e Expression) Equal(o Expression) bool { return Compare(e, o) == 0 }

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
