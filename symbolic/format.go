// SPDX-License-Identifier: MIT

// Package symbolic: deterministic rendering. String output is stable for
// a given canonical value and is used in error messages and examples; it is
// not a parseable syntax.

package symbolic

import (
	"strconv"
	"strings"
)

// kindNames names the function-style kinds for rendering.
var kindNames = map[Kind]string{
	KindAbs:   "abs",
	KindExp:   "exp",
	KindLog:   "log",
	KindSqrt:  "sqrt",
	KindSin:   "sin",
	KindCos:   "cos",
	KindTan:   "tan",
	KindAsin:  "asin",
	KindAcos:  "acos",
	KindAtan:  "atan",
	KindSinh:  "sinh",
	KindCosh:  "cosh",
	KindTanh:  "tanh",
	KindCeil:  "ceil",
	KindFloor: "floor",
	KindAtan2: "atan2",
	KindMin:   "min",
	KindMax:   "max",
}

// String renders e deterministically: additions as "(a + b - c)", products
// as "c * x * y^2", powers as "pow(b, e)", divisions as "(a / b)", and the
// opaque family as function calls.
func (e Expression) String() string {
	switch e.kind {
	case KindConstant:
		return fmtFloat(e.val)
	case KindVariable:
		return e.vr.name
	case KindAdd:
		return e.formatAdd()
	case KindMul:
		return e.formatMul()
	case KindPow:
		return "pow(" + e.args[0].String() + ", " + e.args[1].String() + ")"
	case KindDiv:
		return "(" + e.args[0].String() + " / " + e.args[1].String() + ")"
	case KindIfThenElse:
		return "if_then_else(" + e.args[0].String() + ", " + e.args[1].String() + ", " + e.args[2].String() + ")"
	case KindUninterpreted:
		return e.name + "(" + joinArgs(e.args) + ")"
	default:
		return kindNames[e.kind] + "(" + joinArgs(e.args) + ")"
	}
}

func (e Expression) formatAdd() string {
	var b strings.Builder
	b.WriteByte('(')
	wrote := false
	if e.val != 0 {
		b.WriteString(fmtFloat(e.val))
		wrote = true
	}
	for _, t := range e.terms {
		coeff := t.Coeff
		if wrote {
			if coeff < 0 {
				b.WriteString(" - ")
				coeff = -coeff
			} else {
				b.WriteString(" + ")
			}
		} else if coeff < 0 {
			b.WriteByte('-')
			coeff = -coeff
		}
		if coeff != 1 {
			b.WriteString(fmtFloat(coeff))
			b.WriteString(" * ")
		}
		b.WriteString(t.Expr.String())
		wrote = true
	}
	b.WriteByte(')')
	return b.String()
}

func (e Expression) formatMul() string {
	var b strings.Builder
	val := e.val
	if val == -1 {
		b.WriteByte('-')
	} else if val != 1 {
		b.WriteString(fmtFloat(val))
		b.WriteString(" * ")
	}
	for i, f := range e.factors {
		if i > 0 {
			b.WriteString(" * ")
		}
		base := f.Base.String()
		if f.Base.kind == KindMul {
			base = "(" + base + ")"
		}
		if f.Exponent.IsOne() {
			b.WriteString(base)
			continue
		}
		b.WriteString(base)
		b.WriteByte('^')
		exp := f.Exponent.String()
		if f.Exponent.kind != KindConstant && f.Exponent.kind != KindVariable {
			exp = "(" + exp + ")"
		}
		b.WriteString(exp)
	}
	return b.String()
}

func joinArgs(args []Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
