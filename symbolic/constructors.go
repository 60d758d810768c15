// SPDX-License-Identifier: MIT

// Package symbolic: canonicalizing constructors. Every public constructor
// returns the canonical form of the requested node:
//
//   - additions flatten nested additions, fold constants, merge like terms
//     (summing coefficients), drop zero terms, and keep terms sorted;
//   - multiplications flatten nested multiplications, fold constant bases,
//     merge same-base factors (summing exponents), drop unit factors, and
//     keep factors sorted by base;
//   - powers fold constant^constant, x^0 → 1, x^1 → x, and push integer
//     exponents through multiplications and nested powers;
//   - division by a non-zero constant becomes scalar multiplication;
//   - opaque unary/binary operators fold constant arguments when the result
//     is a finite number, and otherwise build an opaque node.
//
// Degenerate results collapse: an addition with no terms is its constant, a
// multiplication with no factors is its constant, a product with constant 0
// is the constant 0.

package symbolic

import (
	"math"
	"sort"
)

// Constant returns the constant leaf with value v.
func Constant(v float64) Expression { return Expression{kind: KindConstant, val: v} }

// Var returns the variable leaf for v.
func Var(v Variable) Expression { return Expression{kind: KindVariable, vr: v} }

// Add returns the canonical sum of es.
func Add(es ...Expression) Expression {
	ts := make([]Term, 0, len(es))
	for _, e := range es {
		ts = append(ts, Term{Coeff: 1, Expr: e})
	}
	return newAdd(0, ts)
}

// Sum returns the canonical value of constant + Σ termᵢ.Coeff·termᵢ.Expr.
func Sum(constant float64, terms ...Term) Expression { return newAdd(constant, terms) }

// Sub returns a - b in canonical form.
func Sub(a, b Expression) Expression {
	return newAdd(0, []Term{{Coeff: 1, Expr: a}, {Coeff: -1, Expr: b}})
}

// Neg returns -e in canonical form.
func Neg(e Expression) Expression { return Scale(-1, e) }

// Scale returns c·e in canonical form.
func Scale(c float64, e Expression) Expression { return Mul(Constant(c), e) }

// Mul returns the canonical product of es.
func Mul(es ...Expression) Expression {
	c := 1.0
	fs := make([]Factor, 0, len(es))
	for _, e := range es {
		switch e.kind {
		case KindConstant:
			c *= e.val
		case KindMul:
			c *= e.val
			fs = append(fs, e.factors...)
		case KindPow:
			fs = append(fs, Factor{Base: e.args[0], Exponent: e.args[1]})
		default:
			fs = append(fs, Factor{Base: e, Exponent: Constant(1)})
		}
	}
	return newMul(c, fs)
}

// Pow returns base^exponent in canonical form.
func Pow(base, exponent Expression) Expression {
	if v, ok := exponent.ConstantValue(); ok {
		if v == 0 {
			// base^0 is 1, following the pow(e, 0) == 1 convention.
			return Constant(1)
		}
		if v == 1 {
			return base
		}
	}
	if bv, bok := base.ConstantValue(); bok {
		if ev, eok := exponent.ConstantValue(); eok {
			if r := math.Pow(bv, ev); !math.IsNaN(r) && !math.IsInf(r, 0) {
				return Constant(r)
			}
		}
	}
	if _, ok := natConst(exponent); ok {
		// Route through the multiplication canonicalizer so that
		// (x*y)^2 → x^2·y^2 and (x^2)^3 → x^6.
		if base.kind == KindMul || base.kind == KindPow {
			return newMul(1, []Factor{{Base: base, Exponent: exponent}})
		}
	}
	return Expression{kind: KindPow, args: []Expression{base, exponent}}
}

// Div returns a/b. Division by a non-zero constant is rewritten as scalar
// multiplication; division by the constant zero is a programmer error and
// panics. A surviving Div node therefore always has a symbolic denominator.
func Div(a, b Expression) Expression {
	if v, ok := b.ConstantValue(); ok {
		if v == 0 {
			panic("symbolic: Div: division by constant zero")
		}
		return Scale(1/v, a)
	}
	return Expression{kind: KindDiv, args: []Expression{a, b}}
}

// Abs returns |e|.
func Abs(e Expression) Expression { return unary(KindAbs, e) }

// Exp returns exp(e).
func Exp(e Expression) Expression { return unary(KindExp, e) }

// Log returns log(e).
func Log(e Expression) Expression { return unary(KindLog, e) }

// Sqrt returns √e.
func Sqrt(e Expression) Expression { return unary(KindSqrt, e) }

// Sin returns sin(e).
func Sin(e Expression) Expression { return unary(KindSin, e) }

// Cos returns cos(e).
func Cos(e Expression) Expression { return unary(KindCos, e) }

// Tan returns tan(e).
func Tan(e Expression) Expression { return unary(KindTan, e) }

// Asin returns asin(e).
func Asin(e Expression) Expression { return unary(KindAsin, e) }

// Acos returns acos(e).
func Acos(e Expression) Expression { return unary(KindAcos, e) }

// Atan returns atan(e).
func Atan(e Expression) Expression { return unary(KindAtan, e) }

// Sinh returns sinh(e).
func Sinh(e Expression) Expression { return unary(KindSinh, e) }

// Cosh returns cosh(e).
func Cosh(e Expression) Expression { return unary(KindCosh, e) }

// Tanh returns tanh(e).
func Tanh(e Expression) Expression { return unary(KindTanh, e) }

// Ceil returns ⌈e⌉.
func Ceil(e Expression) Expression { return unary(KindCeil, e) }

// Floor returns ⌊e⌋.
func Floor(e Expression) Expression { return unary(KindFloor, e) }

// Atan2 returns atan2(y, x).
func Atan2(y, x Expression) Expression { return binary(KindAtan2, y, x) }

// Min returns min(a, b).
func Min(a, b Expression) Expression { return binary(KindMin, a, b) }

// Max returns max(a, b).
func Max(a, b Expression) Expression { return binary(KindMax, a, b) }

// IfThenElse returns the conditional selection node over (cond, then, els).
// The condition is kept opaque; no folding is attempted.
func IfThenElse(cond, then, els Expression) Expression {
	return Expression{kind: KindIfThenElse, args: []Expression{cond, then, els}}
}

// Uninterpreted returns an uninterpreted function call name(args...).
func Uninterpreted(name string, args ...Expression) Expression {
	cp := make([]Expression, len(args))
	copy(cp, args)
	return Expression{kind: KindUninterpreted, name: name, args: cp}
}

// unaryFold maps foldable unary kinds to their numeric evaluation.
var unaryFold = map[Kind]func(float64) float64{
	KindAbs:   math.Abs,
	KindExp:   math.Exp,
	KindLog:   math.Log,
	KindSqrt:  math.Sqrt,
	KindSin:   math.Sin,
	KindCos:   math.Cos,
	KindTan:   math.Tan,
	KindAsin:  math.Asin,
	KindAcos:  math.Acos,
	KindAtan:  math.Atan,
	KindSinh:  math.Sinh,
	KindCosh:  math.Cosh,
	KindTanh:  math.Tanh,
	KindCeil:  math.Ceil,
	KindFloor: math.Floor,
}

func unary(k Kind, e Expression) Expression {
	if v, ok := e.ConstantValue(); ok {
		if r := unaryFold[k](v); !math.IsNaN(r) && !math.IsInf(r, 0) {
			return Constant(r)
		}
	}
	return Expression{kind: k, args: []Expression{e}}
}

var binaryFold = map[Kind]func(a, b float64) float64{
	KindAtan2: math.Atan2,
	KindMin:   math.Min,
	KindMax:   math.Max,
}

func binary(k Kind, a, b Expression) Expression {
	av, aok := a.ConstantValue()
	bv, bok := b.ConstantValue()
	if aok && bok {
		if r := binaryFold[k](av, bv); !math.IsNaN(r) && !math.IsInf(r, 0) {
			return Constant(r)
		}
	}
	return Expression{kind: k, args: []Expression{a, b}}
}

// newAdd builds the canonical addition constant + Σ tᵢ. It flattens nested
// additions, folds constant summands, pulls multiplicative constants out of
// term expressions, merges like terms under Compare and drops zero terms.
func newAdd(constant float64, ts []Term) Expression {
	acc := make([]Term, 0, len(ts))

	// insert merges (coeff, expr) into acc, which stays sorted by Expr.
	insert := func(coeff float64, expr Expression) {
		i := sort.Search(len(acc), func(i int) bool {
			return Compare(acc[i].Expr, expr) >= 0
		})
		if i < len(acc) && Compare(acc[i].Expr, expr) == 0 {
			acc[i].Coeff += coeff
			return
		}
		acc = append(acc, Term{})
		copy(acc[i+1:], acc[i:])
		acc[i] = Term{Coeff: coeff, Expr: expr}
	}

	var walk func(coeff float64, e Expression)
	walk = func(coeff float64, e Expression) {
		if coeff == 0 {
			return
		}
		switch e.kind {
		case KindConstant:
			constant += coeff * e.val
		case KindAdd:
			constant += coeff * e.val
			for _, t := range e.terms {
				walk(coeff*t.Coeff, t.Expr)
			}
		case KindMul:
			// Pull the multiplicative constant into the term coefficient so
			// that 3·(2·x) and 6·x merge.
			if e.val != 1 {
				coeff *= e.val
				e = monic(e)
				if e.kind == KindConstant {
					constant += coeff * e.val
					return
				}
			}
			insert(coeff, e)
		default:
			insert(coeff, e)
		}
	}
	for _, t := range ts {
		walk(t.Coeff, t.Expr)
	}

	out := acc[:0:0]
	for _, t := range acc {
		if t.Coeff != 0 {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return Constant(constant)
	}
	if constant == 0 && len(out) == 1 && out[0].Coeff == 1 {
		return out[0].Expr
	}
	return Expression{kind: KindAdd, val: constant, terms: out}
}

// monic strips the leading constant from a multiplication, collapsing a
// single remaining factor the same way newMul does so that the monic value
// of c·x^n is the canonical x^n.
func monic(e Expression) Expression {
	if e.kind != KindMul {
		return e
	}
	if len(e.factors) == 0 {
		return Constant(1)
	}
	if len(e.factors) == 1 {
		return collapseFactor(e.factors[0])
	}
	return Expression{kind: KindMul, val: 1, factors: e.factors}
}

// collapseFactor is the canonical form of a lone base^exponent: the base
// itself for a unit exponent, a power node otherwise. Built directly so a
// collapsing product cannot bounce back through the Pow constructor.
func collapseFactor(f Factor) Expression {
	if f.Exponent.IsOne() {
		return f.Base
	}
	return Expression{kind: KindPow, args: []Expression{f.Base, f.Exponent}}
}

// newMul builds the canonical product constant · Π fᵢ. It flattens nested
// multiplications under integer exponents, folds constant bases, merges
// same-base factors by summing exponents and keeps factors sorted by base.
// A unit product with a single surviving factor collapses to that factor's
// canonical form (its base, or a power node).
func newMul(constant float64, fs []Factor) Expression {
	if constant == 0 {
		return Constant(0)
	}
	acc := make([]Factor, 0, len(fs))

	insert := func(base, exp Expression) {
		i := sort.Search(len(acc), func(i int) bool {
			return Compare(acc[i].Base, base) >= 0
		})
		if i < len(acc) && Compare(acc[i].Base, base) == 0 {
			acc[i].Exponent = Add(acc[i].Exponent, exp)
			return
		}
		acc = append(acc, Factor{})
		copy(acc[i+1:], acc[i:])
		acc[i] = Factor{Base: base, Exponent: exp}
	}

	var addFactor func(base, exp Expression)
	addFactor = func(base, exp Expression) {
		if exp.IsZero() {
			return // base^0 contributes nothing
		}
		switch base.kind {
		case KindConstant:
			if ev, ok := exp.ConstantValue(); ok {
				if r := math.Pow(base.val, ev); !math.IsNaN(r) && !math.IsInf(r, 0) {
					constant *= r
					return
				}
			}
			if base.val == 1 {
				return
			}
			insert(base, exp)
		case KindMul:
			if n, ok := natConst(exp); ok {
				constant *= math.Pow(base.val, float64(n))
				for _, f := range base.factors {
					addFactor(f.Base, Mul(f.Exponent, Constant(float64(n))))
				}
				return
			}
			insert(base, exp)
		case KindPow:
			// (b^e₁)^n → b^(e₁·n) for integer n.
			if n, ok := natConst(exp); ok {
				addFactor(base.args[0], Mul(base.args[1], Constant(float64(n))))
				return
			}
			insert(base, exp)
		default:
			insert(base, exp)
		}
	}
	for _, f := range fs {
		addFactor(f.Base, f.Exponent)
	}
	if constant == 0 {
		return Constant(0)
	}

	out := acc[:0:0]
	for _, f := range acc {
		if !f.Exponent.IsZero() {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return Constant(constant)
	}
	if constant == 1 && len(out) == 1 {
		// A unit product over one factor is not a product at all: collapse
		// so x² has a single canonical form whether it was built by Pow,
		// by Mul(x, x), or by a unit rescale of either.
		return collapseFactor(out[0])
	}
	return Expression{kind: KindMul, val: constant, factors: out}
}
