// SPDX-License-Identifier: MIT

// Package symbolic: the Expression value, its closed kind set, and the
// structural queries (kind, accessors, variable set, polynomial predicate)
// that package decompose dispatches on.

package symbolic

// Kind enumerates the closed set of expression node kinds. Operations over
// expressions switch on Kind; adding a kind is a breaking change by design.
type Kind uint8

const (
	// KindConstant is a numeric constant leaf.
	KindConstant Kind = iota

	// KindVariable is a variable leaf.
	KindVariable

	// KindAdd is a sum: constant + Σ coeffᵢ·exprᵢ, terms sorted and merged.
	KindAdd

	// KindMul is a product: constant · Π baseᵢ^exponentᵢ, factors sorted
	// and same-base factors merged.
	KindMul

	// KindPow is a standalone power base^exponent. Inside a canonical
	// multiplication the same value lives as a Factor instead; a product
	// that reduces to one unit-scaled power collapses back to this kind,
	// so every standalone power has exactly one representation.
	KindPow

	// KindDiv is a division whose denominator is non-constant (division by
	// a constant folds into a multiplication at construction).
	KindDiv

	// Opaque unary operators.
	KindAbs
	KindExp
	KindLog
	KindSqrt
	KindSin
	KindCos
	KindTan
	KindAsin
	KindAcos
	KindAtan
	KindSinh
	KindCosh
	KindTanh
	KindCeil
	KindFloor

	// Opaque binary operators.
	KindAtan2
	KindMin
	KindMax

	// KindIfThenElse is conditional selection over three sub-expressions.
	KindIfThenElse

	// KindUninterpreted is an uninterpreted function call with a name and
	// arbitrary arguments.
	KindUninterpreted
)

// Term is one scaled summand of an addition: Coeff · Expr. Within a
// canonical addition, Expr is never a constant or another addition, and
// Coeff is never zero.
type Term struct {
	Coeff float64
	Expr  Expression
}

// Factor is one base^exponent unit of a multiplication. Within a canonical
// multiplication the exponent is never the constant zero, and a constant
// base with a foldable exponent has been folded into the product constant.
type Factor struct {
	Base     Expression
	Exponent Expression
}

// Expression is an immutable symbolic tree node. The zero value is the
// constant 0. Expressions are plain values: copying is cheap and the
// backing slices are never mutated after construction, so expressions may
// be read concurrently without synchronization.
type Expression struct {
	kind    Kind
	val     float64      // KindConstant value; additive/multiplicative constant
	vr      Variable     // KindVariable
	terms   []Term       // KindAdd
	factors []Factor     // KindMul
	args    []Expression // KindPow and the opaque family
	name    string       // KindUninterpreted
}

// Kind reports the node kind.
func (e Expression) Kind() Kind { return e.kind }

// IsConstant reports whether e is a constant leaf.
func (e Expression) IsConstant() bool { return e.kind == KindConstant }

// ConstantValue returns the numeric value of a constant leaf. The boolean
// is false when e is not a constant.
func (e Expression) ConstantValue() (float64, bool) {
	if e.kind != KindConstant {
		return 0, false
	}
	return e.val, true
}

// IsZero reports whether e is the constant 0.
func (e Expression) IsZero() bool { return e.kind == KindConstant && e.val == 0 }

// IsOne reports whether e is the constant 1.
func (e Expression) IsOne() bool { return e.kind == KindConstant && e.val == 1 }

// Var returns the variable of a variable leaf; the zero Variable otherwise.
func (e Expression) Var() Variable {
	if e.kind != KindVariable {
		return Variable{}
	}
	return e.vr
}

// AdditionConstant returns the constant c₀ of an addition c₀ + Σ cᵢ·eᵢ.
// It returns 0 when e is not an addition.
func (e Expression) AdditionConstant() float64 {
	if e.kind != KindAdd {
		return 0
	}
	return e.val
}

// AdditionTerms returns the scaled terms of an addition in canonical order.
// The slice is a copy. Empty when e is not an addition.
func (e Expression) AdditionTerms() []Term {
	if e.kind != KindAdd {
		return nil
	}
	out := make([]Term, len(e.terms))
	copy(out, e.terms)
	return out
}

// MulConstant returns the leading constant c of a product c · Π baseᵢ^expᵢ.
// It returns 1 when e is not a multiplication.
func (e Expression) MulConstant() float64 {
	if e.kind != KindMul {
		return 1
	}
	return e.val
}

// MulFactors returns the base^exponent factors of a multiplication in
// canonical order. The slice is a copy. Empty when e is not one.
func (e Expression) MulFactors() []Factor {
	if e.kind != KindMul {
		return nil
	}
	out := make([]Factor, len(e.factors))
	copy(out, e.factors)
	return out
}

// PowBase returns the base of a power node; the constant 0 otherwise.
func (e Expression) PowBase() Expression {
	if e.kind != KindPow {
		return Expression{}
	}
	return e.args[0]
}

// PowExponent returns the exponent of a power node; the constant 0 otherwise.
func (e Expression) PowExponent() Expression {
	if e.kind != KindPow {
		return Expression{}
	}
	return e.args[1]
}

// Arg returns the sole argument of an opaque unary node; the constant 0
// otherwise.
func (e Expression) Arg() Expression {
	if len(e.args) != 1 {
		return Expression{}
	}
	return e.args[0]
}

// Args returns the arguments of a power, opaque, or uninterpreted node.
// The slice is a copy. Empty for leaves, additions and multiplications.
func (e Expression) Args() []Expression {
	if len(e.args) == 0 {
		return nil
	}
	out := make([]Expression, len(e.args))
	copy(out, e.args)
	return out
}

// Name returns the function name of an uninterpreted call; "" otherwise.
func (e Expression) Name() string {
	if e.kind != KindUninterpreted {
		return ""
	}
	return e.name
}

// Vars returns the set of variables referenced by e, ordered by first
// occurrence in a left-to-right walk of the canonical tree. This order is
// a stable API contract: it becomes the column order of coefficient
// matrices derived from e.
func (e Expression) Vars() Variables {
	var s Variables
	e.collectVars(&s)
	return s
}

func (e Expression) collectVars(s *Variables) {
	switch e.kind {
	case KindConstant:
	case KindVariable:
		s.insert(e.vr)
	case KindAdd:
		for _, t := range e.terms {
			t.Expr.collectVars(s)
		}
	case KindMul:
		for _, f := range e.factors {
			f.Base.collectVars(s)
			f.Exponent.collectVars(s)
		}
	default:
		for _, a := range e.args {
			a.collectVars(s)
		}
	}
}

// IsPolynomial reports whether e is a polynomial over its variables:
// constants and variables are; additions and multiplications are when all
// parts are and every exponent is a non-negative integer constant; powers
// likewise; every opaque kind is not.
func (e Expression) IsPolynomial() bool {
	switch e.kind {
	case KindConstant, KindVariable:
		return true
	case KindAdd:
		for _, t := range e.terms {
			if !t.Expr.IsPolynomial() {
				return false
			}
		}
		return true
	case KindMul:
		for _, f := range e.factors {
			if !f.Base.IsPolynomial() || !isNaturalExponent(f.Exponent) {
				return false
			}
		}
		return true
	case KindPow:
		return e.args[0].IsPolynomial() && isNaturalExponent(e.args[1])
	default:
		return false
	}
}

// isNaturalExponent reports whether exp is a non-negative integer constant.
func isNaturalExponent(exp Expression) bool {
	_, ok := natConst(exp)
	return ok
}

// natConst extracts a non-negative integer constant exponent value.
func natConst(e Expression) (int, bool) {
	v, ok := e.ConstantValue()
	if !ok || v < 0 || v != float64(int(v)) {
		return 0, false
	}
	return int(v), true
}
