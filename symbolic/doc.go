// SPDX-License-Identifier: MIT

// Package symbolic provides the immutable expression-tree and polynomial
// layer consumed by package decompose.
//
// The expression grammar is a closed set of kinds (see Kind): constants,
// variables, additions, multiplications, powers, and a family of opaque
// unary/binary operators (division, abs, exp, log, sqrt, the trigonometric
// and hyperbolic functions, min/max, ceil/floor, conditional selection, and
// uninterpreted calls). Operations over the grammar dispatch on Kind with a
// switch, not through an interface hierarchy: the kind set is closed, the
// operation set is open.
//
// Canonical form:
//
//	All constructors canonicalize. Additions are flattened, like terms are
//	merged, constants are folded and terms are kept sorted under Compare.
//	Multiplications are flattened, same-base factors merge by summing
//	exponents, and the numeric coefficient is folded out front. Division by
//	a non-zero constant becomes scalar multiplication, so a surviving Div
//	node is genuinely non-polynomial. Because of this, structurally equal
//	values such as 2*x and x*2 compare equal by construction.
//
// Expand distributes products over sums and expands natural-number powers
// of sums; constructors do the rest. The polynomial view (Polynomial,
// Monomial) is built from the expanded form relative to a chosen set of
// indeterminates, with expression-valued coefficients.
//
// Determinism:
//
//	Term order, factor order, monomial order and the variable order
//	reported by Vars (first occurrence, left to right) are all stable and
//	part of the API contract.
package symbolic
