// SPDX-License-Identifier: MIT
// Package decompose: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// decompose package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for programmer errors in option
// constructors.

package decompose

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "decompose: ..." for consistency and easy
// grepping. Do not %w-wrap these sentinels when returning directly; when
// context is essential, wrap with fmt.Errorf("%w: ctx", ErrX) at the
// failure site — callers still match via errors.Is.

var (
	// ErrNonPolynomial is returned when an expression expected to be a
	// polynomial is not one.
	ErrNonPolynomial = errors.New("decompose: non-polynomial expression")

	// ErrNonLinear is returned when a linear/affine decomposition meets a
	// total degree above 1, or when the strictly linear contract meets a
	// non-zero constant term (an affine expression is not linear: a linear
	// form must vanish at the origin).
	ErrNonLinear = errors.New("decompose: non-linear expression")

	// ErrDegreeExceeded is returned by the quadratic extractor for a
	// monomial of total degree above 2, which it cannot handle.
	ErrDegreeExceeded = errors.New("decompose: monomial degree exceeds 2")

	// ErrNonConstantCoefficient is returned when a monomial coefficient
	// expected to be numeric is itself a symbolic expression.
	ErrNonConstantCoefficient = errors.New("decompose: non-constant coefficient")

	// ErrDimensionMismatch is returned eagerly when input shapes cannot
	// produce a well-formed output: empty expression or variable lists, or
	// a referenced variable missing from a caller-supplied index.
	ErrDimensionMismatch = errors.New("decompose: dimension mismatch")

	// ErrUnfactorableMixedTerm is returned by the lumped-parameter
	// factorizer when a sub-expression depends on both parameter and
	// non-parameter variables in a non-multiplicative way.
	ErrUnfactorableMixedTerm = errors.New("decompose: term mixes parameters and non-parameters non-multiplicatively")

	// ErrUnimplementedFactorablePower is returned for a mixed-variable
	// power with a constant exponent: factorable in principle, but not
	// implemented. The Expand pre-pass is expected to make this case
	// unreachable.
	ErrUnimplementedFactorablePower = errors.New("decompose: mixed power is factorable but not implemented")
)
