// SPDX-License-Identifier: MIT

// Package decompose: functional configuration for the L2-norm pattern
// matcher's numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state, defaults are documented
//     constants.
//   - Safe by construction: option constructors panic only on nonsensical
//     parameters (programmer error); user-triggered conditions return
//     sentinel errors elsewhere.

package decompose

import "math"

// DEFAULTS - single source of truth for zero-option behavior.
const (
	// DefaultPSDTolerance is the eigenvalue tolerance under which the
	// quadratic form of a candidate L2-norm radicand is accepted as
	// positive semi-definite.
	DefaultPSDTolerance = 1e-8

	// DefaultCoefficientTolerance bounds both consistency residuals of the
	// L2-norm match: ‖A'b − 0.5r‖_∞ and |s − b'b|.
	DefaultCoefficientTolerance = 1e-8
)

// Internal panic messages (no magic strings).
const (
	panicPSDTolInvalid   = "decompose: WithPSDTolerance: tolerance must be finite, non-negative"
	panicCoeffTolInvalid = "decompose: WithCoefficientTolerance: tolerance must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

type options struct {
	psdTol   float64
	coeffTol float64
}

func defaultOptions() options {
	return options{psdTol: DefaultPSDTolerance, coeffTol: DefaultCoefficientTolerance}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPSDTolerance sets the PSD acceptance tolerance. Panics when tol is
// negative, NaN or infinite.
func WithPSDTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicPSDTolInvalid)
	}
	return func(o *options) { o.psdTol = tol }
}

// WithCoefficientTolerance sets the consistency-residual tolerance. Panics
// when tol is negative, NaN or infinite.
func WithCoefficientTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicCoeffTolInvalid)
	}
	return func(o *options) { o.coeffTol = tol }
}
