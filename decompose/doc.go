// SPDX-License-Identifier: MIT

// Package decompose converts symbolic expressions into canonical numeric
// and algebraic forms for linear-algebra and optimization back ends.
//
// Catalogue:
//
//   - Variable indexing: ExtractVariablesFromExpression, ExtractVariables,
//     AppendVariables — stable, duplicate-free variable orderings that
//     become the column order of every derived matrix.
//   - Affine/linear extraction: DecomposeLinearExpressions,
//     DecomposeAffineExpressions, DecomposeAffineExpression,
//     DecomposeAffine, IsAffine/IsAffineIn — degree ≤ 1 coefficient
//     matrices, with the linear variant rejecting constant terms.
//   - Quadratic extraction: DecomposeQuadraticPolynomial — the exact
//     convention e = 0.5·x'Qx + b'x + c with Q symmetric by construction.
//   - L2-norm pattern matching: DecomposeL2NormExpression — recovers A, b
//     with e = ‖A·x + b‖₂ when the pattern holds; "no match" is a boolean,
//     never an error.
//   - Lumped-parameter factorization: FactorLumpedParameters and the batch
//     DecomposeLumpedParameters — rewrite an expression as
//     Σ W[j]·α[j] + w0 with W, w0 over non-parameters and α over the
//     caller's parameter set Θ.
//
// All operations are synchronous, allocation-fresh per call, and free of
// shared mutable state; expression inputs are only read. Numeric outputs
// use gonum/mat dense types.
//
// Errors:
//
//	ErrNonPolynomial           — polynomial input required.
//	ErrNonLinear               — degree > 1, or a constant term where the
//	                             linear contract forbids one.
//	ErrDegreeExceeded          — degree > 2 in the quadratic extractor.
//	ErrNonConstantCoefficient  — a symbolic coefficient where a numeric one
//	                             is required.
//	ErrDimensionMismatch       — empty inputs or a variable missing from a
//	                             caller-supplied index.
//	ErrUnfactorableMixedTerm   — a term entangles parameters and
//	                             non-parameters non-multiplicatively.
//	ErrUnimplementedFactorablePower — a mixed power with a constant
//	                             exponent, factorable in principle but not
//	                             implemented (unreachable after Expand).
package decompose
