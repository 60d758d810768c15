// SPDX-License-Identifier: MIT

// Package symdec turns symbolic polynomial expressions into the canonical
// numeric and algebraic forms that linear-algebra and optimization back ends
// consume: affine coefficient matrices, quadratic forms, detected L2-norm
// patterns, and lumped-parameter factorizations that separate unknown
// parameters from state variables.
//
// 🚀 What is symdec?
//
//	A deterministic, synchronous, pure-Go decomposition library built from:
//		• symbolic/  — immutable expression trees over a closed kind set,
//		  canonical constructors, Expand normalization, polynomial views
//		• decompose/ — variable indexing, linear/affine/quadratic extraction,
//		  L2-norm pattern matching, and the lumped-parameter factorizer
//
// ✨ Why choose symdec?
//
//   - Deterministic – stable variable orderings and canonical term orders,
//     no global state, no randomness
//   - Explicit failures – sentinel errors checked with errors.Is; pattern
//     mismatch in the L2 matcher is a boolean, never an error
//   - Immutable values – expression trees are read-only; independent calls
//     may share them across goroutines freely
//
// The hardest part, and the reason this library exists, is the
// lumped-parameter factorizer: a recursive rewrite of an arbitrary
// expression into Σ W[j]·α[j] + w0, where W and w0 reference only state
// variables and α only the caller-designated parameter set.
//
// Quick taste:
//
//	m, k := symbolic.NewVariable("m"), symbolic.NewVariable("k")
//	a, x := symbolic.NewVariable("a"), symbolic.NewVariable("x")
//	f := symbolic.Add(
//		symbolic.Mul(symbolic.Var(m), symbolic.Var(a)),
//		symbolic.Mul(symbolic.Var(k), symbolic.Var(x)),
//	)
//	W, alpha, w0, _ := decompose.DecomposeLumpedParameters(
//		[]symbolic.Expression{f}, []symbolic.Variable{m, k})
//	// W = [x a], alpha = [k m], w0 = [0]
//
// Dive into decompose/doc.go for the full algorithm catalogue.
//
//	go get github.com/katalvlaran/symdec
package symdec
