// SPDX-License-Identifier: MIT

// Package decompose: the lumped-parameter factorizer.
//
// Given a parameter set Θ, an expression is rewritten into the canonical
// bilinear form Σⱼ W[j]·α[j] + w0, where every W[j] and w0 reference only
// non-parameter variables and every α[j] only parameters. The rewrite is a
// recursive, structure-preserving visit of the expanded tree, one rule per
// node kind:
//
//   - Variable leaf: a parameter contributes (W=[1], α=[v]); anything else
//     goes to the residual.
//   - Constant leaf: residual.
//   - Addition: recurse per summand and merge terms into an ordered map
//     keyed by the SCALED NON-PARAMETER side cᵢ·Wᵢ[j]; structurally equal
//     keys merge by summing their α contributions. This is the sole
//     deduplication point of the per-expression factorization.
//   - Multiplication: fold factors left to right through the product rule.
//     The product of two factorizations takes the full |Wa|·|Wb| cross
//     product plus the residual-scaled tails; terms that would carry an
//     identically-zero residual multiplier are skipped outright. No
//     deduplication happens here — repeated keys from different cross-term
//     groups stay distinct. Known, accepted compactness limitation; the
//     term count grows multiplicatively along a product chain.
//   - Power and the opaque non-polynomial family: classified whole against
//     Θ — all-parameter, all-non-parameter, or a hard failure when mixed.
//
// The batch entry point merges per-row factorizations into a shared
// parameter basis, deduplicated by the PARAMETER side across rows — the
// opposite side from the per-row addition merge above. The two rules look
// superficially similar; they key on opposite sides.

package decompose

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/symdec/symbolic"
)

// LumpedFactorization is the canonical triple (W, α, w0) with
// e = Σⱼ W[j]·Alpha[j] + W0 under a given parameter partition.
// Invariants: len(W) == len(Alpha); every W[j] and W0 reference only
// non-parameter variables; every Alpha[j] references only parameters.
type LumpedFactorization struct {
	W     []symbolic.Expression
	Alpha []symbolic.Expression
	W0    symbolic.Expression
}

// FactorLumpedParameters rewrites e into a LumpedFactorization under the
// parameter set Θ given by params. The expression is expanded first; the
// partition is call-scoped, not global.
//
// Errors:
//   - ErrUnfactorableMixedTerm — a power with a symbolic exponent, or any
//     opaque node, depends on both parameter and non-parameter variables.
//   - ErrUnimplementedFactorablePower — a mixed power with a constant
//     exponent; expected unreachable after Expand.
func FactorLumpedParameters(e symbolic.Expression, params symbolic.Variables) (LumpedFactorization, error) {
	return factorLumped(e.Expand(), params)
}

// factorLumped dispatches on the node kind of an already-expanded e.
func factorLumped(e symbolic.Expression, params symbolic.Variables) (LumpedFactorization, error) {
	switch e.Kind() {
	case symbolic.KindVariable:
		if params.Has(e.Var()) {
			return LumpedFactorization{
				W:     []symbolic.Expression{symbolic.Constant(1)},
				Alpha: []symbolic.Expression{e},
				W0:    symbolic.Constant(0),
			}, nil
		}
		return LumpedFactorization{W0: e}, nil
	case symbolic.KindConstant:
		return LumpedFactorization{W0: e}, nil
	case symbolic.KindAdd:
		return factorLumpedAdd(e, params)
	case symbolic.KindMul:
		return factorLumpedMul(e, params)
	case symbolic.KindPow:
		return factorLumpedPow(e, params)
	default:
		return factorLumpedOpaque(e, params)
	}
}

// lumpedAccum is the ordered merge map of the addition rule: parallel
// key/alpha slices kept sorted under symbolic.Compare on the key — the
// structural comparator stands in for a canonical serialization. Reading
// the entries off in slice order is reading them in canonical key order.
type lumpedAccum struct {
	keys  []symbolic.Expression
	alpha []symbolic.Expression
}

// add merges alpha into the entry keyed by key, inserting in order.
func (m *lumpedAccum) add(key, alpha symbolic.Expression) {
	i := sort.Search(len(m.keys), func(i int) bool {
		return symbolic.Compare(m.keys[i], key) >= 0
	})
	if i < len(m.keys) && symbolic.Compare(m.keys[i], key) == 0 {
		m.alpha[i] = symbolic.Add(m.alpha[i], alpha)
		return
	}
	m.keys = append(m.keys, symbolic.Expression{})
	copy(m.keys[i+1:], m.keys[i:])
	m.keys[i] = key
	m.alpha = append(m.alpha, symbolic.Expression{})
	copy(m.alpha[i+1:], m.alpha[i:])
	m.alpha[i] = alpha
}

// factorLumpedAdd handles e = c₀ + Σᵢ cᵢ·eᵢ:
//
//	[c₁w₁, c₂w₂, ...]·[α₁, α₂, ...] + (c₀ + Σᵢ cᵢ·w0ᵢ)
//
// with matching scaled non-parameter keys merged. Deduplication keys on
// the NON-parameter side here; the batch merge keys on the parameter side.
func factorLumpedAdd(e symbolic.Expression, params symbolic.Variables) (LumpedFactorization, error) {
	var merged lumpedAccum
	w0 := symbolic.Constant(e.AdditionConstant())
	for _, t := range e.AdditionTerms() {
		sub, err := factorLumped(t.Expr, params)
		if err != nil {
			return LumpedFactorization{}, err
		}
		w0 = symbolic.Add(w0, symbolic.Scale(t.Coeff, sub.W0))
		for j := range sub.W {
			merged.add(symbolic.Scale(t.Coeff, sub.W[j]), sub.Alpha[j])
		}
	}
	return LumpedFactorization{W: merged.keys, Alpha: merged.alpha, W0: w0}, nil
}

// factorLumpedMul handles e = c · Πᵢ baseᵢ^expᵢ by folding the factors
// left to right (canonical factor order) through lumpedProduct, starting
// from the factorization of the bare constant. A unit-exponent factor
// recurses into its base; any other exponent is classified as a power.
func factorLumpedMul(e symbolic.Expression, params symbolic.Variables) (LumpedFactorization, error) {
	f := LumpedFactorization{W0: symbolic.Constant(e.MulConstant())}
	for _, fac := range e.MulFactors() {
		var (
			g   LumpedFactorization
			err error
		)
		if fac.Exponent.IsOne() {
			g, err = factorLumped(fac.Base, params)
		} else {
			g, err = factorLumpedPow(symbolic.Pow(fac.Base, fac.Exponent), params)
		}
		if err != nil {
			return LumpedFactorization{}, err
		}
		// lumpedProduct materializes fresh slices, so reassigning f never
		// aliases storage it is still reading from.
		f = lumpedProduct(f, g)
	}
	return f, nil
}

// lumpedProduct combines two factorizations a·b:
//
//	(wa·αa + w₀a)(wb·αb + w₀b)
//	  = w₀a·w₀b + Σᵢⱼ(waᵢ·wbⱼ · αaᵢ·αbⱼ) + Σⱼ w₀a·wbⱼ·αbⱼ + Σᵢ w₀b·waᵢ·αaᵢ
//
// Cross products come first (i-major), then the w₀a tail, then the w₀b
// tail; tails whose residual multiplier is identically zero are skipped so
// dead zero-valued entries never accumulate. Repeated keys are NOT merged
// here — that is a known, accepted compactness gap kept for compatibility.
func lumpedProduct(a, b LumpedFactorization) LumpedFactorization {
	nonzeroW0a := !a.W0.IsZero()
	nonzeroW0b := !b.W0.IsZero()

	n := len(a.W) * len(b.W)
	if nonzeroW0a {
		n += len(b.W)
	}
	if nonzeroW0b {
		n += len(a.W)
	}
	w := make([]symbolic.Expression, 0, n)
	alpha := make([]symbolic.Expression, 0, n)

	for i := range a.W {
		for j := range b.W {
			w = append(w, symbolic.Mul(a.W[i], b.W[j]))
			alpha = append(alpha, symbolic.Mul(a.Alpha[i], b.Alpha[j]))
		}
	}
	if nonzeroW0a {
		for j := range b.W {
			w = append(w, symbolic.Mul(a.W0, b.W[j]))
			alpha = append(alpha, b.Alpha[j])
		}
	}
	if nonzeroW0b {
		for i := range a.W {
			w = append(w, symbolic.Mul(b.W0, a.W[i]))
			alpha = append(alpha, a.Alpha[i])
		}
	}
	return LumpedFactorization{W: w, Alpha: alpha, W0: symbolic.Mul(a.W0, b.W0)}
}

// factorLumpedPow classifies a power node whole against Θ. Mixed powers
// are hard failures: with a constant exponent the term could be factored
// in principle but is not implemented (the Expand pre-pass is expected to
// eliminate the case); with a symbolic exponent it cannot be factored at
// all.
func factorLumpedPow(e symbolic.Expression, params symbolic.Variables) (LumpedFactorization, error) {
	if e.Kind() != symbolic.KindPow {
		// The Pow constructor simplified the unit away (e.g. a constant
		// base folded); classify whatever is left.
		return factorLumped(e, params)
	}
	vars := e.Vars()
	switch {
	case vars.IsSubsetOf(params):
		return LumpedFactorization{
			W:     []symbolic.Expression{symbolic.Constant(1)},
			Alpha: []symbolic.Expression{e},
			W0:    symbolic.Constant(0),
		}, nil
	case vars.DisjointWith(params):
		return LumpedFactorization{W0: e}, nil
	case e.PowExponent().IsConstant():
		return LumpedFactorization{}, fmt.Errorf("%w: %s", ErrUnimplementedFactorablePower, e)
	default:
		return LumpedFactorization{}, fmt.Errorf("%w: %s", ErrUnfactorableMixedTerm, e)
	}
}

// factorLumpedOpaque is the single generic handler for every opaque
// non-polynomial kind (division, abs, exp, log, sqrt, the trigonometric
// and hyperbolic family, min, max, ceil, floor, conditional selection,
// uninterpreted calls): the node is classified by its variable dependency
// only, never decomposed further.
func factorLumpedOpaque(e symbolic.Expression, params symbolic.Variables) (LumpedFactorization, error) {
	vars := e.Vars()
	switch {
	case vars.IsSubsetOf(params):
		return LumpedFactorization{
			W:     []symbolic.Expression{symbolic.Constant(1)},
			Alpha: []symbolic.Expression{e},
			W0:    symbolic.Constant(0),
		}, nil
	case vars.DisjointWith(params):
		return LumpedFactorization{W0: e}, nil
	default:
		return LumpedFactorization{}, fmt.Errorf("%w: %s", ErrUnfactorableMixedTerm, e)
	}
}

// DecomposeLumpedParameters independently factorizes each row of f and
// merges the results into a shared parameter basis:
//
//	f = W·α + w0
//
// W has one row per input expression and one column per DISTINCT α entry
// across all rows (exact structural equality); rows that contribute
// nothing to a column hold the constant 0. Deduplication here keys on the
// PARAMETER side across rows, unlike the per-row addition merge, which
// keys on the non-parameter side within a row.
//
// Returns the coefficient matrix W, the deduplicated parameter terms α in
// canonical order, and the per-row residual vector w0.
func DecomposeLumpedParameters(f []symbolic.Expression, params []symbolic.Variable) (w [][]symbolic.Expression, alpha []symbolic.Expression, w0 []symbolic.Expression, err error) {
	theta := symbolic.NewVariables(params...)

	// Ordered map from α-expression to its column accumulator.
	var (
		alphaKeys []symbolic.Expression
		columns   [][]symbolic.Expression
	)
	insert := func(key symbolic.Expression) int {
		i := sort.Search(len(alphaKeys), func(i int) bool {
			return symbolic.Compare(alphaKeys[i], key) >= 0
		})
		if i < len(alphaKeys) && symbolic.Compare(alphaKeys[i], key) == 0 {
			return i
		}
		col := make([]symbolic.Expression, len(f))
		for r := range col {
			col[r] = symbolic.Constant(0)
		}
		alphaKeys = append(alphaKeys, symbolic.Expression{})
		copy(alphaKeys[i+1:], alphaKeys[i:])
		alphaKeys[i] = key
		columns = append(columns, nil)
		copy(columns[i+1:], columns[i:])
		columns[i] = col
		return i
	}

	w0 = make([]symbolic.Expression, len(f))
	for i, e := range f {
		fact, ferr := FactorLumpedParameters(e, theta)
		if ferr != nil {
			return nil, nil, nil, ferr
		}
		w0[i] = fact.W0
		for j := range fact.Alpha {
			col := insert(fact.Alpha[j])
			columns[col][i] = symbolic.Add(columns[col][i], fact.W[j])
		}
	}

	w = make([][]symbolic.Expression, len(f))
	for i := range w {
		w[i] = make([]symbolic.Expression, len(alphaKeys))
		for j := range alphaKeys {
			w[i][j] = columns[j][i]
		}
	}
	return w, alphaKeys, w0, nil
}
