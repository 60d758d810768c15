// SPDX-License-Identifier: MIT

// Package decompose: the PSD square-root kernel behind the L2-norm matcher.
// Eigen-factorization based: for symmetric Q with eigenvalues λᵢ ≥ −tol,
// the factor A stacks √λᵢ·vᵢ' over the decisively positive eigenpairs so
// that A'A = Q up to the tolerance.

package decompose

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// decomposePSDMatrixIntoXtX returns A with A'A = q, or nil when q is not
// positive semi-definite within tol (or has no decisively positive
// eigenvalue at all). A nil result is a normal "no match" outcome for the
// caller, not an error.
func decomposePSDMatrixIntoXtX(q *mat.SymDense, tol float64) *mat.Dense {
	var es mat.EigenSym
	if !es.Factorize(q, true) {
		return nil
	}
	vals := es.Values(nil)
	for _, v := range vals {
		if v < -tol {
			return nil
		}
	}
	rank := 0
	for _, v := range vals {
		if v > tol {
			rank++
		}
	}
	if rank == 0 {
		return nil
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	n := q.SymmetricDim()
	a := mat.NewDense(rank, n, nil)
	row := 0
	for i, v := range vals {
		if v <= tol {
			continue
		}
		s := math.Sqrt(v)
		for j := 0; j < n; j++ {
			a.Set(row, j, s*vecs.At(j, i))
		}
		row++
	}
	return a
}
