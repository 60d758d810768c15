// SPDX-License-Identifier: MIT

// Package decompose_test provides runnable examples for the decomposition
// entry points. Each example is runnable via "go test -run Example",
// showing both code and expected output.
package decompose_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/symdec/decompose"
	"github.com/katalvlaran/symdec/symbolic"
)

// ExampleDecomposeAffineExpressions extracts (M, v) from two affine rows
// with exprs = M·vars + v.
func ExampleDecomposeAffineExpressions() {
	// 1) Declare the variables; their order fixes the column order of M.
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")
	vars := []symbolic.Variable{x, y}

	// 2) Build the rows x + 2y + 1 and 3x − y.
	exprs := []symbolic.Expression{
		symbolic.Sum(1,
			symbolic.Term{Coeff: 1, Expr: symbolic.Var(x)},
			symbolic.Term{Coeff: 2, Expr: symbolic.Var(y)},
		),
		symbolic.Sum(0,
			symbolic.Term{Coeff: 3, Expr: symbolic.Var(x)},
			symbolic.Term{Coeff: -1, Expr: symbolic.Var(y)},
		),
	}

	// 3) Decompose; any degree violation or symbolic coefficient would
	//    surface as a sentinel error here.
	m, v, err := decompose.DecomposeAffineExpressions(exprs, vars)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Print the recovered matrix and constant vector row by row.
	for i := 0; i < 2; i++ {
		fmt.Printf("M[%d] = [%g %g], v[%d] = %g\n", i, m.At(i, 0), m.At(i, 1), i, v.AtVec(i))
	}
	// Output:
	// M[0] = [1 2], v[0] = 1
	// M[1] = [3 -1], v[1] = 0
}

// ExampleDecomposeQuadraticPolynomial extracts (Q, b, c) under the
// 0.5·x'Qx + b'x + c convention from x² + 2xy + 3x + 4.
func ExampleDecomposeQuadraticPolynomial() {
	// 1) Declare variables and the variable→column index.
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")
	index := map[symbolic.Variable]int{x: 0, y: 1}

	// 2) Build the polynomial view of x² + 2xy + 3x + 4.
	e := symbolic.Sum(4,
		symbolic.Term{Coeff: 1, Expr: symbolic.Pow(symbolic.Var(x), symbolic.Constant(2))},
		symbolic.Term{Coeff: 2, Expr: symbolic.Mul(symbolic.Var(x), symbolic.Var(y))},
		symbolic.Term{Coeff: 3, Expr: symbolic.Var(x)},
	)
	p, err := symbolic.NewPolynomial(e)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Decompose. The pure square x² contributes 2 to Q[0][0]; the cross
	//    term lands symmetrically in Q[0][1] and Q[1][0].
	q, b, c, err := decompose.DecomposeQuadraticPolynomial(p, index)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Q = [%g %g; %g %g]\n", q.At(0, 0), q.At(0, 1), q.At(1, 0), q.At(1, 1))
	fmt.Printf("b = [%g %g]\n", b.AtVec(0), b.AtVec(1))
	fmt.Printf("c = %g\n", c)
	// Output:
	// Q = [2 2; 2 0]
	// b = [3 0]
	// c = 4
}

// ExampleDecomposeL2NormExpression recognizes sqrt(x² + y²) as ‖A·v + b‖₂
// and evaluates the recovered norm at the point (3, 4).
func ExampleDecomposeL2NormExpression() {
	// 1) Build sqrt(x² + y²).
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")
	e := symbolic.Sqrt(symbolic.Add(
		symbolic.Pow(symbolic.Var(x), symbolic.Constant(2)),
		symbolic.Pow(symbolic.Var(y), symbolic.Constant(2)),
	))

	// 2) Match. A non-matching expression would report ok=false, nil error.
	ok, a, b, vars, err := decompose.DecomposeL2NormExpression(e)
	if err != nil || !ok {
		fmt.Println("no match")
		return
	}

	// 3) Evaluate ‖A·(3,4) + b‖₂; eigenvector signs may vary, the norm does
	//    not.
	pt := mat.NewVecDense(len(vars), []float64{3, 4})
	var av mat.VecDense
	av.MulVec(a, pt)
	norm := 0.0
	rank, _ := a.Dims()
	for i := 0; i < rank; i++ {
		d := av.AtVec(i) + b.AtVec(i)
		norm += d * d
	}
	fmt.Printf("match with %d rows, norm at (3,4) = %.1f\n", rank, math.Sqrt(norm))
	// Output: match with 2 rows, norm at (3,4) = 5.0
}

// ExampleFactorLumpedParameters rewrites m·a + k·x under the parameter set
// Θ = {m, k} into the bilinear form Σⱼ W[j]·α[j] + w0.
func ExampleFactorLumpedParameters() {
	// 1) Declare the parameters (m, k) and the remaining variables (a, x).
	m := symbolic.NewVariable("m")
	k := symbolic.NewVariable("k")
	a := symbolic.NewVariable("a")
	x := symbolic.NewVariable("x")

	// 2) Build m·a + k·x.
	e := symbolic.Add(
		symbolic.Mul(symbolic.Var(m), symbolic.Var(a)),
		symbolic.Mul(symbolic.Var(k), symbolic.Var(x)),
	)

	// 3) Factor under Θ = {m, k}: coefficients keep the non-parameters,
	//    lumped parameters keep the parameters.
	f, err := decompose.FactorLumpedParameters(e, symbolic.NewVariables(m, k))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for j := range f.W {
		fmt.Printf("W[%d] = %s, alpha[%d] = %s\n", j, f.W[j], j, f.Alpha[j])
	}
	fmt.Printf("w0 = %s\n", f.W0)
	// Output:
	// W[0] = a, alpha[0] = m
	// W[1] = x, alpha[1] = k
	// w0 = 0
}

// ExampleFactorLumpedParameters_opaque shows an opaque non-parameter factor
// riding along inside the coefficient: m·g·sin(θ) with Θ = {m}.
func ExampleFactorLumpedParameters_opaque() {
	m := symbolic.NewVariable("m")
	g := symbolic.NewVariable("g")
	theta := symbolic.NewVariable("theta")

	e := symbolic.Mul(symbolic.Var(m), symbolic.Var(g), symbolic.Sin(symbolic.Var(theta)))
	f, err := decompose.FactorLumpedParameters(e, symbolic.NewVariables(m))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("W[0] = %s, alpha[0] = %s\n", f.W[0], f.Alpha[0])
	// Output: W[0] = g * sin(theta), alpha[0] = m
}
