// SPDX-License-Identifier: MIT

package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symdec/decompose"
	"github.com/katalvlaran/symdec/symbolic"
)

// TestExtractVariablesFromExpression pins first-occurrence order across the
// canonical tree and the consistency of the returned index.
func TestExtractVariablesFromExpression(t *testing.T) {
	a := symbolic.NewVariable("a")
	b := symbolic.NewVariable("b")
	c := symbolic.NewVariable("c")

	e := symbolic.Add(
		symbolic.Mul(symbolic.Var(b), symbolic.Var(a)),
		symbolic.Sin(symbolic.Var(c)),
		symbolic.Var(a), // repeat must not duplicate
	)
	vars, index := decompose.ExtractVariablesFromExpression(e)
	require.Len(t, vars, 3)
	for i, v := range vars {
		require.Equal(t, i, index[v])
	}
}

// TestExtractVariablesAcrossExpressions: later expressions only append the
// variables not already indexed.
func TestExtractVariablesAcrossExpressions(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")
	z := symbolic.NewVariable("z")

	exprs := []symbolic.Expression{
		symbolic.Add(symbolic.Var(y), symbolic.Var(x)),
		symbolic.Mul(symbolic.Var(x), symbolic.Var(z)),
	}
	vars, index := decompose.ExtractVariables(exprs)
	require.Len(t, vars, 3)
	require.Equal(t, len(vars), len(index))
	require.Contains(t, vars, z)
	for i, v := range vars {
		require.Equal(t, i, index[v])
	}
}

// TestAppendVariablesExtendsInPlace verifies the incremental contract:
// existing positions stay fixed, new variables take the next slots.
func TestAppendVariablesExtendsInPlace(t *testing.T) {
	x := symbolic.NewVariable("x")
	y := symbolic.NewVariable("y")

	vars, index := decompose.ExtractVariables([]symbolic.Expression{symbolic.Var(x)})
	require.Equal(t, []symbolic.Variable{x}, vars)

	vars = decompose.AppendVariables(vars, index,
		symbolic.Add(symbolic.Var(x), symbolic.Var(y)))
	require.Equal(t, []symbolic.Variable{x, y}, vars)
	require.Equal(t, 0, index[x])
	require.Equal(t, 1, index[y])
}
