// SPDX-License-Identifier: MIT

// Package decompose: the variable indexer. Collects the distinct variables
// referenced by one or more expressions into a stable, order-preserving
// index. The reported order is a stable API contract, not incidental: it
// becomes the column order of every coefficient matrix derived from it.

package decompose

import "github.com/katalvlaran/symdec/symbolic"

// ExtractVariablesFromExpression returns the distinct variables referenced
// by e in first-occurrence order (scanning the canonical tree left to
// right), plus the variable→position index.
func ExtractVariablesFromExpression(e symbolic.Expression) ([]symbolic.Variable, map[symbolic.Variable]int) {
	vars := e.Vars().List()
	index := make(map[symbolic.Variable]int, len(vars))
	for i, v := range vars {
		index[v] = i
	}
	return vars, index
}

// ExtractVariables returns the distinct variables referenced across exprs,
// in insertion order as they are discovered per-expression variable set,
// plus the variable→position index.
func ExtractVariables(exprs []symbolic.Expression) ([]symbolic.Variable, map[symbolic.Variable]int) {
	var vars []symbolic.Variable
	index := make(map[symbolic.Variable]int)
	vars = AppendVariables(vars, index, exprs...)
	return vars, index
}

// AppendVariables extends an existing ordered index with the variables of
// exprs that are not yet present, preserving discovery order, and returns
// the extended slice. vars and index must describe the same collection:
// index[vars[i]] == i for every i.
func AppendVariables(vars []symbolic.Variable, index map[symbolic.Variable]int, exprs ...symbolic.Expression) []symbolic.Variable {
	for _, e := range exprs {
		for _, v := range e.Vars().List() {
			if _, ok := index[v]; ok {
				continue
			}
			index[v] = len(vars)
			vars = append(vars, v)
		}
	}
	return vars
}
