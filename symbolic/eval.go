// SPDX-License-Identifier: MIT

// Package symbolic: numeric evaluation under a variable environment.
// Used heavily by tests to check algebraic identities at sample points.

package symbolic

import (
	"fmt"
	"math"
)

// Eval evaluates e numerically with variable values taken from env. It
// fails when a variable is missing from env or when an uninterpreted call
// is reached. A conditional selection treats a non-zero condition value as
// true.
func (e Expression) Eval(env map[Variable]float64) (float64, error) {
	switch e.kind {
	case KindConstant:
		return e.val, nil
	case KindVariable:
		v, ok := env[e.vr]
		if !ok {
			return 0, fmt.Errorf("symbolic: Eval: no value for variable %s", e.vr)
		}
		return v, nil
	case KindAdd:
		sum := e.val
		for _, t := range e.terms {
			v, err := t.Expr.Eval(env)
			if err != nil {
				return 0, err
			}
			sum += t.Coeff * v
		}
		return sum, nil
	case KindMul:
		prod := e.val
		for _, f := range e.factors {
			b, err := f.Base.Eval(env)
			if err != nil {
				return 0, err
			}
			x, err := f.Exponent.Eval(env)
			if err != nil {
				return 0, err
			}
			prod *= math.Pow(b, x)
		}
		return prod, nil
	case KindPow:
		b, err := e.args[0].Eval(env)
		if err != nil {
			return 0, err
		}
		x, err := e.args[1].Eval(env)
		if err != nil {
			return 0, err
		}
		return math.Pow(b, x), nil
	case KindDiv:
		num, err := e.args[0].Eval(env)
		if err != nil {
			return 0, err
		}
		den, err := e.args[1].Eval(env)
		if err != nil {
			return 0, err
		}
		return num / den, nil
	case KindIfThenElse:
		cond, err := e.args[0].Eval(env)
		if err != nil {
			return 0, err
		}
		if cond != 0 {
			return e.args[1].Eval(env)
		}
		return e.args[2].Eval(env)
	case KindUninterpreted:
		return 0, fmt.Errorf("symbolic: Eval: uninterpreted function %s", e.name)
	case KindAtan2, KindMin, KindMax:
		a, err := e.args[0].Eval(env)
		if err != nil {
			return 0, err
		}
		b, err := e.args[1].Eval(env)
		if err != nil {
			return 0, err
		}
		return binaryFold[e.kind](a, b), nil
	default:
		a, err := e.args[0].Eval(env)
		if err != nil {
			return 0, err
		}
		return unaryFold[e.kind](a), nil
	}
}
