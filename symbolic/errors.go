// SPDX-License-Identifier: MIT

// Package symbolic: sentinel error set. All errors returned from this
// package are these sentinels, possibly wrapped with context at the
// failure site; match with errors.Is.

package symbolic

import "errors"

// ErrNonPolynomial is returned when a polynomial view is requested of an
// expression that is not a polynomial over its variables.
var ErrNonPolynomial = errors.New("symbolic: expression is not a polynomial")
