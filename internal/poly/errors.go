package poly

import "errors"

// ErrNonPolynomial flags an equation whose AST shape cannot be collected into
// a coefficient map in the single unknown (division by a term
// containing the unknown, a built-in call over the unknown, the unknown used
// as an exponent).
var ErrNonPolynomial = errors.New("non-polynomial equation")

// ErrDegreeTooHigh flags a trimmed degree above the degree-2 ceiling this
// solver supports ("d > 2: fail").
var ErrDegreeTooHigh = errors.New("polynomial degree > 2 unsupported")
