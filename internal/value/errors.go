package value

import "errors"

// Sentinel errors used to classify failures across the value algebra.
var (
	ErrType     = errors.New("type error")
	ErrShape    = errors.New("shape error")
	ErrDomain   = errors.New("domain error")
	ErrDivZero  = errors.New("division by zero")
	ErrSingular = errors.New("singular matrix")
)
