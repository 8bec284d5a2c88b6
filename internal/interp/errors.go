package interp

import (
	"errors"
	"fmt"

	"github.com/midbel/computor/internal/bind"
	"github.com/midbel/computor/internal/lexer"
	"github.com/midbel/computor/internal/parser"
	"github.com/midbel/computor/internal/poly"
	"github.com/midbel/computor/internal/value"
)

// Kind is the closed set of error categories.
type Kind int

const (
	KindLex Kind = iota
	KindParse
	KindName
	KindType
	KindShape
	KindDomain
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "LexError"
	case KindParse:
		return "ParseError"
	case KindName:
		return "NameError"
	case KindType:
		return "TypeError"
	case KindShape:
		return "ShapeError"
	case KindDomain:
		return "DomainError"
	case KindUnsupported:
		return "UnsupportedError"
	default:
		return "Error"
	}
}

// Error is the single error type through which every statement failure is
// reported: one of the closed kinds, wrapping its cause.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func newError(k Kind, err error) *Error {
	return &Error{Kind: k, err: err}
}

// ErrUnsupported is classified as UnsupportedError, like
// poly.ErrNonPolynomial and poly.ErrDegreeTooHigh, which are what the solver
// returns for a non-polynomial equation or a degree above 2.
var ErrUnsupported = errors.New("unsupported")

// Classify wraps err into the closed error taxonomy. It is
// exported so the REPL layer (and tests) can render "Error: <message>"
// uniformly regardless of which layer raised it.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var already *Error
	if errors.As(err, &already) {
		return already
	}
	switch {
	case errorsAsLex(err):
		return newError(KindLex, err)
	case errors.Is(err, parser.ErrReservedName):
		return newError(KindName, err)
	case errorsAsParse(err):
		return newError(KindParse, err)
	case errors.Is(err, bind.ErrNotDefined):
		return newError(KindName, err)
	case errors.Is(err, ErrUndefinedFunction):
		return newError(KindName, err)
	case errors.Is(err, ErrUnsupported), errors.Is(err, poly.ErrNonPolynomial), errors.Is(err, poly.ErrDegreeTooHigh):
		return newError(KindUnsupported, err)
	case errors.Is(err, value.ErrShape):
		return newError(KindShape, err)
	case errors.Is(err, value.ErrDivZero), errors.Is(err, value.ErrDomain), errors.Is(err, value.ErrSingular):
		return newError(KindDomain, err)
	case errors.Is(err, value.ErrType):
		return newError(KindType, err)
	default:
		return newError(KindUnsupported, err)
	}
}

func errorsAsLex(err error) bool {
	var e *lexer.Error
	return errors.As(err, &e)
}

func errorsAsParse(err error) bool {
	var e *parser.Error
	return errors.As(err, &e)
}

// ErrUndefinedFunction flags a Call whose name is neither a built-in nor a
// bound Function.
var ErrUndefinedFunction = fmt.Errorf("undefined function")
