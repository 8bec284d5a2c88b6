// Package poly implements the polynomial coefficient reducer and the
// degree ≤ 2 solver: a pure function over an AST fragment that returns a
// bounded coefficient map, plus the degree-based solution rules.
package poly

import (
	"fmt"

	"github.com/midbel/computor/internal/ast"
	"github.com/midbel/computor/internal/value"
)

// Evaluator evaluates an AST fragment that is known not to contain the
// unknown — an ordinary variable reference, a built-in call, a previously
// bound function application. The caller supplies this so the reducer stays
// a pure function of the AST and the unknown's name.
type Evaluator interface {
	Eval(expr ast.Expr) (value.Value, error)
}

// Reduce walks expr and collects its coefficient map in unknown (see
// §4.6, step 1). Any subexpression free of the unknown is delegated to eval
// and folds into C[0] (or, inside a product, scales whichever side carries
// the unknown).
func Reduce(expr ast.Expr, unknown string, eval Evaluator) (Coeffs, error) {
	if !containsUnknown(expr, unknown) {
		v, err := eval.Eval(expr)
		if err != nil {
			return nil, err
		}
		if v.Kind() == value.KindMatrix || v.Kind() == value.KindFunction {
			return nil, fmt.Errorf("equation operand must be scalar: %w", value.ErrType)
		}
		return Coeffs{0: v}, nil
	}

	switch n := expr.(type) {
	case ast.Ident:
		return Coeffs{1: value.FromRational(value.One)}, nil
	case ast.Neg:
		m, err := Reduce(n.X, unknown, eval)
		if err != nil {
			return nil, err
		}
		return negCoeffs(m)
	case ast.BinOp:
		return reduceBinOp(n, unknown, eval)
	case ast.Call:
		return nil, fmt.Errorf("%s(...) applied to the unknown: %w", n.Name, ErrNonPolynomial)
	case ast.MatrixLit:
		return nil, fmt.Errorf("matrix literal containing the unknown: %w", value.ErrType)
	default:
		return nil, fmt.Errorf("%T: %w", expr, ErrNonPolynomial)
	}
}

func reduceBinOp(n ast.BinOp, unknown string, eval Evaluator) (Coeffs, error) {
	switch n.Op {
	case ast.OpAdd:
		l, err := Reduce(n.Left, unknown, eval)
		if err != nil {
			return nil, err
		}
		r, err := Reduce(n.Right, unknown, eval)
		if err != nil {
			return nil, err
		}
		return addCoeffs(l, r)
	case ast.OpSub:
		l, err := Reduce(n.Left, unknown, eval)
		if err != nil {
			return nil, err
		}
		r, err := Reduce(n.Right, unknown, eval)
		if err != nil {
			return nil, err
		}
		return subCoeffs(l, r)
	case ast.OpMul:
		l, err := Reduce(n.Left, unknown, eval)
		if err != nil {
			return nil, err
		}
		r, err := Reduce(n.Right, unknown, eval)
		if err != nil {
			return nil, err
		}
		return mulCoeffs(l, r)
	case ast.OpDiv:
		if containsUnknown(n.Right, unknown) {
			return nil, fmt.Errorf("division by a term containing the unknown: %w", ErrNonPolynomial)
		}
		l, err := Reduce(n.Left, unknown, eval)
		if err != nil {
			return nil, err
		}
		divisor, err := eval.Eval(n.Right)
		if err != nil {
			return nil, err
		}
		out := Coeffs{}
		for k, v := range l {
			q, err := value.Div(v, divisor)
			if err != nil {
				return nil, err
			}
			out[k] = q
		}
		return out, nil
	case ast.OpPow:
		if containsUnknown(n.Right, unknown) {
			return nil, fmt.Errorf("the unknown used as an exponent: %w", ErrNonPolynomial)
		}
		expV, err := eval.Eval(n.Right)
		if err != nil {
			return nil, err
		}
		expR, ok := expV.AsRational()
		if !ok || !expR.IsInt() {
			return nil, fmt.Errorf("exponent on the unknown must be a literal integer: %w", ErrNonPolynomial)
		}
		k, ok := expR.Int64()
		if !ok || k < 0 {
			return nil, fmt.Errorf("negative exponent on the unknown: %w", ErrNonPolynomial)
		}
		base, err := Reduce(n.Left, unknown, eval)
		if err != nil {
			return nil, err
		}
		out := Coeffs{0: value.FromRational(value.One)}
		for i := int64(0); i < k; i++ {
			out, err = mulCoeffs(out, base)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown operator %q: %w", n.Op, ErrNonPolynomial)
	}
}

// containsUnknown reports whether expr has unknown as a free identifier
// anywhere in its tree.
func containsUnknown(expr ast.Expr, unknown string) bool {
	switch n := expr.(type) {
	case ast.Ident:
		return n.Name == unknown
	case ast.Neg:
		return containsUnknown(n.X, unknown)
	case ast.BinOp:
		return containsUnknown(n.Left, unknown) || containsUnknown(n.Right, unknown)
	case ast.Call:
		return containsUnknown(n.Arg, unknown)
	case ast.MatrixLit:
		for _, row := range n.Rows {
			for _, cell := range row {
				if containsUnknown(cell, unknown) {
					return true
				}
			}
		}
		return false
	default:
		return false
	}
}
