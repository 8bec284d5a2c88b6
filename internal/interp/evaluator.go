// Package interp implements the evaluator: a
// single recursive walk over the AST against an Environment, dispatching
// every arithmetic operation through the value algebra.
package interp

import (
	"fmt"

	"github.com/midbel/computor/internal/ast"
	"github.com/midbel/computor/internal/poly"
	"github.com/midbel/computor/internal/value"
)

// Outcome is what a top-level statement produces for the REPL to render.
// FunDef evaluates successfully but prints nothing; an
// EquationQuery produces the solver's multi-line Text block instead of a
// single Value.
type Outcome struct {
	Value  value.Value
	Text   string
	Silent bool
}

// Eval evaluates a top-level AST node (expression, assignment, or function
// definition) against env. Assignment is transactional at the statement
// level: a failed evaluation leaves env unchanged.
func Eval(node ast.Expr, env *Environment) (Outcome, error) {
	switch n := node.(type) {
	case ast.Assign:
		snap := env.snapshot()
		v, err := evalExpr(n.Expr, env)
		if err != nil {
			env.restore(snap)
			return Outcome{}, Classify(err)
		}
		env.Define(n.Name, v)
		return Outcome{Value: v}, nil
	case ast.FunDef:
		env.Define(n.Name, value.FromFunction(value.Function{Param: n.Param, Body: n.Body}))
		return Outcome{Silent: true}, nil
	case ast.EquationQuery:
		text, err := poly.Solve(n, evaluatorAdapter{env: env})
		if err != nil {
			return Outcome{}, Classify(err)
		}
		return Outcome{Text: text}, nil
	default:
		v, err := evalExpr(node, env)
		if err != nil {
			return Outcome{}, Classify(err)
		}
		return Outcome{Value: v}, nil
	}
}

// EvalExpr evaluates a single expression node against env, without the
// error classification Eval applies. The polynomial reducer does not call it;
// it reaches the same walk through evaluatorAdapter.
func EvalExpr(node ast.Expr, env *Environment) (value.Value, error) {
	return evalExpr(node, env)
}

// evaluatorAdapter satisfies poly.Evaluator over a fixed Environment.
type evaluatorAdapter struct {
	env *Environment
}

func (a evaluatorAdapter) Eval(node ast.Expr) (value.Value, error) {
	return evalExpr(node, a.env)
}

// evalExpr is the recursive walk for ordinary expression nodes (see
// §4.4's per-node contract).
func evalExpr(node ast.Expr, env *Environment) (value.Value, error) {
	switch n := node.(type) {
	case ast.Number:
		return value.FromRational(n.Val), nil
	case ast.ImagUnit:
		return value.FromComplex(value.NewComplex(value.Zero, value.One)), nil
	case ast.Ident:
		v, err := env.Resolve(n.Name)
		if err != nil {
			return value.Value{}, err
		}
		return v, nil
	case ast.Neg:
		x, err := evalExpr(n.X, env)
		if err != nil {
			return value.Value{}, err
		}
		return value.Neg(x)
	case ast.BinOp:
		return evalBinOp(n, env)
	case ast.MatrixLit:
		return evalMatrixLit(n, env)
	case ast.Call:
		return evalCall(n, env)
	case ast.Assign, ast.FunDef, ast.EquationQuery:
		return value.Value{}, fmt.Errorf("%T cannot appear as a subexpression", node)
	default:
		return value.Value{}, fmt.Errorf("%T: unsupported node", node)
	}
}

func evalBinOp(n ast.BinOp, env *Environment) (value.Value, error) {
	left, err := evalExpr(n.Left, env)
	if err != nil {
		return value.Value{}, err
	}
	right, err := evalExpr(n.Right, env)
	if err != nil {
		return value.Value{}, err
	}
	switch n.Op {
	case ast.OpAdd:
		return value.Add(left, right)
	case ast.OpSub:
		return value.Sub(left, right)
	case ast.OpMul:
		return value.Mul(left, right)
	case ast.OpDiv:
		return value.Div(left, right)
	case ast.OpPow:
		return value.Pow(left, right)
	default:
		return value.Value{}, fmt.Errorf("unknown operator %q", n.Op)
	}
}

func evalMatrixLit(n ast.MatrixLit, env *Environment) (value.Value, error) {
	rows := make([][]value.Value, len(n.Rows))
	for i, row := range n.Rows {
		cells := make([]value.Value, len(row))
		for j, cellExpr := range row {
			v, err := evalExpr(cellExpr, env)
			if err != nil {
				return value.Value{}, err
			}
			if v.Kind() == value.KindMatrix || v.Kind() == value.KindFunction {
				return value.Value{}, fmt.Errorf("matrix cell must be a scalar: %w", value.ErrType)
			}
			cells[j] = v
		}
		rows[i] = cells
	}
	m, err := value.FromRows(rows)
	if err != nil {
		return value.Value{}, err
	}
	return value.FromMatrix(m), nil
}

func evalCall(n ast.Call, env *Environment) (value.Value, error) {
	if fn, ok := builtins[n.Name]; ok {
		arg, err := evalExpr(n.Arg, env)
		if err != nil {
			return value.Value{}, err
		}
		return fn(arg, env)
	}

	bound, err := env.Resolve(n.Name)
	if err == nil {
		if f, ok := bound.AsFunction(); ok {
			arg, err := evalExpr(n.Arg, env)
			if err != nil {
				return value.Value{}, err
			}
			body, ok := f.Body.(ast.Expr)
			if !ok {
				return value.Value{}, fmt.Errorf("%s: malformed function body", n.Name)
			}
			child := env.Child()
			child.Define(f.Param, arg)
			return evalExpr(body, child)
		}
		return value.Value{}, fmt.Errorf("%s: %w", n.Name, value.ErrType)
	}

	return value.Value{}, fmt.Errorf("%s: %w", n.Name, ErrUndefinedFunction)
}
