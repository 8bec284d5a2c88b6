// Package ast defines the abstract syntax tree produced by the parser:
// expressions, assignments, function definitions, and equation queries.
package ast

import "github.com/midbel/computor/internal/value"

// Expr is any node that can be evaluated to a Value.
type Expr interface {
	exprNode()
}

// Number is a literal Rational.
type Number struct {
	Val value.Rational
}

// ImagUnit is the lexical token `i` in operand position.
type ImagUnit struct{}

// Ident is a bare identifier reference.
type Ident struct {
	Name string
}

// Neg is unary negation.
type Neg struct {
	X Expr
}

// BinOp is one of the binary operators +, -, *, /, ^.
type BinOp struct {
	Op    rune
	Left  Expr
	Right Expr
}

// Operator runes used by BinOp, shared with the polynomial reducer.
const (
	OpAdd = '+'
	OpSub = '-'
	OpMul = '*'
	OpDiv = '/'
	OpPow = '^'
)

// Call is either a built-in invocation or a user function application.
type Call struct {
	Name string
	Arg  Expr
}

// MatrixLit is a matrix literal: a list of rows, each a list of cell
// expressions.
type MatrixLit struct {
	Rows [][]Expr
}

// Assign binds name to the value of Expr.
type Assign struct {
	Name string
	Expr Expr
}

// FunDef installs a single-argument user function.
type FunDef struct {
	Name  string
	Param string
	Body  Expr
}

// EquationQuery is the `lhs = rhs ?` form; Unknown is the single free
// identifier determined by the parser.
type EquationQuery struct {
	Lhs, Rhs Expr
	Unknown  string
}

func (Number) exprNode()        {}
func (ImagUnit) exprNode()      {}
func (Ident) exprNode()         {}
func (Neg) exprNode()           {}
func (BinOp) exprNode()         {}
func (Call) exprNode()          {}
func (MatrixLit) exprNode()     {}
func (Assign) exprNode()        {}
func (FunDef) exprNode()        {}
func (EquationQuery) exprNode() {}
