// Package parser implements the recursive-descent, operator-precedence
// parser that turns a token stream into an AST expression, assignment,
// function definition, or equation query.
package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/midbel/computor/internal/ast"
	"github.com/midbel/computor/internal/lexer"
	"github.com/midbel/computor/internal/token"
	"github.com/midbel/computor/internal/value"
)

// ErrReservedName flags the use of the reserved identifier "i" as an
// lvalue: i is reserved and using it as an lvalue is an error. Despite
// being detected during parsing, this is classified as a NameError, not a
// ParseError.
var ErrReservedName = errors.New("reserved identifier used as lvalue")

// Error reports a malformed input line.
type Error struct {
	err error
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func errf(format string, args ...any) error {
	return &Error{err: fmt.Errorf(format, args...)}
}

// Resolver answers whether an identifier is currently bound, used to find
// the unknown of an equation query.
type Resolver interface {
	IsDefined(name string) bool
}

// reservedIdent is the name the parser never treats as a plain identifier in
// operand position (the lexer emits it as an ordinary Ident), and which is
// illegal as an lvalue.
const reservedIdent = "i"

// precedence levels, lowest to highest. "=" sits outside this table
// entirely (handled by the top-level form classifier, not as a binary
// operator), then +/-, then */, then unary -, then ^.
const (
	precLowest = iota
	precAdd
	precMul
	precUnary
	precPow
)

var binPrec = map[token.Kind]int{
	token.Add: precAdd,
	token.Sub: precAdd,
	token.Mul: precMul,
	token.Div: precMul,
	token.Pow: precPow,
}

type parser struct {
	toks []token.Token
	pos  int
}

func newParser(toks []token.Token) *parser {
	return &parser{toks: toks}
}

func (p *parser) cur() token.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return token.Token{Kind: token.EOF}
}

func (p *parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) is(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *parser) expect(k token.Kind) (token.Token, error) {
	if !p.is(k) {
		return token.Token{}, errf("unexpected token %s", p.cur())
	}
	return p.advance(), nil
}

// ParseLine parses a full top-level input line: an expression, an
// assignment, a function definition, or an equation query. resolver is
// used only to determine the unknown of an equation query.
func ParseLine(input string, resolver Resolver) (ast.Expr, error) {
	toks, err := lexer.All(input)
	if err != nil {
		return nil, err
	}
	p := newParser(toks)

	left, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}

	if !p.is(token.Assign) {
		if !p.is(token.EOF) {
			return nil, errf("unexpected token %s", p.cur())
		}
		return left, nil
	}
	p.advance()

	right, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}

	if p.is(token.Question) {
		p.advance()
		if !p.is(token.EOF) {
			return nil, errf("unexpected token %s after equation query", p.cur())
		}
		unknown, err := singleUnknown(left, right, resolver)
		if err != nil {
			return nil, err
		}
		return ast.EquationQuery{Lhs: left, Rhs: right, Unknown: unknown}, nil
	}

	if !p.is(token.EOF) {
		return nil, errf("unexpected token %s", p.cur())
	}

	switch lhs := left.(type) {
	case ast.ImagUnit:
		return nil, errf("%s is reserved and cannot be assigned to: %w", reservedIdent, ErrReservedName)
	case ast.Ident:
		if lhs.Name == reservedIdent {
			return nil, errf("%s is reserved and cannot be assigned to: %w", reservedIdent, ErrReservedName)
		}
		return ast.Assign{Name: lhs.Name, Expr: right}, nil
	case ast.Call:
		param, ok := lhs.Arg.(ast.Ident)
		if !ok {
			return nil, errf("function definition expects a single identifier parameter")
		}
		if lhs.Name == reservedIdent {
			return nil, errf("%s is reserved and cannot be assigned to: %w", reservedIdent, ErrReservedName)
		}
		if param.Name == reservedIdent {
			return nil, errf("%s is reserved and cannot be used as a parameter name: %w", reservedIdent, ErrReservedName)
		}
		return ast.FunDef{Name: lhs.Name, Param: param.Name, Body: right}, nil
	default:
		return nil, errf("invalid assignment target")
	}
}

// singleUnknown finds the one free identifier in lhs/rhs that resolver does
// not already bind.
func singleUnknown(lhs, rhs ast.Expr, resolver Resolver) (string, error) {
	seen := map[string]bool{}
	collectIdents(lhs, seen)
	collectIdents(rhs, seen)

	var unknowns []string
	for name := range seen {
		if name == reservedIdent {
			continue
		}
		if resolver == nil || !resolver.IsDefined(name) {
			unknowns = append(unknowns, name)
		}
	}
	if len(unknowns) != 1 {
		return "", errf("equation must have exactly one unknown, found %d: %w", len(unknowns), value.ErrShape)
	}
	return unknowns[0], nil
}

func collectIdents(e ast.Expr, out map[string]bool) {
	switch n := e.(type) {
	case ast.Ident:
		out[n.Name] = true
	case ast.Neg:
		collectIdents(n.X, out)
	case ast.BinOp:
		collectIdents(n.Left, out)
		collectIdents(n.Right, out)
	case ast.Call:
		collectIdents(n.Arg, out)
	case ast.MatrixLit:
		for _, row := range n.Rows {
			for _, cell := range row {
				collectIdents(cell, out)
			}
		}
	}
}

func (p *parser) parseExpr(prec int) (ast.Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for prec < binPrec[p.cur().Kind] {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *parser) parseInfix(left ast.Expr) (ast.Expr, error) {
	op := p.advance()
	rightPrec := binPrec[op.Kind]
	if op.Kind == token.Pow {
		// Right-associative: 2^3^2 = 2^(3^2).
		rightPrec--
	}
	right, err := p.parseExpr(rightPrec)
	if err != nil {
		return nil, err
	}
	return ast.BinOp{Op: opRune(op.Kind), Left: left, Right: right}, nil
}

func opRune(k token.Kind) rune {
	switch k {
	case token.Add:
		return ast.OpAdd
	case token.Sub:
		return ast.OpSub
	case token.Mul:
		return ast.OpMul
	case token.Div:
		return ast.OpDiv
	case token.Pow:
		return ast.OpPow
	default:
		return 0
	}
}

func (p *parser) parsePrefix() (ast.Expr, error) {
	switch p.cur().Kind {
	case token.Integer, token.Decimal:
		return p.parseNumber()
	case token.Ident:
		return p.parseIdentOrCall()
	case token.Lparen:
		return p.parseGroup()
	case token.Lsquare:
		return p.parseMatrix()
	case token.Sub:
		return p.parseUnary()
	default:
		return nil, errf("unexpected token %s", p.cur())
	}
}

func (p *parser) parseNumber() (ast.Expr, error) {
	tok := p.advance()
	var r value.Rational
	var err error
	if tok.Kind == token.Decimal {
		intPart, fracPart := splitDecimal(tok.Literal)
		r, err = value.ParseDecimal(intPart, fracPart)
	} else {
		var n int64
		n, err = strconv.ParseInt(tok.Literal, 10, 64)
		if err == nil {
			r = value.RationalInt(n)
		} else {
			r, err = value.ParseDecimal(tok.Literal, "")
		}
	}
	if err != nil {
		return nil, errf("invalid number %q: %v", tok.Literal, err)
	}
	return ast.Number{Val: r}, nil
}

func splitDecimal(lit string) (string, string) {
	for i, c := range lit {
		if c == '.' {
			return lit[:i], lit[i+1:]
		}
	}
	return lit, ""
}

func (p *parser) parseIdentOrCall() (ast.Expr, error) {
	tok := p.advance()
	if tok.Literal == reservedIdent {
		if p.is(token.Lparen) {
			// `i(` is still a call target; reservedness is enforced only
			// for lvalues, so fall through to generic call parsing below.
		} else {
			return ast.ImagUnit{}, nil
		}
	}
	if p.is(token.Lparen) {
		p.advance()
		arg, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Rparen); err != nil {
			return nil, err
		}
		return ast.Call{Name: tok.Literal, Arg: arg}, nil
	}
	return ast.Ident{Name: tok.Literal}, nil
}

func (p *parser) parseGroup() (ast.Expr, error) {
	p.advance()
	e, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Rparen); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *parser) parseUnary() (ast.Expr, error) {
	p.advance()
	x, err := p.parseExpr(precUnary)
	if err != nil {
		return nil, err
	}
	return ast.Neg{X: x}, nil
}

// parseMatrix parses `[` row (`,` row)* `]` where each row is itself
// `[` expr (`,` expr)* `]`.
func (p *parser) parseMatrix() (ast.Expr, error) {
	p.advance()
	var rows [][]ast.Expr
	for {
		row, err := p.parseMatrixRow()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.Rsquare); err != nil {
		return nil, errf("unterminated matrix literal: %v", err)
	}
	return ast.MatrixLit{Rows: rows}, nil
}

func (p *parser) parseMatrixRow() ([]ast.Expr, error) {
	if _, err := p.expect(token.Lsquare); err != nil {
		return nil, errf("expected a matrix row: %v", err)
	}
	var row []ast.Expr
	for {
		e, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		row = append(row, e)
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.Rsquare); err != nil {
		return nil, errf("unterminated matrix row: %v", err)
	}
	return row, nil
}
