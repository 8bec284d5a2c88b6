// Package lexer turns an input line into a stream of tokens for the parser.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/midbel/computor/internal/token"
)

// Error reports a character the lexer does not recognize.
type Error struct {
	Line, Column int
	Char         rune
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: unexpected character %q", e.Line, e.Column, e.Char)
}

const (
	lparen  = '('
	rparen  = ')'
	lsquare = '['
	rsquare = ']'
	comma   = ','
	semi    = ';'
	equal   = '='
	question = '?'
	plus    = '+'
	minus   = '-'
	star    = '*'
	slash   = '/'
	caret   = '^'
	dot     = '.'
	under   = '_'
)

type cursor struct {
	char rune
	curr int
	next int
	line int
	col  int
}

// Lexer scans a single line of input into tokens.
type Lexer struct {
	input []byte
	cursor
}

// New creates a Lexer over the given input line.
func New(input string) *Lexer {
	l := &Lexer{input: []byte(input)}
	l.line = 1
	l.read()
	return l
}

// Next returns the next token, or a token.EOF kind once the input is
// exhausted. It returns a non-nil error (of type *Error) the first time it
// encounters a character it cannot classify.
func (l *Lexer) Next() (token.Token, error) {
	l.skipBlank()

	tok := token.Token{Line: l.line, Column: l.col}
	if l.done() {
		tok.Kind = token.EOF
		return tok, nil
	}

	switch {
	case isDigit(l.char):
		l.scanNumber(&tok)
		return tok, nil
	case isLetter(l.char):
		l.scanIdent(&tok)
		return tok, nil
	default:
		return l.scanPunct(&tok)
	}
}

// All drains the lexer into a slice, stopping before the terminal EOF token
// is appended, so callers can treat the result as "everything but EOF".
func All(input string) ([]token.Token, error) {
	lx := New(input)
	var toks []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func (l *Lexer) scanNumber(tok *token.Token) {
	start := l.curr
	for !l.done() && isDigit(l.char) {
		l.read()
	}
	tok.Kind = token.Integer
	if l.char == dot {
		l.read()
		for !l.done() && isDigit(l.char) {
			l.read()
		}
		tok.Kind = token.Decimal
	}
	tok.Literal = string(l.input[start:l.curr])
}

func (l *Lexer) scanIdent(tok *token.Token) {
	start := l.curr
	for !l.done() && isAlnum(l.char) {
		l.read()
	}
	tok.Kind = token.Ident
	tok.Literal = string(l.input[start:l.curr])
}

func (l *Lexer) scanPunct(tok *token.Token) (token.Token, error) {
	ch := l.char
	switch ch {
	case lparen:
		tok.Kind = token.Lparen
	case rparen:
		tok.Kind = token.Rparen
	case lsquare:
		tok.Kind = token.Lsquare
	case rsquare:
		tok.Kind = token.Rsquare
	case comma:
		tok.Kind = token.Comma
	case semi:
		tok.Kind = token.Semicolon
	case equal:
		tok.Kind = token.Assign
	case question:
		tok.Kind = token.Question
	case plus:
		tok.Kind = token.Add
	case minus:
		tok.Kind = token.Sub
	case slash:
		tok.Kind = token.Div
	case caret:
		tok.Kind = token.Pow
	case star:
		tok.Kind = token.Mul
		if l.peek() == star {
			l.read()
			tok.Kind = token.Pow
		}
	default:
		line, col := l.line, l.col
		l.read()
		return token.Token{}, &Error{Line: line, Column: col, Char: ch}
	}
	tok.Literal = string(ch)
	l.read()
	return *tok, nil
}

func (l *Lexer) skipBlank() {
	for !l.done() && isBlank(l.char) {
		l.read()
	}
}

func (l *Lexer) done() bool {
	return l.char == utf8.RuneError
}

func (l *Lexer) read() {
	if l.curr >= len(l.input) {
		l.char = utf8.RuneError
		l.curr = len(l.input)
		return
	}
	r, n := utf8.DecodeRune(l.input[l.next:])
	if r == utf8.RuneError {
		l.char = r
		l.curr = len(l.input)
		l.next = len(l.input)
		return
	}
	l.col++
	l.char, l.curr, l.next = r, l.next, l.next+n
}

func (l *Lexer) peek() rune {
	if l.next >= len(l.input) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRune(l.input[l.next:])
	return r
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlnum(r rune) bool {
	return isLetter(r) || isDigit(r) || r == under
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
