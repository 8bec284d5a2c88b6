package lexer

import (
	"testing"

	"github.com/midbel/computor/internal/token"
)

func TestAll(t *testing.T) {
	tests := []struct {
		input string
		kinds []token.Kind
	}{
		{
			input: "7 / 2",
			kinds: []token.Kind{token.Integer, token.Div, token.Integer},
		},
		{
			input: "(2 + i) * (3 + 2*i)",
			kinds: []token.Kind{
				token.Lparen, token.Integer, token.Add, token.Ident, token.Rparen,
				token.Mul,
				token.Lparen, token.Integer, token.Add, token.Integer, token.Mul, token.Ident, token.Rparen,
			},
		},
		{
			input: "x^2 - 5*x + 6 = 0 ?",
			kinds: []token.Kind{
				token.Ident, token.Pow, token.Integer,
				token.Sub, token.Integer, token.Mul, token.Ident,
				token.Add, token.Integer,
				token.Assign, token.Integer, token.Question,
			},
		},
		{
			input: "a(b) = b ** 2",
			kinds: []token.Kind{
				token.Ident, token.Lparen, token.Ident, token.Rparen,
				token.Assign, token.Ident, token.Pow, token.Integer,
			},
		},
		{
			input: "3.14",
			kinds: []token.Kind{token.Decimal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, err := All(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(toks) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d (%v)", len(toks), len(tt.kinds), toks)
			}
			for i, k := range tt.kinds {
				if toks[i].Kind != k {
					t.Errorf("token %d: got %s, want kind %d", i, toks[i], k)
				}
			}
		})
	}
}

func TestLexError(t *testing.T) {
	_, err := All("1 @ 2")
	if err == nil {
		t.Fatal("expected an error for an unrecognized character")
	}
	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *lexer.Error, got %T", err)
	}
	if lexErr.Char != '@' {
		t.Fatalf("got offending char %q, want '@'", lexErr.Char)
	}
}
