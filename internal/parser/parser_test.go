package parser

import (
	"testing"

	"github.com/midbel/computor/internal/ast"
)

type fakeResolver map[string]bool

func (f fakeResolver) IsDefined(name string) bool { return f[name] }

func TestParseBareExpression(t *testing.T) {
	e, err := ParseLine("7 / 2", nil)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	bin, ok := e.(ast.BinOp)
	if !ok || bin.Op != ast.OpDiv {
		t.Fatalf("got %#v, want a division BinOp", e)
	}
}

func TestParseAssignment(t *testing.T) {
	e, err := ParseLine("x = 1 + 2", nil)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	a, ok := e.(ast.Assign)
	if !ok || a.Name != "x" {
		t.Fatalf("got %#v, want Assign(x, ...)", e)
	}
}

func TestParseFunctionDefinition(t *testing.T) {
	e, err := ParseLine("f(x) = x^2 + 1", nil)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	fn, ok := e.(ast.FunDef)
	if !ok || fn.Name != "f" || fn.Param != "x" {
		t.Fatalf("got %#v, want FunDef(f, x, ...)", e)
	}
}

func TestParseEquationQuery(t *testing.T) {
	e, err := ParseLine("x^2 - 5*x + 6 = 0 ?", fakeResolver{})
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	q, ok := e.(ast.EquationQuery)
	if !ok {
		t.Fatalf("got %#v, want EquationQuery", e)
	}
	if q.Unknown != "x" {
		t.Fatalf("unknown = %q, want x", q.Unknown)
	}
}

func TestParseEquationQueryRejectsMultipleUnknowns(t *testing.T) {
	_, err := ParseLine("x + y = 0 ?", fakeResolver{})
	if err == nil {
		t.Fatal("expected an error for two unknowns")
	}
}

func TestParseReservedNameAsLvalue(t *testing.T) {
	_, err := ParseLine("i = 3", nil)
	if err == nil {
		t.Fatal("expected an error assigning to i")
	}
}

func TestParsePrecedenceUnaryAboveMulBelowPow(t *testing.T) {
	e, err := ParseLine("-2^2", nil)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	neg, ok := e.(ast.Neg)
	if !ok {
		t.Fatalf("got %#v, want Neg(2^2)", e)
	}
	bin, ok := neg.X.(ast.BinOp)
	if !ok || bin.Op != ast.OpPow {
		t.Fatalf("got %#v, want Neg wrapping a Pow", neg.X)
	}
}

func TestParseMatrixLiteral(t *testing.T) {
	e, err := ParseLine("[[1,2],[3,4]]", nil)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	m, ok := e.(ast.MatrixLit)
	if !ok || len(m.Rows) != 2 || len(m.Rows[0]) != 2 {
		t.Fatalf("got %#v, want a 2x2 matrix literal", e)
	}
}

func TestParseUnterminatedMatrix(t *testing.T) {
	_, err := ParseLine("[[1,2]", nil)
	if err == nil {
		t.Fatal("expected an error for an unterminated matrix literal")
	}
}
