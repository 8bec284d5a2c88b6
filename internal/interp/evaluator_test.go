package interp

import (
	"testing"

	"github.com/midbel/computor/internal/angle"
	"github.com/midbel/computor/internal/parser"
)

func run(t *testing.T, env *Environment, line string) Outcome {
	t.Helper()
	node, err := parser.ParseLine(line, env)
	if err != nil {
		t.Fatalf("parse %q: %v", line, err)
	}
	out, err := Eval(node, env)
	if err != nil {
		t.Fatalf("eval %q: %v", line, err)
	}
	return out
}

func runErr(t *testing.T, env *Environment, line string) error {
	t.Helper()
	node, err := parser.ParseLine(line, env)
	if err != nil {
		return err
	}
	_, err = Eval(node, env)
	return err
}

func TestEvalDivision(t *testing.T) {
	env := NewEnvironment(angle.New())
	out := run(t, env, "7 / 2")
	if got := out.Value.String(); got != "7/2" {
		t.Fatalf("got %q, want 7/2", got)
	}
}

func TestEvalComplexArithmetic(t *testing.T) {
	env := NewEnvironment(angle.New())
	out := run(t, env, "(2 + i) * (3 + 2*i)")
	if got := out.Value.String(); got != "4 + 7i" {
		t.Fatalf("got %q, want 4 + 7i", got)
	}
}

func TestEvalImaginaryUnitSquared(t *testing.T) {
	env := NewEnvironment(angle.New())
	out := run(t, env, "i * i")
	if got := out.Value.String(); got != "-1" {
		t.Fatalf("got %q, want -1", got)
	}
}

func TestEvalMatrixInverseSequence(t *testing.T) {
	env := NewEnvironment(angle.New())
	run(t, env, "A = [[1,2],[3,4]]")
	out := run(t, env, "inv(A)")
	want := "[ [ -2 , 1 ] ; [ 3/2 , -1/2 ] ]"
	if got := out.Value.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEvalUserFunction(t *testing.T) {
	env := NewEnvironment(angle.New())
	run(t, env, "f(x) = x^2 + 1")
	out := run(t, env, "f(3)")
	if got := out.Value.String(); got != "10" {
		t.Fatalf("got %q, want 10", got)
	}
}

func TestEvalUndefinedNameFails(t *testing.T) {
	env := NewEnvironment(angle.New())
	err := runErr(t, env, "y + 1")
	if err == nil {
		t.Fatal("expected an undefined-name error")
	}
	ce := Classify(err)
	if ce.Kind != KindName {
		t.Fatalf("Kind = %v, want KindName", ce.Kind)
	}
}

func TestEvalAssignmentIsTransactional(t *testing.T) {
	env := NewEnvironment(angle.New())
	run(t, env, "x = 5")
	if err := runErr(t, env, "x = 1 / 0"); err == nil {
		t.Fatal("expected a division-by-zero error")
	}
	out := run(t, env, "x")
	if got := out.Value.String(); got != "5" {
		t.Fatalf("x = %q after failed reassignment, want unchanged 5", got)
	}
}

func TestEvalEquationQueryQuadratic(t *testing.T) {
	env := NewEnvironment(angle.New())
	out := run(t, env, "x^2 - 5*x + 6 = 0 ?")
	want := "Reduced form: x^2 - 5 * x + 6 = 0\n" +
		"Polynomial degree: 2\n" +
		"Discriminant: 1\n" +
		"Discriminant is strictly positive, the two solutions are:\n3\n2"
	if out.Text != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out.Text, want)
	}
}

func TestEvalDegreesModeAffectsTrig(t *testing.T) {
	env := NewEnvironment(angle.New())
	env.AngleMode().Set(angle.Degrees)
	out := run(t, env, "sin(90)")
	got, _ := out.Value.AsRational()
	if got.Float64() < 0.999 || got.Float64() > 1.001 {
		t.Fatalf("sin(90 degrees) = %v, want ~1", got.Float64())
	}
}
