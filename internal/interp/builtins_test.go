package interp

import (
	"testing"

	"github.com/midbel/computor/internal/angle"
)

func TestBuiltinSqrtExactAndFallback(t *testing.T) {
	env := NewEnvironment(angle.New())
	if got := run(t, env, "sqrt(9)").Value.String(); got != "3" {
		t.Fatalf("sqrt(9) = %q, want 3", got)
	}
	out := run(t, env, "sqrt(2)")
	r, _ := out.Value.AsRational()
	if !r.IsApprox() {
		t.Fatal("sqrt(2) should be a floating approximation")
	}
}

func TestBuiltinSqrtOfNegativeIsImaginary(t *testing.T) {
	env := NewEnvironment(angle.New())
	if got := run(t, env, "sqrt(-4)").Value.String(); got != "2i" {
		t.Fatalf("sqrt(-4) = %q, want 2i", got)
	}
}

func TestBuiltinAbsOnMatrixFails(t *testing.T) {
	env := NewEnvironment(angle.New())
	run(t, env, "A = [[1,2],[3,4]]")
	if err := runErr(t, env, "abs(A)"); err == nil {
		t.Fatal("expected abs(matrix) to fail")
	}
}

func TestBuiltinNormOfVector(t *testing.T) {
	env := NewEnvironment(angle.New())
	if got := run(t, env, "norm([[3,4]])").Value.String(); got != "5" {
		t.Fatalf("norm([3,4]) = %q, want 5", got)
	}
}

func TestBuiltinFloorCeil(t *testing.T) {
	env := NewEnvironment(angle.New())
	if got := run(t, env, "floor(7/2)").Value.String(); got != "3" {
		t.Fatalf("floor(7/2) = %q, want 3", got)
	}
	if got := run(t, env, "ceil(7/2)").Value.String(); got != "4" {
		t.Fatalf("ceil(7/2) = %q, want 4", got)
	}
}
