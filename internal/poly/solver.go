package poly

import (
	"fmt"
	"math"

	"github.com/midbel/computor/internal/ast"
	"github.com/midbel/computor/internal/value"
)

// Solve implements the equation solver's output block: reduce
// lhs-rhs to a coefficient map, render it, and dispatch on its trimmed
// degree. It returns the full multi-line block the REPL prints verbatim, or
// an error (degree > 2, non-polynomial, shape, type) which the caller
// reports as a single "Error: ..." line instead.
func Solve(query ast.EquationQuery, eval Evaluator) (string, error) {
	diff := ast.BinOp{Op: ast.OpSub, Left: query.Lhs, Right: query.Rhs}
	coeffs, err := Reduce(diff, query.Unknown, eval)
	if err != nil {
		return "", err
	}
	coeffs, degree := trim(coeffs)
	if degree > 2 {
		return "", fmt.Errorf("degree %d: %w", degree, ErrDegreeTooHigh)
	}

	reduced := RenderReducedForm(coeffs, degree, query.Unknown)
	header := fmt.Sprintf("Reduced form: %s\nPolynomial degree: %d", reduced, degree)

	switch degree {
	case 0:
		if isZeroValue(coeffs.at(0)) {
			return header + "\nany real number is a solution", nil
		}
		return header + "\nno solution", nil
	case 1:
		return header + "\n" + solveLinear(coeffs), nil
	default:
		return header + "\n" + solveQuadratic(coeffs), nil
	}
}

func solveLinear(c Coeffs) string {
	a1, a0 := c.at(1), c.at(0)
	negA0, _ := value.Neg(a0)
	sol, _ := value.Div(negA0, a1)
	return fmt.Sprintf("The solution is:\n%s", sol)
}

// solveQuadratic implements the degree-2 branch, including the
// "Discriminant: <value>" line the worked examples in §8 print ahead of the
// solution lines.
func solveQuadratic(c Coeffs) string {
	a2, a1, a0 := c.at(2), c.at(1), c.at(0)

	four := value.FromRational(value.RationalInt(4))
	fourAC := mustMul(four, mustMul(a2, a0))
	b2 := mustMul(a1, a1)
	delta := mustSub(b2, fourAC)

	twoA := mustMul(value.FromRational(value.RationalInt(2)), a2)
	negB, _ := value.Neg(a1)

	discLine := fmt.Sprintf("Discriminant: %s", delta)

	if dr, ok := delta.AsRational(); ok {
		switch dr.Sign() {
		case 0:
			sol, _ := value.Div(negB, twoA)
			return fmt.Sprintf("%s\nDiscriminant is zero, the solution is:\n%s", discLine, sol)
		case 1:
			root := sqrtRational(dr)
			r1, _ := value.Div(mustAdd(negB, root), twoA)
			r2, _ := value.Div(mustSub(negB, root), twoA)
			return fmt.Sprintf("%s\nDiscriminant is strictly positive, the two solutions are:\n%s\n%s", discLine, r1, r2)
		default:
			rootAbs := sqrtRational(dr.Abs())
			rootAbsRational, _ := rootAbs.AsRational()
			imagRoot := value.FromComplex(value.NewComplex(value.Zero, rootAbsRational))
			r1, _ := value.Div(mustAdd(negB, imagRoot), twoA)
			r2, _ := value.Div(mustSub(negB, imagRoot), twoA)
			return fmt.Sprintf("%s\nDiscriminant is strictly negative, the two complex solutions are:\n%s\n%s", discLine, r1, r2)
		}
	}

	dc, _ := delta.AsComplex()
	root := value.FromComplex(value.ComplexSqrt(dc))
	r1, _ := value.Div(mustAdd(negB, root), twoA)
	r2, _ := value.Div(mustSub(negB, root), twoA)
	return fmt.Sprintf("%s\nthe two complex solutions are:\n%s\n%s", discLine, r1, r2)
}

// sqrtRational returns the exact root when r is a perfect square, else a
// floating approximation (the worked examples mix both).
func sqrtRational(r value.Rational) value.Value {
	if root, ok := r.SqrtExact(); ok {
		return value.FromRational(root)
	}
	return value.FromRational(value.Approx(math.Sqrt(r.Float64())))
}

func mustAdd(a, b value.Value) value.Value {
	v, _ := value.Add(a, b)
	return v
}

func mustSub(a, b value.Value) value.Value {
	v, _ := value.Sub(a, b)
	return v
}

func mustMul(a, b value.Value) value.Value {
	v, _ := value.Mul(a, b)
	return v
}
