package value

import "fmt"

// Kind identifies which variant of the tagged union a Value holds.
type Kind uint8

const (
	KindRational Kind = iota
	KindComplex
	KindMatrix
	KindFunction
)

// Function is a user-defined single-argument mapping: a formal parameter
// name plus a body the evaluator understands (an ast.Expr, opaque here to
// avoid an import cycle between value and ast).
type Function struct {
	Param string
	Body  any
}

// Value is the tagged union over Rational, Complex, Matrix, and Function
// this package implements.
type Value struct {
	kind Kind
	rat  Rational
	cx   Complex
	mat  Matrix
	fn   Function
}

// FromRational wraps a Rational as a Value.
func FromRational(r Rational) Value {
	return Value{kind: KindRational, rat: r}
}

// FromComplex wraps a Complex as a Value, collapsing to Rational first if
// the imaginary part is exactly zero.
func FromComplex(c Complex) Value {
	if r, ok := CollapseComplex(c); ok {
		return FromRational(r)
	}
	return Value{kind: KindComplex, cx: c}
}

// FromMatrix wraps a Matrix as a Value.
func FromMatrix(m Matrix) Value {
	return Value{kind: KindMatrix, mat: m}
}

// FromFunction wraps a Function as a Value.
func FromFunction(f Function) Value {
	return Value{kind: KindFunction, fn: f}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// AsRational returns v's Rational payload; ok is false if v is not a
// Rational.
func (v Value) AsRational() (Rational, bool) {
	if v.kind != KindRational {
		return Rational{}, false
	}
	return v.rat, true
}

// AsComplex returns v's value embedded as a Complex, per the promotion
// lattice: a Rational embeds as (r, 0). ok is false for Matrix/Function.
func (v Value) AsComplex() (Complex, bool) {
	switch v.kind {
	case KindComplex:
		return v.cx, true
	case KindRational:
		return NewComplex(v.rat, Zero), true
	default:
		return Complex{}, false
	}
}

// AsMatrix returns v's Matrix payload; ok is false if v is not a Matrix.
func (v Value) AsMatrix() (Matrix, bool) {
	if v.kind != KindMatrix {
		return Matrix{}, false
	}
	return v.mat, true
}

// AsFunction returns v's Function payload; ok is false if v is not a
// Function.
func (v Value) AsFunction() (Function, bool) {
	if v.kind != KindFunction {
		return Function{}, false
	}
	return v.fn, true
}

func (v Value) String() string {
	switch v.kind {
	case KindRational:
		return v.rat.String()
	case KindComplex:
		return v.cx.String()
	case KindMatrix:
		return v.mat.String()
	case KindFunction:
		return fmt.Sprintf("function(%s)", v.fn.Param)
	default:
		return "?"
	}
}

func typeName(v Value) string {
	switch v.kind {
	case KindRational:
		return "rational"
	case KindComplex:
		return "complex"
	case KindMatrix:
		return "matrix"
	case KindFunction:
		return "function"
	default:
		return "?"
	}
}

func typeErr(op string, a, b Value) error {
	return fmt.Errorf("%s: %s and %s: %w", op, typeName(a), typeName(b), ErrType)
}

// isScalar reports whether v is a Rational or Complex.
func isScalar(v Value) bool {
	return v.kind == KindRational || v.kind == KindComplex
}

// Add implements + over the cross-kind promotion table.
func Add(a, b Value) (Value, error) {
	switch {
	case a.kind == KindRational && b.kind == KindRational:
		return FromRational(a.rat.Add(b.rat)), nil
	case isScalar(a) && isScalar(b):
		ac, _ := a.AsComplex()
		bc, _ := b.AsComplex()
		return FromComplex(ac.Add(bc)), nil
	case a.kind == KindMatrix && b.kind == KindMatrix:
		m, err := a.mat.Add(b.mat)
		if err != nil {
			return Value{}, err
		}
		return FromMatrix(m), nil
	default:
		return Value{}, typeErr("addition", a, b)
	}
}

// Sub implements - over the cross-kind promotion table.
func Sub(a, b Value) (Value, error) {
	switch {
	case a.kind == KindRational && b.kind == KindRational:
		return FromRational(a.rat.Sub(b.rat)), nil
	case isScalar(a) && isScalar(b):
		ac, _ := a.AsComplex()
		bc, _ := b.AsComplex()
		return FromComplex(ac.Sub(bc)), nil
	case a.kind == KindMatrix && b.kind == KindMatrix:
		m, err := a.mat.Sub(b.mat)
		if err != nil {
			return Value{}, err
		}
		return FromMatrix(m), nil
	default:
		return Value{}, typeErr("subtraction", a, b)
	}
}

// Mul implements × over the cross-kind promotion table, including
// matrix×scalar and scalar×matrix broadcast.
func Mul(a, b Value) (Value, error) {
	switch {
	case a.kind == KindRational && b.kind == KindRational:
		return FromRational(a.rat.Mul(b.rat)), nil
	case isScalar(a) && isScalar(b):
		ac, _ := a.AsComplex()
		bc, _ := b.AsComplex()
		return FromComplex(ac.Mul(bc)), nil
	case a.kind == KindMatrix && b.kind == KindMatrix:
		m, err := a.mat.Mul(b.mat)
		if err != nil {
			return Value{}, err
		}
		return FromMatrix(m), nil
	case a.kind == KindMatrix && isScalar(b):
		m, err := a.mat.ScalarMul(b)
		if err != nil {
			return Value{}, err
		}
		return FromMatrix(m), nil
	case isScalar(a) && b.kind == KindMatrix:
		m, err := b.mat.ScalarMul(a)
		if err != nil {
			return Value{}, err
		}
		return FromMatrix(m), nil
	default:
		return Value{}, typeErr("multiply", a, b)
	}
}

// Div implements ÷ over the cross-kind promotion table: scalar÷scalar,
// and matrix÷scalar (cell-wise). Matrix÷matrix is not defined.
func Div(a, b Value) (Value, error) {
	switch {
	case a.kind == KindRational && b.kind == KindRational:
		r, err := a.rat.Div(b.rat)
		if err != nil {
			return Value{}, err
		}
		return FromRational(r), nil
	case isScalar(a) && isScalar(b):
		ac, _ := a.AsComplex()
		bc, _ := b.AsComplex()
		c, err := ac.Div(bc)
		if err != nil {
			return Value{}, err
		}
		return FromComplex(c), nil
	case a.kind == KindMatrix && isScalar(b):
		m, err := a.mat.ScalarDiv(b)
		if err != nil {
			return Value{}, err
		}
		return FromMatrix(m), nil
	default:
		return Value{}, typeErr("division", a, b)
	}
}

// Pow implements ^ over the cross-kind promotion table. The exponent
// must be a Rational with denominator 1 for scalars; for matrices it must be
// an integer exponent on a square matrix (negative requires invertibility).
func Pow(base, exp Value) (Value, error) {
	expRat, ok := exp.AsRational()
	if !ok || !expRat.IsInt() {
		return Value{}, fmt.Errorf("exponent must be an integer: %w", ErrDomain)
	}
	n, ok := expRat.Int64()
	if !ok {
		return Value{}, fmt.Errorf("exponent out of range: %w", ErrDomain)
	}

	switch base.kind {
	case KindRational:
		r, err := base.rat.PowInt(n)
		if err != nil {
			return Value{}, err
		}
		return FromRational(r), nil
	case KindComplex:
		c, err := base.cx.PowInt(n)
		if err != nil {
			return Value{}, err
		}
		return FromComplex(c), nil
	case KindMatrix:
		m, err := base.mat.PowInt(n)
		if err != nil {
			return Value{}, err
		}
		return FromMatrix(m), nil
	default:
		return Value{}, fmt.Errorf("power of a %s: %w", typeName(base), ErrType)
	}
}

// Neg returns 0-v, using Sub so it inherits promotion.
func Neg(v Value) (Value, error) {
	return Sub(FromRational(Zero), v)
}

// Equal reports whether a and b are the same scalar value after promotion.
// It is not part of the expression grammar.
func Equal(a, b Value) (bool, error) {
	if a.kind == KindMatrix || b.kind == KindMatrix || a.kind == KindFunction || b.kind == KindFunction {
		return false, typeErr("equality", a, b)
	}
	ac, _ := a.AsComplex()
	bc, _ := b.AsComplex()
	return ac.Equal(bc), nil
}
