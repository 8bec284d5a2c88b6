package value

import (
	"fmt"
	"math"
)

// Complex is a pair (re, im) of Rationals. A Complex with a zero imaginary
// part never escapes the algebra uncollapsed — see CollapseComplex.
type Complex struct {
	Re, Im Rational
}

// NewComplex builds a Complex from its parts, without collapsing.
func NewComplex(re, im Rational) Complex {
	return Complex{Re: re, Im: im}
}

func (c Complex) String() string {
	if c.Im.IsZero() {
		return c.Re.String()
	}
	if c.Re.IsZero() {
		return imagTerm(c.Im)
	}
	if c.Im.Sign() < 0 {
		return fmt.Sprintf("%s - %s", c.Re, imagTerm(c.Im.Abs()))
	}
	return fmt.Sprintf("%s + %s", c.Re, imagTerm(c.Im))
}

// imagTerm renders the magnitude of an imaginary coefficient as "bi",
// collapsing a unit coefficient to a bare "i".
func imagTerm(mag Rational) string {
	if mag.Equal(One) {
		return "i"
	}
	return mag.String() + "i"
}

// CollapseComplex returns the Rational equivalent of c if its imaginary part
// is exactly zero; ok is false otherwise.
func CollapseComplex(c Complex) (Rational, bool) {
	if c.Im.IsZero() {
		return c.Re, true
	}
	return Rational{}, false
}

// Add returns c+d.
func (c Complex) Add(d Complex) Complex {
	return NewComplex(c.Re.Add(d.Re), c.Im.Add(d.Im))
}

// Sub returns c-d.
func (c Complex) Sub(d Complex) Complex {
	return NewComplex(c.Re.Sub(d.Re), c.Im.Sub(d.Im))
}

// Mul returns c*d.
func (c Complex) Mul(d Complex) Complex {
	re := c.Re.Mul(d.Re).Sub(c.Im.Mul(d.Im))
	im := c.Re.Mul(d.Im).Add(c.Im.Mul(d.Re))
	return NewComplex(re, im)
}

// Div returns c/d; fails if d is exactly 0+0i.
func (c Complex) Div(d Complex) (Complex, error) {
	denom := d.Re.Mul(d.Re).Add(d.Im.Mul(d.Im))
	if denom.IsZero() {
		return Complex{}, fmt.Errorf("%s / %s: %w", c, d, ErrDivZero)
	}
	num := c.Mul(Complex{Re: d.Re, Im: d.Im.Neg()})
	re, err := num.Re.Div(denom)
	if err != nil {
		return Complex{}, err
	}
	im, err := num.Im.Div(denom)
	if err != nil {
		return Complex{}, err
	}
	return NewComplex(re, im), nil
}

// Neg returns -c.
func (c Complex) Neg() Complex {
	return NewComplex(c.Re.Neg(), c.Im.Neg())
}

// Equal reports structural equality of the two components.
func (c Complex) Equal(d Complex) bool {
	return c.Re.Equal(d.Re) && c.Im.Equal(d.Im)
}

// NormSquared returns re²+im², always an exact Rational.
func (c Complex) NormSquared() Rational {
	return c.Re.Mul(c.Re).Add(c.Im.Mul(c.Im))
}

// ComplexSqrt returns the principal square root of c via the standard
// closed-form formula over binary floats — exact rational square roots of
// complex numbers have no general closed form, so this always yields an
// approximate result (the principal complex square root).
func ComplexSqrt(c Complex) Complex {
	re, im := c.Re.Float64(), c.Im.Float64()
	modulus := math.Hypot(re, im)
	sqrtRe := math.Sqrt((modulus + re) / 2)
	sqrtIm := math.Sqrt((modulus - re) / 2)
	if im < 0 {
		sqrtIm = -sqrtIm
	}
	return NewComplex(Approx(sqrtRe), Approx(sqrtIm))
}

// PowInt raises c to a non-negative integer power by repeated squaring, per
// a non-negative integer power.
func (c Complex) PowInt(exp int64) (Complex, error) {
	if exp < 0 {
		return Complex{}, fmt.Errorf("%s^%d: %w", c, exp, ErrDomain)
	}
	if exp == 0 {
		return NewComplex(One, Zero), nil
	}
	base := c
	out := NewComplex(One, Zero)
	for exp > 0 {
		if exp&1 == 1 {
			out = out.Mul(base)
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		base = base.Mul(base)
	}
	return out, nil
}
