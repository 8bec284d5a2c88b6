// Package value implements the typed value algebra: exact rationals,
// rational complex numbers, matrices over either, and the promotion rules
// that let binary operators cross between them.
package value

import (
	"fmt"
	"math/big"
	"strconv"
)

// Rational is an exact fraction of arbitrary-precision integers, always kept
// in reduced form with a strictly positive denominator. approx marks a
// value born from a transcendental built-in that could not be represented
// exactly, via a distinguished "approximate" constructor; it
// changes only how the value renders, never how it is computed with.
type Rational struct {
	r      big.Rat
	approx bool
}

// Approx builds a Rational that exactly equals the binary float f (every
// float64 is a dyadic rational) but is flagged and rendered as a floating
// approximation, the floating fallback for transcendental
// results that exact rational arithmetic cannot capture.
func Approx(f float64) Rational {
	var out Rational
	out.r.SetFloat64(f)
	out.approx = true
	return out
}

// IsApprox reports whether r was produced by a floating fallback.
func (r Rational) IsApprox() bool {
	return r.approx
}

// Zero is the additive identity.
var Zero = RationalInt(0)

// One is the multiplicative identity.
var One = RationalInt(1)

// RationalInt builds an exact integer Rational.
func RationalInt(n int64) Rational {
	var r Rational
	r.r.SetInt64(n)
	return r
}

// NewRational builds num/den, reduced; it fails if den is zero.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%d/%d: %w", num, den, ErrDivZero)
	}
	var r Rational
	r.r.SetFrac64(num, den)
	return r, nil
}

// fromBigRat wraps an already-reduced big.Rat.
func fromBigRat(r *big.Rat) Rational {
	var out Rational
	out.r.Set(r)
	return out
}

func fromBigRatApprox(r *big.Rat, approx bool) Rational {
	out := fromBigRat(r)
	out.approx = approx
	return out
}

// ParseDecimal builds the exact Rational for a digit run, optionally
// followed by a fractional digit run ("numerator = all
// digits, denominator = 10^fractional-length").
func ParseDecimal(intPart, fracPart string) (Rational, error) {
	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Rational{}, fmt.Errorf("%s.%s: %w", intPart, fracPart, ErrDomain)
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(fracPart))), nil)
	var out Rational
	out.r.SetFrac(num, den)
	return out, nil
}

func (r Rational) String() string {
	if r.approx {
		return strconv.FormatFloat(r.Float64(), 'g', -1, 64)
	}
	if r.r.IsInt() {
		return r.r.Num().String()
	}
	return fmt.Sprintf("%s/%s", r.r.Num().String(), r.r.Denom().String())
}

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool {
	return r.r.Sign() == 0
}

// Sign returns -1, 0, or 1.
func (r Rational) Sign() int {
	return r.r.Sign()
}

// IsInt reports whether the denominator is 1.
func (r Rational) IsInt() bool {
	return r.r.IsInt()
}

// Int64 returns the value as an int64 when IsInt and it fits; ok is false
// otherwise.
func (r Rational) Int64() (int64, bool) {
	if !r.r.IsInt() {
		return 0, false
	}
	if !r.r.Num().IsInt64() {
		return 0, false
	}
	return r.r.Num().Int64(), true
}

// Float64 converts to a binary floating approximation.
func (r Rational) Float64() float64 {
	f, _ := r.r.Float64()
	return f
}

// Add returns r+b.
func (r Rational) Add(b Rational) Rational {
	var out big.Rat
	out.Add(&r.r, &b.r)
	return fromBigRatApprox(&out, r.approx || b.approx)
}

// Sub returns r-b.
func (r Rational) Sub(b Rational) Rational {
	var out big.Rat
	out.Sub(&r.r, &b.r)
	return fromBigRatApprox(&out, r.approx || b.approx)
}

// Mul returns r*b.
func (r Rational) Mul(b Rational) Rational {
	var out big.Rat
	out.Mul(&r.r, &b.r)
	return fromBigRatApprox(&out, r.approx || b.approx)
}

// Div returns r/b; fails if b is zero.
func (r Rational) Div(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, fmt.Errorf("%s / %s: %w", r, b, ErrDivZero)
	}
	var out big.Rat
	out.Quo(&r.r, &b.r)
	return fromBigRatApprox(&out, r.approx || b.approx), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	var out big.Rat
	out.Neg(&r.r)
	return fromBigRatApprox(&out, r.approx)
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	var out big.Rat
	out.Abs(&r.r)
	return fromBigRatApprox(&out, r.approx)
}

// Cmp compares r to b: -1, 0, or 1.
func (r Rational) Cmp(b Rational) int {
	return r.r.Cmp(&b.r)
}

// Equal reports r == b.
func (r Rational) Equal(b Rational) bool {
	return r.Cmp(b) == 0
}

// PowInt raises r to an integer power. Negative exponents are allowed for
// nonzero r ("negative integer exponents are allowed
// (value ≠ 0)").
func (r Rational) PowInt(exp int64) (Rational, error) {
	if exp == 0 {
		return One, nil
	}
	if exp < 0 {
		if r.IsZero() {
			return Rational{}, fmt.Errorf("0^%d: %w", exp, ErrDivZero)
		}
		inv, err := One.Div(r)
		if err != nil {
			return Rational{}, err
		}
		return inv.PowInt(-exp)
	}
	base := r
	out := One
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

// SqrtExact returns the exact square root when r is a non-negative perfect
// square of rationals (num and den both perfect squares); ok is false
// otherwise, in which case the caller should fall back to a float
// approximation.
func (r Rational) SqrtExact() (Rational, bool) {
	if r.Sign() < 0 {
		return Rational{}, false
	}
	numRoot, ok := isqrt(r.r.Num())
	if !ok {
		return Rational{}, false
	}
	denRoot, ok := isqrt(r.r.Denom())
	if !ok {
		return Rational{}, false
	}
	var out big.Rat
	out.SetFrac(numRoot, denRoot)
	return fromBigRat(&out), true
}

// isqrt returns the exact integer square root of n when n is a perfect
// square.
func isqrt(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 {
		return nil, false
	}
	root := new(big.Int).Sqrt(n)
	sq := new(big.Int).Mul(root, root)
	if sq.Cmp(n) != 0 {
		return nil, false
	}
	return root, true
}
