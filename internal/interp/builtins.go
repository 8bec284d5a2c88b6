package interp

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/midbel/computor/internal/angle"
	"github.com/midbel/computor/internal/value"
)

// builtinFunc implements one entry of the fixed built-in table (see
// §4.5).
type builtinFunc func(arg value.Value, env *Environment) (value.Value, error)

var builtins = map[string]builtinFunc{
	"sin":   trig(math.Sin, cmplx.Sin),
	"cos":   trig(math.Cos, cmplx.Cos),
	"tan":   trig(math.Tan, cmplx.Tan),
	"exp":   builtinExp,
	"log":   builtinLog,
	"sqrt":  builtinSqrt,
	"abs":   builtinAbs,
	"floor": builtinFloor,
	"ceil":  builtinCeil,
	"norm":  builtinNorm,
	"inv":   builtinInv,
}

// scalarAngle converts arg (Rational or Complex with zero imaginary part,
// the domain for sin/cos/tan) to a radian float, consulting
// the session's angle mode.
func scalarAngle(arg value.Value, env *Environment) (float64, error) {
	c, ok := arg.AsComplex()
	if !ok {
		return 0, fmt.Errorf("%s: %w", typeNameOf(arg), value.ErrType)
	}
	if !c.Im.IsZero() {
		return 0, fmt.Errorf("angle must be real: %w", value.ErrType)
	}
	f := c.Re.Float64()
	if env.AngleMode().Get() == angle.Degrees {
		f = f * math.Pi / 180
	}
	return f, nil
}

// trig builds a sin/cos/tan builtin: a real argument is evaluated in the
// session's angle mode and returns a floating Rational; a genuinely complex
// argument bypasses angle mode entirely (degrees/
// radians only for real angles) and is evaluated via the standard library's
// complex128 transcendentals, since exact rational trigonometry has no
// closed form.
func trig(real func(float64) float64, cplx func(complex128) complex128) builtinFunc {
	return func(arg value.Value, env *Environment) (value.Value, error) {
		c, ok := arg.AsComplex()
		if !ok {
			return value.Value{}, fmt.Errorf("%s: %w", typeNameOf(arg), value.ErrType)
		}
		if !c.Im.IsZero() {
			out := cplx(complex(c.Re.Float64(), c.Im.Float64()))
			return value.FromComplex(value.NewComplex(value.Approx(real_(out)), value.Approx(imag(out)))), nil
		}
		f, err := scalarAngle(arg, env)
		if err != nil {
			return value.Value{}, err
		}
		return value.FromRational(value.Approx(real(f))), nil
	}
}

func real_(c complex128) float64 {
	return real(c)
}

func builtinExp(arg value.Value, _ *Environment) (value.Value, error) {
	c, ok := arg.AsComplex()
	if !ok {
		return value.Value{}, fmt.Errorf("exp: %w", value.ErrType)
	}
	mag := math.Exp(c.Re.Float64())
	if c.Im.IsZero() {
		return value.FromRational(value.Approx(mag)), nil
	}
	theta := c.Im.Float64()
	re := mag * math.Cos(theta)
	im := mag * math.Sin(theta)
	return value.FromComplex(value.NewComplex(value.Approx(re), value.Approx(im))), nil
}

func builtinLog(arg value.Value, _ *Environment) (value.Value, error) {
	c, ok := arg.AsComplex()
	if !ok {
		return value.Value{}, fmt.Errorf("log: %w", value.ErrType)
	}
	if c.Im.IsZero() {
		re := c.Re.Float64()
		if re > 0 {
			return value.FromRational(value.Approx(math.Log(re))), nil
		}
		if re == 0 {
			return value.Value{}, fmt.Errorf("log(0): %w", value.ErrDivZero)
		}
		// log of a negative real is complex: log|x| + i*pi.
		return value.FromComplex(value.NewComplex(value.Approx(math.Log(-re)), value.Approx(math.Pi))), nil
	}
	modulus := math.Sqrt(c.NormSquared().Float64())
	arg2 := math.Atan2(c.Im.Float64(), c.Re.Float64())
	return value.FromComplex(value.NewComplex(value.Approx(math.Log(modulus)), value.Approx(arg2))), nil
}

// builtinSqrt: exact root for a non-negative Rational whose numerator and
// denominator are both perfect squares, exact imaginary unit scaling for a negative
// Rational, float fallback otherwise, and the principal complex square root
// for a genuinely complex argument.
func builtinSqrt(arg value.Value, _ *Environment) (value.Value, error) {
	if r, ok := arg.AsRational(); ok {
		if r.Sign() >= 0 {
			if root, ok := r.SqrtExact(); ok {
				return value.FromRational(root), nil
			}
			return value.FromRational(value.Approx(math.Sqrt(r.Float64()))), nil
		}
		mag := r.Abs()
		if root, ok := mag.SqrtExact(); ok {
			return value.FromComplex(value.NewComplex(value.Zero, root)), nil
		}
		return value.FromComplex(value.NewComplex(value.Zero, value.Approx(math.Sqrt(mag.Float64())))), nil
	}
	c, _ := arg.AsComplex()
	return value.FromComplex(value.ComplexSqrt(c)), nil
}

func builtinAbs(arg value.Value, _ *Environment) (value.Value, error) {
	if r, ok := arg.AsRational(); ok {
		return value.FromRational(r.Abs()), nil
	}
	if c, ok := arg.AsComplex(); ok {
		sq := c.NormSquared()
		if root, ok := sq.SqrtExact(); ok {
			return value.FromRational(root), nil
		}
		return value.FromRational(value.Approx(math.Sqrt(sq.Float64()))), nil
	}
	return value.Value{}, fmt.Errorf("abs: matrix argument, use norm: %w", value.ErrType)
}

func builtinFloor(arg value.Value, _ *Environment) (value.Value, error) {
	r, err := realOnly(arg, "floor")
	if err != nil {
		return value.Value{}, err
	}
	return value.FromRational(value.Approx(math.Floor(r.Float64()))), nil
}

func builtinCeil(arg value.Value, _ *Environment) (value.Value, error) {
	r, err := realOnly(arg, "ceil")
	if err != nil {
		return value.Value{}, err
	}
	return value.FromRational(value.Approx(math.Ceil(r.Float64()))), nil
}

func realOnly(arg value.Value, op string) (value.Rational, error) {
	if r, ok := arg.AsRational(); ok {
		return r, nil
	}
	return value.Rational{}, fmt.Errorf("%s: requires a real-valued rational: %w", op, value.ErrType)
}

// builtinNorm: scalar reduces to abs, a 1×n or n×1
// matrix is the Euclidean norm of its cells, any other matrix the
// Frobenius norm.
func builtinNorm(arg value.Value, env *Environment) (value.Value, error) {
	if isScalarVal(arg) {
		return builtinAbs(arg, env)
	}
	m, ok := arg.AsMatrix()
	if !ok {
		return value.Value{}, fmt.Errorf("norm: %w", value.ErrType)
	}
	rows, cols := m.Dims()
	sum := value.Zero
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := m.At(r, c)
			var sq value.Rational
			if rv, ok := cell.AsRational(); ok {
				sq = rv.Mul(rv)
			} else if cv, ok := cell.AsComplex(); ok {
				sq = cv.NormSquared()
			}
			sum = sum.Add(sq)
		}
	}
	if root, ok := sum.SqrtExact(); ok {
		return value.FromRational(root), nil
	}
	return value.FromRational(value.Approx(math.Sqrt(sum.Float64()))), nil
}

func builtinInv(arg value.Value, _ *Environment) (value.Value, error) {
	m, ok := arg.AsMatrix()
	if !ok {
		return value.Value{}, fmt.Errorf("inv: %w", value.ErrType)
	}
	inv, err := m.Inverse()
	if err != nil {
		return value.Value{}, err
	}
	return value.FromMatrix(inv), nil
}

func isScalarVal(v value.Value) bool {
	return v.Kind() == value.KindRational || v.Kind() == value.KindComplex
}

func typeNameOf(v value.Value) string {
	switch v.Kind() {
	case value.KindRational:
		return "rational"
	case value.KindComplex:
		return "complex"
	case value.KindMatrix:
		return "matrix"
	case value.KindFunction:
		return "function"
	default:
		return "?"
	}
}
