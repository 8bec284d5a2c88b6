package poly

import (
	"fmt"

	"github.com/midbel/computor/internal/value"
)

// Coeffs is the coefficient map C: exponent → Value collected by Reduce
// in the single unknown. Missing keys are implicitly zero.
type Coeffs map[int]value.Value

// maxIntermediateDegree bounds the degree any intermediate polynomial
// multiplication may reach before the reducer gives up, independent of the
// degree-2 ceiling checked on the final trimmed result (the solver allows
// higher-degree intermediates that cancel back down).
const maxIntermediateDegree = 8

func (c Coeffs) at(k int) value.Value {
	if v, ok := c[k]; ok {
		return v
	}
	return value.FromRational(value.Zero)
}

func addCoeffs(a, b Coeffs) (Coeffs, error) {
	out := Coeffs{}
	for k := range union(a, b) {
		v, err := value.Add(a.at(k), b.at(k))
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func negCoeffs(a Coeffs) (Coeffs, error) {
	out := Coeffs{}
	for k, v := range a {
		nv, err := value.Neg(v)
		if err != nil {
			return nil, err
		}
		out[k] = nv
	}
	return out, nil
}

func subCoeffs(a, b Coeffs) (Coeffs, error) {
	nb, err := negCoeffs(b)
	if err != nil {
		return nil, err
	}
	return addCoeffs(a, nb)
}

// mulCoeffs convolves a and b as polynomials: C[i+j] += a[i]*b[j].
func mulCoeffs(a, b Coeffs) (Coeffs, error) {
	out := Coeffs{}
	for i, av := range a {
		for j, bv := range b {
			k := i + j
			if k > maxIntermediateDegree {
				return nil, fmt.Errorf("degree %d: %w", k, ErrDegreeTooHigh)
			}
			term, err := value.Mul(av, bv)
			if err != nil {
				return nil, err
			}
			sum, err := value.Add(out.at(k), term)
			if err != nil {
				return nil, err
			}
			out[k] = sum
		}
	}
	return out, nil
}

func union(a, b Coeffs) map[int]struct{} {
	keys := make(map[int]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}
	return keys
}

// isZeroValue reports whether v (Rational or Complex) is exactly zero.
func isZeroValue(v value.Value) bool {
	c, ok := v.AsComplex()
	if !ok {
		return false
	}
	return c.Re.IsZero() && c.Im.IsZero()
}

// trim drops zero coefficients above the highest nonzero exponent and
// reports that exponent as the polynomial's degree ("Trim
// trailing zero coefficients").
func trim(c Coeffs) (Coeffs, int) {
	degree := 0
	for k, v := range c {
		if k > degree && !isZeroValue(v) {
			degree = k
		}
	}
	out := Coeffs{}
	for k := 0; k <= degree; k++ {
		out[k] = c.at(k)
	}
	return out, degree
}
