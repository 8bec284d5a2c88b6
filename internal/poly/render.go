package poly

import (
	"fmt"
	"strings"

	"github.com/midbel/computor/internal/value"
)

// RenderReducedForm renders the canonical `Σ Cₖ·uᵏ = 0` form in descending
// order of exponent, the order the worked examples use.
// A coefficient of exactly 1 on a non-constant term omits the "1 *" prefix;
// zero coefficients between the degree and the constant term are skipped.
func RenderReducedForm(c Coeffs, degree int, unknown string) string {
	type term struct {
		exp int
		val value.Value
	}
	var terms []term
	for k := degree; k >= 0; k-- {
		v := c.at(k)
		if isZeroValue(v) {
			continue
		}
		terms = append(terms, term{k, v})
	}
	if len(terms) == 0 {
		terms = append(terms, term{0, value.FromRational(value.Zero)})
	}

	var sb strings.Builder
	for i, t := range terms {
		neg, mag := signMagnitude(t.val)
		piece := renderTerm(mag, t.exp, unknown)
		switch {
		case i == 0 && neg:
			sb.WriteString("-")
			sb.WriteString(piece)
		case i == 0:
			sb.WriteString(piece)
		case neg:
			sb.WriteString(" - ")
			sb.WriteString(piece)
		default:
			sb.WriteString(" + ")
			sb.WriteString(piece)
		}
	}
	sb.WriteString(" = 0")
	return sb.String()
}

// signMagnitude splits a Rational coefficient into its sign and absolute
// value's rendering; a Complex coefficient (one whose imaginary part never
// collapsed out) is never treated as negative, since "negative" is not
// well-ordered for it: it is joined with " + ", or carries no sign as the
// first term.
func signMagnitude(v value.Value) (neg bool, magnitude string) {
	if r, ok := v.AsRational(); ok {
		return r.Sign() < 0, r.Abs().String()
	}
	return false, v.String()
}

func renderTerm(magnitude string, exp int, unknown string) string {
	switch exp {
	case 0:
		return magnitude
	case 1:
		if magnitude == "1" {
			return unknown
		}
		return magnitude + " * " + unknown
	default:
		if magnitude == "1" {
			return fmt.Sprintf("%s^%d", unknown, exp)
		}
		return fmt.Sprintf("%s * %s^%d", magnitude, unknown, exp)
	}
}
