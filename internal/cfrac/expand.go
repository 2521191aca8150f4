// Package cfrac expands a rational function N(s)/D(s) into its polynomial
// continued fraction via the Euclidean algorithm. The partial quotients it
// produces are the raw material for Cauer ladder synthesis.
package cfrac

import "github.com/avetk/ladsyn/internal/poly"

// Expand returns the ordered partial quotients of num/den. Each step divides
// the running numerator by the running denominator, appends the quotient and
// continues with (denominator, remainder). A zero quotient means division
// made no progress and terminates the expansion without being appended, as
// does a zero running denominator. An initial denominator that is already
// the zero polynomial is malformed input and returns poly.ErrDivideByZero.
//
// Quotients are sign-normalized: a negative leading quotient coefficient
// flips quotient, divisor and remainder together, and a negative leading
// remainder coefficient flips remainder and divisor. Both rewrites preserve
// the ratio N/D while keeping every term in the convention the non-negative
// realizability check expects.
func Expand(num, den poly.Polynomial) ([]poly.Polynomial, error) {
	if den.IsZero() {
		return nil, poly.ErrDivideByZero
	}
	var parts []poly.Polynomial
	n, d := num, den
	for !d.IsZero() {
		q, r, err := n.Divmod(d)
		if err != nil {
			return nil, err
		}
		if q.IsZero() {
			break
		}
		if q.Lead() < 0 {
			q = q.Neg()
			d = d.Neg()
			r = r.Neg()
		}
		if !r.IsZero() && r.Lead() < 0 {
			r = r.Neg()
			d = d.Neg()
		}
		parts = append(parts, q)
		n = d
		d = r
	}
	return parts, nil
}

// Reconstruct folds partial quotients back into a rational function
// q0 + 1/(q1 + 1/(...)), returning numerator and denominator. Used to verify
// that an expansion is an identity-preserving rewrite of its input.
func Reconstruct(parts []poly.Polynomial) (poly.Polynomial, poly.Polynomial) {
	if len(parts) == 0 {
		return poly.Polynomial{}, poly.New([]float64{1})
	}
	// Fold from the innermost quotient outward: value = q + 1/value.
	num := parts[len(parts)-1]
	den := poly.New([]float64{1})
	for i := len(parts) - 2; i >= 0; i-- {
		num, den = parts[i].Mul(num).Add(den), num
	}
	return num, den
}
