// Package synth turns a rational driving-point impedance N(s)/D(s) into a
// passive LC ladder: an alternating sequence of series impedance (Z) and
// shunt admittance (Y) tokens derived from the continued-fraction expansion.
//
// The primal Cauer-I expansion is tried first. When its terms are not
// realizable with non-negative elements, the dual Cauer-II expansion of
// D(s)/N(s) is tried with series/shunt roles reversed. A constant first
// quotient with a leftover remainder is rewritten into a series inductor
// entry section regardless of which expansion won.
package synth

import (
	"errors"

	"github.com/avetk/ladsyn/internal/cfrac"
	"github.com/avetk/ladsyn/internal/poly"
)

// ErrUnrealizable is returned when neither the primal nor the dual expansion
// yields branch terms that are realizable as non-negative passive elements.
var ErrUnrealizable = errors.New("network not realizable with non-negative elements")

// epsRealizable is the tolerance for the non-negativity test on element
// coefficients.
const epsRealizable = 1e-12

// Expansion kinds recorded on a synthesized ladder.
const (
	KindCauerI       = "cauer-i"
	KindCauerII      = "cauer-ii"
	KindFirstSection = "first-section"
)

// Ladder is a synthesized two-terminal network: Z holds the series branch
// tokens in order from the input terminal, Y the shunt branch tokens.
type Ladder struct {
	Z    []string
	Y    []string
	Kind string
}

// Synthesize expands num/den and maps the result to validated network
// tokens. It returns poly.ErrDivideByZero for an identically zero
// denominator and ErrUnrealizable when no expansion produces a valid
// ladder. On error no partial tokens are returned.
func Synthesize(num, den poly.Polynomial) (*Ladder, error) {
	parts, err := cfrac.Expand(num, den)
	if err != nil {
		return nil, err
	}

	zParts, yParts := split(parts, false)
	kind := KindCauerI

	// An empty primal expansion (deg N < deg D) passes the element check
	// vacuously but can never ladder up; it gets the dual retry too. A zero
	// numerator has no dual to expand.
	if (len(parts) == 0 || !realizable(zParts, yParts)) && !num.IsZero() {
		// Cauer-II: expand the admittance D/N instead, with even quotients
		// landing in the shunt branch. Keep the failing primal result if the
		// dual fails too; the gate below rejects it.
		dual, err := cfrac.Expand(den, num)
		if err != nil {
			return nil, err
		}
		z2, y2 := split(dual, true)
		if len(dual) > 0 && realizable(z2, y2) {
			zParts, yParts = z2, y2
			kind = KindCauerII
		}
	}

	// A constant first quotient with a non-zero remainder cannot head a
	// ladder; force a series inductor entry and absorb the remainder as the
	// first shunt element.
	q1, r1, err := num.Divmod(den)
	if err != nil {
		return nil, err
	}
	if !r1.IsZero() && q1.Degree() == 0 {
		zParts = []poly.Polynomial{poly.Monomial(1, 1)}
		yParts = []poly.Polynomial{r1}
		kind = KindFirstSection
	}

	if len(zParts) == 0 && len(yParts) == 0 {
		return nil, ErrUnrealizable
	}
	if !realizable(zParts, yParts) {
		return nil, ErrUnrealizable
	}

	z, y := tokenize(zParts), tokenize(yParts)
	z, y = normalizeFirstSection(zParts, yParts, z, y)

	return &Ladder{Z: z, Y: y, Kind: kind}, nil
}

// split distributes partial quotients into series and shunt groups. With
// swapped=false even indices are series terms; swapped=true reverses the
// parity for the dual expansion.
func split(parts []poly.Polynomial, swapped bool) ([]poly.Polynomial, []poly.Polynomial) {
	var even, odd []poly.Polynomial
	for i, p := range parts {
		if i%2 == 0 {
			even = append(even, p)
		} else {
			odd = append(odd, p)
		}
	}
	if swapped {
		return odd, even
	}
	return even, odd
}

// realizable reports whether every branch term is a valid single element:
// degree at most one with all coefficients non-negative within tolerance.
func realizable(zParts, yParts []poly.Polynomial) bool {
	for _, group := range [][]poly.Polynomial{zParts, yParts} {
		for _, p := range group {
			if p.IsZero() {
				continue
			}
			if p.Degree() > 1 {
				return false
			}
			if p.Coeff(0) < -epsRealizable || p.Coeff(1) < -epsRealizable {
				return false
			}
		}
	}
	return true
}
