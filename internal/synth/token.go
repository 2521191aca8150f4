package synth

import (
	"math"
	"strconv"
	"strings"

	"github.com/avetk/ladsyn/internal/poly"
)

// tokenize renders branch polynomials as network tokens. A trailing zero
// polynomial is an implicit terminating capacitor and renders as "1/s".
func tokenize(parts []poly.Polynomial) []string {
	tokens := make([]string, 0, len(parts))
	for i, p := range parts {
		tok := p.String()
		if tok == "0" && i == len(parts)-1 {
			tok = "1/s"
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// normalizeFirstSection splits a compound first shunt term into an explicit
// resistor/inductor pair: when the ladder opens with a bare series "s" and
// the first shunt polynomial is a*s+b with a > 0, the entry becomes
// Z = ["1", "s/a", ...] with Y[0] rewritten to "s/a". The linear form is
// read off the coefficient pair directly rather than re-parsed from the
// rendered token.
func normalizeFirstSection(zParts, yParts []poly.Polynomial, z, y []string) ([]string, []string) {
	if len(z) == 0 || len(y) == 0 || z[0] != "s" || len(yParts) == 0 {
		return z, y
	}
	if yParts[0].Degree() > 1 {
		return z, y
	}
	a := yParts[0].Coeff(1)
	if a <= 0 {
		return z, y
	}
	tok := sOver(a)
	z = append([]string{"1", tok}, z[1:]...)
	y[0] = tok
	return z, y
}

// sOver renders the reactance token s/a, collapsing s/1 to "s".
func sOver(a float64) string {
	if math.Abs(a-1) < epsRealizable {
		return "s"
	}
	return "s/" + poly.FormatCoeff(a)
}

// ExpandToken rewrites a compact token such as "2s+3" into the unit element
// chain it stands for: "s" repeated a times and "1" repeated b times. The
// elementary tokens "s", "1" and "1/s" pass through unchanged. It reports
// false for tokens with non-integer or negative parts and for anything of
// higher order.
func ExpandToken(token string) ([]string, bool) {
	t := strings.ReplaceAll(token, " ", "")
	switch t {
	case "s", "1", "1/s":
		return []string{t}, true
	}

	var a, b int
	for _, term := range strings.Split(t, "+") {
		switch {
		case term == "s":
			a++
		case strings.HasSuffix(term, "s"):
			n, err := strconv.Atoi(strings.TrimSuffix(term, "s"))
			if err != nil || n < 0 {
				return nil, false
			}
			a += n
		default:
			n, err := strconv.Atoi(term)
			if err != nil || n < 0 {
				return nil, false
			}
			b += n
		}
	}

	out := make([]string, 0, a+b)
	for i := 0; i < a; i++ {
		out = append(out, "s")
	}
	for i := 0; i < b; i++ {
		out = append(out, "1")
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}
