package poly

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrDivideByZero is returned when the divisor is the zero polynomial.
var ErrDivideByZero = errors.New("division by zero polynomial")

const (
	// epsCoeff is the tolerance below which a coefficient is treated as zero
	// when reducing, comparing and printing.
	epsCoeff = 1e-12
	// epsDiv guards long division against looping on floating-point noise:
	// a quotient term smaller than this terminates the division.
	epsDiv = 1e-18
)

// Polynomial is a dense univariate polynomial in s with float64 coefficients
// stored in ascending power order: Coeffs[0] + Coeffs[1]*s + Coeffs[2]*s^2...
// The coefficient slice is always reduced: empty for the zero polynomial,
// otherwise the last entry is non-zero. All operations return new values.
type Polynomial struct {
	coeffs []float64
}

// New builds a polynomial from ascending-power coefficients, reducing
// trailing near-zero terms.
func New(coeffs []float64) Polynomial {
	i := len(coeffs)
	for i > 0 && math.Abs(coeffs[i-1]) < epsCoeff {
		i--
	}
	out := make([]float64, i)
	copy(out, coeffs[:i])
	return Polynomial{coeffs: out}
}

// Monomial builds c*s^deg. A near-zero c yields the zero polynomial.
func Monomial(c float64, deg int) Polynomial {
	if math.Abs(c) < epsCoeff {
		return Polynomial{}
	}
	coeffs := make([]float64, deg+1)
	coeffs[deg] = c
	return Polynomial{coeffs: coeffs}
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coeff returns the coefficient of s^i, zero when i is out of range.
func (p Polynomial) Coeff(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Lead returns the leading coefficient, zero for the zero polynomial.
func (p Polynomial) Lead() float64 {
	if len(p.coeffs) == 0 {
		return 0
	}
	return p.coeffs[len(p.coeffs)-1]
}

// Coeffs returns a copy of the ascending-power coefficient slice.
func (p Polynomial) Coeffs() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = p.Coeff(i) + q.Coeff(i)
	}
	return New(coeffs)
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = p.Coeff(i) - q.Coeff(i)
	}
	return New(coeffs)
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	coeffs := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = -c
	}
	return Polynomial{coeffs: coeffs}
}

// Mul returns p * q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}
	coeffs := make([]float64, p.Degree()+q.Degree()+2)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			coeffs[i+j] += a * b
		}
	}
	return New(coeffs)
}

// Divmod performs classical long division of p by divisor, returning
// quotient and remainder with p = quotient*divisor + remainder. It returns
// ErrDivideByZero when divisor is the zero polynomial. A quotient term whose
// coefficient falls below epsDiv terminates the division early.
func (p Polynomial) Divmod(divisor Polynomial) (Polynomial, Polynomial, error) {
	if divisor.IsZero() {
		return Polynomial{}, Polynomial{}, ErrDivideByZero
	}
	d := divisor.Degree()
	if p.Degree() < d {
		return Polynomial{}, p, nil
	}

	dividend := p
	qCoeffs := make([]float64, p.Degree()-d+1)
	for !dividend.IsZero() && dividend.Degree() >= d {
		degDiff := dividend.Degree() - d
		c := dividend.Lead() / divisor.Lead()
		if math.Abs(c) < epsDiv {
			break
		}
		qCoeffs[degDiff] += c
		dividend = dividend.Sub(divisor.Mul(Monomial(c, degDiff)))
	}
	return New(qCoeffs), dividend, nil
}

// Eval evaluates p at x using Horner's method.
func (p Polynomial) Eval(x float64) float64 {
	if len(p.coeffs) == 0 {
		return 0
	}
	v := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		v = v*x + p.coeffs[i]
	}
	return v
}

// EvalJW evaluates p at s = j*omega, the point on the imaginary axis used
// for steady-state frequency response.
func (p Polynomial) EvalJW(omega float64) complex128 {
	s := complex(0, omega)
	v := complex(0, 0)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		v = v*s + complex(p.coeffs[i], 0)
	}
	return v
}

// String renders p from highest to lowest power, e.g. "2s^2+3s+1".
// Zero terms are skipped, unit coefficients are implicit except at degree 0,
// and the zero polynomial renders as "0".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i := p.Degree(); i >= 0; i-- {
		c := p.coeffs[i]
		if math.Abs(c) < epsCoeff {
			continue
		}
		if sb.Len() > 0 {
			if c > 0 {
				sb.WriteByte('+')
			} else {
				sb.WriteByte('-')
			}
		}
		abs := math.Abs(c)
		switch {
		case i == 0:
			sb.WriteString(FormatCoeff(abs))
		case i == 1:
			if math.Abs(abs-1) >= epsCoeff {
				sb.WriteString(FormatCoeff(abs))
			}
			sb.WriteByte('s')
		default:
			if math.Abs(abs-1) >= epsCoeff {
				sb.WriteString(FormatCoeff(abs))
			}
			sb.WriteString("s^")
			sb.WriteString(strconv.Itoa(i))
		}
	}
	return sb.String()
}

// FormatCoeff renders a coefficient compactly, snapping values within the
// reduction tolerance of an integer to that integer.
func FormatCoeff(x float64) string {
	r := math.Round(x)
	if math.Abs(x-r) < epsCoeff {
		x = r
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
