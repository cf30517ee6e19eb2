// Package polynomial implements single-variable polynomials with float64
// coefficients: normalization, evaluation, arithmetic, division with
// remainder, greatest common divisor and Lagrange interpolation.
//
// A Polynomial is an immutable value. Every operation allocates and returns
// a new normalized Polynomial and never modifies its operands, so that
// polynomials can be shared between goroutines without synchronization.
//
// Equality is approximate: two coefficients are equal if they differ by less
// than an absolute tolerance (see Parameters). This relation is not transitive
// for coefficients whose differences are close to the tolerance.
package polynomial

import (
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tuneinsight/polyreal/utils"
)

// Polynomial is a polynomial with float64 coefficients in the monomial basis,
// Coeffs[i] being the coefficient of X^i.
//
// The coefficients are kept in trimmed form: the last coefficient, if any, is
// never within the tolerance of zero. The zero polynomial has no coefficient.
// The zero value of Polynomial is the zero polynomial with the default parameters.
type Polynomial struct {
	params Parameters
	coeffs []float64
}

// NewPolynomial creates a new polynomial with the default parameters from
// a dense list of coefficients, index i holding the coefficient of X^i,
// e.g. {1, 0, 2, -1} -> 1 + 2x^2 - x^3.
// The input slice is copied.
func NewPolynomial(coeffs []float64) Polynomial {
	return DefaultParameters().NewPolynomial(coeffs)
}

// NewPolynomial creates a new polynomial with the target parameters from
// a dense list of coefficients, index i holding the coefficient of X^i.
// The input slice is copied.
func (p Parameters) NewPolynomial(coeffs []float64) Polynomial {
	return newPolynomial(p, utils.CloneSlice(coeffs))
}

// NewMonomial returns the polynomial c * X^degree.
// The method panics if degree is negative.
func (p Parameters) NewMonomial(c float64, degree int) Polynomial {
	if degree < 0 {
		panic("cannot NewMonomial: degree cannot be negative")
	}
	coeffs := make([]float64, degree+1)
	coeffs[degree] = c
	return newPolynomial(p, coeffs)
}

// NewConstant returns the constant polynomial c.
func (p Parameters) NewConstant(c float64) Polynomial {
	return newPolynomial(p, []float64{c})
}

// Zero returns the zero polynomial.
func (p Parameters) Zero() Polynomial {
	return Polynomial{params: p}
}

// newPolynomial takes ownership of coeffs and trims its trailing coefficients.
func newPolynomial(params Parameters, coeffs []float64) Polynomial {
	return Polynomial{
		params: params,
		coeffs: utils.TrimTrailing(coeffs, params.IsZero),
	}
}

// Parameters returns the parameters of the polynomial.
func (p Polynomial) Parameters() Parameters {
	return p.params
}

// Len returns the number of coefficients of the polynomial in trimmed form.
func (p Polynomial) Len() int {
	return len(p.coeffs)
}

// Degree returns the degree of the polynomial, or NegInfDegree
// if p is the zero polynomial.
func (p Polynomial) Degree() int {
	if len(p.coeffs) == 0 {
		return NegInfDegree
	}
	return len(p.coeffs) - 1
}

// IsZero returns true if p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coeff returns the coefficient of X^i, which is zero for i < 0 or i >= p.Len().
func (p Polynomial) Coeff(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Coefficients returns a copy of the coefficients of the polynomial.
// The zero polynomial returns nil.
func (p Polynomial) Coefficients() []float64 {
	return utils.CloneSlice(p.coeffs)
}

// LeadingCoefficient returns the coefficient of the highest degree term,
// or zero if p is the zero polynomial.
func (p Polynomial) LeadingCoefficient() float64 {
	if len(p.coeffs) == 0 {
		return 0
	}
	return p.coeffs[len(p.coeffs)-1]
}

// Evaluate returns p(x) computed with Horner's scheme, starting from
// the leading coefficient. The zero polynomial evaluates to 0.
func (p Polynomial) Evaluate(x float64) (y float64) {

	n := len(p.coeffs)

	if n == 0 {
		return 0
	}

	y = p.coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		y *= x
		y += p.coeffs[i]
	}

	return
}

// Equal returns true if p and other have the same number of coefficients
// and all coefficients differ by less than the tolerance of p.
func (p Polynomial) Equal(other Polynomial) bool {
	tol := p.params.Tolerance()
	return cmp.Equal(p.coeffs, other.coeffs,
		cmpopts.EquateEmpty(),
		cmp.Comparer(func(a, b float64) bool {
			return math.Abs(a-b) < tol
		}))
}
