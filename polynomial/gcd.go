package polynomial

import (
	"fmt"
)

// GCD returns the monic greatest common divisor of f and g, computed with
// the Euclidean algorithm. If one of the inputs is the zero polynomial, the
// result is the other input made monic. The result carries the parameters of f.
//
// It returns an error wrapping ErrUndefinedGCD if both f and g are the zero polynomial.
func GCD(f, g Polynomial) (gcd Polynomial, err error) {

	if f.IsZero() && g.IsZero() {
		return Polynomial{}, fmt.Errorf("cannot GCD: %w", ErrUndefinedGCD)
	}

	a := f
	b := g

	for !b.IsZero() {

		var r Polynomial
		if r, err = a.Mod(b); err != nil {
			return Polynomial{}, fmt.Errorf("cannot GCD: %w", err)
		}

		a, b = b, r
	}

	return newPolynomial(f.params, a.Monic().coeffs), nil
}

// Monic returns p divided by its leading coefficient, whose leading
// coefficient is then exactly 1. The zero polynomial is returned as is.
func (p Polynomial) Monic() Polynomial {

	n := len(p.coeffs)

	if n == 0 {
		return p.params.Zero()
	}

	lead := p.coeffs[n-1]

	coeffs := make([]float64, n)
	for i := 0; i < n-1; i++ {
		coeffs[i] = p.coeffs[i] / lead
	}
	coeffs[n-1] = 1

	return newPolynomial(p.params, coeffs)
}
