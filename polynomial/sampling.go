package polynomial

import (
	"fmt"
	"io"

	"github.com/tuneinsight/polyreal/utils/sampling"
)

// maxLeadingDraws bounds the number of attempts to draw a leading
// coefficient outside the tolerance.
const maxLeadingDraws = 64

// NewRandomPolynomial returns a polynomial of exactly the given degree whose
// coefficients are drawn uniformly in [min, max) from prng. The leading
// coefficient is redrawn until it is outside the tolerance.
// A negative degree returns the zero polynomial.
func (p Parameters) NewRandomPolynomial(prng io.Reader, degree int, min, max float64) (pol Polynomial, err error) {

	if degree < 0 {
		return p.Zero(), nil
	}

	var coeffs []float64
	if coeffs, err = sampling.RandFloat64Slice(prng, degree+1, min, max); err != nil {
		return Polynomial{}, fmt.Errorf("cannot NewRandomPolynomial: %w", err)
	}

	for i := 0; p.IsZero(coeffs[degree]); i++ {

		if i == maxLeadingDraws {
			return Polynomial{}, fmt.Errorf("cannot NewRandomPolynomial: no leading coefficient outside the tolerance after %d draws in [%v, %v)", maxLeadingDraws, min, max)
		}

		if coeffs[degree], err = sampling.RandFloat64(prng, min, max); err != nil {
			return Polynomial{}, fmt.Errorf("cannot NewRandomPolynomial: %w", err)
		}
	}

	return newPolynomial(p, coeffs), nil
}
