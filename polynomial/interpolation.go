package polynomial

import (
	"fmt"

	"github.com/tuneinsight/polyreal/utils"
)

// Interpolate returns, with the default parameters, the unique polynomial
// of degree at most len(x)-1 such that P(x[i]) = y[i]. See Parameters.Interpolate.
func Interpolate(x, y []float64) (Polynomial, error) {
	return DefaultParameters().Interpolate(x, y)
}

// Interpolate returns the unique polynomial of degree at most len(x)-1
// such that P(x[i]) = y[i], computed with Lagrange interpolation:
//
//	P(X) = sum_i y[i] / prod_{j != i}(x[i] - x[j]) * prod_{j != i}(X - x[j])
//
// Empty samples interpolate to the zero polynomial.
//
// It returns an error wrapping ErrMismatchedSampleLengths if len(x) != len(y),
// or ErrDuplicateSamplePosition if two positions are equal within the tolerance.
func (p Parameters) Interpolate(x, y []float64) (pol Polynomial, err error) {

	if len(x) != len(y) {
		return Polynomial{}, fmt.Errorf("cannot Interpolate: %w: len(x)=%d != len(y)=%d", ErrMismatchedSampleLengths, len(x), len(y))
	}

	if i, j := utils.IndexOfFunc(x, p.AlmostEqual); i >= 0 {
		return Polynomial{}, fmt.Errorf("cannot Interpolate: %w: x[%d]=%v, x[%d]=%v", ErrDuplicateSamplePosition, i, x[i], j, x[j])
	}

	pol = p.Zero()

	for i := range x {

		// prod(X - x[j]), j != i
		basis := p.NewConstant(1)

		// prod(x[i] - x[j]), j != i
		den := 1.0

		for j := range x {
			if j != i {
				basis = basis.Mul(p.NewPolynomial([]float64{-x[j], 1}))
				den *= x[i] - x[j]
			}
		}

		// P(X) += (y[i] / prod(x[i] - x[j])) * prod(X - x[j])
		pol = pol.Add(basis.MulScalar(y[i] / den))
	}

	return
}
