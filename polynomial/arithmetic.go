package polynomial

import (
	"github.com/tuneinsight/polyreal/utils"
)

// Add returns p + other. The result carries the parameters of p.
func (p Polynomial) Add(other Polynomial) Polynomial {

	coeffs := make([]float64, utils.Max(len(p.coeffs), len(other.coeffs)))

	copy(coeffs, p.coeffs)

	for i, c := range other.coeffs {
		coeffs[i] += c
	}

	return newPolynomial(p.params, coeffs)
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	return p.MulScalar(-1)
}

// Sub returns p - other, computed as p + (-other).
// The result carries the parameters of p.
func (p Polynomial) Sub(other Polynomial) Polynomial {
	return p.Add(other.Neg())
}

// MulScalar returns c * p.
func (p Polynomial) MulScalar(c float64) Polynomial {
	coeffs := make([]float64, len(p.coeffs))
	for i := range p.coeffs {
		coeffs[i] = c * p.coeffs[i]
	}
	return newPolynomial(p.params, coeffs)
}

// Mul returns p * other, the convolution of their coefficients.
// The result carries the parameters of p.
func (p Polynomial) Mul(other Polynomial) Polynomial {

	m, n := len(p.coeffs), len(other.coeffs)

	if m == 0 || n == 0 {
		return p.params.Zero()
	}

	coeffs := make([]float64, m+n-1)

	for i, a := range p.coeffs {
		for j, b := range other.coeffs {
			coeffs[i+j] += a * b
		}
	}

	return newPolynomial(p.params, coeffs)
}
