package polynomial

import (
	"fmt"

	"github.com/tuneinsight/polyreal/utils"
)

// DivMod returns the quotient and remainder of the long division of p by divisor,
// such that p = quo * divisor + rem with rem zero or deg(rem) < deg(divisor).
// Both results carry the parameters of p. The quotient has exactly
// deg(p) - deg(divisor) + 1 coefficients before normalization, so a quotient
// coefficient is only dropped if it is trailing and within the tolerance.
//
// It returns an error wrapping ErrDivisionByZeroPolynomial if divisor is the zero polynomial.
func (p Polynomial) DivMod(divisor Polynomial) (quo, rem Polynomial, err error) {

	if divisor.IsZero() {
		return Polynomial{}, Polynomial{}, fmt.Errorf("cannot DivMod: %w", ErrDivisionByZeroPolynomial)
	}

	r := utils.CloneSlice(p.coeffs)

	n, m := len(r), len(divisor.coeffs)

	if n < m {
		return p.params.Zero(), newPolynomial(p.params, r), nil
	}

	lead := divisor.coeffs[m-1]

	// Raw coefficients, normalized once at the end.
	q := make([]float64, n-m+1)

	for k := n - m; k >= 0; k-- {

		c := r[k+m-1] / lead

		q[k] = c

		for j, d := range divisor.coeffs[:m-1] {
			r[k+j] -= c * d
		}

		// cancels by construction
		r[k+m-1] = 0
	}

	return newPolynomial(p.params, q), newPolynomial(p.params, r[:m-1]), nil
}

// Div returns the quotient of the long division of p by divisor.
func (p Polynomial) Div(divisor Polynomial) (quo Polynomial, err error) {
	if quo, _, err = p.DivMod(divisor); err != nil {
		return Polynomial{}, fmt.Errorf("cannot Div: %w", err)
	}
	return
}

// Mod returns the remainder of the long division of p by divisor.
func (p Polynomial) Mod(divisor Polynomial) (rem Polynomial, err error) {
	if _, rem, err = p.DivMod(divisor); err != nil {
		return Polynomial{}, fmt.Errorf("cannot Mod: %w", err)
	}
	return
}
