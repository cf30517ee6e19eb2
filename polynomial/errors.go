package polynomial

import (
	"errors"
)

var (
	// ErrDivisionByZeroPolynomial is returned by DivMod, Div and Mod when the divisor is the zero polynomial.
	ErrDivisionByZeroPolynomial = errors.New("division by the zero polynomial")

	// ErrUndefinedGCD is returned by GCD when both inputs are the zero polynomial.
	ErrUndefinedGCD = errors.New("gcd of two zero polynomials is undefined")

	// ErrDuplicateSamplePosition is returned by Interpolate when two sample positions coincide within the tolerance.
	ErrDuplicateSamplePosition = errors.New("duplicate sample position")

	// ErrMismatchedSampleLengths is returned by Interpolate when the positions and values differ in length.
	ErrMismatchedSampleLengths = errors.New("mismatched sample lengths")

	// ErrInvalidTolerance is returned when a tolerance is not a positive finite number.
	ErrInvalidTolerance = errors.New("invalid tolerance")
)
