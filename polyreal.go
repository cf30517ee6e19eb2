/*
Package polyreal is a pure Go library of single-variable polynomials with float64 coefficients.
It provides normalization, evaluation, arithmetic, division with remainder, greatest common divisors
and Lagrange interpolation, under an absolute tolerance that decides when a coefficient is zero and
when two coefficients are equal. See the polynomial package.
*/
package polyreal
