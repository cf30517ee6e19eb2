package polynomial

import (
	"math"
	"strconv"
	"strings"
)

// String returns a human readable representation of p, from the highest
// to the lowest degree, e.g. "-x^3 + 2x^2 + 1". The zero polynomial is "0".
//
// Coefficients within the tolerance of zero are skipped, and a magnitude
// within the tolerance of one is omitted on non-constant terms. Subsequent
// terms are joined with " + " or " - ". A negative leading term is prefixed
// with a bare "-", which is the only sign a leading term ever carries.
func (p Polynomial) String() string {

	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder

	n := p.Degree()

	for k := n; k >= 0; k-- {

		c := p.coeffs[k]

		if p.params.IsZero(c) {
			continue
		}

		switch {
		case k == n && c < 0:
			sb.WriteString("-")
		case k == n:
		case c < 0:
			sb.WriteString(" - ")
		default:
			sb.WriteString(" + ")
		}

		if abs := math.Abs(c); k == 0 || !p.params.AlmostEqual(abs, 1) {
			sb.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		}

		switch k {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(k))
		}
	}

	return sb.String()
}
