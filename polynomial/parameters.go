package polynomial

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	// DefaultTolerance is the absolute tolerance below which a coefficient
	// is considered to be zero, and two coefficients are considered equal.
	DefaultTolerance = 1e-10

	// NegInfDegree is the degree of the zero polynomial.
	// It compares smaller than every finite degree.
	NegInfDegree = math.MinInt
)

// ParametersLiteral is a literal representation of the parameters of a polynomial.
// It is meant to be instantiated by the user and validated by NewParametersFromLiteral.
//
// Tolerance: absolute bound under which a coefficient is treated as zero
// and two coefficients as equal. Zero selects DefaultTolerance.
type ParametersLiteral struct {
	Tolerance float64 `json:",omitempty"`
}

// Parameters is the validated, immutable set of parameters shared by polynomials.
// The zero value is valid and equivalent to DefaultParameters().
type Parameters struct {
	tolerance float64
}

// NewParametersFromLiteral instantiates a set of Parameters from a ParametersLiteral.
// It returns an error wrapping ErrInvalidTolerance if the tolerance is negative, NaN or infinite.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	tol := pl.Tolerance

	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: %v", ErrInvalidTolerance, tol)
	}

	if tol == 0 {
		tol = DefaultTolerance
	}

	return Parameters{tolerance: tol}, nil
}

// DefaultParameters returns the Parameters with DefaultTolerance.
func DefaultParameters() Parameters {
	return Parameters{tolerance: DefaultTolerance}
}

// Tolerance returns the absolute tolerance of the parameters.
func (p Parameters) Tolerance() float64 {
	if p.tolerance == 0 {
		return DefaultTolerance
	}
	return p.tolerance
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{Tolerance: p.Tolerance()}
}

// Equal returns true if the two sets of parameters are identical.
func (p Parameters) Equal(other Parameters) bool {
	return p.Tolerance() == other.Tolerance()
}

// IsZero returns true if |c| is smaller than the tolerance.
func (p Parameters) IsZero(c float64) bool {
	return math.Abs(c) < p.Tolerance()
}

// AlmostEqual returns true if |a - b| is smaller than the tolerance.
func (p Parameters) AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < p.Tolerance()
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var pl ParametersLiteral
	if err = json.Unmarshal(data, &pl); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(pl)
	return
}
