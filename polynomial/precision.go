package polynomial

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/polyreal/utils/bignum"
)

// DefaultReferencePrecision is the number of bits of precision of the
// reference evaluation used by GetPrecisionStats.
const DefaultReferencePrecision = 256

// PrecisionStats is a struct storing statistics about the precision of the
// float64 evaluation of a polynomial, measured against an arbitrary precision
// evaluation of the same polynomial at the same points.
//
// Precisions are given in bits, as log2(1/delta). A point evaluated without
// error has an infinite precision.
type PrecisionStats struct {
	MaxDelta    float64
	MinDelta    float64
	MeanDelta   float64
	MedianDelta float64
	STDDelta    float64

	MinPrecision    float64
	MaxPrecision    float64
	MeanPrecision   float64
	MedianPrecision float64
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬─────────┐
│    Log2 │ Prec    │
├─────────┼─────────┤
│MIN Prec │ %7.2f │
│MAX Prec │ %7.2f │
│AVG Prec │ %7.2f │
│MED Prec │ %7.2f │
└─────────┴─────────┘
Err STD : %7.2f Log2
`,
		prec.MinPrecision,
		prec.MaxPrecision,
		prec.MeanPrecision,
		prec.MedianPrecision,
		math.Log2(prec.STDDelta))
}

// GetPrecisionStats evaluates pol at each point of xs with Evaluate and with
// a reference Horner evaluation on prec bits, and returns statistics on
// the absolute difference between the two.
// It returns an error if xs is empty.
func GetPrecisionStats(pol Polynomial, xs []float64, prec uint) (ps PrecisionStats, err error) {

	if len(xs) == 0 {
		return PrecisionStats{}, fmt.Errorf("cannot GetPrecisionStats: no evaluation point")
	}

	coeffs := bignum.NewFloatSlice(pol.coeffs, prec)

	deltas := make([]float64, len(xs))
	precisions := make([]float64, len(xs))

	delta := new(big.Float).SetPrec(prec)

	for i, x := range xs {
		want := bignum.MonomialEval(bignum.NewFloat(x, prec), coeffs)
		delta.Sub(bignum.NewFloat(pol.Evaluate(x), prec), want)
		delta.Abs(delta)
		deltas[i], _ = delta.Float64()
		precisions[i] = -bignum.Log2Of(delta)
	}

	if ps, err = newPrecisionStats(deltas, precisions); err != nil {
		return PrecisionStats{}, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	return
}

func newPrecisionStats(deltas, precisions []float64) (prec PrecisionStats, err error) {

	if prec.MaxDelta, err = stats.Max(deltas); err != nil {
		return
	}

	if prec.MinDelta, err = stats.Min(deltas); err != nil {
		return
	}

	if prec.MeanDelta, err = stats.Mean(deltas); err != nil {
		return
	}

	if prec.MedianDelta, err = stats.Median(deltas); err != nil {
		return
	}

	if prec.STDDelta, err = stats.StandardDeviation(deltas); err != nil {
		return
	}

	prec.MinPrecision = deltaToPrecision(prec.MaxDelta)
	prec.MaxPrecision = deltaToPrecision(prec.MinDelta)
	prec.MeanPrecision = deltaToPrecision(prec.MeanDelta)

	if prec.MedianPrecision, err = stats.Median(precisions); err != nil {
		return
	}

	return
}

func deltaToPrecision(delta float64) float64 {
	return math.Log2(1 / delta)
}
