package interpolation

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// weightedFit computes the weighted least-squares line y ≈ a + b*x and
// returns (a, b). Weights must be non-negative.
//
// Degenerate inputs get a defined result instead of a division by
// zero: with no usable weight the fit is (0, 0), and with zero
// weighted variance in x the slope is 0 and the intercept the weighted
// mean of y.
func weightedFit(y, x, w []float64) (intercept, slope float64) {
	if len(x) == 0 || floats.Sum(w) == 0 {
		return 0, 0
	}
	if !hasSpread(x, w) {
		return stat.Mean(y, w), 0
	}
	return stat.LinearRegression(x, y, w, false)
}

// hasSpread reports whether x takes at least two distinct values among
// entries with positive weight.
func hasSpread(x, w []float64) bool {
	first := math.NaN()
	for i, xi := range x {
		if w[i] <= 0 {
			continue
		}
		if math.IsNaN(first) {
			first = xi
		} else if xi != first {
			return true
		}
	}
	return false
}
