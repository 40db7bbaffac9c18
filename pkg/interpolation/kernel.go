package interpolation

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Bounds on the truncation radius during estimation, relative to the
// initial radius. The reference method leaves the radius unbounded,
// which diverges when the target station count exceeds the network
// size; the clamp keeps the search finite without affecting networks
// dense enough to reach the target count.
const (
	minRadiusFactor = 0.01
	maxRadiusFactor = 100.0
)

// GaussianWeight returns the weight of a station at the given distance
// from a target point. The weight is 1 at distance zero, decays as
// exp(-alpha*(distance/radius)^2) and is truncated to zero beyond the
// radius.
func GaussianWeight(distance, radius, alpha float64) float64 {
	if distance > radius {
		return 0
	}
	q := distance / radius
	return math.Exp(-alpha * q * q)
}

// gaussianWeights fills dst with the kernel weight of every distance,
// allocating when dst is nil.
func gaussianWeights(dst, distances []float64, radius, alpha float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(distances))
	}
	for i, d := range distances {
		dst[i] = GaussianWeight(d, radius, alpha)
	}
	return dst
}

// estimateRadius sizes the truncation radius so that the sum of kernel
// weights over the network approaches p.TargetStations. A fixed radius
// either starves sparse regions or over-smooths dense ones; targeting
// the weight sum adapts the neighborhood to local station density.
//
// The refinement runs exactly p.Iterations rounds, each rescaling the
// radius by sqrt(target/sumW), a damped correction of the weight-sum
// mismatch. There is no convergence check; the round count is the only
// termination condition.
func estimateRadius(distances []float64, p Params) float64 {
	radius := p.InitialRadius
	lo := p.InitialRadius * minRadiusFactor
	hi := p.InitialRadius * maxRadiusFactor
	w := make([]float64, len(distances))
	for it := 0; it < p.Iterations; it++ {
		gaussianWeights(w, distances, radius, p.Alpha)
		sumW := floats.Sum(w)
		if sumW == 0 {
			// Every station is outside the current radius. Widen and
			// let the next round correct properly.
			radius *= 2
		} else {
			radius *= math.Sqrt(p.TargetStations / sumW)
		}
		radius = math.Min(math.Max(radius, lo), hi)
	}
	return radius
}
