// Package interpolation estimates a scalar field, typically daily
// temperature, at arbitrary target points from irregularly located
// station observations.
//
// A station's influence on a target decays with a truncated Gaussian
// kernel whose radius adapts to the local station density. A weighted
// regression over pairwise station differences estimates the local
// value-versus-elevation lapse rate, every station value is detrended
// to the target elevation, and the estimate is the kernel-weighted
// average of the detrended values.
//
// Missing observations are represented by NaN and must be filtered
// before point interpolation; Series does this per time step.
package interpolation

import (
	"fmt"
	"math"
	"runtime"

	"gonum.org/v1/gonum/floats"
)

// Interpolator interpolates station observations onto target points.
// It is bound to one station network (coordinates and elevations);
// observed values are supplied per call, so one network serves any
// number of days. Once Workers is set, an Interpolator is safe for
// concurrent use.
type Interpolator struct {
	x, y, z []float64
	params  Params

	// Workers bounds the goroutines used by Series. It defaults to
	// runtime.NumCPU; a value of 1 gives the sequential reference
	// behavior. Output is identical for any worker count.
	Workers int
}

// NewInterpolator validates the station network and parameters. The
// x, y and z slices must have equal length and hold at least two
// stations; they are retained without copying and must not be mutated
// while the interpolator is in use.
func NewInterpolator(x, y, z []float64, params Params) (*Interpolator, error) {
	if len(y) != len(x) || len(z) != len(x) {
		return nil, fmt.Errorf("station arrays must have equal length: x=%d y=%d z=%d",
			len(x), len(y), len(z))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("need at least 2 stations, got %d", len(x))
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &Interpolator{
		x:       x,
		y:       y,
		z:       z,
		params:  params,
		Workers: runtime.NumCPU(),
	}, nil
}

// Point interpolates one target from one day of station values. zDif
// and vDif are the pairwise elevation and value difference sets built
// by PairwiseDifferences over the same station ordering; values holds
// one observation per station and must contain no NaN entries.
//
// The result is NaN when every station weight truncates to zero.
func (in *Interpolator) Point(target Point, values, zDif, vDif []float64) float64 {
	n := len(in.x)

	// Only horizontal distance drives the weighting; elevation enters
	// through the lapse-rate correction instead.
	dist := make([]float64, n)
	for i := 0; i < n; i++ {
		dist[i] = math.Hypot(target.X-in.x[i], target.Y-in.y[i])
	}
	radius := estimateRadius(dist, in.params)
	w := gaussianWeights(nil, dist, radius, in.params.Alpha)

	// A pair matters to the fit only as much as both of its stations
	// matter to this target.
	wDif := make([]float64, len(zDif))
	forEachPair(n, func(k, i, j int) {
		wDif[k] = w[i] * w[j]
	})
	a, b := weightedFit(vDif, zDif, wDif)

	sumW := floats.Sum(w)
	if sumW == 0 {
		return math.NaN()
	}
	var num float64
	for i := 0; i < n; i++ {
		num += w[i] * (values[i] + a + b*(target.Z-in.z[i]))
	}
	return num / sumW
}

// Points interpolates every target from one day of station values. The
// pairwise difference set is built once and shared across targets.
func (in *Interpolator) Points(targets []Point, values []float64) ([]float64, error) {
	if len(values) != len(in.x) {
		return nil, fmt.Errorf("got %d values for %d stations", len(values), len(in.x))
	}
	zDif, vDif := PairwiseDifferences(in.z, values)
	out := make([]float64, len(targets))
	for i, tgt := range targets {
		out[i] = in.Point(tgt, values, zDif, vDif)
	}
	return out, nil
}
