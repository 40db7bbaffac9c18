package interpolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedFitRecoversLine(t *testing.T) {
	// Points exactly on y = a + b*x must be recovered for any
	// not-all-zero weights.
	const a, b = 2.5, -0.004
	x := []float64{-800, -150, 0, 320, 610, 990}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = a + b*xi
	}

	for _, w := range [][]float64{
		{1, 1, 1, 1, 1, 1},
		{0.1, 0.9, 0.4, 1.0, 0.05, 0.7},
		{0, 1, 1, 0, 1, 1},
	} {
		gotA, gotB := weightedFit(y, x, w)
		assert.InDelta(t, a, gotA, 1e-9)
		assert.InDelta(t, b, gotB, 1e-12)
	}
}

func TestWeightedFitDegenerate(t *testing.T) {
	t.Run("zero variance in x", func(t *testing.T) {
		x := []float64{50, 50, 50}
		y := []float64{1, 2, 3}
		w := []float64{1, 1, 2}
		a, b := weightedFit(y, x, w)
		assert.Zero(t, b)
		assert.InDelta(t, 2.25, a, 1e-12, "intercept falls back to the weighted mean of y")
	})

	t.Run("zero total weight", func(t *testing.T) {
		a, b := weightedFit([]float64{1, 2}, []float64{3, 4}, []float64{0, 0})
		assert.Zero(t, a)
		assert.Zero(t, b)
	})

	t.Run("empty", func(t *testing.T) {
		a, b := weightedFit(nil, nil, nil)
		assert.Zero(t, a)
		assert.Zero(t, b)
	})

	t.Run("single usable point", func(t *testing.T) {
		// Only one point carries weight: no slope can be estimated.
		a, b := weightedFit([]float64{7, 9}, []float64{1, 2}, []float64{1, 0})
		assert.Zero(t, b)
		assert.InDelta(t, 7.0, a, 1e-12)
	})
}

func TestForEachPairOrder(t *testing.T) {
	var got [][3]int
	forEachPair(4, func(k, i, j int) {
		got = append(got, [3]int{k, i, j})
	})
	want := [][3]int{
		{0, 1, 0},
		{1, 2, 0}, {2, 2, 1},
		{3, 3, 0}, {4, 3, 1}, {5, 3, 2},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, pairCount(4), len(got))
}

func TestPairwiseDifferences(t *testing.T) {
	z := []float64{0, 500, 1000}
	v := []float64{20, 17, 14}
	zDif, vDif := PairwiseDifferences(z, v)

	assert.Equal(t, []float64{500, 1000, 500}, zDif)
	assert.Equal(t, []float64{-3, -6, -3}, vDif)
}
