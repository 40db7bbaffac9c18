package interpolation

// forEachPair enumerates every unordered station pair (i, j), j < i, in
// a fixed order, passing the flat pair index k. The difference sets and
// the pairwise weight products are all built through this one
// enumerator so their indices stay aligned.
func forEachPair(n int, fn func(k, i, j int)) {
	k := 0
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			fn(k, i, j)
			k++
		}
	}
}

func pairCount(n int) int { return n * (n - 1) / 2 }

// PairwiseDifferences builds the elevation and value difference sets
// over every unordered station pair. The result depends only on the
// station set, not on any target point, and is meant to be built once
// and reused across all targets sharing the set.
func PairwiseDifferences(z, v []float64) (zDif, vDif []float64) {
	zDif = make([]float64, pairCount(len(z)))
	vDif = make([]float64, len(zDif))
	forEachPair(len(z), func(k, i, j int) {
		zDif[k] = z[i] - z[j]
		vDif[k] = v[i] - v[j]
	})
	return zDif, vDif
}
