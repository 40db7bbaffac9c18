package interpolation

import (
	"fmt"
	"math"
	"sync"

	logging "github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/mat"
)

var logger = logging.GetLogger("meteoland")

// Series interpolates a stations-by-days value matrix onto every
// target, returning a targets-by-days matrix. Days are independent:
// stations with a missing value or coordinate on a given day are
// excluded for that day only, and the pairwise difference set is
// rebuilt from the surviving subset before being shared by all targets
// of the day.
//
// Days fan out over at most Workers goroutines; each worker owns whole
// output columns, so results are identical for any worker count. A day
// with fewer than two usable stations yields a NaN column.
func (in *Interpolator) Series(targets []Point, values *mat.Dense) (*mat.Dense, error) {
	rows, days := values.Dims()
	if rows != len(in.x) {
		return nil, fmt.Errorf("value matrix has %d rows for %d stations", rows, len(in.x))
	}
	out := mat.NewDense(len(targets), days, nil)
	if days == 0 || len(targets) == 0 {
		return out, nil
	}

	workers := in.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > days {
		workers = days
	}

	dayCh := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range dayCh {
				in.interpolateDay(targets, values, out, d)
			}
		}()
	}
	for d := 0; d < days; d++ {
		dayCh <- d
	}
	close(dayCh)
	wg.Wait()
	return out, nil
}

// interpolateDay fills column d of out. Column writes are disjoint
// across days, so workers need no locking.
func (in *Interpolator) interpolateDay(targets []Point, values, out *mat.Dense, d int) {
	n := len(in.x)
	xd := make([]float64, 0, n)
	yd := make([]float64, 0, n)
	zd := make([]float64, 0, n)
	vd := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := values.At(i, d)
		if math.IsNaN(v) || math.IsNaN(in.x[i]) || math.IsNaN(in.y[i]) || math.IsNaN(in.z[i]) {
			continue
		}
		xd = append(xd, in.x[i])
		yd = append(yd, in.y[i])
		zd = append(zd, in.z[i])
		vd = append(vd, v)
	}
	if excluded := n - len(vd); excluded > 0 {
		logger.Debugf("day %d: excluded %d of %d stations", d, excluded, n)
	}
	if len(vd) < 2 {
		logger.Warnf("day %d: only %d usable stations, writing missing values", d, len(vd))
		for p := range targets {
			out.Set(p, d, math.NaN())
		}
		return
	}

	day := &Interpolator{x: xd, y: yd, z: zd, params: in.params}
	zDif, vDif := PairwiseDifferences(zd, vd)
	for p, tgt := range targets {
		out.Set(p, d, day.Point(tgt, vd, zDif, vDif))
	}
}
