// Package dataset reads station networks and target points from CSV
// and writes interpolation results back out.
//
// Station files carry one row per station: id, x, y, z, then one value
// column per day, the day names taken from the header. Missing values
// are written as NA; NA, NaN and empty cells all parse to NaN, the
// missing sentinel the interpolation engine expects.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/olivroy/meteoland/pkg/interpolation"
)

// Network is a station network with its observed value series.
type Network struct {
	ID      []string
	X, Y, Z []float64

	// Days holds the value column names from the header.
	Days []string

	// Values is stations by days; missing observations are NaN.
	Values *mat.Dense
}

// Stations returns the number of stations in the network.
func (n *Network) Stations() int { return len(n.ID) }

// ReadStations parses a station CSV with header
// id,x,y,z,<day>,<day>,... and at least one day column.
func ReadStations(r io.Reader) (*Network, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading station csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("station csv needs a header and at least one station row")
	}
	header := records[0]
	if len(header) < 5 {
		return nil, fmt.Errorf("station csv needs id,x,y,z and at least one day column, got %d columns", len(header))
	}

	net := &Network{Days: header[4:]}
	days := len(net.Days)
	data := make([]float64, 0, (len(records)-1)*days)

	for line, rec := range records[1:] {
		net.ID = append(net.ID, rec[0])
		for col, dst := range []*[]float64{&net.X, &net.Y, &net.Z} {
			v, err := parseValue(rec[col+1])
			if err != nil {
				return nil, fmt.Errorf("station row %d column %s: %w", line+2, header[col+1], err)
			}
			*dst = append(*dst, v)
		}
		for d := 0; d < days; d++ {
			v, err := parseValue(rec[4+d])
			if err != nil {
				return nil, fmt.Errorf("station row %d day %s: %w", line+2, net.Days[d], err)
			}
			data = append(data, v)
		}
	}

	net.Values = mat.NewDense(len(net.ID), days, data)
	return net, nil
}

// ReadTargets parses a target CSV with header id,x,y,z.
func ReadTargets(r io.Reader) (ids []string, points []interpolation.Point, err error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("error reading target csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("target csv needs a header and at least one target row")
	}
	if len(records[0]) < 4 {
		return nil, nil, fmt.Errorf("target csv needs id,x,y,z columns, got %d", len(records[0]))
	}

	for line, rec := range records[1:] {
		var coords [3]float64
		for c := 0; c < 3; c++ {
			v, err := parseValue(rec[c+1])
			if err != nil {
				return nil, nil, fmt.Errorf("target row %d: %w", line+2, err)
			}
			if math.IsNaN(v) {
				return nil, nil, fmt.Errorf("target row %d: coordinates must not be missing", line+2)
			}
			coords[c] = v
		}
		ids = append(ids, rec[0])
		points = append(points, interpolation.Point{X: coords[0], Y: coords[1], Z: coords[2]})
	}
	return ids, points, nil
}

// WriteResults writes a targets-by-days result matrix as CSV, one row
// per target, NaN as NA.
func WriteResults(w io.Writer, ids, days []string, results *mat.Dense) error {
	rows, cols := results.Dims()
	if rows != len(ids) {
		return fmt.Errorf("got %d ids for %d result rows", len(ids), rows)
	}
	if cols != len(days) {
		return fmt.Errorf("got %d day names for %d result columns", len(days), cols)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"id"}, days...)); err != nil {
		return err
	}
	rec := make([]string, cols+1)
	for i := 0; i < rows; i++ {
		rec[0] = ids[i]
		for d := 0; d < cols; d++ {
			rec[d+1] = formatValue(results.At(i, d))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "", "NA", "NAN":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as a number", s)
	}
	return v, nil
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
