// Package gridded builds regular target grids over a bounding box and
// renders interpolated fields to images.
package gridded

import (
	"fmt"
	"math"

	"github.com/olivroy/meteoland/pkg/interpolation"
)

// Grid is a regular grid of square target cells. Cell (0,0) sits at
// the south-west corner and cells are addressed row-major, south to
// north.
type Grid struct {
	MinX, MinY float64
	CellSize   float64
	Cols, Rows int

	elevation []float64
}

// NewGrid covers the bounding box with cells of the given size. Every
// cell carries the default elevation until SetElevations replaces it.
func NewGrid(minX, minY, maxX, maxY, cellSize, defaultElevation float64) (*Grid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %g", cellSize)
	}
	if maxX <= minX || maxY <= minY {
		return nil, fmt.Errorf("empty bounding box [%g,%g]x[%g,%g]", minX, maxX, minY, maxY)
	}
	cols := int(math.Ceil((maxX - minX) / cellSize))
	rows := int(math.Ceil((maxY - minY) / cellSize))

	elev := make([]float64, cols*rows)
	for i := range elev {
		elev[i] = defaultElevation
	}
	return &Grid{
		MinX:      minX,
		MinY:      minY,
		CellSize:  cellSize,
		Cols:      cols,
		Rows:      rows,
		elevation: elev,
	}, nil
}

// Cells returns the number of grid cells.
func (g *Grid) Cells() int { return g.Cols * g.Rows }

// SetElevations replaces the per-cell elevations, row-major from the
// south-west corner.
func (g *Grid) SetElevations(elev []float64) error {
	if len(elev) != g.Cells() {
		return fmt.Errorf("got %d elevations for %d cells", len(elev), g.Cells())
	}
	copy(g.elevation, elev)
	return nil
}

// Points returns the cell centers as interpolation targets, in the
// grid's row-major cell order.
func (g *Grid) Points() []interpolation.Point {
	pts := make([]interpolation.Point, 0, g.Cells())
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			pts = append(pts, interpolation.Point{
				X: g.MinX + (float64(c)+0.5)*g.CellSize,
				Y: g.MinY + (float64(r)+0.5)*g.CellSize,
				Z: g.elevation[r*g.Cols+c],
			})
		}
	}
	return pts
}
