package gridded

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// missingColor marks cells without an interpolated value.
var missingColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// RenderPNG writes one day of gridded values as a PNG heatmap, low
// values blue, high values red, missing cells gray. values must be in
// the grid's row-major cell order. When minV equals maxV the color
// scale is taken from the data.
func RenderPNG(path string, g *Grid, values []float64, minV, maxV float64) error {
	if len(values) != g.Cells() {
		return fmt.Errorf("got %d values for %d grid cells", len(values), g.Cells())
	}
	if minV == maxV {
		minV, maxV = valueRange(values)
	}

	img := image.NewNRGBA(image.Rect(0, 0, g.Cols, g.Rows))
	for r := 0; r < g.Rows; r++ {
		// Row 0 is the southern edge; image y grows downward.
		py := g.Rows - 1 - r
		for c := 0; c < g.Cols; c++ {
			img.SetNRGBA(c, py, rampColor(values[r*g.Cols+c], minV, maxV))
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating render directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	return nil
}

func rampColor(v, minV, maxV float64) color.NRGBA {
	if math.IsNaN(v) {
		return missingColor
	}
	t := (v - minV) / (maxV - minV)
	t = math.Max(0, math.Min(1, t))
	return color.NRGBA{
		R: uint8(255 * t),
		G: uint8(64 * (1 - math.Abs(2*t-1))),
		B: uint8(255 * (1 - t)),
		A: 0xff,
	}
}

// valueRange returns the min and max of values ignoring NaN entries,
// widened to a non-degenerate interval.
func valueRange(values []float64) (minV, maxV float64) {
	minV, maxV = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	if minV > maxV {
		// Nothing but missing cells.
		return 0, 1
	}
	if minV == maxV {
		return minV - 0.5, maxV + 0.5
	}
	return minV, maxV
}
