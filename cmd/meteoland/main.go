package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/akamensky/argparse"
	logging "github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/mat"

	"github.com/olivroy/meteoland/pkg/config"
	"github.com/olivroy/meteoland/pkg/dataset"
	"github.com/olivroy/meteoland/pkg/gridded"
	"github.com/olivroy/meteoland/pkg/interpolation"
)

var logger = logging.GetLogger("meteoland")

func main() {
	parser := argparse.NewParser("meteoland",
		"Interpolates daily station temperatures onto target points or a regular grid")

	stationsPath := parser.String("s", "stations", &argparse.Options{
		Required: true,
		Help:     "Station CSV: id,x,y,z followed by one value column per day"})
	targetsPath := parser.String("t", "targets", &argparse.Options{
		Help: "Target CSV: id,x,y,z; when omitted a regular grid over the station extent is used"})
	outputPath := parser.String("o", "output", &argparse.Options{
		Default: "interpolated.csv",
		Help:    "Output CSV path"})
	configPath := parser.String("c", "config", &argparse.Options{
		Default: "meteoland.yaml",
		Help:    "YAML configuration path"})
	renderDir := parser.String("", "render", &argparse.Options{
		Help: "Directory for per-day PNG renders (grid mode only)"})
	verbose := parser.Flag("v", "verbose", &argparse.Options{
		Help: "Force debug logging"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fail("loading config: %v", err)
	}
	level := cfg.Runtime.LogLevel
	if *verbose {
		level = "debug"
	}
	setLogLevel(level)

	net := loadStations(*stationsPath)

	in, err := interpolation.NewInterpolator(net.X, net.Y, net.Z, cfg.Params())
	if err != nil {
		fail("building interpolator: %v", err)
	}
	in.Workers = cfg.Runtime.Workers

	var (
		ids     []string
		targets []interpolation.Point
		grid    *gridded.Grid
	)
	if *targetsPath != "" {
		ids, targets = loadTargets(*targetsPath)
	} else {
		grid = gridFromNetwork(net, cfg)
		targets = grid.Points()
		ids = cellIDs(grid)
		logger.Infof("no target file given, using a %dx%d grid of %gm cells",
			grid.Cols, grid.Rows, grid.CellSize)
	}

	logger.Infof("interpolating %d days onto %d targets from %d stations",
		len(net.Days), len(targets), net.Stations())
	start := time.Now()
	results, err := in.Series(targets, net.Values)
	if err != nil {
		fail("interpolating: %v", err)
	}
	logger.Infof("interpolation finished in %.2fs", time.Since(start).Seconds())

	writeResults(*outputPath, ids, net.Days, results)
	logger.Infof("results written to %s", *outputPath)

	if *renderDir != "" {
		if grid == nil {
			logger.Warnf("--render only applies to grid mode, skipping")
			return
		}
		for d, day := range net.Days {
			col := mat.Col(nil, d, results)
			path := filepath.Join(*renderDir, day+".png")
			if err := gridded.RenderPNG(path, grid, col, cfg.Render.MinValue, cfg.Render.MaxValue); err != nil {
				fail("rendering %s: %v", day, err)
			}
		}
		logger.Infof("rendered %d days to %s", len(net.Days), *renderDir)
	}
}

func loadStations(path string) *dataset.Network {
	f, err := os.Open(path)
	if err != nil {
		fail("opening stations: %v", err)
	}
	defer f.Close()
	net, err := dataset.ReadStations(f)
	if err != nil {
		fail("reading stations: %v", err)
	}
	return net
}

func loadTargets(path string) ([]string, []interpolation.Point) {
	f, err := os.Open(path)
	if err != nil {
		fail("opening targets: %v", err)
	}
	defer f.Close()
	ids, targets, err := dataset.ReadTargets(f)
	if err != nil {
		fail("reading targets: %v", err)
	}
	return ids, targets
}

func writeResults(path string, ids, days []string, results *mat.Dense) {
	f, err := os.Create(path)
	if err != nil {
		fail("creating output: %v", err)
	}
	defer f.Close()
	if err := dataset.WriteResults(f, ids, days, results); err != nil {
		fail("writing output: %v", err)
	}
}

// gridFromNetwork covers the station extent, padded by half a cell so
// a degenerate extent still yields a non-empty grid.
func gridFromNetwork(net *dataset.Network, cfg *config.Config) *gridded.Grid {
	minX, maxX := bounds(net.X)
	minY, maxY := bounds(net.Y)
	cs := cfg.Grid.CellSize
	grid, err := gridded.NewGrid(minX-cs/2, minY-cs/2, maxX+cs/2, maxY+cs/2, cs, cfg.Grid.DefaultElevation)
	if err != nil {
		fail("building grid: %v", err)
	}
	return grid
}

func bounds(vs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		fail("station file has no usable coordinates")
	}
	return lo, hi
}

func cellIDs(grid *gridded.Grid) []string {
	ids := make([]string, 0, grid.Cells())
	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			ids = append(ids, fmt.Sprintf("r%dc%d", r, c))
		}
	}
	return ids
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		logger.SetLevel(logging.LevelDebug)
	case "warn":
		logger.SetLevel(logging.LevelWarn)
	case "error":
		logger.SetLevel(logging.LevelError)
	default:
		logger.SetLevel(logging.LevelInfo)
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
