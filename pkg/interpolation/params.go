package interpolation

import "fmt"

// Params controls the Gaussian-filter interpolation.
type Params struct {
	// InitialRadius seeds the truncation radius search, in the units of
	// the station coordinates (meters for projected coordinates).
	InitialRadius float64

	// Alpha is the Gaussian shape parameter; larger values make station
	// weights decay faster with distance.
	Alpha float64

	// TargetStations is the effective number of contributing stations
	// the radius search aims for, measured as the sum of kernel weights
	// over the network.
	TargetStations float64

	// Iterations is the fixed number of radius refinement rounds.
	Iterations int
}

// DefaultParams returns the parameter set of the reference method.
func DefaultParams() Params {
	return Params{
		InitialRadius:  140000,
		Alpha:          3.0,
		TargetStations: 30,
		Iterations:     3,
	}
}

func (p Params) validate() error {
	if p.InitialRadius <= 0 {
		return fmt.Errorf("initial radius must be positive, got %g", p.InitialRadius)
	}
	if p.Alpha < 0 {
		return fmt.Errorf("alpha must be non-negative, got %g", p.Alpha)
	}
	if p.TargetStations <= 0 {
		return fmt.Errorf("target station count must be positive, got %g", p.TargetStations)
	}
	if p.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", p.Iterations)
	}
	return nil
}

// Point is a target location: planar coordinates and elevation.
type Point struct {
	X, Y, Z float64
}
