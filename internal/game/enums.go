package game

import "fmt"

// Mode selects whether the signal hides along one axis or in the full plane.
// The numeric value doubles as the Dimensions shader uniform.
type Mode int

const (
	// OneDimensional hides the signal along the x axis only.
	OneDimensional Mode = 1
	// TwoDimensional hides the signal anywhere on the plane.
	TwoDimensional Mode = 2
)

// String returns the log directory name for the mode.
func (m Mode) String() string {
	if m == OneDimensional {
		return "noise_1d"
	}
	return "noise_2d"
}

// Distribution selects how per-cell noise deviates from the noise floor.
type Distribution int

const (
	// Gaussian draws deviations from a standard normal.
	Gaussian Distribution = iota
	// Pareto draws heavy-tailed deviations.
	Pareto
	// Triangle draws deviations from a triangular density.
	Triangle
	// Uniform draws deviations uniformly.
	Uniform
)

var distributionNames = map[Distribution]string{
	Gaussian: "gaussian",
	Pareto:   "pareto",
	Triangle: "triangle",
	Uniform:  "uniform",
}

func (d Distribution) String() string {
	if name, ok := distributionNames[d]; ok {
		return name
	}
	return "gaussian"
}

// Set parses a distribution name, satisfying flag.Value.
func (d *Distribution) Set(s string) error {
	for k, name := range distributionNames {
		if name == s {
			*d = k
			return nil
		}
	}
	return fmt.Errorf("unknown noise distribution %q", s)
}

// Shape selects the falloff profile of the signal blob.
type Shape int

const (
	// ShapeGaussian fades the signal with a gaussian falloff.
	ShapeGaussian Shape = iota
	// ShapeTriangle fades the signal linearly to zero at the signal width.
	ShapeTriangle
	// ShapeFlat renders the signal at full strength inside its width.
	ShapeFlat
)

var shapeNames = map[Shape]string{
	ShapeGaussian: "gaussian",
	ShapeTriangle: "triangle",
	ShapeFlat:     "flat",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "gaussian"
}

// Set parses a shape name, satisfying flag.Value.
func (s *Shape) Set(v string) error {
	for k, name := range shapeNames {
		if name == v {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown signal shape %q", v)
}
