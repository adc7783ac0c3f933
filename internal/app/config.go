// Package app holds the per-run configuration and the shared context handed
// to every scene.
package app

import (
	"flag"
	"fmt"

	"signal-to-noise/internal/game"
)

// Config represents the command-line parameters for the application. It is
// immutable after Validate.
type Config struct {
	// CellSpacing is the size of individual noise cells as a fraction of
	// the window size. Bigger = harder.
	CellSpacing float64
	// SignalWidth is the width of the signal as a fraction of the window
	// size. Bigger = harder.
	SignalWidth float64
	// SignalShape is the falloff profile of the signal blob.
	SignalShape game.Shape
	// NoiseFloor is the average noise brightness as a fraction of full
	// brightness. Bigger = harder.
	NoiseFloor float64
	// NoiseDeviation is the standard deviation of noise from the floor.
	NoiseDeviation float64
	// NoiseDeviationCap caps noise at this many deviations from the floor.
	NoiseDeviationCap float64
	// NoiseDistribution selects the noise density.
	NoiseDistribution game.Distribution
	// ParetoParameter is the shape parameter used by the pareto
	// distribution.
	ParetoParameter float64
	// FrameLength is the duration in seconds each noise frame is shown.
	FrameLength float64
	// SignalRampDuration is the approximate time in seconds until the
	// signal approaches full strength. Zero reveals instantly.
	SignalRampDuration float64
	// SignalMaxStrength is the signal strength at full reveal.
	SignalMaxStrength float64
	// Scene names the starting scene: menu, noise1d, or noise2d.
	Scene string
	// RecordPath is the base directory for attempt logs.
	RecordPath string
	// Seed seeds signal-origin sampling; zero means time-based.
	Seed int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		CellSpacing:        0.05,
		SignalWidth:        0.25,
		SignalShape:        game.ShapeGaussian,
		NoiseFloor:         0.25,
		NoiseDeviation:     0.05,
		NoiseDeviationCap:  3.0,
		NoiseDistribution:  game.Gaussian,
		ParetoParameter:    2.0,
		FrameLength:        0.1,
		SignalRampDuration: 180.0,
		SignalMaxStrength:  1.0,
		Scene:              "menu",
		RecordPath:         "records",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.CellSpacing, "cell-spacing", c.CellSpacing, "noise cell size as a fraction of the window (bigger = harder)")
	fs.Float64Var(&c.SignalWidth, "signal-width", c.SignalWidth, "signal width as a fraction of the window (bigger = harder)")
	fs.Var(&c.SignalShape, "signal-shape", "signal falloff profile: gaussian, triangle, or flat")
	fs.Float64Var(&c.NoiseFloor, "noise-floor", c.NoiseFloor, "average noise brightness in [0,1] (bigger = harder)")
	fs.Float64Var(&c.NoiseDeviation, "noise-deviation", c.NoiseDeviation, "standard deviation of noise from the floor (bigger = harder)")
	fs.Float64Var(&c.NoiseDeviationCap, "noise-deviation-cap", c.NoiseDeviationCap, "maximum deviations away from the floor (bigger = harder)")
	fs.Var(&c.NoiseDistribution, "noise-distribution", "noise distribution: gaussian, pareto, triangle, or uniform")
	fs.Float64Var(&c.ParetoParameter, "pareto-parameter", c.ParetoParameter, "shape parameter for the pareto distribution")
	fs.Float64Var(&c.FrameLength, "frame-length", c.FrameLength, "seconds each noise frame is shown (bigger = harder)")
	fs.Float64Var(&c.SignalRampDuration, "signal-ramp-duration", c.SignalRampDuration, "approximate seconds until full signal strength (bigger = harder)")
	fs.Float64Var(&c.SignalMaxStrength, "signal-max-strength", c.SignalMaxStrength, "signal strength at peak (smaller = harder)")
	fs.StringVar(&c.Scene, "scene", c.Scene, "starting scene: menu, noise1d, or noise2d")
	fs.StringVar(&c.RecordPath, "record-path", c.RecordPath, "base directory for attempt logs")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for signal-origin sampling (0 = time-based)")
}

// Validate rejects configurations the game cannot run with.
func (c *Config) Validate() error {
	if c.FrameLength <= 0 {
		return fmt.Errorf("frame length must be positive, got %g", c.FrameLength)
	}
	switch c.Scene {
	case "menu", "noise1d", "noise2d":
	default:
		return fmt.Errorf("unknown starting scene %q", c.Scene)
	}
	return nil
}

// Fingerprint derives the deterministic log key for this configuration, so
// repeated runs with identical parameters append to the same log.
func (c *Config) Fingerprint() string {
	distribution := c.NoiseDistribution.String()
	if c.NoiseDistribution == game.Pareto {
		distribution = fmt.Sprintf("pareto(%g)", c.ParetoParameter)
	}
	return fmt.Sprintf("%g-%g-%g-%s-%g-%g-%g-%g-%g-%s",
		c.CellSpacing,
		c.SignalWidth,
		c.NoiseFloor,
		distribution,
		c.NoiseDeviation,
		c.NoiseDeviationCap,
		c.FrameLength,
		c.SignalRampDuration,
		c.SignalMaxStrength,
		c.SignalShape,
	)
}

// Settings extracts the reveal state-machine tuning from the configuration.
func (c *Config) Settings() game.Settings {
	return game.Settings{
		FrameLength:        c.FrameLength,
		SignalRampDuration: c.SignalRampDuration,
		SignalMaxStrength:  c.SignalMaxStrength,
	}
}
