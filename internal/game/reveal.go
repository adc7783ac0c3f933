// Package game holds the reveal state machine behind the noise scenes: a
// hidden signal ramps up over discrete noise frames until the player clicks,
// then the round freezes for feedback until it is reset.
package game

import (
	"fmt"
	"math"
	"time"
)

// InvExp is the reveal curve 1 - e^(-x): zero at zero, strictly increasing,
// asymptotic to one.
func InvExp(x float64) float64 {
	return 1.0 - math.Exp(-x)
}

// frameEpsilon guards the frame division against floating-point error when
// the elapsed time lands exactly on a frame boundary.
const frameEpsilon = 1e-9

// Settings are the per-round tuning values, fixed at construction.
type Settings struct {
	// FrameLength is the duration in seconds each noise frame is held.
	FrameLength float64
	// SignalRampDuration is the approximate time in seconds until the
	// signal approaches full strength. Zero means instant full strength.
	SignalRampDuration float64
	// SignalMaxStrength is the signal strength at full reveal.
	SignalMaxStrength float64
}

// Click captures the outcome of a round, immutable once created.
type Click struct {
	// Location is the click position in normalized [0,1] space.
	Location Vec2
	// Distance is the normalized distance from the true signal origin.
	Distance float64
	// Elapsed is the round time at which the click happened.
	Elapsed time.Duration
}

// Round is one search-and-click cycle. A round is Searching until the player
// clicks, then Resolved until reset. While Resolved, frame advancement stops
// and the click outcome is available.
type Round struct {
	settings Settings
	mode     Mode
	rng      *RNG

	start       time.Duration
	elapsed     time.Duration
	frame       float64
	progression float64
	origin      Vec2
	click       *Click
}

// NewRound validates the settings and starts a fresh round at now.
func NewRound(settings Settings, mode Mode, rng *RNG, now time.Duration) (*Round, error) {
	if settings.FrameLength <= 0 {
		return nil, fmt.Errorf("frame length must be positive, got %g", settings.FrameLength)
	}
	r := &Round{settings: settings, mode: mode, rng: rng}
	r.Reset(now)
	return r, nil
}

// Reset starts a new round at now: fresh random signal origin, cleared click,
// zeroed frame and progression.
func (r *Round) Reset(now time.Duration) {
	r.start = now
	r.elapsed = 0
	r.frame = 0
	r.progression = 0
	r.origin = r.rng.Point()
	r.click = nil
}

// Advance performs one Searching tick at now: recomputes the elapsed time,
// the discretized noise frame, and the signal progression. Once the round is
// resolved it does nothing, freezing frame advancement.
func (r *Round) Advance(now time.Duration) {
	if r.click != nil {
		return
	}
	r.elapsed = now - r.start
	frame := math.Floor(r.elapsed.Seconds()/r.settings.FrameLength + frameEpsilon)
	if frame == r.frame {
		return
	}
	r.frame = frame
	if r.settings.SignalRampDuration > 0 {
		r.progression = InvExp(frame * r.settings.FrameLength /
			(r.settings.SignalRampDuration * r.settings.SignalMaxStrength))
	} else {
		r.progression = 1.0
	}
}

// Resolve registers the click that ends the round and returns the outcome.
// The location is in normalized [0,1] space; the distance uses the round's
// mode. Resolving an already-resolved round returns the existing outcome.
func (r *Round) Resolve(location Vec2) Click {
	if r.click != nil {
		return *r.click
	}
	click := Click{
		Location: location,
		Distance: Distance(r.mode, location, r.origin),
		Elapsed:  r.elapsed,
	}
	r.click = &click
	return click
}

// Resolved reports whether the round has ended with a click.
func (r *Round) Resolved() bool {
	return r.click != nil
}

// Outcome returns the click that ended the round, or nil while Searching.
func (r *Round) Outcome() *Click {
	return r.click
}

// Elapsed returns the time since the round started, as of the last Advance.
func (r *Round) Elapsed() time.Duration {
	return r.elapsed
}

// Frame returns the current noise frame index. It doubles as the noise seed
// so the noise field regenerates once per frame, not per display tick.
func (r *Round) Frame() float64 {
	return r.frame
}

// Progression returns the reveal fraction in [0,1].
func (r *Round) Progression() float64 {
	return r.progression
}

// Strength returns the current signal strength, progression scaled by the
// configured maximum.
func (r *Round) Strength() float64 {
	return r.progression * r.settings.SignalMaxStrength
}

// Origin returns the true signal position in normalized [0,1] space.
func (r *Round) Origin() Vec2 {
	return r.origin
}

// Mode returns the round's dimensionality.
func (r *Round) Mode() Mode {
	return r.mode
}
