package game

import (
	"math"
	"testing"
	"time"
)

func defaultSettings() Settings {
	return Settings{FrameLength: 0.1, SignalRampDuration: 180, SignalMaxStrength: 1.0}
}

func newTestRound(t *testing.T, settings Settings, mode Mode) *Round {
	t.Helper()
	r, err := NewRound(settings, mode, NewRNG(1), 0)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	return r
}

func TestInvExp(t *testing.T) {
	if got := InvExp(0); got != 0 {
		t.Fatalf("InvExp(0) = %g, want 0", got)
	}
	prev := 0.0
	for x := 0.1; x <= 10; x += 0.1 {
		got := InvExp(x)
		if got <= prev {
			t.Fatalf("InvExp not strictly increasing at x=%g: %g <= %g", x, got, prev)
		}
		if got >= 1 {
			t.Fatalf("InvExp(%g) = %g, want < 1", x, got)
		}
		prev = got
	}
	if got := InvExp(50); got < 0.999999 {
		t.Fatalf("InvExp(50) = %g, want approaching 1", got)
	}
}

func TestNewRoundRejectsNonPositiveFrameLength(t *testing.T) {
	for _, fl := range []float64{0, -0.1} {
		_, err := NewRound(Settings{FrameLength: fl, SignalRampDuration: 180, SignalMaxStrength: 1}, TwoDimensional, NewRNG(1), 0)
		if err == nil {
			t.Fatalf("NewRound accepted frame length %g", fl)
		}
	}
}

func TestZeroRampDurationRevealsInstantly(t *testing.T) {
	r := newTestRound(t, Settings{FrameLength: 0.1, SignalRampDuration: 0, SignalMaxStrength: 1}, TwoDimensional)
	r.Advance(150 * time.Millisecond)
	if r.Progression() != 1.0 {
		t.Fatalf("progression = %g, want exactly 1.0", r.Progression())
	}
}

func TestFrameAndProgressionScenario(t *testing.T) {
	r := newTestRound(t, defaultSettings(), TwoDimensional)

	r.Advance(100 * time.Millisecond)
	if r.Frame() != 1 {
		t.Fatalf("frame at 0.1s = %g, want 1", r.Frame())
	}
	if got, want := r.Progression(), InvExp(0.1/180); math.Abs(got-want) > 1e-9 {
		t.Fatalf("progression at 0.1s = %g, want %g", got, want)
	}
	if math.Abs(r.Progression()-0.000556) > 1e-5 {
		t.Fatalf("progression at 0.1s = %g, want about 0.000556", r.Progression())
	}

	r.Advance(18 * time.Second)
	if r.Frame() != 180 {
		t.Fatalf("frame at 18s = %g, want 180", r.Frame())
	}

	r.Advance(180 * time.Second)
	if r.Frame() != 1800 {
		t.Fatalf("frame at 180s = %g, want 1800", r.Frame())
	}
	if got := r.Progression(); math.Abs(got-0.632) > 1e-3 {
		t.Fatalf("progression at 180s = %g, want about 0.632", got)
	}
}

func TestFrameMonotonicWhileSearching(t *testing.T) {
	r := newTestRound(t, defaultSettings(), TwoDimensional)
	prev := r.Frame()
	for now := time.Duration(0); now < 3*time.Second; now += 33 * time.Millisecond {
		r.Advance(now)
		if r.Frame() < prev {
			t.Fatalf("frame decreased from %g to %g at %v", prev, r.Frame(), now)
		}
		prev = r.Frame()
	}
}

func TestResolveFreezesRound(t *testing.T) {
	r := newTestRound(t, defaultSettings(), TwoDimensional)
	if r.Resolved() || r.Outcome() != nil {
		t.Fatal("fresh round should be searching with no outcome")
	}

	r.Advance(time.Second)
	click := r.Resolve(Vec2{X: 0.3, Y: 0.7})
	if !r.Resolved() || r.Outcome() == nil {
		t.Fatal("round should be resolved after click")
	}
	if click.Elapsed != time.Second {
		t.Fatalf("click elapsed = %v, want 1s", click.Elapsed)
	}

	frame := r.Frame()
	r.Advance(10 * time.Second)
	if r.Frame() != frame {
		t.Fatalf("frame advanced after resolve: %g -> %g", frame, r.Frame())
	}

	again := r.Resolve(Vec2{X: 0.9, Y: 0.9})
	if again != click {
		t.Fatalf("second resolve replaced outcome: %+v != %+v", again, click)
	}
}

func TestResetStartsFreshRound(t *testing.T) {
	r := newTestRound(t, defaultSettings(), TwoDimensional)
	origin := r.Origin()

	r.Advance(2 * time.Second)
	r.Resolve(Vec2{X: 0.5, Y: 0.5})

	r.Reset(5 * time.Second)
	if r.Resolved() || r.Outcome() != nil {
		t.Fatal("reset should clear the click outcome")
	}
	if r.Frame() != 0 || r.Progression() != 0 {
		t.Fatalf("reset should zero frame and progression, got %g/%g", r.Frame(), r.Progression())
	}
	if r.Origin() == origin {
		t.Fatal("reset should pick a new signal origin")
	}

	r.Advance(5*time.Second + 100*time.Millisecond)
	if r.Frame() != 1 {
		t.Fatalf("frame 0.1s after reset = %g, want 1", r.Frame())
	}
}

func TestDistanceByMode(t *testing.T) {
	cases := []struct {
		name string
		mode Mode
		a, b Vec2
		want float64
	}{
		{"1d ignores y", OneDimensional, Vec2{X: 0.2, Y: 0.9}, Vec2{X: 0.5, Y: 0.1}, 0.3},
		{"1d symmetric", OneDimensional, Vec2{X: 0.8}, Vec2{X: 0.5}, 0.3},
		{"2d euclidean", TwoDimensional, Vec2{X: 0.5, Y: 0.5}, Vec2{X: 0.5, Y: 0.6}, 0.1},
		{"2d diagonal", TwoDimensional, Vec2{X: 0, Y: 0}, Vec2{X: 0.3, Y: 0.4}, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.mode, tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Distance = %g, want %g", got, tc.want)
			}
		})
	}
}

func TestResolveDistance2D(t *testing.T) {
	r := newTestRound(t, defaultSettings(), TwoDimensional)
	r.origin = Vec2{X: 0.5, Y: 0.6}
	r.Advance(500 * time.Millisecond)
	click := r.Resolve(Vec2{X: 0.5, Y: 0.5})
	if math.Abs(click.Distance-0.1) > 1e-9 {
		t.Fatalf("distance = %g, want 0.1", click.Distance)
	}
}
