package ui

import "testing"

func TestResolve(t *testing.T) {
	b := Bounds{
		Relative: Rect{X: 0.5, Y: 0.5},
		Absolute: Rect{X: -80, Y: -50, W: 160, H: 40},
	}
	got := b.Resolve(800, 600)
	want := Rect{X: 320, Y: 250, W: 160, H: 40}
	if got != want {
		t.Fatalf("Resolve = %+v, want %+v", got, want)
	}

	// Resolution independence of the relative anchor.
	small := b.Resolve(400, 400)
	if small.X != 120 || small.Y != 150 {
		t.Fatalf("Resolve at 400x400 = %+v", small)
	}
	if small.W != 160 || small.H != 40 {
		t.Fatal("absolute size should not scale with resolution")
	}
}

func TestContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 40}
	cases := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{110, 50, true},
		{60, 30, true},
		{9.9, 30, false},
		{60, 50.1, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Fatalf("Contains(%g, %g) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRelativeAndAbsoluteHelpers(t *testing.T) {
	rel := Relative(Rect{X: 0.25, Y: 0.25, W: 0.5, H: 0.5}).Resolve(200, 200)
	if rel != (Rect{X: 50, Y: 50, W: 100, H: 100}) {
		t.Fatalf("Relative resolve = %+v", rel)
	}
	abs := Absolute(Rect{X: 5, Y: 6, W: 7, H: 8}).Resolve(200, 200)
	if abs != (Rect{X: 5, Y: 6, W: 7, H: 8}) {
		t.Fatalf("Absolute resolve = %+v", abs)
	}
}
