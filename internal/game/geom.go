package game

import "math"

// Vec2 is a point in normalized [0,1] screen space.
type Vec2 struct {
	X float64
	Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the mode-appropriate distance between two normalized
// points: horizontal separation in one dimension, Euclidean in two.
func Distance(mode Mode, a, b Vec2) float64 {
	if mode == OneDimensional {
		return math.Abs(a.X - b.X)
	}
	return a.Sub(b).Len()
}
