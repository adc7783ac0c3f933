// Package ui provides the small widget set the menu scenes are built from.
package ui

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Bounds positions a widget with a resolution-relative part plus an absolute
// pixel offset, so layouts survive window resizes.
type Bounds struct {
	Relative Rect
	Absolute Rect
}

// Relative positions a widget purely by screen fractions.
func Relative(r Rect) Bounds {
	return Bounds{Relative: r}
}

// Absolute positions a widget purely by pixels.
func Absolute(r Rect) Bounds {
	return Bounds{Absolute: r}
}

// Resolve computes the on-screen rectangle for the given resolution.
func (b Bounds) Resolve(width, height float64) Rect {
	return Rect{
		X: b.Relative.X*width + b.Absolute.X,
		Y: b.Relative.Y*height + b.Absolute.Y,
		W: b.Relative.W*width + b.Absolute.W,
		H: b.Relative.H*height + b.Absolute.H,
	}
}
