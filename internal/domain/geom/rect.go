// Package geom holds the screen-space geometry used for hit-testing.
package geom

// Rect is an axis-aligned rectangle in screen pixels.
// The left and top edges are inside, the right and bottom edges are not.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Contains reports whether the point (px, py) lies inside r.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.Width &&
		py >= r.Y && py < r.Y+r.Height
}

// Center returns the center point of r.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Moved returns r with its top-left corner at (x, y).
func (r Rect) Moved(x, y int) Rect {
	r.X, r.Y = x, y
	return r
}
