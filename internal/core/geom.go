// Package core provides fundamental types and utilities shared by the game
// and its hosts. It has no dependency on any UI toolkit so that simulation
// logic stays pure and testable.
package core

// Rect is an axis-aligned bounding box in play-area units.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the two rectangles overlap on both axes.
// Edges that only touch do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Right() > other.X &&
		r.X < other.Right() &&
		r.Bottom() > other.Y &&
		r.Y < other.Bottom()
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Size is the width and height of the play area.
type Size struct {
	W, H float64
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
