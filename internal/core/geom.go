// Package core provides fundamental types shared by the game loop and the
// presentation layer. It contains no external dependencies (especially no
// Bubble Tea) to keep the simulation pure and testable.
package core

// Rect represents an axis-aligned bounding box in world coordinates.
// The game world uses float64 positions; the platform layer maps them
// to terminal cells at render time.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a rectangle of the given size centered on (cx, cy).
// Sprites are anchored by their center, matching how they are placed in
// the world.
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Inset returns a copy of the rectangle shrunk inward by dx on each
// horizontal side and dy on each vertical side. Width and height may go
// negative for large insets; Overlaps handles that correctly because the
// right edge ends up left of the left edge.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		X: r.X + dx,
		Y: r.Y + dy,
		W: r.W - 2*dx,
		H: r.H - 2*dy,
	}
}

// Overlaps returns true if the two rectangles strictly overlap on both
// axes. Rectangles that merely touch edges do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.Right() > other.X && r.X < other.Right() &&
		r.Bottom() > other.Y && r.Y < other.Bottom()
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
