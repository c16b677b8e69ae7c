// Package core provides fundamental types and utilities for the flappy
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is an axis-aligned bounding box in world units.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Inset shrinks the rectangle by d on all four sides.
func (r RectF) Inset(d float64) RectF {
	return RectF{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// OverlapsX reports whether the open horizontal spans of r and other overlap.
func (r RectF) OverlapsX(other RectF) bool {
	return r.X < other.Right() && r.Right() > other.X
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r RectF) Intersects(other RectF) bool {
	return r.OverlapsX(other) && r.Y < other.Bottom() && r.Bottom() > other.Y
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
