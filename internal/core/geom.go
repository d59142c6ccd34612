// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Rect represents an axis-aligned box on the character grid.
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

// Span is a closed interval [Min, Max] on one axis, in continuous units.
// Physics runs on floats, so collision works on spans rather than Rects.
type Span struct {
	Min, Max float64
}

// NewSpan creates a span starting at start with the given length.
func NewSpan(start, length float64) Span {
	return Span{Min: start, Max: start + length}
}

// Overlaps reports whether the open interiors of two spans intersect.
// Spans that only touch at an edge do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Min < other.Max && other.Min < s.Max
}

// Within reports whether s lies entirely inside outer, bounds inclusive.
func (s Span) Within(outer Span) bool {
	return s.Min >= outer.Min && s.Max <= outer.Max
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
