// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned box in screen cells. Used by the screen buffer
// for boxes and overlays.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Span is a 1D interval [Lo, Hi] in world units.
// The flight game describes pipe gaps and body extents with spans.
type Span struct {
	Lo, Hi float64
}

// SpanAround returns the span centered on c with the given half-extent.
func SpanAround(c, half float64) Span {
	return Span{Lo: c - half, Hi: c + half}
}

// Inside reports whether other lies strictly within s (no shared edge).
func (s Span) Inside(other Span) bool {
	return other.Lo > s.Lo && other.Hi < s.Hi
}

// Near reports whether |a-b| <= reach. Edges count as touching.
func Near(a, b, reach float64) bool {
	return math.Abs(a-b) <= reach
}

// Within reports whether |a-b| < reach. Edges do not count.
func Within(a, b, reach float64) bool {
	return math.Abs(a-b) < reach
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
