package core

import (
	"math"
	"testing"
)

func TestSpanInside(t *testing.T) {
	gap := SpanAround(0.5, 1.5) // [-1, 2]

	tests := []struct {
		name     string
		body     Span
		expected bool
	}{
		{"centered", SpanAround(0.5, 0.4), true},
		{"touching top edge", Span{Lo: 1.2, Hi: 2.0}, false},
		{"touching bottom edge", Span{Lo: -1.0, Hi: -0.2}, false},
		{"poking out the top", Span{Lo: 1.7, Hi: 2.5}, false},
		{"fully below", Span{Lo: -3, Hi: -2}, false},
		{"larger than gap", Span{Lo: -2, Hi: 3}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := gap.Inside(tc.body); got != tc.expected {
				t.Errorf("Inside(%v) = %v, expected %v", tc.body, got, tc.expected)
			}
		})
	}
}

func TestNearWithin(t *testing.T) {
	tests := []struct {
		name         string
		a, b, reach  float64
		near, within bool
	}{
		{"inside", 0, 0.3, 0.5, true, true},
		{"exactly on edge", 0, 0.5, 0.5, true, false},
		{"outside", 0, 0.6, 0.5, false, false},
		{"negative side", 1, 0.25, 0.75, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Near(tc.a, tc.b, tc.reach); got != tc.near {
				t.Errorf("Near() = %v, expected %v", got, tc.near)
			}
			if got := Within(tc.a, tc.b, tc.reach); got != tc.within {
				t.Errorf("Within() = %v, expected %v", got, tc.within)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, expected float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0.17, -2, 0.5, -0.915},
		{6, 0, 0.25, 4.5},
	}

	for _, tc := range tests {
		got := Lerp(tc.a, tc.b, tc.t)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tc.a, tc.b, tc.t, got, tc.expected)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-3.3, -3.2, 3.2); got != -3.2 {
		t.Errorf("ClampF() = %v, expected -3.2", got)
	}
	if got := ClampF(4, -9, 3); got != 3 {
		t.Errorf("ClampF() = %v, expected 3", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs should drop the sign")
	}
}
