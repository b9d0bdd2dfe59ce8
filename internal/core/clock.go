package core

import (
	"math"
	"time"
)

// MaxFrameDelta caps a single simulation step. Larger steps would let a
// fast body tunnel through thin obstacles after a stalled frame.
const MaxFrameDelta = 1.0 / 30.0

// ClampDelta sanitizes a frame delta in seconds.
// NaN and negative values become 0; anything above MaxFrameDelta is capped.
func ClampDelta(dt float64) float64 {
	return ClampDeltaTo(dt, MaxFrameDelta)
}

// ClampDeltaTo is ClampDelta with a caller-chosen cap.
func ClampDeltaTo(dt, max float64) float64 {
	if math.IsNaN(dt) || dt <= 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}

// FixedDelta returns the clamped step for a fixed tick rate.
func FixedDelta(tickRate int) float64 {
	if tickRate <= 0 {
		return 0
	}
	return ClampDelta(1.0 / float64(tickRate))
}

// Clock turns wall-clock tick timestamps into clamped frame deltas.
type Clock struct {
	last    time.Time
	started bool
}

// NewClock creates a clock that has not seen a frame yet.
func NewClock() *Clock {
	return &Clock{}
}

// Tick records a frame at now and returns the clamped seconds since the
// previous frame. The first frame after creation or Reset yields 0.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampDelta(dt)
}

// Reset forgets the previous frame, e.g. after a pause.
func (c *Clock) Reset() {
	c.started = false
}
