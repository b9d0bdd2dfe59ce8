package crossy

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/bird-arcade/internal/config"
	"github.com/vovakirdan/bird-arcade/internal/core"
)

// Actor is one vehicle riding a lane's conveyor.
type Actor struct {
	ID   int
	Lane int     // Index into the lane table
	X    float64 // Horizontal position
	Hit  bool    // Involved in a collision; frozen from then on
}

// Traffic owns the lane table and the actors riding it.
type Traffic struct {
	cfg    config.CrossyTraffic
	actors []Actor
}

// NewTraffic creates traffic in its initial staggered layout.
func NewTraffic(cfg config.CrossyTraffic) *Traffic {
	t := &Traffic{cfg: cfg}
	t.Reset()
	return t
}

// Reset restores the staggered layout: actor i of lane l starts at
// OriginX + i*Spacing + l*LaneOffset. Hit flags are cleared.
func (t *Traffic) Reset() {
	t.actors = t.actors[:0]
	id := 0
	for lane := range t.cfg.Lanes {
		for i := 0; i < t.cfg.ActorsPerLane; i++ {
			t.actors = append(t.actors, Actor{
				ID:   id,
				Lane: lane,
				X:    t.cfg.OriginX + float64(i)*t.cfg.Spacing + float64(lane)*t.cfg.LaneOffset,
			})
			id++
		}
	}
}

// Advance moves every actor that has not been hit. An actor past the wrap
// distance reappears at the opposite boundary.
func (t *Traffic) Advance(dt, multiplier float64) {
	wrap := t.cfg.WrapX
	for i := range t.actors {
		a := &t.actors[i]
		if a.Hit {
			continue
		}
		lane := t.cfg.Lanes[a.Lane]
		a.X += lane.Speed * multiplier * float64(lane.Direction) * dt
		switch {
		case a.X > wrap:
			a.X = -wrap
		case a.X < -wrap:
			a.X = wrap
		}
	}
}

// FirstHit returns the index of the first actor, in array order, close
// enough to the player on both axes.
func (t *Traffic) FirstHit(player mgl64.Vec2) (int, bool) {
	for i, a := range t.actors {
		if core.Within(a.X, player.X(), t.cfg.HitX) && core.Within(t.LaneZ(a), player.Y(), t.cfg.HitZ) {
			return i, true
		}
	}
	return -1, false
}

// MarkHit flags actor i as hit.
func (t *Traffic) MarkHit(i int) {
	t.actors[i].Hit = true
}

// LaneZ returns the row an actor rides on.
func (t *Traffic) LaneZ(a Actor) float64 {
	return t.cfg.Lanes[a.Lane].Z
}

// Lanes returns the lane table.
func (t *Traffic) Lanes() []config.LaneConfig {
	out := make([]config.LaneConfig, len(t.cfg.Lanes))
	copy(out, t.cfg.Lanes)
	return out
}

// Actors returns a copy of the actors in iteration order.
func (t *Traffic) Actors() []Actor {
	out := make([]Actor, len(t.actors))
	copy(out, t.actors)
	return out
}
