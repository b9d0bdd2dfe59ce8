package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/bird-arcade/internal/config"
	"github.com/vovakirdan/bird-arcade/internal/core"
)

// Obstacle is a pipe pair with a vertical gap for the body to pass through.
type Obstacle struct {
	ID     int
	X      float64 // Center x
	GapY   float64 // Gap center
	Passed bool    // Set once the body has cleared it; never cleared
}

// Gap returns the passable vertical span for the given half-height.
func (o Obstacle) Gap(halfGap float64) core.Span {
	return core.SpanAround(o.GapY, halfGap)
}

// PipeResult summarizes one Advance call.
type PipeResult struct {
	Passed int  // Obstacles cleared this tick
	Hit    bool // The body overlapped an obstacle outside its gap
}

// PipeManager handles spawning, movement, scoring and removal of pipes.
type PipeManager struct {
	pipes      []Obstacle
	rng        *rand.Rand
	cfg        config.FlappyPipes
	radius     float64
	nextID     int
	spawnTimer float64
}

// NewPipeManager creates a new pipe manager drawing gaps from rng.
func NewPipeManager(cfg config.FlappyConfig, rng *rand.Rand) *PipeManager {
	pm := &PipeManager{
		pipes:  make([]Obstacle, 0, 8),
		rng:    rng,
		cfg:    cfg.Pipes,
		radius: cfg.Physics.BodyRadius,
	}
	pm.Reset()
	return pm
}

// Reset clears all pipes, the id sequence and the spawn timer.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
	pm.nextID = 0
	pm.spawnTimer = 0
}

// Speed returns the scroll speed for a score: each full score tier adds a
// fixed step, then the multiplier is applied.
func (pm *PipeManager) Speed(score int) float64 {
	tiers := math.Floor(float64(score) / float64(pm.cfg.ScoreTier))
	return (pm.cfg.BaseSpeed + tiers*pm.cfg.SpeedStep) * pm.cfg.SpeedMultiplier
}

// HalfGap returns the fixed gap half-height.
func (pm *PipeManager) HalfGap() float64 {
	return pm.cfg.Gap / 2
}

// SpawnTimer returns the seconds accumulated toward the next spawn.
func (pm *PipeManager) SpawnTimer() float64 {
	return pm.spawnTimer
}

// Tick accumulates dt and spawns a pipe at spawnX when the interval is reached.
func (pm *PipeManager) Tick(dt, interval, spawnX float64) (Obstacle, bool) {
	pm.spawnTimer += dt
	if pm.spawnTimer < interval {
		return Obstacle{}, false
	}
	pm.spawnTimer = 0
	return pm.spawn(spawnX), true
}

// spawn appends a pipe at x with a gap center drawn uniformly from the band.
func (pm *PipeManager) spawn(x float64) Obstacle {
	o := Obstacle{
		ID:   pm.nextID,
		X:    x,
		GapY: pm.cfg.GapCenterMin + pm.rng.Float64()*pm.cfg.GapCenterRange,
	}
	pm.nextID++
	pm.pipes = append(pm.pipes, o)
	return o
}

// Advance scrolls every pipe by dx, tests it against the body at (bodyX, bodyY),
// scores passed pipes and drops pipes past despawnX. sign is the scroll
// direction (+1 normal, -1 reverse). Every pipe is processed even after a hit.
func (pm *PipeManager) Advance(dx, bodyX, bodyY, despawnX, sign float64) PipeResult {
	var res PipeResult
	halfW := pm.cfg.Width / 2
	body := core.SpanAround(bodyY, pm.radius)

	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.X -= dx

		overlapX := core.Near(p.X, bodyX, halfW+pm.radius)
		if overlapX && !p.Gap(pm.HalfGap()).Inside(body) {
			res.Hit = true
		}

		if !p.Passed && pm.cleared(p.X, bodyX, halfW, sign) {
			p.Passed = true
			res.Passed++
		}

		if beforeDespawn(p.X, despawnX, sign) {
			kept = append(kept, p)
		}
	}
	pm.pipes = kept
	return res
}

// cleared reports whether the trailing edge of a pipe at x is behind the body.
func (pm *PipeManager) cleared(x, bodyX, halfW, sign float64) bool {
	if sign > 0 {
		return x+halfW < bodyX
	}
	return x-halfW > bodyX
}

// Pipes returns a copy of the current pipes in spawn order.
func (pm *PipeManager) Pipes() []Obstacle {
	out := make([]Obstacle, len(pm.pipes))
	copy(out, pm.pipes)
	return out
}

// Add places a pipe directly. Used to set up collision scenarios.
func (pm *PipeManager) Add(x, gapY float64) Obstacle {
	o := Obstacle{ID: pm.nextID, X: x, GapY: gapY}
	pm.nextID++
	pm.pipes = append(pm.pipes, o)
	return o
}
