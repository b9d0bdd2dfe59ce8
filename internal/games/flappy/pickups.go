package flappy

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/bird-arcade/internal/config"
	"github.com/vovakirdan/bird-arcade/internal/core"
)

// ModifierKind is the effect a pickup applies when touched.
type ModifierKind int

const (
	ModifierCamera    ModifierKind = iota // Toggle camera perspective
	ModifierDirection                     // Toggle flight direction and arm the safety window
	ModifierNormal                        // Reset both modes to their defaults
	ModifierCount                         // Sentinel for counting kinds
)

// Glyph returns the display character for a modifier kind.
func (k ModifierKind) Glyph() rune {
	switch k {
	case ModifierCamera:
		return 'P'
	case ModifierDirection:
		return 'R'
	case ModifierNormal:
		return 'N'
	default:
		return '?'
	}
}

// String returns the name of the modifier kind.
func (k ModifierKind) String() string {
	switch k {
	case ModifierCamera:
		return "pov"
	case ModifierDirection:
		return "reverse"
	case ModifierNormal:
		return "normal"
	default:
		return "?"
	}
}

// Pickup is a modifier collectible scrolling with the obstacles.
type Pickup struct {
	ID   int
	Pos  mgl64.Vec2 // Scene x, y
	Kind ModifierKind
}

// PickupManager spawns pickups every few obstacles and scrolls them.
type PickupManager struct {
	cfg       config.FlappyPickups
	world     config.FlappyWorld
	rng       *rand.Rand
	pickups   []Pickup
	nextID    int
	countdown int
	lastKind  ModifierKind
	hasLast   bool
}

// NewPickupManager creates an empty pickup manager.
func NewPickupManager(cfg config.FlappyConfig, rng *rand.Rand) *PickupManager {
	pm := &PickupManager{
		cfg:   cfg.Pickups,
		world: cfg.World,
		rng:   rng,
	}
	pm.clear()
	pm.countdown = pm.cfg.FirstCountdown
	return pm
}

// Reset clears pickups, ids and the kind history for a new round. The
// countdown is redrawn from the regular range; only a new manager starts
// at the first countdown.
func (pm *PickupManager) Reset() {
	pm.clear()
	pm.countdown = pm.randomCountdown()
}

func (pm *PickupManager) clear() {
	pm.pickups = pm.pickups[:0]
	pm.nextID = 0
	pm.hasLast = false
}

// Countdown returns how many more obstacle spawns until the next pickup.
func (pm *PickupManager) Countdown() int {
	return pm.countdown
}

// OnObstacleSpawned counts one obstacle spawn and, when the countdown runs
// out, places a pickup near that obstacle's gap.
func (pm *PickupManager) OnObstacleSpawned(o Obstacle) (Pickup, bool) {
	pm.countdown--
	if pm.countdown > 0 {
		return Pickup{}, false
	}

	kind := pm.nextKind()
	y := o.GapY + (pm.rng.Float64()-0.5)*2*pm.cfg.JitterY
	y = core.ClampF(y, pm.world.FloorY+pm.cfg.EdgeMargin, pm.world.WorldTop-pm.cfg.EdgeMargin)
	x := o.X + (pm.rng.Float64()-0.5)*2*pm.cfg.JitterX

	p := Pickup{ID: pm.nextID, Pos: mgl64.Vec2{x, y}, Kind: kind}
	pm.nextID++
	pm.pickups = append(pm.pickups, p)
	pm.countdown = pm.randomCountdown()
	return p, true
}

// nextKind draws uniformly among the kinds other than the previous one.
func (pm *PickupManager) nextKind() ModifierKind {
	options := make([]ModifierKind, 0, ModifierCount)
	for k := ModifierKind(0); k < ModifierCount; k++ {
		if pm.hasLast && k == pm.lastKind {
			continue
		}
		options = append(options, k)
	}
	kind := options[pm.rng.Intn(len(options))]
	pm.lastKind = kind
	pm.hasLast = true
	return kind
}

func (pm *PickupManager) randomCountdown() int {
	span := pm.cfg.MaxCountdown - pm.cfg.MinCountdown
	if span <= 0 {
		return pm.cfg.MinCountdown
	}
	return pm.cfg.MinCountdown + pm.rng.Intn(span+1)
}

// Advance scrolls pickups by dx and returns the ones the body touched.
// Touched pickups and pickups past the despawn line are removed.
// When collect is false nothing is touched, pickups only move.
func (pm *PickupManager) Advance(dx float64, body mgl64.Vec3, despawnX, sign float64, collect bool) []Pickup {
	var touched []Pickup
	kept := pm.pickups[:0]
	for _, p := range pm.pickups {
		p.Pos[0] -= dx
		if collect && core.Within(p.Pos.X(), body.X(), pm.cfg.Radius) && core.Within(p.Pos.Y(), body.Y(), pm.cfg.Radius) {
			touched = append(touched, p)
			continue
		}
		if beforeDespawn(p.Pos.X(), despawnX, sign) {
			kept = append(kept, p)
		}
	}
	pm.pickups = kept
	return touched
}

// Pickups returns a copy of the active pickups.
func (pm *PickupManager) Pickups() []Pickup {
	out := make([]Pickup, len(pm.pickups))
	copy(out, pm.pickups)
	return out
}

// beforeDespawn reports whether x has not yet crossed the despawn line for
// the given scroll sign.
func beforeDespawn(x, despawnX, sign float64) bool {
	if sign > 0 {
		return x > despawnX
	}
	return x < despawnX
}
