package crossy

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/bird-arcade/internal/config"
)

// Snapshot is a read-only copy of the lane game for rendering.
type Snapshot struct {
	Phase            Phase
	Player           mgl64.Vec2
	Actors           []Actor
	Lanes            []config.LaneConfig
	Score            int
	Level            int
	Locked           bool
	LevelUpRemaining float64
	Grid             config.CrossyGrid
	WrapX            float64
	HitX             float64
}

// Snapshot returns a copy of the current simulation state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Phase:            s.phase.Current(),
		Player:           s.player,
		Actors:           s.traffic.Actors(),
		Lanes:            s.traffic.Lanes(),
		Score:            s.score,
		Level:            s.level,
		Locked:           s.locked,
		LevelUpRemaining: s.levelUpRemaining,
		Grid:             s.cfg.Grid,
		WrapX:            s.cfg.Traffic.WrapX,
		HitX:             s.cfg.Traffic.HitX,
	}
}
