package flappy

// Snapshot is a read-only copy of everything the presentation layer needs
// to draw one flight frame.
type Snapshot struct {
	Phase         Phase
	Body          Body
	Obstacles     []Obstacle
	Pickups       []Pickup
	Score         int
	Direction     FlightDirection
	Camera        CameraPerspective
	Character     CharacterID
	SafetyLeft    float64
	StartProgress float64
	HalfGap       float64
	PipeWidth     float64
	FloorY        float64
	WorldTop      float64
}

// Snapshot returns a copy of the current simulation state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Phase:         s.phase.Current(),
		Body:          s.body,
		Obstacles:     s.pipes.Pipes(),
		Pickups:       s.pickups.Pickups(),
		Score:         s.score,
		Direction:     s.direction,
		Camera:        s.camera,
		Character:     s.character,
		SafetyLeft:    s.safetyRemaining,
		StartProgress: s.startProgress,
		HalfGap:       s.pipes.HalfGap(),
		PipeWidth:     s.cfg.Pipes.Width,
		FloorY:        s.cfg.World.FloorY,
		WorldTop:      s.cfg.World.WorldTop,
	}
}
