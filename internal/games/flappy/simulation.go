package flappy

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/bird-arcade/internal/config"
	"github.com/vovakirdan/bird-arcade/internal/core"
)

// GameID identifies the flight game in the registry and in score storage.
const GameID = "flappy"

// Body is the controllable flyer.
type Body struct {
	Pos  mgl64.Vec3 // Scene position; z only moves during the intro glide
	VelY float64    // Vertical velocity, units per second
}

// Simulation is the flight game core. It is single-threaded: the driver
// calls OnAction for input and Tick once per frame.
type Simulation struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	phase      *core.PhaseMachine[Phase]
	observer   core.Observer

	body      Body
	pipes     *PipeManager
	pickups   *PickupManager
	score     int
	direction FlightDirection
	camera    CameraPerspective
	character CharacterID

	startProgress   float64 // 0..1 through the intro glide
	safetyRemaining float64 // Seconds left in the mode-switch safety window
	elapsed         float64 // Seconds of play this round
	maxStep         float64 // Per-tick dt cap
}

// NewSimulation creates a flight simulation in the ready phase.
// rng drives gap offsets and pickup placement; pass a seeded source for
// reproducible rounds.
func NewSimulation(cfg config.FlappyConfig, rng *rand.Rand) *Simulation {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &Simulation{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rng,
		phase:      core.NewPhaseMachine(PhaseReady, phaseEdges),
		observer:   core.NopObserver{},
		pipes:      NewPipeManager(cfg, rng),
		pickups:    NewPickupManager(cfg, rng),
		character:  CharacterBankr,
		maxStep:    core.MaxFrameDelta,
	}
	s.phase.OnChange(s.phaseChanged)
	s.resetState()
	return s
}

// SetObserver registers the collaborator notified of phase, score and
// game-over events. nil restores the no-op observer.
func (s *Simulation) SetObserver(o core.Observer) {
	if o == nil {
		o = core.NopObserver{}
	}
	s.observer = o
}

// SetMaxStep changes the per-tick dt cap. Values <= 0 restore the default.
func (s *Simulation) SetMaxStep(max float64) {
	if max <= 0 {
		max = core.MaxFrameDelta
	}
	s.maxStep = max
}

// SetCharacter selects the character for the next round. Refused while a
// round is starting or playing.
func (s *Simulation) SetCharacter(c CharacterID) bool {
	if s.phase.Is(PhaseStarting, PhasePlaying) {
		return false
	}
	s.character = c
	return true
}

// ResetRound puts the body back at the intro position and clears every
// list, timer and mode in one step.
func (s *Simulation) ResetRound() {
	s.pickups.Reset()
	s.resetState()
}

// resetState restores everything but the pickups, which a new simulation
// already holds fresh.
func (s *Simulation) resetState() {
	s.body = Body{Pos: s.introPos()}
	s.pipes.Reset()
	s.direction = DirectionNormal
	s.camera = CameraDefault
	s.startProgress = 0
	s.safetyRemaining = 0
	s.elapsed = 0
	s.setScore(0)
	s.phase.Reset(PhaseReady)
}

// OnAction handles the single primary input.
func (s *Simulation) OnAction() {
	switch s.phase.Current() {
	case PhaseReady:
		s.startProgress = 0
		s.phase.Transition(PhaseStarting)
	case PhaseStarting:
		// Swallowed during the automated glide
	case PhasePlaying:
		s.body.VelY = s.cfg.Physics.FlapVelocity
	case PhaseGameOver:
		s.ResetRound()
	}
}

// Tick advances the simulation by dt seconds. dt is clamped, so NaN and
// negative values are no-ops.
func (s *Simulation) Tick(dt float64) {
	dt = core.ClampDeltaTo(dt, s.maxStep)
	if dt == 0 {
		return
	}

	switch s.phase.Current() {
	case PhaseStarting:
		s.tickStarting(dt)
	case PhasePlaying:
		s.tickPlaying(dt)
	}
}

func (s *Simulation) tickStarting(dt float64) {
	s.startProgress = math.Min(s.startProgress+dt/s.cfg.Physics.StartingDuration, 1)

	intro := s.introPos()
	target := mgl64.Vec3{s.targetX(), 0, 0}
	s.body.Pos = intro.Add(target.Sub(intro).Mul(s.startProgress))

	if s.startProgress >= 1 {
		s.body.Pos = target
		s.body.VelY = 0
		s.phase.Transition(PhasePlaying)
	}
}

func (s *Simulation) tickPlaying(dt float64) {
	s.safetyRemaining = math.Max(0, s.safetyRemaining-dt)
	s.elapsed += dt

	// Euler step, then ease x toward the direction target
	phys := s.cfg.Physics
	s.body.VelY += phys.Gravity * dt
	s.body.Pos[1] += s.body.VelY * dt
	s.body.Pos[0] += (s.targetX() - s.body.Pos.X()) * math.Min(1, dt*phys.EaseRate)
	s.body.Pos[2] = 0

	y := s.body.Pos.Y()
	if y-phys.BodyRadius <= s.cfg.World.FloorY || y+phys.BodyRadius >= s.cfg.World.WorldTop {
		s.crash()
		return
	}

	sign := s.direction.Sign()
	progress := s.progress()

	interval := s.difficulty.SpawnInterval(s.cfg.Pipes.SpawnSeconds, progress)
	if o, ok := s.pipes.Tick(dt, interval, s.cfg.Pipes.StartX*sign); ok {
		s.pickups.OnObstacleSpawned(o)
	}

	dx := s.pipes.Speed(s.score) * s.difficulty.SpeedScale(progress) * dt * sign
	despawnX := s.cfg.Pipes.DespawnX * sign

	res := s.pipes.Advance(dx, s.body.Pos.X(), y, despawnX, sign)
	crashed := res.Hit && s.safetyRemaining <= 0

	for _, p := range s.pickups.Advance(dx, s.body.Pos, despawnX, sign, true) {
		s.applyModifier(p.Kind)
	}

	if res.Passed > 0 {
		s.setScore(s.score + res.Passed)
	}
	if crashed {
		s.crash()
	}
}

// applyModifier applies a pickup's effect.
func (s *Simulation) applyModifier(kind ModifierKind) {
	switch kind {
	case ModifierCamera:
		s.camera = s.camera.Toggle()
	case ModifierDirection:
		s.direction = s.direction.Toggle()
		s.safetyRemaining = s.cfg.Pickups.SafetySeconds
	case ModifierNormal:
		if s.direction != DirectionNormal {
			s.direction = DirectionNormal
			s.safetyRemaining = s.cfg.Pickups.SafetySeconds
		}
		s.camera = CameraDefault
	}
}

func (s *Simulation) crash() {
	if s.phase.Transition(PhaseGameOver) {
		s.observer.GameOver(core.GameOverEvent{
			GameID:    GameID,
			Score:     s.score,
			Level:     1,
			Character: string(s.character),
		})
	}
}

func (s *Simulation) setScore(score int) {
	if score == s.score {
		return
	}
	s.score = score
	s.observer.ScoreChanged(GameID, score)
}

func (s *Simulation) phaseChanged(from, to Phase) {
	s.observer.PhaseChanged(GameID, string(from), string(to))
}

func (s *Simulation) progress() config.Progress {
	return config.Progress{Score: s.score, Level: 1, Elapsed: s.elapsed}
}

// targetX is the in-track x for the current direction.
func (s *Simulation) targetX() float64 {
	return s.cfg.World.BodyX * s.direction.Sign()
}

func (s *Simulation) introPos() mgl64.Vec3 {
	in := s.cfg.World.Intro
	return mgl64.Vec3{in.X, in.Y, in.Z}
}

// Phase returns the current phase.
func (s *Simulation) Phase() Phase { return s.phase.Current() }

// Body returns the body state.
func (s *Simulation) Body() Body { return s.body }

// Obstacles returns a copy of the active obstacles.
func (s *Simulation) Obstacles() []Obstacle { return s.pipes.Pipes() }

// Pickups returns a copy of the active pickups.
func (s *Simulation) Pickups() []Pickup { return s.pickups.Pickups() }

// Score returns the number of obstacles passed this round.
func (s *Simulation) Score() int { return s.score }

// FlightDirection returns the current flight direction mode.
func (s *Simulation) FlightDirection() FlightDirection { return s.direction }

// CameraPerspective returns the current camera mode.
func (s *Simulation) CameraPerspective() CameraPerspective { return s.camera }

// Character returns the selected character.
func (s *Simulation) Character() CharacterID { return s.character }

// SafetyRemaining returns the seconds left in the mode-switch safety window.
func (s *Simulation) SafetyRemaining() float64 { return s.safetyRemaining }

// Config returns the configuration the simulation runs with.
func (s *Simulation) Config() config.FlappyConfig { return s.cfg }
