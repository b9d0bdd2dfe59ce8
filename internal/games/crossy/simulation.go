package crossy

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/bird-arcade/internal/config"
	"github.com/vovakirdan/bird-arcade/internal/core"
)

// GameID identifies the lane game in the registry and in score storage.
const GameID = "crossy"

// Simulation is the lane-crossing game core. The player token steps across
// a grid of traffic lanes toward the finish row.
type Simulation struct {
	cfg        config.CrossyConfig
	difficulty *config.DifficultyManager
	phase      *core.PhaseMachine[Phase]
	observer   core.Observer
	traffic    *Traffic

	player mgl64.Vec2 // Grid position as (x, z)
	score  int        // Best forward progress this level
	level  int

	locked           bool // Input refused after a hit or the finish
	levelCompleted   bool // Finish already reported this level
	levelUpRemaining float64
	maxStep          float64
}

// NewSimulation creates a lane simulation in the menu phase at level 1.
func NewSimulation(cfg config.CrossyConfig) *Simulation {
	s := &Simulation{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		phase:      core.NewPhaseMachine(PhaseMenu, phaseEdges),
		observer:   core.NopObserver{},
		traffic:    NewTraffic(cfg.Traffic),
		level:      1,
		maxStep:    core.MaxFrameDelta,
	}
	s.phase.OnChange(s.phaseChanged)
	s.resetRun()
	return s
}

// SetObserver registers the collaborator notified of phase, score,
// level-complete and game-over events. nil restores the no-op observer.
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

// Start begins a run from the menu.
func (s *Simulation) Start() {
	if s.phase.Is(PhaseMenu) {
		s.resetRun()
		s.phase.Transition(PhasePlaying)
	}
}

// Restart begins a new run at level 1 from any phase.
func (s *Simulation) Restart() {
	s.level = 1
	s.resetRun()
	s.phase.Reset(PhasePlaying)
}

// BackToMenu abandons the run.
func (s *Simulation) BackToMenu() {
	s.level = 1
	s.resetRun()
	s.phase.Reset(PhaseMenu)
}

// FinishLevelUp advances to the next level. Ignored outside levelup.
func (s *Simulation) FinishLevelUp() {
	if !s.phase.Is(PhaseLevelUp) {
		return
	}
	s.level++
	s.resetRun()
	s.phase.Transition(PhasePlaying)
}

// resetRun clears per-level state: traffic layout, player, score and flags.
func (s *Simulation) resetRun() {
	s.traffic.Reset()
	s.player = mgl64.Vec2{s.cfg.Grid.StartX, s.cfg.Grid.StartZ}
	s.locked = false
	s.levelCompleted = false
	s.levelUpRemaining = 0
	s.setScore(0)
}

// OnDirectionInput moves the player one grid step. Ignored unless playing
// and unlocked; unknown directions are ignored.
func (s *Simulation) OnDirectionInput(d Direction) {
	if !s.phase.Is(PhasePlaying) || s.locked {
		return
	}
	dx, dz, ok := d.delta()
	if !ok {
		return
	}

	grid := s.cfg.Grid
	x := core.ClampF(s.player.X()+dx*grid.Step, grid.MinX, grid.MaxX)
	z := core.ClampF(s.player.Y()+dz*grid.Step, grid.MinZ, grid.StartZ)
	s.player = mgl64.Vec2{x, z}

	progress := int(math.Max(0, math.Floor((grid.StartZ-z)/grid.Step)))
	if progress > s.score {
		s.setScore(progress)
	}

	if z <= grid.MinZ && !s.levelCompleted {
		s.levelCompleted = true
		s.locked = true
		s.levelUpRemaining = s.cfg.Levels.LevelUpSeconds
		s.phase.Transition(PhaseLevelUp)
		s.observer.LevelCompleted(GameID, s.level)
	}
}

// Tick advances traffic by dt seconds and resolves collisions. While in
// levelup it counts down the pause and then starts the next level.
func (s *Simulation) Tick(dt float64) {
	dt = core.ClampDeltaTo(dt, s.maxStep)
	if dt == 0 {
		return
	}

	switch s.phase.Current() {
	case PhasePlaying:
		s.tickPlaying(dt)
	case PhaseLevelUp:
		s.levelUpRemaining -= dt
		if s.levelUpRemaining <= 0 {
			s.FinishLevelUp()
		}
	}
}

func (s *Simulation) tickPlaying(dt float64) {
	progress := config.Progress{Score: s.score, Level: s.level}
	s.traffic.Advance(dt, s.SpeedMultiplier()*s.difficulty.SpeedScale(progress))

	if s.locked {
		return
	}
	if i, hit := s.traffic.FirstHit(s.player); hit {
		s.locked = true
		s.traffic.MarkHit(i)
		s.phase.Transition(PhaseGameOver)
		s.observer.GameOver(core.GameOverEvent{
			GameID: GameID,
			Score:  s.score,
			Level:  s.level,
		})
	}
}

// SpeedMultiplier returns the traffic speed factor for the current level.
func (s *Simulation) SpeedMultiplier() float64 {
	lv := s.cfg.Levels
	return math.Min(lv.MaxMultiplier, lv.BaseMultiplier+float64(s.level-1)*lv.MultiplierStep)
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

// Phase returns the current phase.
func (s *Simulation) Phase() Phase { return s.phase.Current() }

// Player returns the player position as (x, z).
func (s *Simulation) Player() mgl64.Vec2 { return s.player }

// Actors returns a copy of the traffic actors.
func (s *Simulation) Actors() []Actor { return s.traffic.Actors() }

// Score returns the best forward progress this level.
func (s *Simulation) Score() int { return s.score }

// Level returns the current level, starting at 1.
func (s *Simulation) Level() int { return s.level }

// Locked reports whether direction input is currently refused.
func (s *Simulation) Locked() bool { return s.locked }

// LevelUpRemaining returns the seconds left before the next level starts.
func (s *Simulation) LevelUpRemaining() float64 { return s.levelUpRemaining }

// Config returns the configuration the simulation runs with.
func (s *Simulation) Config() config.CrossyConfig { return s.cfg }
