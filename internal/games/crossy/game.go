// Package crossy implements the lane-crossing game: a player token steps
// across rows of wrapping traffic toward a finish row, level after level.
package crossy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bird-arcade/internal/config"
	"github.com/vovakirdan/bird-arcade/internal/core"
	"github.com/vovakirdan/bird-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	LaneChar     = '·'
	FinishChar   = '▓'
	SidewalkChar = '░'
	EdgeChar     = '│'
	HitChar      = '✖'
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts the lane Simulation to the arcade registry. It reports the
// run total: progress banked from finished levels plus the current level.
type Game struct {
	sim     *Simulation
	bank    *scoreBank
	runtime core.RuntimeConfig
	paused  bool
}

// New creates a new lane game instance.
func New() *Game {
	return &Game{bank: &scoreBank{next: core.NopObserver{}}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Crossing"
}

// SetObserver forwards simulation events, with run totals, to o.
func (g *Game) SetObserver(o core.Observer) {
	if o == nil {
		o = core.NopObserver{}
	}
	g.bank.next = o
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Reset builds a fresh simulation from the loaded config, waiting in the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg, err := config.LoadCrossy(configPath)
	if err != nil {
		cfg = config.DefaultCrossyConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCrossyPreset(&cfg, difficultyPreset)
	}

	g.attach(NewSimulation(cfg))
}

// attach makes sim the running simulation with an empty score bank.
func (g *Game) attach(sim *Simulation) {
	g.sim = sim
	g.bank.sim = sim
	g.bank.total = 0
	sim.SetObserver(g.bank)
}

// Step applies input in arrival order then advances the simulation by dt.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	phase := g.sim.Phase()

	if in.Has(core.ActionPause) && phase == PhasePlaying {
		g.paused = !g.paused
	}
	if in.Has(core.ActionBack) && phase != PhaseMenu {
		g.paused = false
		g.bank.total = 0
		g.sim.BackToMenu()
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	start := in.Has(core.ActionConfirm) || in.Has(core.ActionJump)
	switch phase {
	case PhaseMenu:
		if start {
			g.sim.Start()
		}
	case PhaseGameOver:
		if start || in.Has(core.ActionRestart) {
			g.bank.total = 0
			g.sim.Restart()
		}
	case PhasePlaying:
		for _, a := range in.Order {
			if d, ok := directionFor(a); ok {
				g.sim.OnDirectionInput(d)
			}
		}
	}

	g.sim.Tick(dt)
	return core.StepResult{State: g.State()}
}

func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.bank.runScore(),
		Level:    g.sim.Level(),
		Phase:    string(g.sim.Phase()),
		GameOver: g.sim.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Render draws the lanes, traffic, player and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.sim.Snapshot()
	v := newViewport(dst, snap)

	left, right := v.col(snap.Grid.MinX-0.5), v.col(snap.Grid.MaxX+0.5)
	for z := snap.Grid.MinZ; z <= snap.Grid.StartZ; z += snap.Grid.Step {
		row := v.row(z)
		ch, color := SidewalkChar, core.ColorGray
		switch {
		case z == snap.Grid.MinZ:
			ch, color = FinishChar, core.ColorBrightGreen
		case v.isLane(z):
			ch, color = LaneChar, core.ColorGray
		}
		dst.DrawHLine(0, row, dst.Width(), ch, color)
		dst.SetColor(left, row, EdgeChar, core.ColorWhite)
		dst.SetColor(right, row, EdgeChar, core.ColorWhite)
	}

	for _, a := range snap.Actors {
		v.drawActor(dst, a)
	}
	dst.SetColor(v.col(snap.Player.X()), v.row(snap.Player.Y()), PlayerChar, core.ColorBrightYellow)

	dst.DrawText(2, 0, fmt.Sprintf(" Level: %d  Score: %d ", snap.Level, g.State().Score))

	switch {
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case snap.Phase == PhaseMenu:
		dst.DrawMessageBox("LANE CROSSING", "Press ENTER to start  |  Arrows/WASD to move")
	case snap.Phase == PhaseLevelUp:
		dst.DrawMessageBox(fmt.Sprintf("LEVEL %d CLEAR", snap.Level),
			fmt.Sprintf("Next level in %.1fs", math.Max(0, snap.LevelUpRemaining)))
	case snap.Phase == PhaseGameOver:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  ENTER to retry, B for menu", g.State().Score))
	}
}

// viewport maps lane coordinates to screen cells: x spans the traffic
// wrap range, z runs from the finish row at the top to the start row.
type viewport struct {
	width  int
	top    int
	bottom int
	minZ   float64
	maxZ   float64
	wrapX  float64
	hitX   float64
	lanes  []config.LaneConfig
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	return viewport{
		width:  dst.Width(),
		top:    2,
		bottom: core.Max(2, dst.Height()-2),
		minZ:   snap.Grid.MinZ,
		maxZ:   snap.Grid.StartZ,
		wrapX:  snap.WrapX,
		hitX:   snap.HitX,
		lanes:  snap.Lanes,
	}
}

func (v viewport) isLane(z float64) bool {
	for _, l := range v.lanes {
		if l.Z == z {
			return true
		}
	}
	return false
}

func (v viewport) col(x float64) int {
	t := (x + v.wrapX) / (2 * v.wrapX)
	return int(math.Round(t * float64(v.width-1)))
}

func (v viewport) row(z float64) int {
	t := (z - v.minZ) / (v.maxZ - v.minZ)
	return v.top + int(math.Round(t*float64(v.bottom-v.top)))
}

// drawActor draws a vehicle as wide as its collision reach, nose pointing
// the way its lane flows.
func (v viewport) drawActor(dst *core.Screen, a Actor) {
	lane := v.lanes[a.Lane]
	row := v.row(lane.Z)
	left, right := v.col(a.X-v.hitX), v.col(a.X+v.hitX)

	body, nose, color := '■', '►', core.ColorBrightRed
	if lane.Direction < 0 {
		nose, color = '◄', core.ColorBrightBlue
	}
	if a.Hit {
		body, nose, color = HitChar, HitChar, core.ColorRed
	}

	for x := left; x <= right; x++ {
		dst.SetColor(x, row, body, color)
	}
	if lane.Direction < 0 {
		dst.SetColor(left, row, nose, color)
	} else {
		dst.SetColor(right, row, nose, color)
	}
}

// scoreBank adds finished levels into a run total and forwards events
// to the outer observer with run totals in place of per-level scores.
type scoreBank struct {
	sim   *Simulation
	next  core.Observer
	total int
}

// runScore is the run total. A finished level's progress is already in
// total until the next level resets it.
func (b *scoreBank) runScore() int {
	if b.sim.levelCompleted {
		return b.total
	}
	return b.total + b.sim.Score()
}

func (b *scoreBank) PhaseChanged(gameID, from, to string) {
	b.next.PhaseChanged(gameID, from, to)
}

func (b *scoreBank) ScoreChanged(gameID string, score int) {
	b.next.ScoreChanged(gameID, b.total+score)
}

func (b *scoreBank) LevelCompleted(gameID string, level int) {
	b.total += b.sim.Score()
	b.next.LevelCompleted(gameID, level)
}

func (b *scoreBank) GameOver(ev core.GameOverEvent) {
	ev.Score += b.total
	b.next.GameOver(ev)
}

func init() {
	registry.Register(registry.GameInfo{
		ID:      GameID,
		Title:   "Lane Crossing",
		Summary: "Step through eight lanes of traffic to the finish row",
	}, func() registry.Game {
		return New()
	})
}
