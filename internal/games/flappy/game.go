// Package flappy implements the flight game: a body falls under gravity,
// flaps upward on demand and threads the gaps of scrolling pipe pairs.
// Pickups flip the flight direction or the camera perspective mid-round.
package flappy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/bird-arcade/internal/config"
	"github.com/vovakirdan/bird-arcade/internal/core"
	"github.com/vovakirdan/bird-arcade/internal/registry"
)

// Horizontal world range shown on screen. Pipes spawn just inside it and
// despawn just outside the opposite edge.
const (
	viewMinX = -10.0
	viewMaxX = 10.0
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '═'
	CeilingChar   = '─'
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// selectedCharacter is the character new games start with.
var selectedCharacter = CharacterBankr

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetCharacter sets the character new games start with.
func SetCharacter(name string) {
	selectedCharacter = ParseCharacter(name)
}

// Game adapts the flight Simulation to the arcade registry.
type Game struct {
	sim       *Simulation
	observer  core.Observer
	runtime   core.RuntimeConfig
	character CharacterID
	paused    bool
}

// New creates a new flight game instance.
func New() *Game {
	return &Game{character: selectedCharacter}
}

// SetCharacter picks the character flown. It takes effect now if the
// simulation accepts it, otherwise from the next reset.
func (g *Game) SetCharacter(c CharacterID) {
	g.character = c
	if g.sim != nil {
		g.sim.SetCharacter(c)
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Flight"
}

// SetObserver forwards simulation events to o.
func (g *Game) SetObserver(o core.Observer) {
	g.observer = o
	if g.sim != nil {
		g.sim.SetObserver(o)
	}
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Reset builds a fresh simulation from the loaded config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFlappyPreset(&cfg, difficultyPreset)
	}

	if g.sim != nil {
		g.character = g.sim.Character()
	}

	g.sim = NewSimulation(cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.sim.SetCharacter(g.character)
	g.sim.SetObserver(g.observer)
}

// Step applies input then advances the simulation by dt.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) && g.sim.Phase() == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionCharacter) {
		g.sim.SetCharacter(g.sim.Character().Next())
	}

	if in.Has(core.ActionJump) || in.Has(core.ActionUp) || in.Has(core.ActionConfirm) ||
		(in.Has(core.ActionRestart) && g.sim.Phase() == PhaseGameOver) {
		g.sim.OnAction()
	}

	g.sim.Tick(dt)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		Level:    1,
		Phase:    string(g.sim.Phase()),
		GameOver: g.sim.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.sim.Snapshot()
	v := newViewport(dst, snap)

	dst.DrawHLine(0, v.top-1, dst.Width(), CeilingChar, core.ColorGray)
	dst.DrawHLine(0, v.bottom+1, dst.Width(), GroundChar, core.ColorGreen)

	for _, o := range snap.Obstacles {
		v.drawPipe(dst, o)
	}
	for _, p := range snap.Pickups {
		dst.SetColor(v.col(p.Pos.X()), v.row(p.Pos.Y()), p.Kind.Glyph(), pickupColor(p.Kind))
	}

	bodyColor := core.ColorBrightYellow
	if snap.SafetyLeft > 0 {
		bodyColor = core.ColorBrightCyan
	}
	dst.SetColor(v.col(snap.Body.Pos.X()), v.row(snap.Body.Pos.Y()), snap.Character.Glyph(), bodyColor)

	g.drawHUD(dst, snap)

	switch {
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case snap.Phase == PhaseReady:
		dst.DrawMessageBox("FLAPPY FLIGHT", fmt.Sprintf("Press SPACE to fly  |  C: %s", snap.Character))
	case snap.Phase == PhaseGameOver:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press SPACE to retry", snap.Score))
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))

	x := 16
	if snap.Direction == DirectionReverse {
		dst.DrawTextColor(x, 0, "REVERSE", core.ColorBrightMagenta)
		x += 9
	}
	if snap.Camera == CameraFirstPerson {
		dst.DrawTextColor(x, 0, "POV", core.ColorBrightCyan)
	}
}

func pickupColor(k ModifierKind) core.Color {
	switch k {
	case ModifierCamera:
		return core.ColorBrightCyan
	case ModifierDirection:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightWhite
	}
}

// viewport maps world coordinates to screen cells. Row 0 is the HUD,
// the ceiling and ground lines frame the play area.
type viewport struct {
	width    int
	top      int
	bottom   int
	floorY   float64
	worldTop float64
	snap     Snapshot
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	return viewport{
		width:    dst.Width(),
		top:      2,
		bottom:   core.Max(2, dst.Height()-2),
		floorY:   snap.FloorY,
		worldTop: snap.WorldTop,
		snap:     snap,
	}
}

func (v viewport) col(x float64) int {
	t := (x - viewMinX) / (viewMaxX - viewMinX)
	return int(math.Round(t * float64(v.width-1)))
}

func (v viewport) row(y float64) int {
	t := (v.worldTop - y) / (v.worldTop - v.floorY)
	return v.top + int(math.Round(t*float64(v.bottom-v.top)))
}

// worldY returns the world height at the center of a screen row.
func (v viewport) worldY(row int) float64 {
	t := float64(row-v.top) / float64(core.Max(1, v.bottom-v.top))
	return v.worldTop - t*(v.worldTop-v.floorY)
}

func (v viewport) drawPipe(dst *core.Screen, o Obstacle) {
	halfW := v.snap.PipeWidth / 2
	left, right := v.col(o.X-halfW), v.col(o.X+halfW)
	gap := o.Gap(v.snap.HalfGap)

	for y := v.top; y <= v.bottom; y++ {
		wy := v.worldY(y)
		if wy > gap.Lo && wy < gap.Hi {
			continue
		}
		ch := PipeChar
		switch {
		case wy >= gap.Hi && v.worldY(y+1) < gap.Hi:
			ch = PipeCapTop
		case wy <= gap.Lo && v.worldY(y-1) > gap.Lo:
			ch = PipeCapBottom
		}
		for x := left; x <= right; x++ {
			dst.SetColor(x, y, ch, core.ColorGreen)
		}
	}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:      GameID,
		Title:   "Flappy Flight",
		Summary: "Flap through scrolling pipes; pickups flip direction and camera",
	}, func() registry.Game {
		return New()
	})
}
