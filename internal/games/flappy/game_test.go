package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bird-arcade/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical rounds
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%18 == 0 {
			inputSequence[i].Set(core.ActionJump)
		}
	}

	run := func() (core.GameState, Snapshot) {
		g := New()
		g.Reset(testRuntime(12345))
		var state core.GameState
		for _, in := range inputSequence {
			state = g.Step(in, 1.0/60).State
		}
		return state, g.Simulation().Snapshot()
	}

	state1, snap1 := run()
	state2, snap2 := run()

	if state1 != state2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", state1, state2)
	}
	if snap1.Body != snap2.Body {
		t.Errorf("Determinism failed: bodies differ. Run1=%+v, Run2=%+v", snap1.Body, snap2.Body)
	}
	if len(snap1.Obstacles) != len(snap2.Obstacles) {
		t.Errorf("Determinism failed: obstacle counts differ. Run1=%d, Run2=%d", len(snap1.Obstacles), len(snap2.Obstacles))
	}
}

func TestGameStepMapsActions(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Set(core.ActionCharacter)
	g.Step(in, 0)
	if g.Simulation().Character() != CharacterDeployer {
		t.Errorf("Character() = %v, expected deployer after cycling", g.Simulation().Character())
	}

	in = core.NewInputFrame()
	in.Set(core.ActionJump)
	state := g.Step(in, 1.0/60)
	if state.State.Phase != string(PhaseStarting) {
		t.Errorf("Phase = %v, expected starting", state.State.Phase)
	}

	// Pause is ignored until the round is playing
	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	if g.Step(in, 1.0/60).State.Paused {
		t.Error("pause should be ignored while starting")
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump, 1.0/60)
	for i := 0; i < 100 && g.Simulation().Phase() != PhasePlaying; i++ {
		g.Step(core.NewInputFrame(), 1.0/60)
	}
	if g.Simulation().Phase() != PhasePlaying {
		t.Fatalf("Phase() = %v, expected playing", g.Simulation().Phase())
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, 1.0/60)
	before := g.Simulation().Body()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(), 1.0/60)
	}
	if !g.State().Paused {
		t.Fatal("State().Paused = false, expected true")
	}
	if g.Simulation().Body() != before {
		t.Error("body moved while paused")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump, 1.0/60)

	// Falling with no input ends the round on the floor
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame(), 1.0/60)
	}
	if !g.State().GameOver {
		t.Fatal("expected game over after free fall")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart, 1.0/60)

	if g.State().GameOver || g.State().Phase != string(PhaseReady) {
		t.Errorf("State() = %+v, expected ready after restart", g.State())
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "FLAPPY FLIGHT") {
		t.Error("ready overlay not rendered")
	}

	g.Simulation().SetMaxStep(10)
	g.Simulation().OnAction()
	g.Simulation().Tick(1.25)
	g.Simulation().pipes.Add(0, 0)
	g.Simulation().applyModifier(ModifierCamera)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD score not rendered")
	}
	if !strings.Contains(out, "POV") {
		t.Error("first-person indicator not rendered")
	}
	if !strings.ContainsRune(out, PipeChar) {
		t.Error("pipe not rendered")
	}
	if !strings.ContainsRune(out, CharacterBankr.Glyph()) {
		t.Error("body not rendered")
	}
}

func TestGameTitle(t *testing.T) {
	g := New()
	if g.ID() != "flappy" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "flappy")
	}
	if g.Title() == "" {
		t.Error("Title() is empty")
	}
}
