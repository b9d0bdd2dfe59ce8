package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bird-arcade/internal/audio"
	"github.com/vovakirdan/bird-arcade/internal/core"
	"github.com/vovakirdan/bird-arcade/internal/leaderboard"
	"github.com/vovakirdan/bird-arcade/internal/registry"
	"github.com/vovakirdan/bird-arcade/internal/storage"
)

// Options carries the collaborators a game session reports to.
type Options struct {
	// PlayerName is saved with every qualifying score. Empty asks for a
	// name on the game-over screen.
	PlayerName string

	// SuggestedName prefills the name prompt.
	SuggestedName string

	// Audio follows the game's phase. nil plays nothing.
	Audio *audio.Director

	// Logger receives best-effort failures. nil discards them.
	Logger *log.Logger
}

// newRecorder builds a leaderboard recorder over store, which may be nil.
func newRecorder(store *storage.Store, opts Options) *leaderboard.Recorder {
	var st leaderboard.Store
	if store != nil {
		st = store
	}
	r := leaderboard.NewRecorder(st, opts.Logger)
	r.SetPlayerName(opts.PlayerName)
	return r
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	clock      *core.Clock
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	recorder   *leaderboard.Recorder
	audio      *audio.Director
	logger     *log.Logger
	nameInput  textinput.Model
	suggested  string
	naming     bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. Scores go to store when it is
// not nil; phase changes drive opts.Audio when it is set.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	recorder := newRecorder(store, opts)
	observers := core.Observers{recorder}
	if opts.Audio != nil {
		observers = append(observers, opts.Audio)
	}
	if o, ok := game.(core.Observable); ok {
		o.SetObserver(observers)
	}

	ti := textinput.New()
	ti.Placeholder = leaderboard.DefaultName
	ti.CharLimit = leaderboard.MaxNameLength
	ti.Width = leaderboard.MaxNameLength + 2

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		clock:      core.NewClock(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		recorder:   recorder,
		audio:      opts.Audio,
		logger:     opts.Logger,
		nameInput:  ti,
		suggested:  opts.SuggestedName,
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.audio != nil {
		m.audio.Play(audio.TrackFor(m.game.ID(), m.game.State().Phase))
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.naming {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsMusicToggle(msg) {
		if m.audio != nil {
			m.audio.Toggle()
		}
		return m, nil
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game when nothing is in flight
	if action == core.ActionBack && m.idle() {
		m.backToMenu = true
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// idle reports whether no round is running: waiting to start, paused or over.
func (m GameModel) idle() bool {
	s := m.gameState
	return s.GameOver || s.Paused || s.Phase == "ready" || s.Phase == "menu" || s.Phase == ""
}

// handleNameKey feeds the name prompt.
func (m GameModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		if _, err := m.recorder.Submit(m.nameInput.Value()); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
		m.closeNamePrompt()
		return m, nil
	case tea.KeyEsc:
		m.recorder.Dismiss()
		m.closeNamePrompt()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *GameModel) closeNamePrompt() {
	m.naming = false
	m.nameInput.Blur()
	m.nameInput.Reset()
	m.clock.Reset()
}

// handleTick advances the simulation by the wall time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.naming {
		return m, tickCmd(m.config.TickRate)
	}

	dt := m.clock.Tick(now)
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	var cmds []tea.Cmd
	if m.gameState.GameOver {
		if _, ok := m.recorder.Pending(); ok {
			m.naming = true
			if m.suggested != "" {
				m.nameInput.SetValue(leaderboard.NormalizeName(m.suggested))
				m.nameInput.CursorEnd()
			}
			cmds = append(cmds, m.nameInput.Focus(), textinput.Blink)
		}
	}

	cmds = append(cmds, tickCmd(m.config.TickRate))
	return m, tea.Batch(cmds...)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game, or the name prompt over a finished round.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.naming {
		p, _ := m.recorder.Pending()
		return renderPanel(m.screen.Width(), m.screen.Height(),
			"NEW TOP 10 SCORE",
			[]string{
				fmt.Sprintf("Score: %d   Rank: #%d", p.Score, p.Rank+1),
				fmt.Sprintf("Character: %s", p.Character),
				"",
				m.nameInput.View(),
			},
			"Enter: save  |  Esc: skip")
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the state reported by the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Naming reports whether the name prompt is open.
func (m GameModel) Naming() bool {
	return m.naming
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the player quits or backs out.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := standaloneModel{NewGameModel(game, store, cfg, opts)}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// standaloneModel quits the program where a session would return to its menu.
type standaloneModel struct {
	GameModel
}

func (m standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.GameModel = gm
	}
	if m.BackToMenu() {
		return m, tea.Quit
	}
	return m, cmd
}
