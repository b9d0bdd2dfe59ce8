// arcade is a terminal arcade with a flight game and a lane-crossing game.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show the top 10 for a game
//	arcade config <game>     - Print a game's default config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bird-arcade/internal/audio"
	"github.com/vovakirdan/bird-arcade/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/bird-arcade/internal/games/crossy"
	_ "github.com/vovakirdan/bird-arcade/internal/games/flappy"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Bird Arcade - flight and lane-crossing games in your terminal",
	Long: `Bird Arcade runs two small arcade games in the terminal: a flight game
where you thread scrolling pipes, and a lane-crossing game where you step
through traffic toward the finish row.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View the top 10
  config   - Print a game's default config

Examples:
  arcade list
  arcade play flappy --character deployer
  arcade play crossy --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores crossy`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openLogger logs to ~/.arcade/arcade.log so output never lands on the
// game screen. Logging is dropped if the file cannot be opened.
func openLogger() (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".arcade")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	}), closeFn
}

// newDirector starts background music unless muted. Without an audio
// device the director still runs silently.
func newDirector(logger *log.Logger, mute bool) *audio.Director {
	d := audio.NewDirector(logger)
	if mute {
		d.SetEnabled(false)
		return d
	}
	//nolint:errcheck // Logged by the director; play continues without sound
	d.Init()
	return d
}
