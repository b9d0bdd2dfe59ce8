package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bird-arcade/internal/games/crossy"
	"github.com/vovakirdan/bird-arcade/internal/games/flappy"
	"github.com/vovakirdan/bird-arcade/internal/platform/tui"
	"github.com/vovakirdan/bird-arcade/internal/registry"
	"github.com/vovakirdan/bird-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCharacter  string
	flagName       string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Flight controls (flappy):
  Space/Up/Enter - Start, flap, reset after a crash
  C              - Cycle character while waiting to start
  P              - Pause

Lane controls (crossy):
  Arrows/WASD    - Step
  Enter          - Start, retry after a hit
  B/Esc          - Back to the game's menu

Everywhere:
  M              - Toggle music
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play flappy
  arcade play flappy --character thosmur --name ADA
  arcade play crossy --difficulty hard
  arcade play flappy --config ./my-flappy.yaml --mute`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagCharacter, "character", "bankr", "Flight character: bankr, deployer, thosmur")
	playCmd.Flags().StringVar(&flagName, "name", "", "Name saved with top 10 scores (asks when empty)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with music off")
}

// applyGameFlags hands the CLI settings to every game package.
func applyGameFlags() {
	flappy.SetConfigPath(flagConfig)
	flappy.SetDifficultyPreset(flagDifficulty)
	flappy.SetCharacter(flagCharacter)
	crossy.SetConfigPath(flagConfig)
	crossy.SetDifficultyPreset(flagDifficulty)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	director := newDirector(logger, flagMute)

	runErr := tui.Run(game, store, runtimeConfig(), tui.Options{
		PlayerName: flagName,
		Audio:      director,
		Logger:     logger,
	})

	director.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
