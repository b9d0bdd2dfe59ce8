package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bird-arcade/internal/platform/tui"
	"github.com/vovakirdan/bird-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or W/S to navigate, Enter to select a game.
After a game ends, B or Esc returns to the menu.

Controls:
  Up/Down/W/S  - Navigate menu
  Enter/Space  - Select game
  C            - Cycle flight character
  Tab          - Top 10 scores
  M            - Toggle music
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --name ADA --mute
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagName, "name", "", "Name saved with top 10 scores (asks when empty)")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with music off")
}

func runMenu(_ *cobra.Command, _ []string) {
	applyGameFlags()

	logger, closeLog := openLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	director := newDirector(logger, flagMute)

	runErr := tui.RunSession(store, runtimeConfig(), tui.Options{
		PlayerName: flagName,
		Audio:      director,
		Logger:     logger,
	})

	director.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
