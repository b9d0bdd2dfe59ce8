package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bird-arcade/internal/leaderboard"
	"github.com/vovakirdan/bird-arcade/internal/registry"
	"github.com/vovakirdan/bird-arcade/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the top 10 for a game",
	Long: `Display the top 10 scores for the specified game.

Examples:
  arcade scores flappy
  arcade scores crossy
  arcade scores crossy --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded score for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	info, _ := registry.Lookup(gameID)
	title := info.Title

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	entries, err := store.TopScores(gameID, leaderboard.Limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	board := leaderboard.Normalize(entries)

	fmt.Printf("Top 10 - %s\n", title)
	fmt.Println()

	if len(board) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-14s  %-9s  %-7s  %-5s  %s\n", "Rank", "Player", "Character", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-14s  %-9s  %-7s  %-5s  %s\n", "----", "------", "---------", "-----", "-----", "----")

	for i, entry := range board {
		fmt.Printf("  %-4d  %-14s  %-9s  %-7d  %-5d  %s\n",
			i+1, entry.Player, entry.Character, entry.Score, entry.Level,
			entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
