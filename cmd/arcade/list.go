package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bird-arcade/internal/registry"
	"github.com/vovakirdan/bird-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game in the arcade with its best score and how many scores are saved.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Stats are optional; a missing database only hides the columns
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, err = store.GetAllGamesStats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read stats: %v\n", err)
		}
		store.Close()
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-14s  %6s  %6s  %s\n", maxIDLen, "ID", "Title", "Best", "Saved", "About")
	fmt.Printf("  %-*s  %-14s  %6s  %6s  %s\n", maxIDLen, "--", "-----", "----", "-----", "-----")

	for _, g := range games {
		best, saved := "-", "-"
		if st, ok := stats[g.ID]; ok && st.GamesCount > 0 {
			best = fmt.Sprintf("%d", st.HighScore)
			saved = fmt.Sprintf("%d", st.GamesCount)
		}
		fmt.Printf("  %-*s  %-14s  %6s  %6s  %s\n", maxIDLen, g.ID, g.Title, best, saved, g.Summary)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
