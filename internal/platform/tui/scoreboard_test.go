package tui

import (
	"strings"
	"testing"
	"time"

	_ "github.com/vovakirdan/bird-arcade/internal/games/crossy"
	"github.com/vovakirdan/bird-arcade/internal/storage"
)

func seedScores(t *testing.T, store *storage.Store, gameID string, scores ...int) {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, s := range scores {
		_, err := store.SaveEntry(storage.ScoreEntry{
			GameID:    gameID,
			Player:    "P",
			Score:     s,
			Level:     i + 1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveEntry() error = %v", err)
		}
	}
}

func TestScoreboardLoadsBoardPerGame(t *testing.T) {
	store := openStore(t)
	seedScores(t, store, "crossy", 5, 9, 7)
	seedScores(t, store, "flappy", 3)

	m := NewScoreboardModel(store, 100, 30)
	game, _ := m.currentGame()
	if game.ID != "crossy" {
		t.Fatalf("first game = %q, expected crossy", game.ID)
	}
	if len(m.scores) != 3 || m.scores[0].Score != 9 {
		t.Errorf("scores = %+v, expected 3 entries led by 9", m.scores)
	}
	if !m.showDate {
		t.Error("a wide scoreboard should show the date column")
	}
	if !strings.Contains(m.statsLine(), "Best: 9") {
		t.Errorf("statsLine() = %q, expected Best: 9", m.statsLine())
	}

	next, _ := m.Update(keyMsg("tab"))
	m = next.(ScoreboardModel)
	game, _ = m.currentGame()
	if game.ID != "flappy" {
		t.Errorf("after tab game = %q, expected flappy", game.ID)
	}
	if len(m.scores) != 1 {
		t.Errorf("len(scores) = %d, expected 1", len(m.scores))
	}

	// Wraps back around
	next, _ = m.Update(keyMsg("right"))
	m = next.(ScoreboardModel)
	if game, _ := m.currentGame(); game.ID != "crossy" {
		t.Errorf("after wrap game = %q, expected crossy", game.ID)
	}
}

func TestScoreboardNarrowDropsDate(t *testing.T) {
	store := openStore(t)
	seedScores(t, store, "crossy", 4)

	m := NewScoreboardModel(store, 50, 20)
	if m.showDate {
		t.Error("a narrow scoreboard should drop the date column")
	}
	if rows := m.table.Rows(); len(rows) != 1 || len(rows[0]) != 5 {
		t.Errorf("rows = %v, expected one row of 5 cells", rows)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if len(m.scores) != 0 {
		t.Errorf("len(scores) = %d, expected 0", len(m.scores))
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("View() should show the empty message")
	}

	next, _ := m.Update(keyMsg("b"))
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() {
		t.Error("b should go back")
	}
}
