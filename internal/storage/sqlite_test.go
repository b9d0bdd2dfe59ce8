package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("flappy", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("crossy", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d].Score = %d, expected %d", i, scores[i].Score, want)
		}
	}

	crossyScores, err := store.TopScores("crossy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(crossyScores) != 1 {
		t.Errorf("TopScores(crossy) returned %d entries, expected 1", len(crossyScores))
	}
}

func TestStoreSaveEntryFields(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	_, err := store.SaveEntry(ScoreEntry{
		GameID:    "crossy",
		Player:    "ADA",
		Character: "thosmur",
		Score:     27,
		Level:     3,
		CreatedAt: at,
	})
	if err != nil {
		t.Fatalf("SaveEntry() failed: %v", err)
	}

	scores, err := store.TopScores("crossy", 1)
	if err != nil || len(scores) != 1 {
		t.Fatalf("TopScores() = %v, %v", scores, err)
	}
	got := scores[0]
	if got.Player != "ADA" || got.Character != "thosmur" || got.Score != 27 || got.Level != 3 {
		t.Errorf("entry = %+v, expected ADA/thosmur/27/3", got)
	}
	if !got.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, expected %v", got.CreatedAt, at)
	}
}

func TestStoreSaveEntryDefaults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveEntry(ScoreEntry{GameID: "flappy", Score: 4}); err != nil {
		t.Fatalf("SaveEntry() failed: %v", err)
	}

	scores, _ := store.TopScores("flappy", 1)
	if len(scores) != 1 {
		t.Fatalf("TopScores() returned %d entries, expected 1", len(scores))
	}
	got := scores[0]
	if got.Player != "PLAYER" || got.Character != "bankr" || got.Level != 1 {
		t.Errorf("entry = %+v, expected PLAYER/bankr/level 1", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not stamped")
	}
}

func TestStoreTiesKeepOlderFirst(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	store.SaveEntry(ScoreEntry{GameID: "flappy", Player: "NEW", Score: 9, CreatedAt: base.Add(time.Minute)})
	store.SaveEntry(ScoreEntry{GameID: "flappy", Player: "OLD", Score: 9, CreatedAt: base})
	store.SaveEntry(ScoreEntry{GameID: "flappy", Player: "TOP", Score: 12, CreatedAt: base.Add(time.Hour)})

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	expected := []string{"TOP", "OLD", "NEW"}
	for i, want := range expected {
		if scores[i].Player != want {
			t.Errorf("scores[%d].Player = %q, expected %q", i, scores[i].Player, want)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, expected 0 for empty game", high)
	}

	store.SaveScore("flappy", 100)
	store.SaveScore("flappy", 300)
	store.SaveScore("flappy", 200)

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", 100)
	store.SaveScore("flappy", 200)
	store.SaveScore("crossy", 300)

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	flappyScores, _ := store.TopScores("flappy", 10)
	if len(flappyScores) != 0 {
		t.Errorf("TopScores(flappy) returned %d entries after clear, expected 0", len(flappyScores))
	}

	crossyScores, _ := store.TopScores("crossy", 10)
	if len(crossyScores) != 1 {
		t.Error("crossy scores should not be affected by clearing flappy")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("AllScores() returned %d entries, expected 20", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveEntry(ScoreEntry{GameID: "crossy", Score: 10, Level: 2})
	store.SaveEntry(ScoreEntry{GameID: "crossy", Score: 30, Level: 4})
	store.SaveEntry(ScoreEntry{GameID: "flappy", Score: 7})

	stats, err := store.GetGameStats("crossy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.BestLevel != 4 || stats.TotalScore != 40 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetGameStats(empty) = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["flappy"].HighScore != 7 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
