package leaderboard

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bird-arcade/internal/core"
)

// ErrNotQualified is returned by Submit when there is no qualifying score
// waiting for a name.
var ErrNotQualified = errors.New("leaderboard: score does not qualify")

// Store is the persistence the Recorder needs.
type Store interface {
	TopScores(gameID string, limit int) ([]Entry, error)
	SaveEntry(e Entry) (int64, error)
}

// Pending is a qualifying result waiting for the player's name.
type Pending struct {
	GameID    string
	Score     int
	Level     int
	Character string
	Rank      int
}

// Recorder observes games and records qualifying game-over scores. With a
// preset player name it saves immediately; otherwise the result is held
// as Pending until Submit or Dismiss.
type Recorder struct {
	core.NopObserver

	mu      sync.Mutex
	store   Store
	logger  *log.Logger
	name    string
	now     func() time.Time
	pending *Pending
	last    *Entry
}

// NewRecorder creates a recorder. A nil store disables recording; a nil
// logger discards log output.
func NewRecorder(store Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, logger: logger, now: time.Now}
}

// SetPlayerName presets the name used for every qualifying score. An empty
// name means results wait for Submit.
func (r *Recorder) SetPlayerName(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.name = name
}

// Board returns the stored top entries for a game.
func (r *Recorder) Board(gameID string) ([]Entry, error) {
	if r.store == nil {
		return nil, nil
	}
	board, err := r.store.TopScores(gameID, Limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot load board: %w", err)
	}
	return Normalize(board), nil
}

// GameOver checks the result against the stored board.
func (r *Recorder) GameOver(ev core.GameOverEvent) {
	if r.store == nil {
		return
	}
	board, err := r.Board(ev.GameID)
	if err != nil {
		r.logger.Warn("could not load leaderboard", "game", ev.GameID, "error", err)
		return
	}
	rank, ok := Rank(board, ev.Score)
	if !ok {
		return
	}

	r.mu.Lock()
	r.pending = &Pending{
		GameID:    ev.GameID,
		Score:     ev.Score,
		Level:     ev.Level,
		Character: NormalizeCharacter(ev.Character),
		Rank:      rank,
	}
	name := r.name
	r.mu.Unlock()

	if name != "" {
		if _, err := r.Submit(name); err != nil {
			r.logger.Warn("could not save score", "game", ev.GameID, "error", err)
		}
	}
}

// PhaseChanged drops an unclaimed result once its round is left behind.
func (r *Recorder) PhaseChanged(_, from, _ string) {
	if from != "gameover" {
		return
	}
	r.Dismiss()
}

// Pending returns the result waiting for a name, if any.
func (r *Recorder) Pending() (Pending, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == nil {
		return Pending{}, false
	}
	return *r.pending, true
}

// Dismiss discards the waiting result without saving it.
func (r *Recorder) Dismiss() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = nil
}

// Submit saves the waiting result under name.
func (r *Recorder) Submit(name string) (Entry, error) {
	r.mu.Lock()
	p := r.pending
	r.pending = nil
	r.mu.Unlock()

	if p == nil || r.store == nil {
		return Entry{}, ErrNotQualified
	}

	entry := Entry{
		GameID:    p.GameID,
		Player:    NormalizeName(name),
		Character: p.Character,
		Score:     p.Score,
		Level:     p.Level,
		CreatedAt: r.now(),
	}
	id, err := r.store.SaveEntry(entry)
	if err != nil {
		return Entry{}, fmt.Errorf("leaderboard: cannot save entry: %w", err)
	}
	entry.ID = id

	r.mu.Lock()
	r.last = &entry
	r.mu.Unlock()

	r.logger.Info("score recorded", "game", entry.GameID, "player", entry.Player, "score", entry.Score)
	return entry, nil
}

// LastSaved returns the most recently saved entry, if any.
func (r *Recorder) LastSaved() (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return Entry{}, false
	}
	return *r.last, true
}
