// Package leaderboard holds the top-10 rules shared by every game and the
// Recorder that turns game-over events into saved entries.
package leaderboard

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/bird-arcade/internal/games/flappy"
	"github.com/vovakirdan/bird-arcade/internal/storage"
)

const (
	// Limit is the number of entries kept per game.
	Limit = 10
	// MaxNameLength is the longest stored player name, in runes.
	MaxNameLength = 14
	// DefaultName replaces blank player names.
	DefaultName = "PLAYER"
)

// Entry is a single leaderboard row.
type Entry = storage.ScoreEntry

// NormalizeName trims the name and cuts it to MaxNameLength runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
	}
	if name == "" {
		return DefaultName
	}
	return name
}

// NormalizeCharacter maps unknown character tags to the default character.
func NormalizeCharacter(c string) string {
	return string(flappy.ParseCharacter(c))
}

// Sort orders entries by score, highest first. Equal scores keep the
// earlier entry ahead.
func Sort(board []Entry) {
	sort.SliceStable(board, func(i, j int) bool {
		if board[i].Score != board[j].Score {
			return board[i].Score > board[j].Score
		}
		return board[i].CreatedAt.Before(board[j].CreatedAt)
	})
}

// Normalize returns a sorted copy of board with names and characters
// cleaned up, truncated to Limit.
func Normalize(board []Entry) []Entry {
	out := make([]Entry, len(board))
	for i, e := range board {
		e.Player = NormalizeName(e.Player)
		e.Character = NormalizeCharacter(e.Character)
		out[i] = e
	}
	Sort(out)
	if len(out) > Limit {
		out = out[:Limit]
	}
	return out
}

// Rank returns the index a new score would take on board, or false if it
// does not make the cut. Non-positive scores never qualify.
func Rank(board []Entry, score int) (int, bool) {
	if score <= 0 {
		return 0, false
	}
	sorted := Normalize(board)
	for i, e := range sorted {
		if score > e.Score {
			return i, true
		}
	}
	if len(sorted) < Limit {
		return len(sorted), true
	}
	return 0, false
}

// Qualifies reports whether score earns a place on board.
func Qualifies(board []Entry, score int) bool {
	_, ok := Rank(board, score)
	return ok
}

// Insert adds entry to board and returns the new normalized board. A zero
// CreatedAt is stamped with the current time.
func Insert(board []Entry, entry Entry) []Entry {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	next := make([]Entry, 0, len(board)+1)
	next = append(next, board...)
	next = append(next, entry)
	return Normalize(next)
}
