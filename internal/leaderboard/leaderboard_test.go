package leaderboard

import (
	"strings"
	"testing"
	"time"
)

var epoch = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func fullBoard(low int) []Entry {
	board := make([]Entry, 0, Limit)
	for i := 0; i < Limit; i++ {
		board = append(board, Entry{
			Player:    "P",
			Score:     low + i,
			CreatedAt: epoch.Add(time.Duration(i) * time.Second),
		})
	}
	return board
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"ADA", "ADA"},
		{"  ada  ", "ada"},
		{"", DefaultName},
		{"    ", DefaultName},
		{"ABCDEFGHIJKLMNOP", "ABCDEFGHIJKLMN"},
		{"ёжикёжикёжикёжик", "ёжикёжикёжикёж"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeName(tt.in); got != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, expected %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestNormalizeCharacter(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"bankr", "bankr"},
		{"deployer", "deployer"},
		{"thosmur", "thosmur"},
		{"", "bankr"},
		{"nyan", "bankr"},
	}

	for _, tt := range tests {
		if got := NormalizeCharacter(tt.in); got != tt.expected {
			t.Errorf("NormalizeCharacter(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestNormalizeSortsAndTruncates(t *testing.T) {
	board := fullBoard(1)
	board = append(board,
		Entry{Player: "LATE", Score: 5, CreatedAt: epoch.Add(time.Hour)},
		Entry{Player: "EARLY", Score: 5, CreatedAt: epoch.Add(-time.Hour)},
	)

	got := Normalize(board)
	if len(got) != Limit {
		t.Fatalf("len(Normalize()) = %d, expected %d", len(got), Limit)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("Normalize() not sorted: %v", got)
		}
	}

	var fives []string
	for _, e := range got {
		if e.Score == 5 {
			fives = append(fives, e.Player)
		}
	}
	if strings.Join(fives, ",") != "EARLY,P,LATE" {
		t.Errorf("tie order = %v, expected EARLY,P,LATE", fives)
	}
}

func TestQualifies(t *testing.T) {
	tests := []struct {
		name     string
		board    []Entry
		score    int
		expected bool
	}{
		{"zero never", nil, 0, false},
		{"negative never", nil, -3, false},
		{"empty board", nil, 1, true},
		{"room left", fullBoard(50)[:Limit-1], 1, true},
		{"beats last", fullBoard(10), 11, true},
		{"ties last", fullBoard(10), 10, false},
		{"below last", fullBoard(10), 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Qualifies(tt.board, tt.score); got != tt.expected {
				t.Errorf("Qualifies(%d) = %v, expected %v", tt.score, got, tt.expected)
			}
		})
	}
}

func TestRank(t *testing.T) {
	board := fullBoard(10) // 10..19

	rank, ok := Rank(board, 100)
	if !ok || rank != 0 {
		t.Errorf("Rank(100) = %d, %v, expected 0, true", rank, ok)
	}
	rank, ok = Rank(board, 15)
	if !ok || rank != 5 {
		t.Errorf("Rank(15) = %d, %v, expected 5, true", rank, ok)
	}
	rank, ok = Rank(board[:3], 1)
	if !ok || rank != 3 {
		t.Errorf("Rank(1) on short board = %d, %v, expected 3, true", rank, ok)
	}
}

func TestInsert(t *testing.T) {
	board := fullBoard(10)
	next := Insert(board, Entry{Player: "  NEWCOMER  ", Character: "??", Score: 15})

	if len(next) != Limit {
		t.Fatalf("len(Insert()) = %d, expected %d", len(next), Limit)
	}
	if next[len(next)-1].Score != 11 {
		t.Errorf("lowest score = %d, expected 11 after 10 drops off", next[len(next)-1].Score)
	}

	found := false
	for _, e := range next {
		if e.Player == "NEWCOMER" {
			found = true
			if e.Character != "bankr" {
				t.Errorf("Character = %q, expected bankr", e.Character)
			}
			if e.CreatedAt.IsZero() {
				t.Error("CreatedAt was not stamped")
			}
		}
	}
	if !found {
		t.Error("inserted entry missing from board")
	}
	if len(board) != Limit || board[0].Score != 10 {
		t.Error("Insert() modified its input")
	}
}
