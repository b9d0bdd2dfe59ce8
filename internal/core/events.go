package core

// GameOverEvent is emitted once when a round ends.
type GameOverEvent struct {
	GameID    string
	Score     int
	Level     int
	Character string // Opaque skin tag; empty for games without characters
}

// Observer receives coarse notifications from a running simulation.
// Implementations must not mutate the simulation from inside a callback.
type Observer interface {
	PhaseChanged(gameID, from, to string)
	ScoreChanged(gameID string, score int)
	LevelCompleted(gameID string, level int)
	GameOver(ev GameOverEvent)
}

// NopObserver ignores every notification. Embed it to implement only
// the callbacks you care about.
type NopObserver struct{}

func (NopObserver) PhaseChanged(string, string, string) {}
func (NopObserver) ScoreChanged(string, int)            {}
func (NopObserver) LevelCompleted(string, int)          {}
func (NopObserver) GameOver(GameOverEvent)              {}

// Observers fans notifications out to several observers in order.
type Observers []Observer

func (obs Observers) PhaseChanged(gameID, from, to string) {
	for _, o := range obs {
		o.PhaseChanged(gameID, from, to)
	}
}

func (obs Observers) ScoreChanged(gameID string, score int) {
	for _, o := range obs {
		o.ScoreChanged(gameID, score)
	}
}

func (obs Observers) LevelCompleted(gameID string, level int) {
	for _, o := range obs {
		o.LevelCompleted(gameID, level)
	}
}

func (obs Observers) GameOver(ev GameOverEvent) {
	for _, o := range obs {
		o.GameOver(ev)
	}
}

// Observable is implemented by games that can report to an Observer.
type Observable interface {
	SetObserver(o Observer)
}
