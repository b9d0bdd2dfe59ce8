// Package audio plays synthesized background loops that follow the phase
// of the running game.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bird-arcade/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// LoopVolume is the linear gain applied to every background loop.
	LoopVolume = 0.45
)

// ErrNotInitialized is returned when no audio device could be opened.
var ErrNotInitialized = errors.New("audio: speaker not initialized")

// Director selects the background loop for the current game and phase.
// Without an audio device it still tracks selection, it just plays nowhere.
type Director struct {
	core.NopObserver

	mu          sync.Mutex
	logger      *log.Logger
	mixer       *beep.Mixer
	out         *beep.Ctrl
	current     Track
	enabled     bool
	paused      bool
	initialized bool
}

// NewDirector creates a director with nothing playing. A nil logger
// discards log output.
func NewDirector(logger *log.Logger) *Director {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mixer := &beep.Mixer{}
	return &Director{
		logger:  logger,
		mixer:   mixer,
		out:     &beep.Ctrl{Streamer: mixer},
		enabled: true,
	}
}

// Init opens the default audio device and starts output.
func (d *Director) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		d.logger.Warn("audio disabled", "error", err)
		return fmt.Errorf("%w: %v", ErrNotInitialized, err)
	}
	speaker.Play(d.out)
	d.initialized = true
	return nil
}

// Close stops output and releases the audio device.
func (d *Director) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	d.initialized = false
}

// withSpeaker runs fn while the output goroutine is held off.
func (d *Director) withSpeaker(fn func()) {
	if d.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// Play switches to track. Selecting the current track keeps its position.
func (d *Director) Play(t Track) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t == d.current {
		return
	}
	d.current = t
	d.withSpeaker(func() {
		d.mixer.Clear()
		d.mixer.Add(beep.Silence(-1))
		if p, ok := patterns[t]; ok {
			d.mixer.Add(&effects.Volume{
				Streamer: newLoop(sampleRate, p),
				Base:     2,
				Volume:   math.Log2(LoopVolume),
			})
		}
	})
}

// Current returns the selected track.
func (d *Director) Current() Track {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Toggle pauses or resumes output and reports whether it is now playing.
func (d *Director) Toggle() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paused = !d.paused
	d.sync()
	return d.playing()
}

// SetEnabled mutes or unmutes output.
func (d *Director) SetEnabled(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enabled = on
	d.sync()
}

// Enabled reports whether output is unmuted.
func (d *Director) Enabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enabled
}

// Playing reports whether a track is selected and audible.
func (d *Director) Playing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.playing()
}

func (d *Director) playing() bool {
	return d.enabled && !d.paused && d.current != TrackNone
}

func (d *Director) sync() {
	d.withSpeaker(func() {
		d.out.Paused = !d.enabled || d.paused
	})
}

// ShowMenu selects the menu loop.
func (d *Director) ShowMenu() {
	d.Play(TrackMenu)
}

// PhaseChanged follows the running game's phase.
func (d *Director) PhaseChanged(gameID, _, to string) {
	d.Play(TrackFor(gameID, to))
}

// TrackFor maps a game and phase to its loop: the game's own loop while a
// round runs, silence after it ends and the menu loop otherwise.
func TrackFor(gameID, phase string) Track {
	switch phase {
	case "gameover":
		return TrackNone
	case "starting", "playing", "levelup":
		switch gameID {
		case "flappy":
			return TrackFlappy
		case "crossy":
			return TrackCrossy
		}
	}
	return TrackMenu
}
