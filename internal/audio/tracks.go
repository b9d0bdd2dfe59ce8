package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Track is a background loop.
type Track int

const (
	TrackNone Track = iota
	TrackMenu
	TrackFlappy
	TrackCrossy
)

func (t Track) String() string {
	switch t {
	case TrackMenu:
		return "menu"
	case TrackFlappy:
		return "flappy"
	case TrackCrossy:
		return "crossy"
	default:
		return "none"
	}
}

// pattern describes a looping arpeggio over a bass note.
type pattern struct {
	notes []float64 // Lead frequencies in Hz; 0 rests
	bass  []float64 // One bass note per bar of four lead notes
	step  time.Duration
}

var patterns = map[Track]pattern{
	TrackMenu: {
		notes: []float64{523.25, 659.25, 783.99, 659.25, 587.33, 698.46, 880.00, 698.46},
		bass:  []float64{130.81, 146.83},
		step:  220 * time.Millisecond,
	},
	TrackFlappy: {
		notes: []float64{659.25, 0, 783.99, 659.25, 880.00, 783.99, 659.25, 587.33},
		bass:  []float64{164.81, 146.83},
		step:  150 * time.Millisecond,
	},
	TrackCrossy: {
		notes: []float64{392.00, 392.00, 523.25, 0, 466.16, 440.00, 392.00, 349.23},
		bass:  []float64{98.00, 87.31},
		step:  180 * time.Millisecond,
	},
}

// loop is an endless chiptune streamer for one pattern.
type loop struct {
	sr    beep.SampleRate
	p     pattern
	step  int // Samples per note
	pos   int
	phase float64
	bassP float64
}

func newLoop(sr beep.SampleRate, p pattern) *loop {
	return &loop{sr: sr, p: p, step: sr.N(p.step)}
}

func (l *loop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (l.pos / l.step) % len(l.p.notes)
		inNote := float64(l.pos%l.step) / float64(l.step)
		freq := l.p.notes[idx]
		bass := l.p.bass[(idx/4)%len(l.p.bass)]

		lead := 0.0
		if freq > 0 {
			// Pulse wave with a quick decay per note
			if l.phase < 0.25 {
				lead = 1
			} else {
				lead = -1
			}
			lead *= 0.18 * math.Exp(-inNote*3)
			l.phase += freq / float64(l.sr)
			l.phase -= math.Floor(l.phase)
		}

		low := 0.22 * math.Sin(2*math.Pi*l.bassP)
		l.bassP += bass / float64(l.sr)
		l.bassP -= math.Floor(l.bassP)

		v := lead + low
		samples[i][0] = v
		samples[i][1] = v
		l.pos++
	}
	return len(samples), true
}

func (l *loop) Err() error { return nil }
