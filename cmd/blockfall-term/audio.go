package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/engine"
)

const sampleRate = beep.SampleRate(44100)

const noteLength = 70 * time.Millisecond

// C major arpeggio, one note per cleared row.
var clearNotes = [...]float64{523.25, 659.25, 783.99, 1046.50}

// sounds plays a short tone after every settlement that clears rows and a
// low buzz when the game ends. It is a no-op until the speaker initializes.
type sounds struct {
	enabled bool
}

func newSounds() (*sounds, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &sounds{}, err
	}
	return &sounds{enabled: true}, nil
}

func (s *sounds) OnSettle(ev engine.SettleEvent) {
	if !s.enabled {
		return
	}
	switch {
	case ev.GameOver:
		speaker.Play(gameOverTone())
	case ev.Cleared > 0:
		speaker.Play(clearTone(ev.Cleared))
	}
}

func clearTone(rows int) beep.Streamer {
	rows = min(rows, len(clearNotes))
	notes := make([]beep.Streamer, 0, rows)
	for _, freq := range clearNotes[:rows] {
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			continue
		}
		notes = append(notes, beep.Take(sampleRate.N(noteLength), sine))
	}
	return beep.Seq(notes...)
}

func gameOverTone() beep.Streamer {
	return beep.Take(sampleRate.N(400*time.Millisecond), newBuzz(sampleRate, 110))
}

// buzz is a sine with two overtones and a short attack.
type buzz struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBuzz(sr beep.SampleRate, freq float64) *buzz {
	return &buzz{sr: sr, freq: freq}
}

func (b *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(b.pos) / float64(b.sr)

		v := 0.3*math.Sin(2*math.Pi*b.freq*t) +
			0.15*math.Sin(2*math.Pi*b.freq*2*t) +
			0.075*math.Sin(2*math.Pi*b.freq*3*t)
		v *= math.Min(t/0.02, 1) * 0.5

		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *buzz) Err() error {
	return nil
}
