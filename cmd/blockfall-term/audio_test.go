package main

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

// drain streams s to the end and returns the number of samples and the
// largest absolute sample value.
func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for _, sample := range buf[:k] {
			peak = max(peak, sample[0], -sample[0])
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestClearToneLength(t *testing.T) {
	note := sampleRate.N(noteLength)
	for rows := 1; rows <= 4; rows++ {
		n, _ := drain(clearTone(rows))
		assert.Equal(t, rows*note, n, "rows %d", rows)
	}

	n, _ := drain(clearTone(9))
	assert.Equal(t, 4*note, n, "one note per row, four at most")
}

func TestGameOverTone(t *testing.T) {
	n, peak := drain(gameOverTone())
	assert.Equal(t, sampleRate.N(400*time.Millisecond), n)
	assert.Positive(t, peak)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestSoundsWithoutSpeaker(t *testing.T) {
	s := &sounds{}
	assert.NotPanics(t, func() {
		s.OnSettle(engine.SettleEvent{Cleared: 2})
		s.OnSettle(engine.SettleEvent{GameOver: true})
	})
}
