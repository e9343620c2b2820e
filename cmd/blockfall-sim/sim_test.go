package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(seed uint64) engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestRandomPlayerAlwaysHardDrops(t *testing.T) {
	p := newRandomPlayer(1)
	for range 50 {
		ops, err := p.Decide(context.Background(), engine.Snapshot{})
		require.NoError(t, err)
		require.NotEmpty(t, ops)
		assert.LessOrEqual(t, len(ops), 6)
		assert.Equal(t, engine.OpHardDrop, ops[len(ops)-1])
	}
}

func TestPlayGameEndsAndReplays(t *testing.T) {
	report := &Report{}
	run, err := playGame(context.Background(), testConfig(3), newRandomPlayer(3), 500, report)
	require.NoError(t, err)

	assert.True(t, run.result.GameOver, "random play tops out well before 500 pieces")
	assert.Positive(t, run.result.Pieces)
	assert.Equal(t, uint64(3), run.result.Seed)
	assert.Equal(t, run.result.Score, run.recording.FinalScore)
	assert.Equal(t, int64(len(run.recording.Commands)), report.TotalSteps)
	assert.Len(t, report.StepTime.Samples, len(run.recording.Commands))

	score, err := verify(run.recording)
	require.NoError(t, err)
	assert.Equal(t, run.result.Score, score)
}

func TestPlayGamePieceLimit(t *testing.T) {
	run, err := playGame(context.Background(), testConfig(9), newRandomPlayer(9), 3, &Report{})
	require.NoError(t, err)
	assert.Equal(t, 3, run.result.Pieces)
	assert.False(t, run.result.GameOver)
}

func TestPlayGameGreedy(t *testing.T) {
	player, closePlayer, err := newPlayer("greedy", testConfig(1))
	require.NoError(t, err)
	defer closePlayer()

	run, err := playGame(context.Background(), testConfig(11), player, 40, &Report{})
	require.NoError(t, err)
	assert.Equal(t, 40, run.result.Pieces)
	assert.Positive(t, run.result.Lines)
}

func TestPlayGameStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run, err := playGame(ctx, testConfig(1), newRandomPlayer(1), 100, &Report{})
	require.NoError(t, err)
	assert.Zero(t, run.result.Pieces)
}

func TestNewPlayerRejectsMissingScript(t *testing.T) {
	_, _, err := newPlayer("does-not-exist.lua", testConfig(1))
	assert.Error(t, err)
}

func TestNewPlayerRejectsUnknownKicks(t *testing.T) {
	cfg := testConfig(1)
	cfg.Kicks = "wild"
	_, _, err := newPlayer("greedy", cfg)
	assert.ErrorIs(t, err, engine.ErrInvalidConfig)
}

func TestVerifyDetectsTampering(t *testing.T) {
	run, err := playGame(context.Background(), testConfig(5), newRandomPlayer(5), 20, &Report{})
	require.NoError(t, err)

	rec := run.recording
	rec.FinalScore += 100
	_, err = verify(rec)
	assert.Error(t, err)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{5, 1, 3}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(5), s.Max)
	assert.Equal(t, time.Duration(3), s.Avg)
	assert.Equal(t, time.Duration(3), s.P99)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{Duration: time.Second, MaxPieces: 10, Bot: "random", Kicks: "alternating", Seed: 4}
	r.Add(GameResult{Seed: 4, Score: 300, Pieces: 10, Lines: 2}, map[int]int{2: 1})
	r.Add(GameResult{Seed: 5, Score: 100, Pieces: 7, Lines: 1, GameOver: true}, map[int]int{1: 1})

	assert.Equal(t, 300, r.BestScore())
	assert.Equal(t, 200.0, r.AvgScore())
	assert.Equal(t, 3, r.TotalLines())
	assert.Equal(t, 17, r.TotalPieces())
	assert.Equal(t, []int{1, 2}, r.ClearSizes())

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "# Blockfall Simulation Report")
	assert.Contains(t, out, "- **Games Played:** 2")
	assert.Contains(t, out, "- **Game Limit:** none")
	assert.Contains(t, out, "| 1 | 4 | 300 | 10 | 2 | piece limit |")
	assert.Contains(t, out, "| 2 | 5 | 100 | 7 | 1 | game over |")
	assert.Contains(t, out, "| 2 | 1 |")
	assert.NotContains(t, out, "GC Pause")
}
