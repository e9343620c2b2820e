package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/script"
)

// Player chooses the ops for the current piece. *script.Bot implements it.
type Player interface {
	Decide(ctx context.Context, snap engine.Snapshot) ([]engine.Op, error)
}

// randomPlayer shuffles the piece a few times and hard drops it.
type randomPlayer struct {
	rng *rand.Rand
}

func newRandomPlayer(seed uint64) *randomPlayer {
	return &randomPlayer{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

var randomMoves = []engine.Op{engine.OpMoveLeft, engine.OpMoveRight, engine.OpRotateCW, engine.OpRotateCCW, engine.OpSoftDrop}

func (p *randomPlayer) Decide(_ context.Context, _ engine.Snapshot) ([]engine.Op, error) {
	n := p.rng.IntN(6)
	ops := make([]engine.Op, 0, n+1)
	for range n {
		ops = append(ops, randomMoves[p.rng.IntN(len(randomMoves))])
	}
	return append(ops, engine.OpHardDrop), nil
}

// newPlayer resolves the -bot flag: "random", "greedy" or a Lua file. Lua
// bots plan rotations with the kick policy cfg selects.
func newPlayer(name string, cfg engine.Config) (Player, func(), error) {
	if name == "random" {
		return newRandomPlayer(cfg.Seed), func() {}, nil
	}

	kicks, err := engine.KickPolicyByName(cfg.Kicks)
	if err != nil {
		return nil, nil, err
	}

	var bot *script.Bot
	if name == "greedy" {
		bot, err = script.Greedy()
	} else {
		bot, err = script.LoadFile(name)
	}
	if err != nil {
		return nil, nil, err
	}
	bot.SetKickPolicy(kicks)
	return bot, bot.Close, nil
}

// decisionInterval is the simulated time between two decisions. Gravity ticks
// are stamped on this virtual clock so a run is reproducible.
const decisionInterval = 250 * time.Millisecond

type gameRun struct {
	result    GameResult
	clears    map[int]int
	recording engine.Recording
}

// playGame plays one game until it ends or maxPieces have settled. Step and
// decide timings are appended to report.
func playGame(ctx context.Context, cfg engine.Config, player Player, maxPieces int, report *Report) (gameRun, error) {
	rec, err := engine.NewRecorder(cfg)
	if err != nil {
		return gameRun{}, err
	}
	session := rec.Session()

	step := func(cmd engine.Command) {
		start := time.Now()
		rec.Apply(cmd)
		report.StepTime.Samples = append(report.StepTime.Samples, time.Since(start))
		report.TotalSteps++
	}

	now := time.Duration(0)
	for !session.GameOver() && session.Stats().PiecesPlaced < maxPieces {
		if err := ctx.Err(); err != nil {
			break
		}

		decideStart := time.Now()
		ops, err := player.Decide(ctx, session.Snapshot())
		report.DecideTime.Samples = append(report.DecideTime.Samples, time.Since(decideStart))
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			return gameRun{}, fmt.Errorf("decide: %w", err)
		}

		for _, op := range ops {
			step(engine.Intent(op))
		}
		now += decisionInterval
		step(engine.Tick(now))
	}

	stats := session.Stats()
	return gameRun{
		result: GameResult{
			Seed:     cfg.Seed,
			Score:    session.Score(),
			Pieces:   stats.PiecesPlaced,
			Lines:    stats.LinesCleared,
			GameOver: session.GameOver(),
		},
		clears:    stats.Clears,
		recording: rec.Recording(),
	}, nil
}

// verify replays rec and reports whether it reproduces the recorded score.
func verify(rec engine.Recording) (int, error) {
	session, err := engine.Replay(rec)
	if err != nil {
		return 0, err
	}
	if session.Score() != rec.FinalScore {
		return session.Score(), fmt.Errorf("replay scored %d, recording says %d", session.Score(), rec.FinalScore)
	}
	return session.Score(), nil
}
