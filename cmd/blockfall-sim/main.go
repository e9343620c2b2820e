package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/engine"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the simulation should run for.")
	games := flag.Int("games", 0, "Stop after this many games (0 runs until -duration).")
	maxPieces := flag.Int("max-pieces", 1000, "End a game after this many pieces have settled.")
	botName := flag.String("bot", "random", `Player: "random", "greedy" or the path of a Lua script.`)
	configPath := flag.String("config", "", "YAML file with engine settings.")
	seed := flag.Uint64("seed", 0, "Seed of the first game; later games use seed+1, seed+2, ... (0 picks one).")
	recordPath := flag.String("record", "", "Write the last game's recording to this file.")
	verifyPath := flag.String("verify", "", "Replay a recording, check its score and exit.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *verifyPath != "" {
		runVerify(*verifyPath)
		return
	}

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = engine.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	player, closePlayer, err := newPlayer(*botName, cfg)
	if err != nil {
		log.Fatalf("Failed to create player: %v", err)
	}
	defer closePlayer()

	log.Println("Starting blockfall simulation...")

	report := &Report{
		Duration:       *duration,
		MaxGames:       *games,
		MaxPieces:      *maxPieces,
		Bot:            *botName,
		Kicks:          cfg.Kicks,
		Seed:           cfg.Seed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var last engine.Recording

	for game := 0; *games == 0 || game < *games; game++ {
		if ctx.Err() != nil {
			break
		}

		gameCfg := cfg
		gameCfg.Seed = cfg.Seed + uint64(game)

		run, err := playGame(ctx, gameCfg, player, *maxPieces, report)
		if err != nil {
			log.Fatalf("Game %d failed: %v", game+1, err)
		}
		report.Add(run.result, run.clears)
		last = run.recording
		log.Printf("Game %d: score %d, %d pieces, %d lines\n", game+1, run.result.Score, run.result.Pieces, run.result.Lines)
	}

	report.TotalTime = time.Since(startTime)
	report.StepTime.Finalize()
	report.DecideTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	if *recordPath != "" && len(report.Games) > 0 {
		if err := writeRecording(*recordPath, last); err != nil {
			log.Fatalf("Failed to write recording: %v", err)
		}
		log.Printf("Wrote recording of the last game to %s\n", *recordPath)
	}

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func writeRecording(path string, rec engine.Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := engine.WriteRecording(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runVerify(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open recording: %v", err)
	}
	defer f.Close()

	rec, err := engine.ReadRecording(f)
	if err != nil {
		log.Fatalf("Failed to read recording: %v", err)
	}

	score, err := verify(rec)
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}
	log.Printf("Recording verified: %d commands, score %d\n", len(rec.Commands), score)
}
