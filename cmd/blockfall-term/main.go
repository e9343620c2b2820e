// Command blockfall-term plays blockfall in a terminal.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/script"
)

const (
	// tickInterval is how often the driver stamps a gravity tick. The session
	// decides from the elapsed time whether a tick actually drops the piece.
	tickInterval  = 16 * time.Millisecond
	frameInterval = 16 * time.Millisecond
)

func main() {
	configPath := flag.String("config", "", "YAML file with engine settings.")
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence (0 picks one).")
	botName := flag.String("bot", "", `Let a bot play: "greedy" or the path of a Lua script.`)
	botDelay := flag.Duration("bot-delay", 300*time.Millisecond, "Pause between two bot decisions.")
	mute := flag.Bool("mute", false, "Disable sound.")
	flag.Parse()

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

	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if !*mute {
		snd, err := newSounds()
		if err != nil {
			// Non-fatal, the game runs without sound.
			log.Printf("Audio initialization failed: %v", err)
		}
		opts = append(opts, engine.WithListener(snd))
	}

	var bot *script.Bot
	if *botName != "" {
		if bot, err = loadBot(*botName); err != nil {
			log.Fatalf("Failed to load bot: %v", err)
		}
		defer bot.Close()
		kicks, _ := engine.KickPolicyByName(cfg.Kicks)
		bot.SetKickPolicy(kicks)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	screen.HideCursor()

	driver := engine.NewDriver(engine.NewSession(opts...))
	err = run(screen, driver, bot, *botDelay)
	screen.Fini()

	if err != nil {
		log.Fatalf("Bot failed: %v", err)
	}
	snap := driver.Snapshot()
	log.Printf("Final score %d, %d lines\n", snap.Score, snap.Stats.LinesCleared)
}

func loadBot(name string) (*script.Bot, error) {
	if name == "greedy" {
		return script.Greedy()
	}
	return script.LoadFile(name)
}

// run drives the game until the player quits. Key presses are submitted to
// the driver from the event goroutine; the screen is redrawn from the latest
// snapshot every frame. A non-nil bot plays alongside the keyboard.
func run(screen tcell.Screen, driver *engine.Driver, bot *script.Bot, botDelay time.Duration) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go driver.Run(ctx, tickInterval)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	botErr := make(chan error, 1)
	if bot != nil {
		go func() {
			botErr <- playBot(ctx, driver, bot, botDelay)
		}()
	}

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if op, ok := opForKey(ev); ok {
					driver.Submit(engine.Intent(op))
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case err := <-botErr:
			if err != nil {
				return err
			}

		case <-frames.C:
			draw(screen, driver.Snapshot())
			screen.Show()
		}
	}
}

// playBot asks bot for a plan once per spawned piece and submits it. It
// returns nil when ctx is cancelled.
func playBot(ctx context.Context, driver *engine.Driver, bot *script.Bot, delay time.Duration) error {
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	planned := -1
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		snap := driver.Snapshot()
		if snap.GameOver {
			planned = -1
			continue
		}
		spawned := 0
		for _, n := range snap.Stats.Spawned {
			spawned += n
		}
		if snap.Active == nil || spawned == planned {
			continue
		}

		ops, err := bot.Decide(ctx, snap)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		for _, op := range ops {
			driver.Submit(engine.Intent(op))
		}
		planned = spawned
	}
}
