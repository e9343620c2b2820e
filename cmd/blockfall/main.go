// Command blockfall plays blockfall in a window. F1 toggles a debug overlay
// with a session inspector, command latencies and manual controls.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/engine/debugui"
	debugui_ebiten "github.com/plus3/blockfall/engine/debugui/ebiten"
)

func main() {
	configPath := flag.String("config", "", "YAML file with engine settings.")
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence (0 picks one).")
	debug := flag.Bool("debug", false, "Show the debug overlay on start.")
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

	driver := engine.NewDriver(engine.NewSession(opts...))
	cmds := engine.NewCommands()

	overlay, controls := debugui.NewDebugOverlay(driver, cmds)
	overlay.SetVisible(*debug)

	width, height := screenSize()
	game := &Game{
		driver:   driver,
		cmds:     cmds,
		imgui:    debugui_ebiten.NewImguiBackend("blockfall", width, height, overlay),
		controls: controls,
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game failed: %v", err)
	}

	snap := driver.Snapshot()
	log.Printf("Final score %d, %d lines\n", snap.Score, snap.Stats.LinesCleared)
}
