package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/engine"
)

// Auto-repeat timing for held keys, in ticks.
const (
	repeatDelay = 10
	repeatEvery = 3
)

type binding struct {
	key    ebiten.Key
	op     engine.Op
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyLeft, engine.OpMoveLeft, true},
	{ebiten.KeyRight, engine.OpMoveRight, true},
	{ebiten.KeyDown, engine.OpSoftDrop, true},
	{ebiten.KeyUp, engine.OpRotateCW, false},
	{ebiten.KeyX, engine.OpRotateCW, false},
	{ebiten.KeyZ, engine.OpRotateCCW, false},
	{ebiten.KeySpace, engine.OpHardDrop, false},
	{ebiten.KeyR, engine.OpRestart, false},
}

// fires reports whether a key held for d ticks triggers its op this tick. A
// press fires once; repeating keys fire again after repeatDelay ticks and then
// every repeatEvery ticks.
func fires(d int, repeat bool) bool {
	switch {
	case d == 1:
		return true
	case !repeat || d <= repeatDelay:
		return false
	default:
		return (d-repeatDelay)%repeatEvery == 1
	}
}

// queueInput pushes the ops of every key that fires this tick. pressed
// returns how many ticks a key has been held, as inpututil.KeyPressDuration.
func queueInput(cmds *engine.Commands, pressed func(ebiten.Key) int) {
	for _, b := range bindings {
		if fires(pressed(b.key), b.repeat) {
			cmds.Push(engine.Intent(b.op))
		}
	}
}
