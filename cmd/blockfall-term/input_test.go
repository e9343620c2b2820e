package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

func TestOpForKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want engine.Op
		ok   bool
	}{
		{"left arrow", tcell.KeyLeft, 0, engine.OpMoveLeft, true},
		{"right arrow", tcell.KeyRight, 0, engine.OpMoveRight, true},
		{"down arrow", tcell.KeyDown, 0, engine.OpSoftDrop, true},
		{"up arrow", tcell.KeyUp, 0, engine.OpRotateCW, true},
		{"h", tcell.KeyRune, 'h', engine.OpMoveLeft, true},
		{"L", tcell.KeyRune, 'L', engine.OpMoveRight, true},
		{"z", tcell.KeyRune, 'z', engine.OpRotateCCW, true},
		{"x", tcell.KeyRune, 'x', engine.OpRotateCW, true},
		{"space", tcell.KeyRune, ' ', engine.OpHardDrop, true},
		{"r", tcell.KeyRune, 'r', engine.OpRestart, true},
		{"unbound rune", tcell.KeyRune, 'p', engine.OpNone, false},
		{"unbound key", tcell.KeyF5, 0, engine.OpNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := opForKey(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, op)
		})
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone)))
	assert.False(t, isQuit(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
}
