package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
)

// opForKey maps a key press to the intent it stands for.
func opForKey(ev *tcell.EventKey) (engine.Op, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return engine.OpMoveLeft, true
	case tcell.KeyRight:
		return engine.OpMoveRight, true
	case tcell.KeyDown:
		return engine.OpSoftDrop, true
	case tcell.KeyUp:
		return engine.OpRotateCW, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'h':
			return engine.OpMoveLeft, true
		case 'l':
			return engine.OpMoveRight, true
		case 'j':
			return engine.OpSoftDrop, true
		case 'k', 'x':
			return engine.OpRotateCW, true
		case 'z':
			return engine.OpRotateCCW, true
		case ' ':
			return engine.OpHardDrop, true
		case 'r':
			return engine.OpRestart, true
		}
	}
	return engine.OpNone, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return unicode.ToLower(ev.Rune()) == 'q'
	}
	return false
}
