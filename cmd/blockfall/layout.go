package main

import "github.com/plus3/blockfall/engine"

const (
	cellSize   = 30
	margin     = 20
	panelWidth = 180
)

// screenSize is the logical size of the game screen.
func screenSize() (width, height int) {
	width = margin + engine.FieldWidth*cellSize + margin + panelWidth
	height = margin + engine.FieldHeight*cellSize + margin
	return width, height
}

// cellOrigin returns the top-left screen corner of field cell (x, y).
func cellOrigin(x, y int) (float32, float32) {
	return float32(margin + x*cellSize), float32(margin + y*cellSize)
}

// panelOrigin is the top-left corner of the text panel right of the well.
func panelOrigin() (int, int) {
	return margin + engine.FieldWidth*cellSize + margin, margin
}
