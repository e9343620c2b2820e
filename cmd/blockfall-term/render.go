package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
)

// Each field cell takes two terminal columns so blocks look square.
const (
	cellWidth = 2
	originX   = 1
	originY   = 1
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	valueStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func rgb(k engine.Kind) tcell.Color {
	c := k.Color()
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blockStyle fills a cell with the color of kind c.
func blockStyle(c engine.Cell) tcell.Style {
	return tcell.StyleDefault.Background(rgb(engine.Kind(c)))
}

func ghostStyle(k engine.Kind) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(k))
}

// panelX is the first column right of the well.
func panelX() int {
	return originX + engine.FieldWidth*cellWidth + 3
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// draw renders snap: the well with its border, the landing outline, the
// active piece and a side panel with the score.
func draw(screen tcell.Screen, snap engine.Snapshot) {
	screen.Clear()

	height := len(snap.Field)
	right := originX + engine.FieldWidth*cellWidth
	bottom := originY + height

	for y := originY; y < bottom; y++ {
		screen.SetContent(originX-1, y, '│', nil, borderStyle)
		screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := originX; x < right; x++ {
		screen.SetContent(x, originY-1, '─', nil, borderStyle)
		screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	screen.SetContent(originX-1, originY-1, '┌', nil, borderStyle)
	screen.SetContent(right, originY-1, '┐', nil, borderStyle)
	screen.SetContent(originX-1, bottom, '└', nil, borderStyle)
	screen.SetContent(right, bottom, '┘', nil, borderStyle)

	for y := 0; y < height; y++ {
		for x := 0; x < engine.FieldWidth; x++ {
			sx, sy := originX+x*cellWidth, originY+y
			c, _ := snap.CellAt(x, y)
			switch {
			case c != engine.Empty:
				screen.SetContent(sx, sy, ' ', nil, blockStyle(c))
				screen.SetContent(sx+1, sy, ' ', nil, blockStyle(c))
			case snap.GhostAt(x, y):
				style := ghostStyle(snap.Active.Kind)
				screen.SetContent(sx, sy, '[', nil, style)
				screen.SetContent(sx+1, sy, ']', nil, style)
			default:
				screen.SetContent(sx, sy, ' ', nil, emptyStyle)
				screen.SetContent(sx+1, sy, '.', nil, emptyStyle)
			}
		}
	}

	drawPanel(screen, snap)
}

func drawPanel(screen tcell.Screen, snap engine.Snapshot) {
	x, y := panelX(), originY

	drawText(screen, x, y, labelStyle, "SCORE")
	drawText(screen, x, y+1, valueStyle, fmt.Sprint(snap.Score))
	drawText(screen, x, y+3, labelStyle, "LINES")
	drawText(screen, x, y+4, valueStyle, fmt.Sprint(snap.Stats.LinesCleared))
	drawText(screen, x, y+6, labelStyle, "PIECES")
	drawText(screen, x, y+7, valueStyle, fmt.Sprint(snap.Stats.PiecesPlaced))

	if snap.GameOver {
		drawText(screen, x, y+9, overStyle, "GAME OVER")
		drawText(screen, x, y+10, labelStyle, "r to restart")
	}

	help := []string{
		"←/→  move",
		"↑ z  rotate",
		"↓    soft drop",
		"spc  hard drop",
		"r    restart",
		"q    quit",
	}
	for i, line := range help {
		drawText(screen, x, y+13+i, labelStyle, line)
	}
}
