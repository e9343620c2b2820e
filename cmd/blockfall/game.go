package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/engine/debugui"
	debugui_ebiten "github.com/plus3/blockfall/engine/debugui/ebiten"
)

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x14, 0xff}
	wellColor       = color.RGBA{0x1e, 0x1e, 0x24, 0xff}
	gridColor       = color.RGBA{0x2a, 0x2a, 0x32, 0xff}
	overColor       = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// Game implements ebiten.Game. The driver is stepped synchronously: input,
// overlay buttons and the gravity tick all go through one Commands buffer
// that is flushed once per Update.
type Game struct {
	driver   *engine.Driver
	cmds     *engine.Commands
	imgui    *debugui_ebiten.ImguiBackend
	controls *debugui.Controls

	// elapsed is game time; it stands still while gravity is paused.
	elapsed time.Duration
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.imgui.Overlay.Toggle()
	}

	// Build the ImGui frame first; its buttons queue into g.cmds.
	g.imgui.Update()

	if !g.imgui.WantsKeyboard() {
		queueInput(g.cmds, inpututil.KeyPressDuration)
	}

	if !g.controls.Paused {
		g.elapsed += time.Second / time.Duration(ebiten.TPS())
		g.cmds.Tick(g.elapsed)
	}

	g.cmds.Flush(g.driver)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.driver.Snapshot()
	drawWell(screen, snap)
	drawPanel(screen, snap)

	g.imgui.DrawOverlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := screenSize()
	g.imgui.Layout(w, h)
	return w, h
}

func drawWell(screen *ebiten.Image, snap engine.Snapshot) {
	x0, y0 := cellOrigin(0, 0)
	w, h := float32(engine.FieldWidth*cellSize), float32(len(snap.Field)*cellSize)
	vector.DrawFilledRect(screen, x0, y0, w, h, wellColor, false)

	for y := range snap.Field {
		for x := range snap.Field[y] {
			sx, sy := cellOrigin(x, y)
			c, _ := snap.CellAt(x, y)
			switch {
			case c != engine.Empty:
				vector.DrawFilledRect(screen, sx+1, sy+1, cellSize-2, cellSize-2, engine.Kind(c).Color(), false)
			case snap.GhostAt(x, y):
				vector.StrokeRect(screen, sx+2, sy+2, cellSize-4, cellSize-4, 2, snap.Active.Kind.Color(), false)
			default:
				vector.StrokeRect(screen, sx, sy, cellSize, cellSize, 1, gridColor, false)
			}
		}
	}

	if snap.GameOver {
		vector.DrawFilledRect(screen, x0, y0, w, h, overColor, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", int(x0+w/2)-27, int(y0+h/2)-8)
		ebitenutil.DebugPrintAt(screen, "press R to restart", int(x0+w/2)-54, int(y0+h/2)+8)
	}
}

func drawPanel(screen *ebiten.Image, snap engine.Snapshot) {
	x, y := panelOrigin()
	ebitenutil.DebugPrintAt(screen, panelText(snap), x, y)
}

func panelText(snap engine.Snapshot) string {
	piece := "-"
	if snap.Active != nil {
		piece = snap.Active.Kind.String()
	}
	return fmt.Sprintf(
		"SCORE  %d\nLINES  %d\nPIECES %d\nPIECE  %s\n\n"+
			"arrows  move / rotate\nz x     rotate\nspace   hard drop\nr       restart\nF1      debug\nq esc   quit",
		snap.Score, snap.Stats.LinesCleared, snap.Stats.PiecesPlaced, piece,
	)
}
