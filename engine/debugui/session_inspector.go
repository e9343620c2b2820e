package debugui

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// SnapshotSource supplies the state the inspector draws. *engine.Driver
// implements it.
type SnapshotSource interface {
	Snapshot() engine.Snapshot
}

type SessionInspector struct {
	source   SnapshotSource
	cellSize float32
}

func NewSessionInspector(source SnapshotSource) *SessionInspector {
	return &SessionInspector{source: source, cellSize: 12}
}

// Vec4 converts a presentation color to ImGui's normalized form.
func Vec4(c color.RGBA) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

// CellColor returns the fill for a field cell; empty cells are dark grey.
func CellColor(c engine.Cell) imgui.Vec4 {
	k := engine.Kind(c)
	if !k.Valid() {
		return imgui.NewVec4(0.12, 0.12, 0.12, 1)
	}
	return Vec4(k.Color())
}

func (si *SessionInspector) Render() {
	snap := si.source.Snapshot()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 520), imgui.CondOnce)

	if !imgui.BeginV("Session Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if snap.GameOver {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	if snap.Active != nil {
		imgui.Text(fmt.Sprintf("Active: %s at (%d, %d), lands at y=%d", snap.Active.Kind, snap.Active.Pos.X, snap.Active.Pos.Y, snap.GhostY))
	} else {
		imgui.Text("Active: none")
	}

	imgui.Separator()
	si.drawField(snap)

	imgui.Separator()
	renderStats(snap.Stats)

	imgui.End()
}

func (si *SessionInspector) drawField(snap engine.Snapshot) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	size := si.cellSize
	ghost := imgui.ColorU32Vec4(imgui.NewVec4(1, 1, 1, 0.5))

	for y := range engine.FieldHeight {
		for x := range engine.FieldWidth {
			topLeft := imgui.NewVec2(origin.X+float32(x)*size, origin.Y+float32(y)*size)
			bottomRight := imgui.NewVec2(topLeft.X+size-1, topLeft.Y+size-1)

			c, _ := snap.CellAt(x, y)
			drawList.AddRectFilled(topLeft, bottomRight, imgui.ColorU32Vec4(CellColor(c)))
			if c == engine.Empty && snap.GhostAt(x, y) {
				drawList.AddRect(topLeft, bottomRight, ghost)
			}
		}
	}

	imgui.Dummy(imgui.NewVec2(size*engine.FieldWidth, size*engine.FieldHeight))
}

func renderStats(stats engine.StatsSnapshot) {
	imgui.Text(fmt.Sprintf("Pieces placed: %d", stats.PiecesPlaced))
	imgui.Text(fmt.Sprintf("Lines cleared: %d", stats.LinesCleared))
	imgui.Text(fmt.Sprintf("Best clear: %d", stats.BestClear))

	if imgui.TreeNodeStr("Spawned Pieces") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for _, k := range engine.Kinds {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.TextColored(Vec4(k.Color()), k.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Spawned[k]))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Clear Sizes") {
		most := 0
		for _, n := range stats.Clears {
			most = max(most, n)
		}
		for _, rows := range stats.ClearSizes() {
			n := stats.Clears[rows]
			imgui.Text(fmt.Sprintf("%d rows: %d", rows, n))
			if most > 0 {
				barWidth := float32(n) / float32(most) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
				imgui.NewLine()
			}
		}
		imgui.TreePop()
	}
}
