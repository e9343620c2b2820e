package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// Controls is a window of buttons that queue commands into a buffer the game
// loop flushes. Paused is read by the game loop to withhold gravity ticks.
type Controls struct {
	cmds   *engine.Commands
	Paused bool
}

func NewControls(cmds *engine.Commands) *Controls {
	return &Controls{cmds: cmds}
}

func (c *Controls) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(320, 440), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 170), imgui.CondOnce)

	if !imgui.BeginV("Controls", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Pause gravity", &c.Paused)
	if c.Paused {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	}

	imgui.Separator()
	if imgui.Button("Left") {
		c.cmds.MoveLeft()
	}
	imgui.SameLine()
	if imgui.Button("Right") {
		c.cmds.MoveRight()
	}
	imgui.SameLine()
	if imgui.Button("Soft Drop") {
		c.cmds.SoftDrop()
	}

	if imgui.Button("Rotate CW") {
		c.cmds.RotateClockwise()
	}
	imgui.SameLine()
	if imgui.Button("Rotate CCW") {
		c.cmds.RotateCounterClockwise()
	}

	if imgui.Button("Hard Drop") {
		c.cmds.HardDrop()
	}

	imgui.Separator()
	imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
	imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.8, 0.3, 0.3, 1.0))
	imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.6, 0.1, 0.1, 1.0))
	if imgui.Button("Restart") {
		c.cmds.Restart()
	}
	imgui.PopStyleColor()
	imgui.PopStyleColor()
	imgui.PopStyleColor()

	imgui.End()
}
