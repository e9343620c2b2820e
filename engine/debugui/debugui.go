// Package debugui provides Dear ImGui windows for inspecting a running game:
// the session's field and counters, the driver's per-op timings and a panel of
// controls that queue commands.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Item holds a Dear ImGui render function. Add items to an Overlay to have
// them drawn every frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Front-ends check it before treating key presses as game input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is a toggleable set of ImGui windows.
type Overlay struct {
	items   []Item
	visible bool
	input   InputState
}

func NewOverlay(items ...Item) *Overlay {
	return &Overlay{items: items}
}

// Add appends an item. Items render in the order they were added.
func (o *Overlay) Add(item Item) {
	o.items = append(o.items, item)
}

func (o *Overlay) Visible() bool {
	return o.visible
}

func (o *Overlay) SetVisible(v bool) {
	o.visible = v
	if !v {
		o.input = InputState{}
	}
}

func (o *Overlay) Toggle() {
	o.SetVisible(!o.visible)
}

// InputState returns the capture state recorded by the last Render.
func (o *Overlay) InputState() InputState {
	return o.input
}

// Render updates the input state and calls every item. It must run between the
// backend's BeginFrame and EndFrame. A hidden overlay draws nothing.
func (o *Overlay) Render() {
	if !o.visible {
		return
	}

	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		if item.Render != nil {
			item.Render()
		}
	}
}
