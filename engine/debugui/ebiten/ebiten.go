// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/engine/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation
// and draws a debug overlay on top of a game's own frame.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Overlay *debugui.Overlay
}

// NewImguiBackend creates the backend and its window. imgui.ini persistence is
// disabled.
func NewImguiBackend(title string, width, height int, overlay *debugui.Overlay) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{EbitenBackend: backend, Overlay: overlay}
}

// Update runs one ImGui frame around the overlay's windows. Call it from the
// game's Update.
func (b *ImguiBackend) Update() {
	b.BeginFrame()
	b.Overlay.Render()
	b.EndFrame()
}

// DrawOverlay draws the ImGui frame onto screen when the overlay is visible.
func (b *ImguiBackend) DrawOverlay(screen *ebiten.Image) {
	if b.Overlay.Visible() {
		b.Draw(screen)
	}
}

// WantsKeyboard reports whether ImGui has keyboard focus, in which case key
// presses belong to the overlay rather than the game.
func (b *ImguiBackend) WantsKeyboard() bool {
	return b.Overlay.Visible() && b.Overlay.InputState().WantCaptureKeyboard
}
