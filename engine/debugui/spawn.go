package debugui

import "github.com/plus3/blockfall/engine"

// NewDebugOverlay builds the standard overlay for a driver: session inspector,
// driver stats and controls that queue into cmds. The overlay starts hidden.
func NewDebugOverlay(driver *engine.Driver, cmds *engine.Commands) (*Overlay, *Controls) {
	controls := NewControls(cmds)
	overlay := NewOverlay(
		Item{Render: NewSessionInspector(driver).Render},
		Item{Render: NewDriverStatsWindow(driver, 120).Render},
		Item{Render: controls.Render},
	)
	return overlay, controls
}
