package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tanks/systems"
	"github.com/pthm-cable/tanks/ui"
)

// keyBindings maps raylib keys onto the logical driving keys. Keep it in
// step with systems.DriveBindings, which labels them in the controls panel.
var keyBindings = []struct {
	raylib int32
	key    systems.Key
}{
	{rl.KeyLeft, systems.KeyLeft},
	{rl.KeyA, systems.KeyLeft},
	{rl.KeyRight, systems.KeyRight},
	{rl.KeyD, systems.KeyRight},
	{rl.KeyUp, systems.KeyUp},
	{rl.KeyW, systems.KeyUp},
}

// readKeys snapshots the held driving keys.
func readKeys() systems.KeySet {
	var keys systems.KeySet
	for _, b := range keyBindings {
		if rl.IsKeyDown(b.raylib) {
			keys = keys.With(b.key)
		}
	}
	return keys
}

// handleInput processes keyboard input that is not driving.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyC) {
		mode := g.pipeline.ToggleCamera()
		slog.Info("camera mode", "mode", mode.String())
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.ResetTanks()
	}

	for _, id := range g.overlays.HandleInput() {
		if id == ui.OverlayInspector {
			g.inspector.Toggle()
		}
	}
	query := g.names.Query()
	entries := query.Count()
	query.Close()
	g.inspector.HandleInput(entries)
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.inspector.Resize(w, h)
	g.perfPanel.SetPosition(w-270, h-150)
	g.controls.SetPosition(w-210, 170)
}
