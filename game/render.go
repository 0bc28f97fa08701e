package game

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tanks/telemetry"
	"github.com/pthm-cable/tanks/ui"
)

var colorSky = rl.Color{R: 135, G: 180, B: 220, A: 255}

// Update reads input and advances one frame unless paused.
func (g *Game) Update() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseInput)
	g.handleInput()
	keys := readKeys()
	if !g.paused {
		g.step(keys)
	}
}

// Draw renders the scene and the panels, then closes the frame's timing.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	rl.ClearBackground(colorSky)

	g.renderer.DebugLines = g.overlays.IsEnabled(ui.OverlayDebugLines)
	g.renderer.Shadows = g.overlays.IsEnabled(ui.OverlayShadows)
	g.renderer.Draw()

	g.hud.Draw(g.hudData())
	g.inspector.Draw(g.entries(), g.componentsOf)
	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.Draw(g.perf.Stats())
	}
	if g.overlays.IsEnabled(ui.OverlayControls) {
		g.controls.Draw(g.overlays)
	}

	rl.EndDrawing()

	g.perf.EndTick()
	g.perf.RecordFrame()
}

func (g *Game) hudData() ui.HUDData {
	data := ui.HUDData{
		Title:        g.cfg.Screen.Title,
		Frame:        g.frame,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		Camera:       g.pipeline.CameraMode().String(),
		Keys:         g.lastKeys.String(),
		ScreenWidth:  g.screenWidth,
		ScreenHeight: g.screenHeight,
	}
	if tr, tank, ok := g.firstTank(); ok {
		data.HasTank = true
		data.TankX = tr.Translation.X
		data.TankY = tr.Translation.Y
		data.TankZ = tr.Translation.Z
		data.Angle = tank.Angle
	}
	panel := g.inspector.Data()
	data.ShowBanner = panel.ShouldRender
	data.Banner = panel.Text
	data.BannerSize = panel.Size
	return data
}

// Snapshot renders the 3D scene into an offscreen texture and writes it to
// path as PNG. It needs a raylib window.
func (g *Game) Snapshot(path string) error {
	if g.renderer == nil {
		return errors.New("snapshot: game is headless")
	}

	target := rl.LoadRenderTexture(g.screenWidth, g.screenHeight)
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(colorSky)
	g.renderer.Draw()
	rl.EndTextureMode()

	// Flip to undo the OpenGL bottom-up row order
	img := rl.LoadImageFromTexture(target.Texture)
	defer rl.UnloadImage(img)
	rl.ImageFlipVertical(img)

	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("snapshot: exporting %s", path)
	}
	return nil
}
