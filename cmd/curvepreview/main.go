// World curve preview tool - plots chunk depth across the scroll span with
// sliders for the curve coefficients.
//
// Usage: go run ./cmd/curvepreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/tanks/config"
	"github.com/pthm-cable/tanks/geom"
)

const (
	windowWidth  = 1100
	windowHeight = 640
	plotWidth    = 640
	plotHeight   = 460
	panelWidth   = windowWidth - plotWidth - 40
	samples      = 400
)

var (
	colorCurve   = rl.Color{R: 40, G: 120, B: 200, A: 255}
	colorRaw     = rl.Color{R: 200, G: 200, B: 200, A: 255}
	colorChunk   = rl.Color{R: 60, G: 170, B: 90, A: 255}
	colorGroundY = rl.Color{R: 200, G: 90, B: 60, A: 255}
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	defaults := cfg.Curve
	curve := defaults
	lo, hi := cfg.Chunks.WrapMin, cfg.Chunks.WrapMax

	rl.InitWindow(windowWidth, windowHeight, "World Curve Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	offset := 0.0
	scrolling := false

	for !rl.WindowShouldClose() {
		if scrolling {
			offset += cfg.Chunks.Step
			if offset >= cfg.Derived.ChunkSpan {
				offset -= cfg.Derived.ChunkSpan
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		plot := rl.Rectangle{X: 20, Y: 20, Width: plotWidth, Height: plotHeight}
		drawPlot(plot, curve, lo, hi, cfg.Chunks.Count, cfg.Derived.ChunkStride, offset)

		panelX := float32(plotWidth + 40)
		panelY := float32(20)

		rl.DrawText("World Curve", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		curve.A = slider(&panelY, panelX, "A (quadratic)", curve.A, -0.02, 0, "%.5f")
		curve.B = slider(&panelY, panelX, "B (linear)", curve.B, -0.5, 0.5, "%.4f")
		curve.C = slider(&panelY, panelX, "C (constant)", curve.C, -20, 40, "%.2f")
		curve.GroundHeight = slider(&panelY, panelX, "Ground height (cap)", curve.GroundHeight, -10, 0, "%.2f")

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(scrolling, "Stop", "Scroll")) {
			scrolling = !scrolling
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			curve = defaults
			offset = 0
		}
		panelY += 50

		peakY := curve.Vertex()
		rl.DrawText(fmt.Sprintf("Vertex: y=%.2f  raw=%.3f", peakY, curve.Parabola(peakY)), int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		rl.DrawText(fmt.Sprintf("Height(0) = %.3f", curve.Height(0)), int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 30

		out, err := yaml.Marshal(struct {
			Curve geom.Curve `yaml:"curve"`
		}{curve})
		if err != nil {
			out = []byte(err.Error())
		}
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		rl.DrawText(string(out), int32(panelX), int32(panelY)+22, 14, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), windowHeight-30, 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(string(out))
		}

		rl.EndDrawing()
	}
}

// slider draws a labelled slider and advances y.
func slider(y *float32, x float32, label string, value, lo, hi float64, format string) float64 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: panelWidth - 90, Height: 20},
		"", "",
		float32(value), float32(lo), float32(hi),
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+panelWidth-80), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	if float64(v) == float64(float32(value)) {
		// untouched; keep full precision
		return value
	}
	return float64(v)
}

func drawPlot(r rl.Rectangle, curve geom.Curve, lo, hi float64, chunks int, stride, offset float64) {
	rl.DrawRectangleRec(r, rl.White)
	rl.DrawRectangleLinesEx(r, 1, rl.DarkGray)

	// vertical range covers the raw curve and the cap
	zMin, zMax := curve.GroundHeight, curve.GroundHeight
	for i := 0; i <= samples; i++ {
		y := lo + (hi-lo)*float64(i)/samples
		raw := curve.Parabola(y)
		zMin = min(zMin, raw)
		zMax = max(zMax, raw)
	}
	pad := (zMax - zMin) * 0.1
	if pad == 0 {
		pad = 1
	}
	zMin -= pad
	zMax += pad

	toScreen := func(y, z float64) rl.Vector2 {
		return rl.Vector2{
			X: r.X + float32((y-lo)/(hi-lo))*r.Width,
			Y: r.Y + r.Height - float32((z-zMin)/(zMax-zMin))*r.Height,
		}
	}

	ground := toScreen(lo, curve.GroundHeight)
	rl.DrawLineEx(ground, rl.Vector2{X: r.X + r.Width, Y: ground.Y}, 1, colorGroundY)

	prevRaw := toScreen(lo, curve.Parabola(lo))
	prev := toScreen(lo, curve.Height(lo))
	for i := 1; i <= samples; i++ {
		y := lo + (hi-lo)*float64(i)/samples
		raw := toScreen(y, curve.Parabola(y))
		cur := toScreen(y, curve.Height(y))
		rl.DrawLineEx(prevRaw, raw, 1, colorRaw)
		rl.DrawLineEx(prev, cur, 2, colorCurve)
		prevRaw, prev = raw, cur
	}

	// chunk positions as they scroll
	for i := 0; i < chunks; i++ {
		y := lo + float64(i)*stride - offset
		if y < lo {
			y += hi - lo
		}
		rl.DrawCircleV(toScreen(y, curve.Height(y)), 5, colorChunk)
	}

	rl.DrawText(fmt.Sprintf("y: %.0f .. %.0f", lo, hi), int32(r.X), int32(r.Y+r.Height+8), 14, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("z: %.2f .. %.2f", zMin, zMax), int32(r.X+r.Width-150), int32(r.Y+r.Height+8), 14, rl.DarkGray)
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
