// Scene snapshot tool - drives the scene with the configured input script
// in a hidden window and writes the final frame to a PNG file.
//
// Usage: go run ./cmd/scenesnap -frames 200 -camera trail -out scene.png
package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tanks/config"
	"github.com/pthm-cable/tanks/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "scene.png", "Output PNG path")
	frames := flag.Int("frames", 0, "Frames to simulate before the snapshot (0 = script length)")
	camera := flag.String("camera", "", "Camera mode: focus or trail (empty = use config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Scene Snapshot")
	defer rl.CloseWindow()

	g, err := game.NewGame(cfg, game.Options{Camera: *camera})
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	n := *frames
	if n == 0 {
		n = cfg.Derived.ScriptLen
	}
	for int(g.Frame()) < n {
		g.UpdateHeadless()
	}

	if err := g.Snapshot(*outPath); err != nil {
		slog.Error("snapshot failed", "error", err)
		os.Exit(1)
	}
	slog.Info("scene rendered", "path", *outPath, "frame", g.Frame(), "width", cfg.Screen.Width, "height", cfg.Screen.Height)
}
