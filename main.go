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
	headless := flag.Bool("headless", false, "Run without graphics, driven by the configured input script")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited, or the script length when headless)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output perf stats via slog")
	camera := flag.String("camera", "", "Camera mode: focus or trail (empty = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	opts := game.Options{
		Headless:  *headless,
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Camera:    *camera,
	}

	if *headless {
		// No raylib window; the input script stands in for the keyboard.
		g, err := game.NewGame(cfg, opts)
		if err != nil {
			slog.Error("failed to start", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		limit := *maxFrames
		if limit == 0 {
			limit = cfg.Derived.ScriptLen
		}
		slog.Info("starting headless run", "max_frames", limit, "script_frames", cfg.Derived.ScriptLen)

		for int(g.Frame()) < limit {
			g.UpdateHeadless()
		}
		return
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	// Escape clears the inspector selection instead of quitting.
	rl.SetExitKey(rl.KeyNull)

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxFrames > 0 && int(g.Frame()) >= *maxFrames {
			break
		}
	}
}
