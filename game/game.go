// Package game wires the scene, systems, renderer and panels into a
// frame loop.
package game

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/tanks/components"
	"github.com/pthm-cable/tanks/config"
	"github.com/pthm-cable/tanks/inspect"
	"github.com/pthm-cable/tanks/inspector"
	"github.com/pthm-cable/tanks/renderer"
	"github.com/pthm-cable/tanks/scene"
	"github.com/pthm-cable/tanks/systems"
	"github.com/pthm-cable/tanks/telemetry"
	"github.com/pthm-cable/tanks/ui"
)

// Options controls how a game runs.
type Options struct {
	Headless  bool
	LogStats  bool
	OutputDir string
	Camera    string // overrides the configured camera mode when set
}

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	scene *scene.Scene

	pipeline *systems.Pipeline
	script   *systems.Script
	tanks    *ecs.Filter2[components.Transform, components.TankControllable]
	names    *ecs.Filter1[components.Name]
	lookups  []componentLookup
	spawns   map[ecs.Entity]components.Transform

	// Telemetry
	perf      *telemetry.PerfCollector
	tracker   *telemetry.Tracker
	output    *telemetry.OutputManager
	logStats  bool
	lastKeys  systems.KeySet
	perfEvery int32

	// Rendering, nil when headless
	renderer  *renderer.Renderer
	inspector *inspector.Inspector
	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	controls  *ui.ControlsPanel
	overlays  *ui.OverlayRegistry

	frame  int32
	paused bool

	screenWidth, screenHeight int32
}

// NewGame builds the scene described by cfg.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	mode := cfg.Camera.Mode
	if opts.Camera != "" {
		mode = opts.Camera
	}
	cameraMode, err := systems.ParseCameraMode(mode)
	if err != nil {
		return nil, err
	}

	script, err := buildScript(cfg.Headless.Script)
	if err != nil {
		return nil, fmt.Errorf("headless script: %w", err)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	world := ecs.NewWorld()
	g := &Game{
		cfg:   cfg,
		world: world,
		scene: scene.Build(world, cfg),
		pipeline: systems.NewPipeline(world, systems.PipelineConfig{
			Speed:        cfg.Tank.Speed,
			TurnStep:     cfg.Tank.TurnStep,
			Camera:       cameraMode,
			ChunkStep:    cfg.Chunks.Step,
			ChunkWrapMin: cfg.Chunks.WrapMin,
			ChunkWrapMax: cfg.Chunks.WrapMax,
			Curve:        cfg.Curve,
		}),
		script:    script,
		tanks:     ecs.NewFilter2[components.Transform, components.TankControllable](world),
		names:     ecs.NewFilter1[components.Name](world),
		lookups:   componentLookups(world),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		tracker:   telemetry.NewTracker(cfg.Telemetry.SampleInterval),
		output:    output,
		logStats:  opts.LogStats,
		perfEvery: int32(max(cfg.Telemetry.LogInterval, 1)),

		screenWidth:  int32(cfg.Screen.Width),
		screenHeight: int32(cfg.Screen.Height),
	}
	g.pipeline.SetTimer(g.perf)
	g.spawns = g.tankTransforms()

	if !opts.Headless {
		g.renderer = renderer.NewRenderer(world, cfg)
		g.inspector = inspector.NewInspector(g.screenWidth, g.screenHeight, inspect.Data{
			ShouldRender: cfg.Inspector.ShouldRender,
			Text:         cfg.Inspector.Text,
			Size:         float32(cfg.Inspector.Size),
		}, cfg.Inspector.Visible)
		g.hud = ui.NewHUD()
		g.perfPanel = ui.NewPerfPanel(g.screenWidth-270, g.screenHeight-150)
		g.controls = ui.NewControlsPanel(g.screenWidth-210, 170, 200)
		g.overlays = ui.NewOverlayRegistry()
		g.overlays.SetEnabled(ui.OverlayInspector, cfg.Inspector.Visible)
		g.overlays.SetEnabled(ui.OverlayDebugLines, true)
		g.overlays.SetEnabled(ui.OverlayControls, true)
		g.overlays.SetEnabled(ui.OverlayShadows, cfg.Light.ShadowsEnabled)
	}

	slog.Info("game ready",
		"camera", cameraMode.String(),
		"headless", opts.Headless,
		"script_frames", script.Len(),
		"output_dir", output.Dir(),
	)
	return g, nil
}

func buildScript(steps []config.ScriptStep) (*systems.Script, error) {
	parsed := make([]systems.Step, 0, len(steps))
	for i, st := range steps {
		step, err := systems.ParseStep(st.Frames, st.Keys)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		parsed = append(parsed, step)
	}
	return systems.NewScript(parsed...), nil
}

// Frame returns the number of simulated frames.
func (g *Game) Frame() int32 {
	return g.frame
}

// Unload logs the run summary and releases resources.
func (g *Game) Unload() {
	slog.Info("run finished", "frames", g.frame, "track", g.tracker.Summary(), "perf", g.perf.Stats())
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	if g.renderer != nil {
		g.renderer.Unload()
	}
}
