// Package config provides configuration loading and access for the scene.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/tanks/geom"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Camera modes.
const (
	CameraFocus = "focus" // fixed camera that turns to look at the tank
	CameraTrail = "trail" // camera that follows behind the tank
)

// Config holds all scene configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Light     LightConfig     `yaml:"light"`
	Camera    CameraConfig    `yaml:"camera"`
	Tank      TankConfig      `yaml:"tank"`
	Ground    GroundConfig    `yaml:"ground"`
	Chunks    ChunksConfig    `yaml:"chunks"`
	Curve     geom.Curve      `yaml:"curve"`
	Assets    AssetsConfig    `yaml:"assets"`
	Inspector InspectorConfig `yaml:"inspector"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Headless  HeadlessConfig  `yaml:"headless"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// LightConfig holds ambient and directional light settings.
type LightConfig struct {
	AmbientColor      [3]uint8 `yaml:"ambient_color"`
	AmbientBrightness float64  `yaml:"ambient_brightness"`
	HalfSize          float64  `yaml:"half_size"` // shadow projection half extent
	ShadowsEnabled    bool     `yaml:"shadows_enabled"`
	Illuminance       float64  `yaml:"illuminance"`
}

// CameraConfig holds camera placement and tracking parameters.
type CameraConfig struct {
	Mode          string     `yaml:"mode"` // focus or trail
	Start         [3]float64 `yaml:"start"`
	FovY          float64    `yaml:"fov_y"`
	TrailDistance float64    `yaml:"trail_distance"`
	TrailOffset   float64    `yaml:"trail_offset"` // degrees added to the tank heading
	TrailHeight   float64    `yaml:"trail_height"`
}

// TankConfig holds driving parameters.
type TankConfig struct {
	Speed    float64 `yaml:"speed"`     // units per frame while forward is held
	TurnStep int     `yaml:"turn_step"` // degrees per frame while turning
}

// GroundConfig holds the static ground plane.
type GroundConfig struct {
	Size   float64  `yaml:"size"`
	Height float64  `yaml:"height"`
	Color  [3]uint8 `yaml:"color"`
}

// ChunksConfig holds the scrolling terrain parameters.
// Chunk lateral positions live in [WrapMin, WrapMax).
type ChunksConfig struct {
	Count   int      `yaml:"count"`
	Step    float64  `yaml:"step"` // lateral distance scrolled per frame
	WrapMin float64  `yaml:"wrap_min"`
	WrapMax float64  `yaml:"wrap_max"`
	Size    float64  `yaml:"size"`
	Color   [3]uint8 `yaml:"color"`
}

// AssetsConfig holds model paths and placements.
type AssetsConfig struct {
	Dir       string      `yaml:"dir"`
	Models    []ModelSpec `yaml:"models"`
	MarkerRGB [3]uint8    `yaml:"marker_color"`
}

// ModelSpec places one model in the scene.
type ModelSpec struct {
	Name     string     `yaml:"name"`
	File     string     `yaml:"file"`
	Position [3]float64 `yaml:"position"`
	Tank     bool       `yaml:"tank"` // driven by the keyboard
}

// InspectorConfig holds the initial inspector state.
type InspectorConfig struct {
	Visible      bool    `yaml:"visible"`
	ShouldRender bool    `yaml:"should_render"`
	Text         string  `yaml:"text"`
	Size         float64 `yaml:"size"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow     int `yaml:"perf_window"`     // frames averaged by the perf collector
	SampleInterval int `yaml:"sample_interval"` // frames between tank samples
	LogInterval    int `yaml:"log_interval"`    // frames between perf log lines
}

// HeadlessConfig holds the scripted input used without a window.
type HeadlessConfig struct {
	Script []ScriptStep `yaml:"script"`
}

// ScriptStep holds a set of keys for a number of frames.
type ScriptStep struct {
	Frames int      `yaml:"frames"`
	Keys   []string `yaml:"keys"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32   float32
	ScreenH32   float32
	ChunkSpan   float64 // WrapMax - WrapMin
	ChunkStride float64 // lateral spacing between neighbouring chunks
	ScriptLen   int     // total frames in the headless script
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the systems cannot run with.
func (c *Config) validate() error {
	switch c.Camera.Mode {
	case CameraFocus, CameraTrail:
	default:
		return fmt.Errorf("camera.mode %q: want %q or %q", c.Camera.Mode, CameraFocus, CameraTrail)
	}
	if c.Chunks.Count < 0 {
		return fmt.Errorf("chunks: negative count %d", c.Chunks.Count)
	}
	if c.Chunks.WrapMax <= c.Chunks.WrapMin {
		return fmt.Errorf("chunks: wrap_max %.2f must exceed wrap_min %.2f", c.Chunks.WrapMax, c.Chunks.WrapMin)
	}
	if c.Chunks.Step < 0 || c.Chunks.Step > c.Chunks.WrapMax-c.Chunks.WrapMin {
		return fmt.Errorf("chunks: step %.2f outside [0, span]", c.Chunks.Step)
	}
	if c.Tank.TurnStep < 0 || c.Tank.TurnStep > 360 {
		return fmt.Errorf("tank: turn_step %d outside [0, 360]", c.Tank.TurnStep)
	}
	for i, step := range c.Headless.Script {
		if step.Frames < 0 {
			return fmt.Errorf("headless.script[%d]: negative frames", i)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	c.Derived.ChunkSpan = c.Chunks.WrapMax - c.Chunks.WrapMin
	if c.Chunks.Count > 0 {
		c.Derived.ChunkStride = c.Derived.ChunkSpan / float64(c.Chunks.Count)
	}

	c.Derived.ScriptLen = 0
	for _, step := range c.Headless.Script {
		c.Derived.ScriptLen += step.Frames
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
