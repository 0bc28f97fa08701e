package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, CameraFocus, cfg.Camera.Mode)
	assert.Equal(t, 0.25, cfg.Tank.Speed)
	assert.Equal(t, 2, cfg.Tank.TurnStep)
	assert.Equal(t, 15.0, cfg.Camera.TrailDistance)
	assert.Equal(t, 270.0, cfg.Camera.TrailOffset)
	assert.Equal(t, 0.3, cfg.Chunks.Step)
	assert.Equal(t, -1.3, cfg.Curve.GroundHeight)
	assert.InDelta(t, -1.0/300.0, cfg.Curve.A, 1e-15)
	require.Len(t, cfg.Assets.Models, 2)
	assert.True(t, cfg.Assets.Models[1].Tank)
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 200.0, cfg.Derived.ChunkSpan)
	assert.Equal(t, 50.0, cfg.Derived.ChunkStride)
	assert.Equal(t, float32(1280), cfg.Derived.ScreenW32)
	assert.Equal(t, 375, cfg.Derived.ScriptLen)
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	path := writeFile(t, "camera:\n  mode: trail\ntank:\n  speed: 0.5\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, CameraTrail, cfg.Camera.Mode)
	assert.Equal(t, 0.5, cfg.Tank.Speed)
	// untouched
	assert.Equal(t, 2, cfg.Tank.TurnStep)
	assert.Equal(t, 15.0, cfg.Camera.TrailDistance)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad camera mode", "camera:\n  mode: orbit\n"},
		{"negative chunk count", "chunks:\n  count: -1\n"},
		{"inverted wrap", "chunks:\n  wrap_min: 10\n  wrap_max: 0\n"},
		{"step larger than span", "chunks:\n  step: 500\n"},
		{"turn step", "tank:\n  turn_step: 400\n"},
		{"negative frames", "headless:\n  script:\n    - frames: -1\n"},
		{"malformed yaml", "camera: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Tank.Speed = 1.5

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.5, loaded.Tank.Speed)
	assert.Equal(t, cfg.Curve, loaded.Curve)
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() { global = saved }()

	assert.Panics(t, func() { Cfg() })
	MustInit("")
	assert.NotNil(t, Cfg())
}
