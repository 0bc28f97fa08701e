package systems

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/tanks/geom"
)

// Phase names reported to a Timer.
const (
	PhaseTank   = "tank"
	PhaseCamera = "camera"
	PhaseChunks = "chunks"
)

// CameraMode selects which camera system runs.
type CameraMode uint8

const (
	CameraFocus CameraMode = iota
	CameraTrail
)

// String returns the mode name as written in config files.
func (m CameraMode) String() string {
	if m == CameraTrail {
		return "trail"
	}
	return "focus"
}

// ParseCameraMode resolves "focus" or "trail".
func ParseCameraMode(name string) (CameraMode, error) {
	switch name {
	case "focus", "":
		return CameraFocus, nil
	case "trail":
		return CameraTrail, nil
	}
	return 0, fmt.Errorf("unknown camera mode %q", name)
}

// Timer receives phase boundaries. telemetry.PerfCollector satisfies it.
type Timer interface {
	StartPhase(name string)
}

// PipelineConfig holds the tunables of every system.
type PipelineConfig struct {
	Speed    float64
	TurnStep int
	Camera   CameraMode

	ChunkStep    float64
	ChunkWrapMin float64
	ChunkWrapMax float64
	Curve        geom.Curve
}

// Pipeline runs the systems in a fixed order each frame:
// tank input, then the active camera, then the chunk scroller.
type Pipeline struct {
	Tank   *TankInput
	Focus  *FocusCamera
	Trail  *TrailCamera
	Chunks *ChunkScroller

	mode  CameraMode
	timer Timer
}

// NewPipeline creates every system for world.
func NewPipeline(world *ecs.World, cfg PipelineConfig) *Pipeline {
	return &Pipeline{
		Tank:   NewTankInput(world, cfg.Speed, cfg.TurnStep),
		Focus:  NewFocusCamera(world),
		Trail:  NewTrailCamera(world),
		Chunks: NewChunkScroller(world, cfg.ChunkStep, cfg.ChunkWrapMin, cfg.ChunkWrapMax, cfg.Curve),
		mode:   cfg.Camera,
	}
}

// SetTimer installs a phase timer. A nil timer disables timing.
func (p *Pipeline) SetTimer(t Timer) {
	p.timer = t
}

// CameraMode returns the active camera mode.
func (p *Pipeline) CameraMode() CameraMode {
	return p.mode
}

// SetCameraMode switches the camera system.
func (p *Pipeline) SetCameraMode(m CameraMode) {
	p.mode = m
}

// ToggleCamera flips between focus and trail.
func (p *Pipeline) ToggleCamera() CameraMode {
	if p.mode == CameraFocus {
		p.mode = CameraTrail
	} else {
		p.mode = CameraFocus
	}
	return p.mode
}

// Update runs one frame.
func (p *Pipeline) Update(keys Keys) {
	p.phase(PhaseTank)
	p.Tank.Update(keys)

	p.phase(PhaseCamera)
	if p.mode == CameraTrail {
		p.Trail.Update()
	} else {
		p.Focus.Update()
	}

	p.phase(PhaseChunks)
	p.Chunks.Update(keys)
}

func (p *Pipeline) phase(name string) {
	if p.timer != nil {
		p.timer.StartPhase(name)
	}
}
