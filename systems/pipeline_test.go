package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/tanks/components"
	"github.com/pthm-cable/tanks/geom"
)

type phaseRecorder struct {
	phases []string
}

func (r *phaseRecorder) StartPhase(name string) {
	r.phases = append(r.phases, name)
}

func newTestPipeline(world *ecs.World, mode CameraMode) *Pipeline {
	return NewPipeline(world, PipelineConfig{
		Speed:        0.25,
		TurnStep:     2,
		Camera:       mode,
		ChunkStep:    0.3,
		ChunkWrapMin: -50,
		ChunkWrapMax: 150,
		Curve:        geom.DefaultCurve(),
	})
}

func TestParseCameraMode(t *testing.T) {
	m, err := ParseCameraMode("trail")
	require.NoError(t, err)
	assert.Equal(t, CameraTrail, m)

	m, err = ParseCameraMode("")
	require.NoError(t, err)
	assert.Equal(t, CameraFocus, m)

	_, err = ParseCameraMode("orbit")
	assert.Error(t, err)
}

func TestPipelineToggleCamera(t *testing.T) {
	p := newTestPipeline(ecs.NewWorld(), CameraFocus)
	assert.Equal(t, CameraTrail, p.ToggleCamera())
	assert.Equal(t, CameraFocus, p.ToggleCamera())
	assert.Equal(t, "focus", p.CameraMode().String())
}

func TestPipelinePhaseOrder(t *testing.T) {
	world := ecs.NewWorld()
	p := newTestPipeline(world, CameraFocus)
	rec := &phaseRecorder{}
	p.SetTimer(rec)

	p.Update(NewKeySet())
	assert.Equal(t, []string{PhaseTank, PhaseCamera, PhaseChunks}, rec.phases)
}

func TestPipelineTrailFollowsMovedTank(t *testing.T) {
	world := ecs.NewWorld()
	tank := spawnTank(world, 0, 0, 0)
	cam := spawnCamera(world, 15, 0, 5)
	chunks := spawnChunks(world, 0)
	p := newTestPipeline(world, CameraTrail)

	p.Update(NewKeySet(KeyUp))

	transforms := ecs.NewMap[components.Transform](world)
	// tank moves first, so the camera trails its new position
	tankPos := transforms.Get(tank).Translation
	assertNear(t, r3.Vec{Y: 0.25}, tankPos)
	assertNear(t, r3.Vec{Y: 0.25 - 15, Z: 5}, transforms.Get(cam).Translation)

	chunk := transforms.Get(chunks[0]).Translation
	assert.InDelta(t, -0.3, chunk.Y, 1e-12)
	assert.InDelta(t, geom.WorldCurvePath(-0.3), chunk.Z, 1e-12)
}

func TestPipelineFocusKeepsCameraInPlace(t *testing.T) {
	world := ecs.NewWorld()
	spawnTank(world, 0, 0, 0)
	cam := spawnCamera(world, 15, 0, 5)
	p := newTestPipeline(world, CameraFocus)

	for range 10 {
		p.Update(NewKeySet(KeyUp, KeyLeft))
	}

	tr := ecs.NewMap[components.Transform](world).Get(cam)
	assertNear(t, r3.Vec{X: 15, Z: 5}, tr.Translation)
}
