package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/tanks/components"
	"github.com/pthm-cable/tanks/geom"
)

var defaultTrail = components.CameraTrail{Distance: 15, AngleOffset: 270, Height: 5}

func spawnCamera(world *ecs.World, x, y, z float64) ecs.Entity {
	mapper := ecs.NewMap3[components.Transform, components.Camera, components.CameraTrail](world)
	tr := components.NewTransform(x, y, z)
	trail := defaultTrail
	return mapper.NewEntity(&tr, &components.Camera{FovY: 45}, &trail)
}

func cameraTransform(world *ecs.World, e ecs.Entity) components.Transform {
	return *ecs.NewMap[components.Transform](world).Get(e)
}

func TestFocusCameraLooksAtTank(t *testing.T) {
	world := ecs.NewWorld()
	cam := spawnCamera(world, 15, 0, 5)
	spawnTank(world, 2, 3, 0)

	NewFocusCamera(world).Update()

	tr := cameraTransform(world, cam)
	want := r3.Unit(r3.Vec{X: 2 - 15, Y: 3, Z: -5})
	assertNear(t, want, geom.Forward(tr.Rotation))
	// focus only rotates
	assertNear(t, r3.Vec{X: 15, Z: 5}, tr.Translation)
}

func TestFocusCameraWithoutTank(t *testing.T) {
	world := ecs.NewWorld()
	cam := spawnCamera(world, 15, 0, 5)

	NewFocusCamera(world).Update()

	tr := cameraTransform(world, cam)
	assert.Equal(t, geom.Identity, tr.Rotation)
}

func TestFocusCameraUsesFirstTank(t *testing.T) {
	world := ecs.NewWorld()
	cam := spawnCamera(world, 15, 0, 5)
	spawnTank(world, 0, 0, 0)
	spawnTank(world, 0, 40, 0)

	sys := NewFocusCamera(world)
	first, _, ok := sys.first()
	require.True(t, ok)

	sys.Update()
	tr := cameraTransform(world, cam)
	want := r3.Unit(r3.Sub(first.Translation, r3.Vec{X: 15, Z: 5}))
	assertNear(t, want, geom.Forward(tr.Rotation))
}

func TestTrailPositionKeepsDistance(t *testing.T) {
	pos := r3.Vec{X: 3, Y: -7, Z: 0}
	for angle := 0; angle <= 360; angle += 2 {
		cam := TrailPosition(pos, angle, defaultTrail)
		d := math.Hypot(cam.X-pos.X, cam.Y-pos.Y)
		if math.Abs(d-15) > 1e-9 {
			t.Fatalf("angle %d: horizontal distance %f, want 15", angle, d)
		}
		assert.InDelta(t, 5.0, cam.Z, 1e-12)
	}
}

func TestTrailPositionBehindTank(t *testing.T) {
	// angle 0 drives along +Y, so the camera sits on -Y
	cam := TrailPosition(r3.Vec{}, 0, defaultTrail)
	assertNear(t, r3.Vec{Y: -15, Z: 5}, cam)

	// angle 90 drives along -X, camera on +X
	cam = TrailPosition(r3.Vec{}, 90, defaultTrail)
	assertNear(t, r3.Vec{X: 15, Z: 5}, cam)
}

func TestTrailCameraFollows(t *testing.T) {
	world := ecs.NewWorld()
	cam := spawnCamera(world, 15, 0, 5)
	tank := spawnTank(world, 0, 0, 0)

	drive := NewTankInput(world, 0.25, 2)
	trail := NewTrailCamera(world)
	for i := 0; i < 30; i++ {
		drive.Update(NewKeySet(KeyUp, KeyLeft))
		trail.Update()
	}

	tankTr, tk := ecs.NewMap2[components.Transform, components.TankControllable](world).Get(tank)
	camTr := cameraTransform(world, cam)
	assertNear(t, TrailPosition(tankTr.Translation, tk.Angle, defaultTrail), camTr.Translation)

	want := r3.Unit(r3.Sub(tankTr.Translation, camTr.Translation))
	assertNear(t, want, geom.Forward(camTr.Rotation))
}
