package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/tanks/components"
	"github.com/pthm-cable/tanks/geom"
)

// tracker finds the tank the cameras follow.
type tracker struct {
	tanks *ecs.Filter2[components.Transform, components.TankControllable]
}

func newTracker(world *ecs.World) tracker {
	return tracker{tanks: ecs.NewFilter2[components.Transform, components.TankControllable](world)}
}

// first returns the first tank in iteration order. The order is arbitrary
// but stable while the world is unchanged.
func (t tracker) first() (components.Transform, components.TankControllable, bool) {
	query := t.tanks.Query()
	if !query.Next() {
		return components.Transform{}, components.TankControllable{}, false
	}
	transform, tank := query.Get()
	tr, tk := *transform, *tank
	query.Close()
	return tr, tk, true
}

// FocusCamera turns every camera in place to look at the tank.
type FocusCamera struct {
	tracker
	cameras *ecs.Filter2[components.Transform, components.Camera]
}

// NewFocusCamera creates the focus camera system for world.
func NewFocusCamera(world *ecs.World) *FocusCamera {
	return &FocusCamera{
		tracker: newTracker(world),
		cameras: ecs.NewFilter2[components.Transform, components.Camera](world),
	}
}

// Update re-aims the cameras. Nothing happens without a tank.
func (s *FocusCamera) Update() {
	target, _, ok := s.first()
	if !ok {
		return
	}
	query := s.cameras.Query()
	for query.Next() {
		camera, _ := query.Get()
		*camera = camera.LookingAt(target.Translation, geom.AxisZ)
	}
}

// TrailCamera keeps cameras at a fixed distance behind the tank's heading.
// There is no smoothing: the camera snaps to its spot every frame.
type TrailCamera struct {
	tracker
	cameras *ecs.Filter3[components.Transform, components.Camera, components.CameraTrail]
}

// NewTrailCamera creates the trailing camera system for world.
func NewTrailCamera(world *ecs.World) *TrailCamera {
	return &TrailCamera{
		tracker: newTracker(world),
		cameras: ecs.NewFilter3[components.Transform, components.Camera, components.CameraTrail](world),
	}
}

// Update moves the cameras behind the tank and aims them at it.
func (s *TrailCamera) Update() {
	target, tank, ok := s.first()
	if !ok {
		return
	}
	query := s.cameras.Query()
	for query.Next() {
		camera, _, trail := query.Get()
		camera.Translation = TrailPosition(target.Translation, tank.Angle, *trail)
		*camera = camera.LookingAt(target.Translation, geom.AxisZ)
	}
}

// TrailPosition returns where a trailing camera sits for a tank at pos
// facing angle degrees. The horizontal distance is always trail.Distance.
func TrailPosition(pos r3.Vec, angle int, trail components.CameraTrail) r3.Vec {
	rad := geom.DegToRad(float64(angle) + trail.AngleOffset)
	return r3.Vec{
		X: pos.X + math.Cos(rad)*trail.Distance,
		Y: pos.Y + math.Sin(rad)*trail.Distance,
		Z: pos.Z + trail.Height,
	}
}
