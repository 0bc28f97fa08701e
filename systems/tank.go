package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/tanks/components"
	"github.com/pthm-cable/tanks/geom"
)

// headingOffset aligns the model's nose with world axes: angle 0 drives along +Y.
const headingOffset = 90.0

// TankInput turns and drives every TankControllable entity.
type TankInput struct {
	Speed    float64 // units per frame while up is held
	TurnStep int     // degrees per frame while left or right is held

	filter *ecs.Filter2[components.Transform, components.TankControllable]
}

// NewTankInput creates the tank input system for world.
func NewTankInput(world *ecs.World, speed float64, turnStep int) *TankInput {
	return &TankInput{
		Speed:    speed,
		TurnStep: turnStep,
		filter:   ecs.NewFilter2[components.Transform, components.TankControllable](world),
	}
}

// Update applies one frame of input.
func (s *TankInput) Update(keys Keys) {
	query := s.filter.Query()
	for query.Next() {
		transform, tank := query.Get()

		// left wins when both are held
		if keys.Pressed(KeyLeft) {
			tank.Angle = StepAngle(tank.Angle, s.TurnStep)
		} else if keys.Pressed(KeyRight) {
			tank.Angle = StepAngle(tank.Angle, -s.TurnStep)
		}
		transform.Rotation = geom.RotationZ(float64(tank.Angle))

		if keys.Pressed(KeyUp) {
			dx, dy := Heading(tank.Angle)
			transform.Translation.X += dx * s.Speed
			transform.Translation.Y += dy * s.Speed
		}
	}
}

// StepAngle adds delta degrees to angle. Passing 360 snaps to 0 and passing
// below 0 snaps to 360, so both boundary values are reachable.
func StepAngle(angle, delta int) int {
	angle += delta
	if angle > 360 {
		angle = 0
	} else if angle < 0 {
		angle = 360
	}
	return angle
}

// Heading returns the unit direction a tank at angle degrees drives in.
func Heading(angle int) (dx, dy float64) {
	rad := geom.DegToRad(float64(angle) + headingOffset)
	return math.Cos(rad), math.Sin(rad)
}
