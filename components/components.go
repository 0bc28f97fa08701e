// Package components defines ECS components for the tank scene.
package components

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/tanks/geom"
)

// Transform places an entity in the world. Z is up.
type Transform struct {
	Translation r3.Vec      `inspect:"label,fmt:%.2f"`
	Rotation    r3.Rotation `inspect:"label,fmt:%.3f"`
	Scale       r3.Vec      `inspect:"label,fmt:%.2f"`
}

// NewTransform returns an unrotated, unit-scale transform at (x, y, z).
func NewTransform(x, y, z float64) Transform {
	return Transform{
		Translation: r3.Vec{X: x, Y: y, Z: z},
		Rotation:    geom.Identity,
		Scale:       r3.Vec{X: 1, Y: 1, Z: 1},
	}
}

// LookingAt returns a copy of t rotated to face target with the given up.
// The rotation is left unchanged when facing target is undefined.
func (t Transform) LookingAt(target, up r3.Vec) Transform {
	if rot, ok := geom.LookAt(t.Translation, target, up); ok {
		t.Rotation = rot
	}
	return t
}

// Name labels an entity for the world inspector.
type Name struct {
	Value string `inspect:"label"`
}

// TankControllable marks an entity driven by the arrow keys.
type TankControllable struct {
	Angle int `inspect:"angle"` // heading in degrees, [0, 360]
}
