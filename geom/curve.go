// Package geom holds the small amount of trigonometry the scene needs:
// degree conversion, the world curve the ground chunks follow, and
// quaternion helpers for orienting transforms.
package geom

import (
	"cmp"
	"math"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * (math.Pi / 180.0)
}

// Min returns a if a < b, otherwise b.
// Unlike the builtin min, NaN in a always yields b.
func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Curve is a parabola clamped from above by a flat ground height.
//
// Plot it before changing the coefficients. With the defaults the visible
// ground sits at -1.3 for roughly -47 < y < 85 and falls away past that.
type Curve struct {
	A            float64 `yaml:"a"`             // squash factor, smaller is wider
	B            float64 `yaml:"b"`             // horizontal shift is -B/(2A)
	C            float64 `yaml:"c"`             // vertical shift
	GroundHeight float64 `yaml:"ground_height"` // upper clamp
}

// DefaultCurve returns the curve the world is built on.
func DefaultCurve() Curve {
	return Curve{
		A:            -1.0 / 300.0,
		B:            1.0 / 8.0,
		C:            12.0,
		GroundHeight: -1.3,
	}
}

// Height returns the depth of the world at lateral position y.
func (c Curve) Height(y float64) float64 {
	return Min(c.Parabola(y), c.GroundHeight)
}

// Parabola returns the uncapped quadratic at y.
func (c Curve) Parabola(y float64) float64 {
	return c.A*(y*y) + c.B*y + c.C
}

// Vertex returns the lateral position of the parabola's apex.
func (c Curve) Vertex() float64 {
	if c.A == 0 {
		return 0
	}
	return -c.B / (2 * c.A)
}

// WorldCurvePath returns the height of the default world curve at y.
func WorldCurvePath(y float64) float64 {
	return DefaultCurve().Height(y)
}
