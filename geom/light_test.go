package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestLambert(t *testing.T) {
	down := r3.Vec{Z: -1}
	assert.InDelta(t, 1.0, Lambert(AxisZ, down), 1e-12)
	assert.InDelta(t, 0.0, Lambert(AxisX, down), 1e-12)
	assert.Equal(t, 0.0, Lambert(r3.Vec{Z: -1}, down), "back faces are unlit")
	assert.Equal(t, 0.0, Lambert(r3.Vec{}, down))
	assert.InDelta(t, 0.70711, Lambert(AxisZ, r3.Vec{X: 1, Z: -1}), 1e-5)
}

func TestShadowPoint(t *testing.T) {
	p, ok := ShadowPoint(r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{Z: -1}, -1.3)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, 2.0, p.Y, 1e-12)
	assert.InDelta(t, -1.3, p.Z, 1e-12)

	p, ok = ShadowPoint(r3.Vec{Z: 1}, r3.Vec{X: 1, Z: -1}, 0)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, p.X, 1e-12)

	_, ok = ShadowPoint(r3.Vec{Z: 1}, r3.Vec{Z: 1}, 0)
	assert.False(t, ok, "light pointing up casts nothing")

	_, ok = ShadowPoint(r3.Vec{Z: -5}, r3.Vec{Z: -1}, 0)
	assert.False(t, ok, "point below the ground")
}

func TestInShadowBox(t *testing.T) {
	assert.True(t, InShadowBox(r3.Vec{X: 25, Y: -25}, 25))
	assert.False(t, InShadowBox(r3.Vec{X: 25.1}, 25))
}

func TestInLightDepth(t *testing.T) {
	down := r3.Vec{Z: -2}

	assert.True(t, InLightDepth(r3.Vec{Z: -250}, r3.Vec{}, down, -250, 250))
	assert.True(t, InLightDepth(r3.Vec{X: 400, Z: 10}, r3.Vec{}, down, -250, 250))
	assert.False(t, InLightDepth(r3.Vec{Z: -251}, r3.Vec{}, down, -250, 250))
	assert.False(t, InLightDepth(r3.Vec{Z: 260}, r3.Vec{}, down, -250, 250))
	// depth is measured from the light, not the world origin
	assert.True(t, InLightDepth(r3.Vec{Z: 260}, r3.Vec{Z: 100}, down, -250, 250))
	assert.False(t, InLightDepth(r3.Vec{}, r3.Vec{}, r3.Vec{}, -250, 250))
}
