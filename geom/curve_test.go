package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, 0.0, DegToRad(0), 1e-12)
	assert.InDelta(t, math.Pi/2, DegToRad(90), 1e-12)
	assert.InDelta(t, math.Pi, DegToRad(180), 1e-12)
	assert.InDelta(t, -2*math.Pi, DegToRad(-360), 1e-12)
}

func TestMin(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, -3, Min(4, -3))
	assert.Equal(t, 2.5, Min(2.5, 2.5))
	assert.Equal(t, "a", Min("b", "a"))
}

func TestWorldCurvePathAtOrigin(t *testing.T) {
	// min(12, -1.3)
	assert.Equal(t, -1.3, WorldCurvePath(0))
}

func TestWorldCurvePathNeverAboveGround(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		y := (rng.Float64() - 0.5) * 2000
		if h := WorldCurvePath(y); h > -1.3 {
			t.Fatalf("WorldCurvePath(%f) = %f, want <= -1.3", y, h)
		}
	}
	for y := -50.0; y < 150; y += 0.3 {
		if h := WorldCurvePath(y); h > -1.3 {
			t.Fatalf("WorldCurvePath(%f) = %f, want <= -1.3", y, h)
		}
	}
}

func TestWorldCurvePathFallsAwayAtEdges(t *testing.T) {
	c := DefaultCurve()
	tests := []struct {
		name string
		y    float64
	}{
		{"far behind", -60},
		{"far ahead", 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := c.A*tt.y*tt.y + c.B*tt.y + c.C
			assert.Less(t, want, c.GroundHeight)
			assert.InDelta(t, want, WorldCurvePath(tt.y), 1e-9)
		})
	}
}

func TestCurveVertex(t *testing.T) {
	// -B/(2A) = -(1/8) / (-2/300) = 18.75
	assert.InDelta(t, 18.75, DefaultCurve().Vertex(), 1e-9)
	assert.Equal(t, 0.0, Curve{B: 1}.Vertex())
}

func TestCurveCustomGround(t *testing.T) {
	c := Curve{A: -1, B: 0, C: 0, GroundHeight: 5}
	assert.Equal(t, 0.0, c.Height(0))
	assert.Equal(t, -4.0, c.Height(2))

	flat := Curve{C: 10, GroundHeight: 1}
	assert.Equal(t, 1.0, flat.Height(123))
}

func TestParabolaIsUncapped(t *testing.T) {
	c := DefaultCurve()
	v := c.Vertex()
	assert.InDelta(t, 18.75, v, 1e-9)
	assert.Greater(t, c.Parabola(v), c.GroundHeight)
	assert.Equal(t, c.GroundHeight, c.Height(v))
	assert.InDelta(t, c.Parabola(-60), c.Height(-60), 1e-12)
}
