package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/tanks/components"
	"github.com/pthm-cable/tanks/geom"
)

func spawnChunks(world *ecs.World, ys ...float64) []ecs.Entity {
	mapper := ecs.NewMap2[components.Transform, components.Chunk](world)
	entities := make([]ecs.Entity, len(ys))
	for i, y := range ys {
		tr := components.NewTransform(0, y, 0)
		entities[i] = mapper.NewEntity(&tr, &components.Chunk{Index: i})
	}
	return entities
}

func TestWrapLateral(t *testing.T) {
	assert.Equal(t, 0.0, WrapLateral(0, -50, 150))
	assert.Equal(t, -50.0, WrapLateral(-50, -50, 150))
	assert.InDelta(t, 149.9, WrapLateral(-50.1, -50, 150), 1e-9)
}

func TestChunkScrollerStaysInSpan(t *testing.T) {
	world := ecs.NewWorld()
	chunks := spawnChunks(world, -50, 0, 50, 100)
	sys := NewChunkScroller(world, 0.3, -50, 150, geom.DefaultCurve())
	get := ecs.NewMap[components.Transform](world)

	for frame := 0; frame < 5000; frame++ {
		sys.Update(NewKeySet(KeyUp))
		for _, e := range chunks {
			y := get.Get(e).Translation.Y
			if y < -50 || y >= 150 {
				t.Fatalf("frame %d: chunk at %f outside [-50, 150)", frame, y)
			}
		}
	}
}

func TestChunkScrollerPreservesSpacing(t *testing.T) {
	world := ecs.NewWorld()
	chunks := spawnChunks(world, -50, 0, 50, 100)
	sys := NewChunkScroller(world, 0.3, -50, 150, geom.DefaultCurve())
	get := ecs.NewMap[components.Transform](world)

	for frame := 0; frame < 1234; frame++ {
		sys.Update(NewKeySet(KeyUp))
	}

	// every pair stays a multiple of 50 apart modulo the span
	base := get.Get(chunks[0]).Translation.Y
	for i, e := range chunks[1:] {
		d := get.Get(e).Translation.Y - base
		for d < 0 {
			d += 200
		}
		assert.InDelta(t, float64(i+1)*50, d, 1e-6)
	}
}

func TestChunkScrollerHeightFollowsCurve(t *testing.T) {
	world := ecs.NewWorld()
	chunks := spawnChunks(world, -50, 0, 50, 100)
	curve := geom.DefaultCurve()
	sys := NewChunkScroller(world, 0.3, -50, 150, curve)
	get := ecs.NewMap[components.Transform](world)

	sys.Update(NewKeySet(KeyUp))
	for _, e := range chunks {
		tr := get.Get(e)
		assert.Equal(t, curve.Height(tr.Translation.Y), tr.Translation.Z)
		assert.LessOrEqual(t, tr.Translation.Z, -1.3)
	}
}

func TestChunkScrollerIdleWithoutForward(t *testing.T) {
	world := ecs.NewWorld()
	chunks := spawnChunks(world, 10)
	sys := NewChunkScroller(world, 0.3, -50, 150, geom.DefaultCurve())

	sys.Update(NewKeySet(KeyLeft, KeyDown))
	tr := ecs.NewMap[components.Transform](world).Get(chunks[0])
	assert.Equal(t, 10.0, tr.Translation.Y)
	assert.Equal(t, -1.3, tr.Translation.Z)
}
