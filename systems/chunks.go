package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/tanks/components"
	"github.com/pthm-cable/tanks/geom"
)

// ChunkScroller slides ground chunks toward -Y while forward is held,
// recycling them from the back of the span to the front.
type ChunkScroller struct {
	Step    float64
	WrapMin float64
	WrapMax float64
	Curve   geom.Curve

	filter *ecs.Filter2[components.Transform, components.Chunk]
}

// NewChunkScroller creates the scroller for world.
func NewChunkScroller(world *ecs.World, step, wrapMin, wrapMax float64, curve geom.Curve) *ChunkScroller {
	return &ChunkScroller{
		Step:    step,
		WrapMin: wrapMin,
		WrapMax: wrapMax,
		Curve:   curve,
		filter:  ecs.NewFilter2[components.Transform, components.Chunk](world),
	}
}

// Update scrolls one frame. Heights are recomputed even when idle so that
// curve edits from the inspector take effect immediately.
func (s *ChunkScroller) Update(keys Keys) {
	forward := keys.Pressed(KeyUp)

	query := s.filter.Query()
	for query.Next() {
		transform, _ := query.Get()
		if forward {
			transform.Translation.Y = WrapLateral(transform.Translation.Y-s.Step, s.WrapMin, s.WrapMax)
		}
		transform.Translation.Z = s.Curve.Height(transform.Translation.Y)
	}
}

// WrapLateral moves y below min back up by the span (max - min).
// For y in [min - span, max) the result is in [min, max), and the spacing
// between chunks is preserved.
func WrapLateral(y, min, max float64) float64 {
	if y < min {
		y += max - min
	}
	return y
}
