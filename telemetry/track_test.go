package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerSamplesOnInterval(t *testing.T) {
	tr := NewTracker(10)

	var frames []int32
	for f := int32(0); f < 35; f++ {
		if s, ok := tr.Observe(TankSample{Frame: f, Y: float64(f) * 0.25}); ok {
			frames = append(frames, s.Frame)
		}
	}

	assert.Equal(t, []int32{0, 10, 20, 30}, frames)
	sum := tr.Summary()
	assert.Equal(t, 35, sum.Frames)
	assert.Equal(t, 4, sum.Samples)
	assert.InDelta(t, 34*0.25, sum.Distance, 1e-9)
	assert.InDelta(t, 34*0.25, sum.Farthest, 1e-9)
	assert.InDelta(t, 34*0.25, sum.Final.Y, 1e-9)
}

func TestTrackerDistanceIgnoresFirstFrame(t *testing.T) {
	tr := NewTracker(0)

	tr.Observe(TankSample{Frame: 0, X: 3, Y: 4})
	assert.Zero(t, tr.Summary().Distance)
	assert.InDelta(t, 5.0, tr.Summary().Farthest, 1e-12)

	tr.Observe(TankSample{Frame: 1, X: 0, Y: 0})
	assert.InDelta(t, 5.0, tr.Summary().Distance, 1e-12)
	assert.Equal(t, 2, tr.Summary().Samples)
}
