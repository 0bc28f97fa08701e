package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"
)

// TankSample is one row of tank.csv.
type TankSample struct {
	Frame  int32   `csv:"frame"`
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
	Z      float64 `csv:"z"`
	Angle  int     `csv:"angle"`
	Keys   string  `csv:"keys"`
	Camera string  `csv:"camera"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s TankSample) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frame", int(s.Frame)),
		slog.Float64("x", s.X),
		slog.Float64("y", s.Y),
		slog.Int("angle", s.Angle),
		slog.String("keys", s.Keys),
	)
}

// Tracker accumulates the tank's trajectory and emits a sample every
// interval frames.
type Tracker struct {
	interval int

	last     r3.Vec
	hasLast  bool
	frames   int
	distance float64
	farthest float64
	samples  int
}

// NewTracker creates a tracker sampling every interval frames.
func NewTracker(interval int) *Tracker {
	if interval < 1 {
		interval = 1
	}
	return &Tracker{interval: interval}
}

// Observe records the tank state for a frame. It returns a sample when the
// frame falls on the sampling interval.
func (t *Tracker) Observe(s TankSample) (TankSample, bool) {
	pos := r3.Vec{X: s.X, Y: s.Y, Z: s.Z}
	if t.hasLast {
		t.distance += r3.Norm(r3.Sub(pos, t.last))
	}
	t.last = pos
	t.hasLast = true
	t.frames++
	t.farthest = max(t.farthest, r3.Norm(r3.Vec{X: pos.X, Y: pos.Y}))

	if int(s.Frame)%t.interval != 0 {
		return TankSample{}, false
	}
	t.samples++
	return s, true
}

// TrackSummary describes a whole run.
type TrackSummary struct {
	Frames   int
	Samples  int
	Distance float64 // path length driven
	Farthest float64 // largest horizontal distance from the origin
	Final    r3.Vec
}

// Summary returns the totals so far.
func (t *Tracker) Summary() TrackSummary {
	return TrackSummary{
		Frames:   t.frames,
		Samples:  t.samples,
		Distance: t.distance,
		Farthest: t.farthest,
		Final:    t.last,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s TrackSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frames", s.Frames),
		slog.Int("samples", s.Samples),
		slog.Float64("distance", s.Distance),
		slog.Float64("farthest", s.Farthest),
		slog.Float64("final_x", s.Final.X),
		slog.Float64("final_y", s.Final.Y),
	)
}
