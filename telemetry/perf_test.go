package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate a few ticks
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseTank)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseCamera)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	// Verify we got timing data
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}

	// Verify phases are tracked
	if len(stats.PhaseAvg) == 0 {
		t.Error("expected phase averages to be populated")
	}

	if _, ok := stats.PhaseAvg[PhaseTank]; !ok {
		t.Error("expected tank phase to be tracked")
	}

	if _, ok := stats.PhaseAvg[PhaseCamera]; !ok {
		t.Error("expected camera phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5) // Small window
	clock := &stepClock{t: time.Unix(0, 0)}
	pc.now = clock.now

	// Fill window twice; only the last five ticks (6..10ms) remain
	for i := 1; i <= 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseTank)
		clock.advance(time.Duration(i) * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.Samples != 5 {
		t.Errorf("expected 5 samples in window, got %d", stats.Samples)
	}
	if stats.AvgTickDuration != 8*time.Millisecond {
		t.Errorf("expected 8ms average over the window, got %v", stats.AvgTickDuration)
	}

	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

// stepClock advances by a fixed amount only when told to.
type stepClock struct{ t time.Time }

func (c *stepClock) now() time.Time          { return c.t }
func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)
	clock := &stepClock{t: time.Unix(0, 0)}
	pc.now = clock.now

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseTank)
		clock.advance(1 * time.Millisecond)
		pc.StartPhase(PhaseChunks)
		clock.advance(19 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration != 20*time.Millisecond {
		t.Errorf("expected 20ms average tick, got %v", stats.AvgTickDuration)
	}
	if stats.StdTickDuration != 0 {
		t.Errorf("expected zero std dev for identical ticks, got %v", stats.StdTickDuration)
	}
	if got := stats.PhasePct[PhaseTank]; got < 4.999 || got > 5.001 {
		t.Errorf("expected tank phase at 5%%, got %v%%", got)
	}
	if got := stats.PhasePct[PhaseChunks]; got < 94.999 || got > 95.001 {
		t.Errorf("expected chunks phase at 95%%, got %v%%", got)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	// Empty collector should return zero values without panicking
	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}

	if stats.PhaseAvg == nil {
		t.Error("expected non-nil PhaseAvg map")
	}

	if stats.PhasePct == nil {
		t.Error("expected non-nil PhasePct map")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)
	clock := &stepClock{t: time.Unix(0, 0)}
	pc.now = clock.now

	// First call establishes baseline
	pc.RecordFrame()
	clock.advance(20 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()

	if stats.FrameDuration != 20*time.Millisecond {
		t.Errorf("expected 20ms frame duration, got %v", stats.FrameDuration)
	}
	if stats.FPS < 49.999 || stats.FPS > 50.001 {
		t.Errorf("expected 50 FPS with 20ms frames, got %v", stats.FPS)
	}
}

func TestPerfCollector_StdDev(t *testing.T) {
	pc := NewPerfCollector(10)
	clock := &stepClock{t: time.Unix(0, 0)}
	pc.now = clock.now

	pc.StartTick()
	clock.advance(1 * time.Millisecond)
	pc.EndTick()
	if got := pc.Stats().StdTickDuration; got != 0 {
		t.Errorf("expected zero std with one sample, got %v", got)
	}

	pc.StartTick()
	clock.advance(3 * time.Millisecond)
	pc.EndTick()

	stats := pc.Stats()
	if stats.Samples != 2 {
		t.Fatalf("expected 2 samples, got %d", stats.Samples)
	}
	if stats.StdTickDuration <= 0 {
		t.Error("expected positive std for uneven ticks")
	}
	if stats.MinTickDuration != time.Millisecond || stats.MaxTickDuration != 3*time.Millisecond {
		t.Errorf("expected min 1ms and max 3ms, got %v %v", stats.MinTickDuration, stats.MaxTickDuration)
	}
	if stats.AvgTickDuration != 2*time.Millisecond {
		t.Errorf("expected 2ms average, got %v", stats.AvgTickDuration)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 1500 * time.Microsecond,
		PhasePct:        map[string]float64{PhaseTank: 40, PhaseRender: 60},
	}

	row := stats.ToCSV(120)
	if row.Frame != 120 || row.AvgTickUS != 1500 {
		t.Errorf("unexpected row %+v", row)
	}
	if row.TankPct != 40 || row.RenderPct != 60 || row.CameraPct != 0 {
		t.Errorf("unexpected phase split %+v", row)
	}
}
