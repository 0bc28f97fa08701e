package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/tanks/components"
	"github.com/pthm-cable/tanks/geom"
	"github.com/pthm-cable/tanks/systems"
	"github.com/pthm-cable/tanks/telemetry"
)

// UpdateHeadless advances one frame using the scripted input.
func (g *Game) UpdateHeadless() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseInput)
	keys := g.script.At(int(g.frame))
	g.step(keys)
	g.perf.EndTick()
}

// step runs the systems and records telemetry for one frame.
func (g *Game) step(keys systems.KeySet) {
	g.lastKeys = keys
	g.pipeline.Update(keys)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.observe(keys)
	g.frame++

	if g.frame%g.perfEvery == 0 {
		g.flushPerf()
	}
}

// observe feeds the tank state to the trajectory tracker.
func (g *Game) observe(keys systems.KeySet) {
	tr, tank, ok := g.firstTank()
	if !ok {
		return
	}
	sample, ok := g.tracker.Observe(telemetry.TankSample{
		Frame:  g.frame,
		X:      tr.Translation.X,
		Y:      tr.Translation.Y,
		Z:      tr.Translation.Z,
		Angle:  tank.Angle,
		Keys:   keys.String(),
		Camera: g.pipeline.CameraMode().String(),
	})
	if !ok {
		return
	}
	if err := g.output.WriteTank(sample); err != nil {
		slog.Error("failed to write tank sample", "error", err)
	}
}

func (g *Game) flushPerf() {
	stats := g.perf.Stats()
	if g.logStats {
		stats.LogStats()
	}
	if err := g.output.WritePerf(stats, g.frame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

func (g *Game) firstTank() (components.Transform, components.TankControllable, bool) {
	query := g.tanks.Query()
	if !query.Next() {
		return components.Transform{}, components.TankControllable{}, false
	}
	tr, tank := query.Get()
	t, k := *tr, *tank
	query.Close()
	return t, k, true
}

// tankTransforms records where every tank starts.
func (g *Game) tankTransforms() map[ecs.Entity]components.Transform {
	spawns := make(map[ecs.Entity]components.Transform)
	query := g.tanks.Query()
	for query.Next() {
		tr, _ := query.Get()
		spawns[query.Entity()] = *tr
	}
	return spawns
}

// ResetTanks puts every tank back on its spawn point facing angle 0.
func (g *Game) ResetTanks() {
	query := g.tanks.Query()
	for query.Next() {
		tr, tank := query.Get()
		if spawn, ok := g.spawns[query.Entity()]; ok {
			*tr = spawn
		}
		tank.Angle = 0
		tr.Rotation = geom.RotationZ(0)
	}
	slog.Info("tanks reset", "frame", g.frame)
}
