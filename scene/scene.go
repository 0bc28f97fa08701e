// Package scene spawns the initial entities of the tank sandbox.
package scene

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/tanks/components"
	"github.com/pthm-cable/tanks/config"
	"github.com/pthm-cable/tanks/geom"
)

// Scene holds handles to the entities spawned by Build.
type Scene struct {
	Camera ecs.Entity
	Light  ecs.Entity
	Marker ecs.Entity
	Ground ecs.Entity
	Chunks []ecs.Entity
	Models []ecs.Entity
	Tanks  []ecs.Entity
}

// Build spawns the camera, light, debug marker, ground, chunks and models
// described by cfg.
func Build(world *ecs.World, cfg *config.Config) *Scene {
	s := &Scene{}

	s.Camera = spawnCamera(world, cfg)
	s.Light = spawnLight(world, cfg)

	markerMap := ecs.NewMap3[components.Transform, components.Marker, components.Name](world)
	origin := components.NewTransform(0, 0, 0)
	s.Marker = markerMap.NewEntity(
		&origin,
		&components.Marker{Radius: 0.25, Sectors: 15, Stacks: 15, Color: rgb(cfg.Assets.MarkerRGB)},
		&components.Name{Value: "Origin Marker"},
	)

	groundMap := ecs.NewMap3[components.Transform, components.Ground, components.Name](world)
	ground := flatPlane(0, 0, cfg.Ground.Height)
	s.Ground = groundMap.NewEntity(
		&ground,
		&components.Ground{Size: float32(cfg.Ground.Size), Color: rgb(cfg.Ground.Color)},
		&components.Name{Value: "Ground"},
	)

	s.Chunks = spawnChunks(world, cfg)

	modelMap := ecs.NewMap3[components.Transform, components.Model, components.Name](world)
	tankMap := ecs.NewMap4[components.Transform, components.Model, components.Name, components.TankControllable](world)
	for _, spec := range cfg.Assets.Models {
		tr := components.NewTransform(spec.Position[0], spec.Position[1], spec.Position[2])
		model := components.Model{Path: filepath.Join(cfg.Assets.Dir, spec.File)}
		name := components.Name{Value: spec.Name}

		var e ecs.Entity
		if spec.Tank {
			e = tankMap.NewEntity(&tr, &model, &name, &components.TankControllable{Angle: 0})
			s.Tanks = append(s.Tanks, e)
		} else {
			e = modelMap.NewEntity(&tr, &model, &name)
		}
		s.Models = append(s.Models, e)
	}

	slog.Info("scene built",
		"chunks", len(s.Chunks),
		"models", len(s.Models),
		"tanks", len(s.Tanks),
		"camera_mode", cfg.Camera.Mode,
	)
	return s
}

func spawnCamera(world *ecs.World, cfg *config.Config) ecs.Entity {
	mapper := ecs.NewMap4[components.Transform, components.Camera, components.CameraTrail, components.Name](world)

	start := cfg.Camera.Start
	tr := components.NewTransform(start[0], start[1], start[2]).LookingAt(r3.Vec{}, geom.AxisZ)
	trail := components.CameraTrail{
		Distance:    cfg.Camera.TrailDistance,
		AngleOffset: cfg.Camera.TrailOffset,
		Height:      cfg.Camera.TrailHeight,
	}
	return mapper.NewEntity(&tr, &components.Camera{FovY: float32(cfg.Camera.FovY)}, &trail, &components.Name{Value: "Camera"})
}

func spawnLight(world *ecs.World, cfg *config.Config) ecs.Entity {
	mapper := ecs.NewMap3[components.Transform, components.DirectionalLight, components.Name](world)

	tr := components.NewTransform(0, 0, 0)
	light := components.DirectionalLight{
		Color:          color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Illuminance:    float32(cfg.Light.Illuminance),
		HalfSize:       float32(cfg.Light.HalfSize),
		ShadowsEnabled: cfg.Light.ShadowsEnabled,
	}
	return mapper.NewEntity(&tr, &light, &components.Name{Value: "Sun"})
}

// spawnChunks lays chunks out evenly across [WrapMin, WrapMax).
func spawnChunks(world *ecs.World, cfg *config.Config) []ecs.Entity {
	mapper := ecs.NewMap4[components.Transform, components.Chunk, components.Ground, components.Name](world)

	chunks := make([]ecs.Entity, 0, cfg.Chunks.Count)
	for i := 0; i < cfg.Chunks.Count; i++ {
		y := cfg.Chunks.WrapMin + float64(i)*cfg.Derived.ChunkStride
		tr := flatPlane(0, y, cfg.Curve.Height(y))
		e := mapper.NewEntity(
			&tr,
			&components.Chunk{Index: i},
			&components.Ground{Size: float32(cfg.Chunks.Size), Color: rgb(cfg.Chunks.Color)},
			&components.Name{Value: fmt.Sprintf("Chunk %d", i)},
		)
		chunks = append(chunks, e)
	}
	return chunks
}

// flatPlane returns a transform that stands an XZ plane up into the XY plane.
func flatPlane(x, y, z float64) components.Transform {
	tr := components.NewTransform(x, y, z)
	tr.Rotation = geom.RotationX(90)
	return tr
}

func rgb(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
