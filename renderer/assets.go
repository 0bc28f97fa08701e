package renderer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tanks/components"
)

// Assets caches models and generated meshes. Loading must happen after the
// raylib window exists, so everything is created on first use.
type Assets struct {
	models  map[string]rl.Model
	planes  map[float32]rl.Model
	spheres map[sphereKey]rl.Model
}

type sphereKey struct {
	radius        float32
	rings, slices int
}

// NewAssets creates an empty cache.
func NewAssets() *Assets {
	return &Assets{
		models:  make(map[string]rl.Model),
		planes:  make(map[float32]rl.Model),
		spheres: make(map[sphereKey]rl.Model),
	}
}

// Model returns the loaded asset for ref. A missing file is replaced with a
// unit cube so the scene still shows where the model sits.
func (a *Assets) Model(ref components.Model) rl.Model {
	if m, ok := a.models[ref.Path]; ok {
		return m
	}
	var m rl.Model
	if ref.Exists() {
		m = rl.LoadModel(ref.Path)
		slog.Info("model loaded", "path", ref.Path, "meshes", m.MeshCount)
	} else {
		slog.Warn("model missing, using placeholder", "path", ref.Path)
		m = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	}
	a.models[ref.Path] = m
	return m
}

// Plane returns a size x size plane in the XZ plane.
func (a *Assets) Plane(size float32) rl.Model {
	if m, ok := a.planes[size]; ok {
		return m
	}
	m := rl.LoadModelFromMesh(rl.GenMeshPlane(size, size, 1, 1))
	a.planes[size] = m
	return m
}

// Sphere returns a UV sphere.
func (a *Assets) Sphere(radius float32, rings, slices int) rl.Model {
	key := sphereKey{radius, rings, slices}
	if m, ok := a.spheres[key]; ok {
		return m
	}
	m := rl.LoadModelFromMesh(rl.GenMeshSphere(radius, rings, slices))
	a.spheres[key] = m
	return m
}

// Unload frees every cached model.
func (a *Assets) Unload() {
	for _, m := range a.models {
		rl.UnloadModel(m)
	}
	for _, m := range a.planes {
		rl.UnloadModel(m)
	}
	for _, m := range a.spheres {
		rl.UnloadModel(m)
	}
	clear(a.models)
	clear(a.planes)
	clear(a.spheres)
}
