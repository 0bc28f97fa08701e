package components

import (
	"image/color"
	"os"
)

// Camera marks the entity the scene is rendered from.
type Camera struct {
	FovY float32 `inspect:"bar,max:120"`
}

// CameraTrail positions a camera behind the tank it follows.
type CameraTrail struct {
	Distance    float64 `inspect:"bar,max:50"`
	AngleOffset float64 `inspect:"angle"` // degrees added to the tank heading
	Height      float64 `inspect:"bar,max:20"`
}

// DirectionalLight is a sun-like light. HalfSize bounds the orthographic
// shadow projection on every side; near and far span ten times that.
type DirectionalLight struct {
	Color          color.RGBA `inspect:"skip"`
	Illuminance    float32    `inspect:"bar,max:1"`
	HalfSize       float32    `inspect:"label,fmt:%.0f"`
	ShadowsEnabled bool       `inspect:"bool"`
}

// Near returns the near plane of the shadow projection.
func (l DirectionalLight) Near() float32 { return -10 * l.HalfSize }

// Far returns the far plane of the shadow projection.
func (l DirectionalLight) Far() float32 { return 10 * l.HalfSize }

// Marker is a small debug sphere.
type Marker struct {
	Radius  float32    `inspect:"label,fmt:%.2f"`
	Sectors int        `inspect:"skip"`
	Stacks  int        `inspect:"skip"`
	Color   color.RGBA `inspect:"skip"`
}

// Ground is a flat square plane generated in the XZ plane.
type Ground struct {
	Size  float32    `inspect:"label,fmt:%.0f"`
	Color color.RGBA `inspect:"skip"`
}

// Chunk is a recycled ground segment. Its lateral position is the owning
// Transform's Y and its depth is the world curve at that position.
type Chunk struct {
	Index int `inspect:"label"`
}

// Model references a 3D model asset loaded by the renderer.
type Model struct {
	Path string `inspect:"label"`
}

// Exists reports whether Path names a regular file.
func (m Model) Exists() bool {
	info, err := os.Stat(m.Path)
	return err == nil && info.Mode().IsRegular()
}
