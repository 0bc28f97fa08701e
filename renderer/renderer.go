// Package renderer draws the ECS world with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/tanks/components"
	"github.com/pthm-cable/tanks/config"
	"github.com/pthm-cable/tanks/geom"
	"github.com/pthm-cable/tanks/systems"
)

var (
	colorShadow  = rl.Color{R: 0, G: 0, B: 0, A: 90}
	colorHeading = rl.Color{R: 255, G: 200, B: 100, A: 255}
)

// Renderer draws every renderable entity from the active camera.
type Renderer struct {
	DebugLines bool // world axes and tank headings
	Shadows    bool // blob shadows, when the light casts them

	assets *Assets

	cameras *ecs.Filter2[components.Transform, components.Camera]
	lights  *ecs.Filter2[components.Transform, components.DirectionalLight]
	grounds *ecs.Filter2[components.Transform, components.Ground]
	markers *ecs.Filter2[components.Transform, components.Marker]
	models  *ecs.Filter2[components.Transform, components.Model]
	tanks   *ecs.Filter2[components.Transform, components.TankControllable]

	ambient      float64
	ambientColor color.RGBA
	groundZ      float64
}

// NewRenderer creates a renderer for world.
func NewRenderer(world *ecs.World, cfg *config.Config) *Renderer {
	c := cfg.Light.AmbientColor
	return &Renderer{
		DebugLines:   true,
		Shadows:      true,
		assets:       NewAssets(),
		cameras:      ecs.NewFilter2[components.Transform, components.Camera](world),
		lights:       ecs.NewFilter2[components.Transform, components.DirectionalLight](world),
		grounds:      ecs.NewFilter2[components.Transform, components.Ground](world),
		markers:      ecs.NewFilter2[components.Transform, components.Marker](world),
		models:       ecs.NewFilter2[components.Transform, components.Model](world),
		tanks:        ecs.NewFilter2[components.Transform, components.TankControllable](world),
		ambient:      cfg.Light.AmbientBrightness,
		ambientColor: color.RGBA{R: c[0], G: c[1], B: c[2], A: 255},
		groundZ:      cfg.Ground.Height,
	}
}

// Camera converts the first camera entity into a raylib camera.
func (r *Renderer) Camera() (rl.Camera3D, bool) {
	query := r.cameras.Query()
	if !query.Next() {
		return rl.Camera3D{}, false
	}
	tr, cam := query.Get()
	camera := CameraFrom(*tr, cam.FovY)
	query.Close()
	return camera, true
}

// CameraFrom builds a perspective camera looking along the transform's
// forward axis.
func CameraFrom(tr components.Transform, fovY float32) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec(tr.Translation),
		Target:     vec(r3.Add(tr.Translation, geom.Forward(tr.Rotation))),
		Up:         vec(geom.Up(tr.Rotation)),
		Fovy:       fovY,
		Projection: rl.CameraPerspective,
	}
}

// sun is the state of the first directional light.
type sun struct {
	origin      r3.Vec
	dir         r3.Vec
	illuminance float64
	halfSize    float64
	near, far   float64
	shadows     bool
	color       color.RGBA
}

func (r *Renderer) sun() (sun, bool) {
	query := r.lights.Query()
	if !query.Next() {
		return sun{}, false
	}
	tr, light := query.Get()
	s := sun{
		origin:      tr.Translation,
		dir:         geom.Forward(tr.Rotation),
		illuminance: float64(light.Illuminance),
		halfSize:    float64(light.HalfSize),
		near:        float64(light.Near()),
		far:         float64(light.Far()),
		shadows:     light.ShadowsEnabled,
		color:       light.Color,
	}
	query.Close()
	return s, true
}

// Draw renders the scene. It must be called between BeginDrawing and
// EndDrawing.
func (r *Renderer) Draw() {
	camera, ok := r.Camera()
	if !ok {
		return
	}
	light, hasLight := r.sun()

	rl.BeginMode3D(camera)

	grounds := r.grounds.Query()
	for grounds.Next() {
		tr, g := grounds.Get()
		tint := r.shade(g.Color, geom.Up(tr.Rotation), light, hasLight)
		r.drawModel(r.assets.Plane(g.Size), *tr, tint)
	}

	markers := r.markers.Query()
	for markers.Next() {
		tr, m := markers.Get()
		tint := r.shade(m.Color, geom.AxisZ, light, hasLight)
		r.drawModel(r.assets.Sphere(m.Radius, m.Stacks, m.Sectors), *tr, tint)
		if r.Shadows && hasLight && light.shadows {
			r.drawShadow(tr.Translation, float32(m.Radius), light)
		}
	}

	models := r.models.Query()
	for models.Next() {
		tr, m := models.Get()
		tint := r.shade(rl.White, geom.AxisZ, light, hasLight)
		r.drawModel(r.assets.Model(*m), *tr, tint)
		if r.Shadows && hasLight && light.shadows {
			r.drawShadow(tr.Translation, 0.6, light)
		}
	}

	if r.DebugLines {
		r.drawDebugLines()
	}

	rl.EndMode3D()
}

func (r *Renderer) drawModel(model rl.Model, tr components.Transform, tint color.RGBA) {
	axis, deg := geom.AxisAngle(tr.Rotation)
	rl.DrawModelEx(model, vec(tr.Translation), vec(axis), float32(deg), vec(tr.Scale), tint)
}

// shade applies ambient plus diffuse light to base.
func (r *Renderer) shade(base color.RGBA, normal r3.Vec, light sun, hasLight bool) color.RGBA {
	f := func(c, amb, lit uint8) uint8 {
		v := float64(c) / 255 * (r.ambient*float64(amb)/255 + float64(lit)/255*diffuse(normal, light, hasLight))
		return uint8(min(v, 1) * 255)
	}
	return color.RGBA{
		R: f(base.R, r.ambientColor.R, light.color.R),
		G: f(base.G, r.ambientColor.G, light.color.G),
		B: f(base.B, r.ambientColor.B, light.color.B),
		A: base.A,
	}
}

func diffuse(normal r3.Vec, light sun, hasLight bool) float64 {
	if !hasLight {
		return 0
	}
	return light.illuminance * geom.Lambert(normal, light.dir)
}

// drawShadow puts a dark disc where p projects onto the ground, if p is
// within the light's depth range and the spot is inside its shadow box.
func (r *Renderer) drawShadow(p r3.Vec, radius float32, light sun) {
	if !geom.InLightDepth(p, light.origin, light.dir, light.near, light.far) {
		return
	}
	spot, ok := geom.ShadowPoint(p, light.dir, r.groundZ+0.01)
	if !ok || !geom.InShadowBox(spot, light.halfSize) {
		return
	}
	top := r3.Add(spot, r3.Vec{Z: 0.01})
	rl.DrawCylinderEx(vec(spot), vec(top), radius, radius, 16, colorShadow)
}

// drawDebugLines draws the world axes at the origin and each tank's heading.
func (r *Renderer) drawDebugLines() {
	origin := rl.Vector3{}
	rl.DrawLine3D(origin, vec(r3.Scale(2, geom.AxisX)), rl.Red)
	rl.DrawLine3D(origin, vec(r3.Scale(2, geom.AxisY)), rl.Green)
	rl.DrawLine3D(origin, vec(r3.Scale(2, geom.AxisZ)), rl.Blue)

	tanks := r.tanks.Query()
	for tanks.Next() {
		tr, tank := tanks.Get()
		dx, dy := systems.Heading(tank.Angle)
		tip := r3.Add(tr.Translation, r3.Vec{X: 3 * dx, Y: 3 * dy})
		rl.DrawLine3D(vec(tr.Translation), vec(tip), colorHeading)
	}
}

// Unload frees GPU resources.
func (r *Renderer) Unload() {
	r.assets.Unload()
}

func vec(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
