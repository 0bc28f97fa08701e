package geom

import "gonum.org/v1/gonum/spatial/r3"

// Lambert returns how strongly a surface with the given normal is lit by a
// directional light shining along dir. The result is in [0, 1].
func Lambert(normal, dir r3.Vec) float64 {
	n, d := r3.Norm(normal), r3.Norm(dir)
	if n == 0 || d == 0 {
		return 0
	}
	return max(0, -r3.Dot(normal, dir)/(n*d))
}

// ShadowPoint projects p along the light direction onto the plane z = groundZ.
// It reports false when the light does not point down or p is below the plane.
func ShadowPoint(p, dir r3.Vec, groundZ float64) (r3.Vec, bool) {
	if dir.Z >= 0 || p.Z < groundZ {
		return r3.Vec{}, false
	}
	t := (groundZ - p.Z) / dir.Z
	return r3.Add(p, r3.Scale(t, dir)), true
}

// InShadowBox reports whether p lies inside the square shadow projection of
// the given half extent, centred on the origin.
func InShadowBox(p r3.Vec, halfSize float64) bool {
	return p.X >= -halfSize && p.X <= halfSize && p.Y >= -halfSize && p.Y <= halfSize
}

// InLightDepth reports whether p lies between the near and far planes of a
// light at origin shining along dir.
func InLightDepth(p, origin, dir r3.Vec, near, far float64) bool {
	if r3.Norm(dir) == 0 {
		return false
	}
	d := r3.Dot(r3.Sub(p, origin), r3.Unit(dir))
	return d >= near && d <= far
}
