package geom

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Canonical axes. Z is up in world space; local -Z is forward, as for cameras.
var (
	AxisX = r3.Vec{X: 1}
	AxisY = r3.Vec{Y: 1}
	AxisZ = r3.Vec{Z: 1}
)

// Identity is the rotation that leaves every vector unchanged.
// The zero r3.Rotation is not a valid rotation.
var Identity = r3.Rotation{Real: 1}

// RotationX returns a rotation of deg degrees about +X.
func RotationX(deg float64) r3.Rotation {
	return r3.NewRotation(DegToRad(deg), AxisX)
}

// RotationZ returns a rotation of deg degrees about +Z.
func RotationZ(deg float64) r3.Rotation {
	return r3.NewRotation(DegToRad(deg), AxisZ)
}

// Forward returns the direction local -Z points to after rotation.
func Forward(rot r3.Rotation) r3.Vec {
	return rot.Rotate(r3.Vec{Z: -1})
}

// Up returns the direction local +Y points to after rotation.
func Up(rot r3.Rotation) r3.Vec {
	return rot.Rotate(AxisY)
}

// LookAt returns the rotation that points local -Z from eye toward target,
// keeping local +Y as close to up as possible. ok is false when no such
// rotation is defined: eye equals target, or the view direction is parallel
// to up.
func LookAt(eye, target, up r3.Vec) (rot r3.Rotation, ok bool) {
	dir := r3.Sub(target, eye)
	if r3.Norm(dir) < 1e-9 {
		return Identity, false
	}
	back := r3.Unit(r3.Scale(-1, dir))
	right := r3.Cross(up, back)
	if r3.Norm(right) < 1e-9 {
		return Identity, false
	}
	right = r3.Unit(right)
	newUp := r3.Cross(back, right)
	return fromBasis(right, newUp, back), true
}

// fromBasis converts the orthonormal basis (columns x, y, z) to a quaternion.
func fromBasis(x, y, z r3.Vec) r3.Rotation {
	m00, m10, m20 := x.X, x.Y, x.Z
	m01, m11, m21 := y.X, y.Y, y.Z
	m02, m12, m22 := z.X, z.Y, z.Z

	var q quat.Number
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		q = quat.Number{Real: 0.25 * s, Imag: (m21 - m12) / s, Jmag: (m02 - m20) / s, Kmag: (m10 - m01) / s}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1+m00-m11-m22) * 2
		q = quat.Number{Real: (m21 - m12) / s, Imag: 0.25 * s, Jmag: (m01 + m10) / s, Kmag: (m02 + m20) / s}
	case m11 > m22:
		s := math.Sqrt(1+m11-m00-m22) * 2
		q = quat.Number{Real: (m02 - m20) / s, Imag: (m01 + m10) / s, Jmag: 0.25 * s, Kmag: (m12 + m21) / s}
	default:
		s := math.Sqrt(1+m22-m00-m11) * 2
		q = quat.Number{Real: (m10 - m01) / s, Imag: (m02 + m20) / s, Jmag: (m12 + m21) / s, Kmag: 0.25 * s}
	}
	return r3.Rotation(normalize(q))
}

// AxisAngle decomposes rot into a unit axis and an angle in degrees.
// The identity yields +X and 0.
func AxisAngle(rot r3.Rotation) (axis r3.Vec, deg float64) {
	q := normalize(quat.Number(rot))
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	w := math.Min(1, q.Real)
	s := math.Sqrt(1 - w*w)
	if s < 1e-9 {
		return AxisX, 0
	}
	axis = r3.Vec{X: q.Imag / s, Y: q.Jmag / s, Z: q.Kmag / s}
	return axis, 2 * math.Acos(w) * 180 / math.Pi
}

func normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return quat.Number(Identity)
	}
	return quat.Scale(1/n, q)
}
