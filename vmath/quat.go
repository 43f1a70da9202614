package vmath

import "math"

// Quat is a unit quaternion representing a 3D rotation
type Quat struct {
	W, X, Y, Z float64
}

func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle builds a rotation of angle radians around axis.
// The axis does not need to be normalized.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	a := axis.Normalize()
	sin, cos := math.Sincos(angle * 0.5)
	return Quat{W: cos, X: a.X * sin, Y: a.Y * sin, Z: a.Z * sin}
}

// Rotate applies the rotation to v: q * v * q̄
func (q Quat) Rotate(v Vec3) Vec3 {
	// t = 2 * (q.xyz × v)
	u := Vec3{q.X, q.Y, q.Z}
	t := u.cross(v).Scale(2)
	// v' = v + w*t + q.xyz × t
	return v.Add(t.Scale(q.W)).Add(u.cross(t))
}

func (v Vec3) cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}
