package vmath

import "math"

// Spherical is a point in spherical coordinates around the +Y axis
// Phi is the polar angle from +Y, Theta the azimuth from +Z toward +X
type Spherical struct {
	Radius, Phi, Theta float64
}

// SphericalFromVec3 converts an offset vector into spherical coordinates
func SphericalFromVec3(v Vec3) Spherical {
	r := V3Mag(v)
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius: r,
		Phi:    math.Acos(Clamp(v.Y/r, -1, 1)),
		Theta:  math.Atan2(v.X, v.Z),
	}
}

// Vec3 converts back to a cartesian offset
func (s Spherical) Vec3() Vec3 {
	sinPhi := math.Sin(s.Phi)
	return Vec3{
		X: s.Radius * sinPhi * math.Sin(s.Theta),
		Y: s.Radius * math.Cos(s.Phi),
		Z: s.Radius * sinPhi * math.Cos(s.Theta),
	}
}
