package vmath

import "math"

// RotateXYZ applies Euler angles e (radians) to v in XYZ order: v' = Rx * Ry * Rz * v
func RotateXYZ(v, e Vec3) Vec3 {
	v = rotateZ(v, e.Z)
	v = rotateY(v, e.Y)
	return rotateX(v, e.X)
}

// InverseRotateXYZ undoes RotateXYZ, mapping a world direction into body-local space
func InverseRotateXYZ(v, e Vec3) Vec3 {
	v = rotateX(v, -e.X)
	v = rotateY(v, -e.Y)
	return rotateZ(v, -e.Z)
}

func rotateX(v Vec3, a float64) Vec3 {
	s, c := math.Sincos(a)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

func rotateY(v Vec3, a float64) Vec3 {
	s, c := math.Sincos(a)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

func rotateZ(v Vec3, a float64) Vec3 {
	s, c := math.Sincos(a)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}
