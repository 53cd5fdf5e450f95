package vmath

import (
	"math"
	"testing"
)

func approxVec(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestRotateInverseRoundTrip(t *testing.T) {
	v := Vec3{0.3, -1.2, 2.5}
	angles := []Vec3{
		{},
		{0.5, 0, 0},
		{0, 1.5, 0},
		{0, 0, 3},
		{0.003, -0.003, 0.003},
		{1.1, -2.2, 0.7},
	}

	for _, e := range angles {
		got := InverseRotateXYZ(RotateXYZ(v, e), e)
		if !approxVec(got, v, 1e-9) {
			t.Errorf("angles %+v: round trip %+v, want %+v", e, got, v)
		}
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	got := RotateXYZ(Vec3{0, 0, 1}, Vec3{0, math.Pi / 2, 0})
	want := Vec3{1, 0, 0}
	if !approxVec(got, want, 1e-9) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	cases := []Vec3{
		{0, 3, 2},
		{1, 1, 1},
		{-2, 0.5, -1},
	}
	for _, v := range cases {
		got := SphericalFromVec3(v).Vec3()
		if !approxVec(got, v, 1e-9) {
			t.Errorf("round trip %+v -> %+v", v, got)
		}
	}

	if s := SphericalFromVec3(Vec3{}); s.Radius != 0 {
		t.Errorf("zero vector radius = %f", s.Radius)
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := V3Normalize(Vec3{}); got != (Vec3{}) {
		t.Errorf("expected zero vector, got %+v", got)
	}
	if got := V3Mag(V3Normalize(Vec3{3, 4, 0})); math.Abs(got-1) > 1e-12 {
		t.Errorf("expected unit length, got %f", got)
	}
}

func TestRandRangeBounds(t *testing.T) {
	rng := NewRand(42)
	for i := 0; i < 10000; i++ {
		v := RandRange(rng, -0.7, 0.4)
		if v < -0.7 || v >= 0.4 {
			t.Fatalf("sample %f outside [-0.7, 0.4)", v)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 1, 1},
		{-5, 0, 1, 0},
		{0.5, 0, 1, 0.5},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%f, %f, %f) = %f, want %f", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
