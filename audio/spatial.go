package audio

import (
	"github.com/lixenwraith/moonwalk/vmath"
)

// Listener is the ear attached to the camera
type Listener struct {
	Position vmath.Vec3
	// Right is the camera's unit right vector, used for stereo pan
	Right vmath.Vec3
}

// InverseDistanceGain is the inverse distance model with rolloff 1
// Distances inside ref play at full level
func InverseDistanceGain(dist, ref float64) float64 {
	if ref <= 0 {
		return 1
	}
	if dist < ref {
		dist = ref
	}
	return ref / (ref + (dist - ref))
}

// Pan returns the stereo position of pos as heard by l, in [-1, 1]
func (l Listener) Pan(pos vmath.Vec3) float64 {
	dir := vmath.V3Normalize(vmath.V3Sub(pos, l.Position))
	return vmath.Clamp(vmath.V3Dot(dir, l.Right), -1, 1)
}

// Spatialize updates v's distance attenuation and pan for a source at pos
func (l Listener) Spatialize(v *Voice, pos vmath.Vec3, ref float64) {
	if v == nil {
		return
	}
	gain := InverseDistanceGain(vmath.V3Dist(l.Position, pos), ref)
	v.SetSpatial(gain, l.Pan(pos))
}
