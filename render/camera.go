package render

import (
	"math"

	"github.com/lixenwraith/moonwalk/engine"
	"github.com/lixenwraith/moonwalk/vmath"
)

// FieldOfView is the vertical field of view in degrees
const FieldOfView = 90.0

const nearPlane = 0.1

var worldUp = vmath.Vec3{Y: 1}

// View is a pinhole camera over a pixel grid of square pixels
// Each terminal cell holds two pixels stacked vertically
type View struct {
	Eye                vmath.Vec3
	Forward, Right, Up vmath.Vec3
	Width, Height      int
	tanHalf, aspect    float64
}

// NewView builds the camera basis looking from cam.Position at cam.Target
func NewView(cam engine.Camera, width, height int) View {
	fwd := vmath.V3Normalize(vmath.V3Sub(cam.Target, cam.Position))
	if vmath.V3MagSq(fwd) == 0 {
		fwd = vmath.Vec3{Z: -1}
	}
	right := vmath.V3Cross(fwd, worldUp)
	if vmath.V3MagSq(right) < 1e-12 {
		right = vmath.Vec3{X: 1}
	}
	right = vmath.V3Normalize(right)
	up := vmath.V3Cross(right, fwd)

	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return View{
		Eye:     cam.Position,
		Forward: fwd,
		Right:   right,
		Up:      up,
		Width:   width,
		Height:  height,
		tanHalf: math.Tan(FieldOfView * math.Pi / 360),
		aspect:  aspect,
	}
}

// Ray returns the unit direction through pixel (px, py), sampled at the pixel center
func (v View) Ray(px, py int) vmath.Vec3 {
	nx := (2*(float64(px)+0.5)/float64(v.Width) - 1) * v.aspect * v.tanHalf
	ny := (1 - 2*(float64(py)+0.5)/float64(v.Height)) * v.tanHalf
	d := vmath.V3Add(v.Forward, vmath.V3Add(vmath.V3Scale(v.Right, nx), vmath.V3Scale(v.Up, ny)))
	return vmath.V3Normalize(d)
}

// Project maps a world point to pixel coordinates and its distance from the eye
// ok is false for points behind the near plane
func (v View) Project(p vmath.Vec3) (px, py, dist float64, ok bool) {
	d := vmath.V3Sub(p, v.Eye)
	z := vmath.V3Dot(d, v.Forward)
	if z < nearPlane {
		return 0, 0, 0, false
	}
	x := vmath.V3Dot(d, v.Right) / (z * v.tanHalf * v.aspect)
	y := vmath.V3Dot(d, v.Up) / (z * v.tanHalf)
	px = (x + 1) / 2 * float64(v.Width)
	py = (1 - y) / 2 * float64(v.Height)
	return px, py, vmath.V3Mag(d), true
}
