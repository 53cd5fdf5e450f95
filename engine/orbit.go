package engine

import (
	"github.com/lixenwraith/moonwalk/constants"
	"github.com/lixenwraith/moonwalk/vmath"
)

// OrbitControls rotates and zooms the camera around a target from mouse input
// Input accumulates between ticks and is applied once per Update
type OrbitControls struct {
	Enabled bool

	MinDistance, MaxDistance float64
	MinPolar, MaxPolar       float64

	dTheta, dPhi float64
	dZoom        float64
}

// NewOrbitControls returns enabled controls with the scene's limits
func NewOrbitControls() *OrbitControls {
	return &OrbitControls{
		Enabled:     true,
		MinDistance: constants.OrbitMinDistance,
		MaxDistance: constants.OrbitMaxDistance,
		MinPolar:    constants.OrbitMinPolar,
		MaxPolar:    constants.OrbitMaxPolar,
	}
}

// Drag queues a rotation from a mouse drag of dx,dy cells
func (o *OrbitControls) Drag(dx, dy int) {
	if !o.Enabled {
		return
	}
	o.dTheta += float64(dx) * constants.OrbitDragSpeed
	o.dPhi += float64(dy) * constants.OrbitDragSpeed
}

// Zoom queues a distance change; positive steps move away from the target
func (o *OrbitControls) Zoom(steps int) {
	if !o.Enabled {
		return
	}
	o.dZoom += float64(steps) * constants.OrbitZoomStep
}

// Update applies queued input and the distance/polar limits, keeping cam aimed at target
func (o *OrbitControls) Update(cam *Camera, target vmath.Vec3) {
	cam.Target = target
	if !o.Enabled {
		return
	}

	s := vmath.SphericalFromVec3(vmath.V3Sub(cam.Position, target))
	s.Theta -= o.dTheta
	s.Phi = vmath.Clamp(s.Phi-o.dPhi, o.MinPolar, o.MaxPolar)
	s.Radius = vmath.Clamp(s.Radius+o.dZoom, o.MinDistance, o.MaxDistance)
	o.dTheta, o.dPhi, o.dZoom = 0, 0, 0

	cam.Position = vmath.V3Add(target, s.Vec3())
}
