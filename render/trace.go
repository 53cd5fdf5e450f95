package render

import (
	"math"

	"github.com/lixenwraith/moonwalk/scene"
	"github.com/lixenwraith/moonwalk/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// Lighting: one ambient and one directional light from straight above
const (
	AmbientLight     = 0.6
	DirectionalLight = 0.6
)

const hitEpsilon = 1e-6

var lightDir = vmath.Vec3{Y: 1}

// octahedron face normals, unnormalized
var octFaces = func() [8]vmath.Vec3 {
	var f [8]vmath.Vec3
	i := 0
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				f[i] = vmath.Vec3{X: x, Y: y, Z: z}
				i++
			}
		}
	}
	return f
}()

type hit struct {
	t      float64
	body   *scene.Body
	normal vmath.Vec3 // world space, unit
	local  vmath.Vec3 // body space direction used for texture lookup
}

// intersectSphere returns the nearest positive ray parameter for a unit-direction ray
func intersectSphere(o, d, c vmath.Vec3, r float64) (float64, bool) {
	oc := vmath.V3Sub(o, c)
	b := vmath.V3Dot(oc, d)
	cc := vmath.V3MagSq(oc) - r*r
	disc := b*b - cc
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < hitEpsilon {
		t = -b + sq
		if t < hitEpsilon {
			return 0, false
		}
	}
	return t, true
}

// intersectOctahedron clips the ray against the eight faces |x|+|y|+|z| <= r in body space
func intersectOctahedron(o, d vmath.Vec3, body *scene.Body) (float64, vmath.Vec3, bool) {
	lo := vmath.InverseRotateXYZ(vmath.V3Sub(o, body.Position), body.Rotation)
	ld := vmath.InverseRotateXYZ(d, body.Rotation)

	tEnter, tExit := math.Inf(-1), math.Inf(1)
	var enterN vmath.Vec3
	for _, n := range octFaces {
		denom := vmath.V3Dot(n, ld)
		dist := body.Radius - vmath.V3Dot(n, lo)
		if math.Abs(denom) < 1e-12 {
			if dist < 0 {
				return 0, vmath.Vec3{}, false
			}
			continue
		}
		t := dist / denom
		if denom < 0 {
			if t > tEnter {
				tEnter, enterN = t, n
			}
		} else if t < tExit {
			tExit = t
		}
		if tEnter > tExit {
			return 0, vmath.Vec3{}, false
		}
	}
	if tEnter < hitEpsilon {
		return 0, vmath.Vec3{}, false
	}
	return tEnter, enterN, true
}

// trace finds the nearest body along the ray
func trace(o, d vmath.Vec3, bodies []*scene.Body) (hit, bool) {
	best := hit{t: math.Inf(1)}
	found := false
	for _, b := range bodies {
		switch b.Shape {
		case scene.ShapeOctahedron:
			t, n, ok := intersectOctahedron(o, d, b)
			if !ok || t >= best.t {
				continue
			}
			p := vmath.V3Add(vmath.InverseRotateXYZ(vmath.V3Sub(o, b.Position), b.Rotation),
				vmath.V3Scale(vmath.InverseRotateXYZ(d, b.Rotation), t))
			best = hit{
				t:      t,
				body:   b,
				normal: vmath.V3Normalize(vmath.RotateXYZ(n, b.Rotation)),
				local:  vmath.V3Normalize(p),
			}
			found = true
		default:
			t, ok := intersectSphere(o, d, b.Position, b.Radius)
			if !ok || t >= best.t {
				continue
			}
			n := vmath.V3Normalize(vmath.V3Sub(vmath.V3Add(o, vmath.V3Scale(d, t)), b.Position))
			best = hit{
				t:      t,
				body:   b,
				normal: n,
				local:  vmath.InverseRotateXYZ(n, b.Rotation),
			}
			found = true
		}
	}
	return best, found
}

// sphereUV maps a unit body-space direction to equirectangular texture coordinates
func sphereUV(p vmath.Vec3) (u, v float64) {
	u = 0.5 + math.Atan2(p.X, p.Z)/(2*math.Pi)
	v = math.Acos(vmath.Clamp(p.Y, -1, 1)) / math.Pi
	return u, v
}

// surface returns the unlit material color at a body-space direction
func surface(m scene.Material, local vmath.Vec3) colorful.Color {
	if m.Texture == nil {
		return m.Color
	}
	u, v := sphereUV(local)
	rep := m.Repeat
	if rep <= 0 {
		rep = 1
	}
	return m.Texture.Sample(u*rep, v*rep)
}

// shadeHit applies ambient plus directional lighting
func shadeHit(h hit) colorful.Color {
	k := AmbientLight + DirectionalLight*math.Max(0, vmath.V3Dot(h.normal, lightDir))
	return Shade(surface(h.body.Material, h.local), k)
}

// shadeSky samples the inside of the sky sphere along d
func shadeSky(sky *scene.Body, d vmath.Vec3) colorful.Color {
	if sky == nil {
		return colorful.Color{}
	}
	// Seen from inside, the surface normal points back at the viewer
	k := AmbientLight + DirectionalLight*math.Max(0, -d.Y)
	return Shade(surface(sky.Material, vmath.InverseRotateXYZ(d, sky.Rotation)), k)
}
