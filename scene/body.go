package scene

import (
	"math/rand/v2"

	"github.com/lixenwraith/moonwalk/asset"
	"github.com/lixenwraith/moonwalk/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// Kind classifies a body for rendering and update rules
type Kind int

const (
	KindPlanet Kind = iota
	KindSun
	KindGround
	KindAsteroid
	KindSky
)

// Shape selects the surface normal model used for shading
type Shape int

const (
	ShapeSphere Shape = iota
	ShapeOctahedron
)

// Material is the body's visual handle; Texture stays nil until its load completes
type Material struct {
	TexturePath string
	Texture     *asset.Texture
	// Color is the flat fallback used for placeholders and before the texture arrives
	Color colorful.Color
	// Repeat tiles the texture in both directions
	Repeat float64
	// BackSide renders the inside of the sphere
	BackSide bool
}

// Body is a renderable solid with a position, Euler rotation and optional spin rule
type Body struct {
	Name     string
	Kind     Kind
	Shape    Shape
	Radius   float64
	Position vmath.Vec3
	Rotation vmath.Vec3
	Material Material
	Spin     Spinner
}

// Update advances the body's rotation by its spin rule; bodies without one stay put
func (b *Body) Update() {
	if b.Spin != nil {
		b.Spin.Spin(&b.Rotation)
	}
}

// Spinner mutates a rotation once per frame
type Spinner interface {
	Spin(rot *vmath.Vec3)
}

// RandomSpin advances Y by a speed re-drawn on every call
type RandomSpin struct {
	Min, Max float64
	Rng      *rand.Rand
}

func (s RandomSpin) Spin(rot *vmath.Vec3) {
	rot.Y += vmath.RandRange(s.Rng, s.Min, s.Max)
}

// FixedSpin advances each axis by a constant
type FixedSpin vmath.Vec3

func (s FixedSpin) Spin(rot *vmath.Vec3) {
	rot.X += s.X
	rot.Y += s.Y
	rot.Z += s.Z
}
