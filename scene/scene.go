package scene

import (
	"math/rand/v2"

	"github.com/lixenwraith/moonwalk/asset"
	"github.com/lixenwraith/moonwalk/constants"
	"github.com/lixenwraith/moonwalk/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// Emitter names, also used as mixer panel labels
const (
	EmitterNameOscillator = "oscillator"
	EmitterNameBassline   = "bassline"
	EmitterNameDrums      = "drums"
	EmitterNameGuitars    = "guitars"
)

// AmbiencePath is the non-positional background track
const AmbiencePath = "sounds/Ambience.mp3"

type planetDef struct {
	name    string
	radius  float64
	texture string
	color   colorful.Color
}

var planetRoster = []planetDef{
	{"earth", 0.4, "textures/earth.png", colorful.Color{R: 0.2, G: 0.45, B: 0.8}},
	{"greyPlanet", 0.8, "textures/greyPlanet.jpeg", colorful.Color{R: 0.55, G: 0.55, B: 0.55}},
	{"jupiter", 1, "textures/jupiter.jpg", colorful.Color{R: 0.8, G: 0.65, B: 0.45}},
	{"mercury", 1, "textures/mercury.jpg", colorful.Color{R: 0.6, G: 0.5, B: 0.42}},
	{"neptune", 1, "textures/neptune.jpg", colorful.Color{R: 0.2, G: 0.3, B: 0.85}},
	{"uranus", 1, "textures/uranus.jpg", colorful.Color{R: 0.5, G: 0.85, B: 0.9}},
	{"venus", 1, "textures/venus.jpg", colorful.Color{R: 0.9, G: 0.75, B: 0.45}},
}

type emitterDef struct {
	name  string
	kind  EmitterKind
	x, z  float64
	sound string
	ref   float64
}

var emitterRoster = []emitterDef{
	{EmitterNameOscillator, EmitterOscillator, constants.AsteroidOffset, -constants.AsteroidOffset, "", constants.OscillatorRefDistance},
	{EmitterNameBassline, EmitterSample, -constants.AsteroidOffset, -constants.AsteroidOffset, "sounds/Piano170bpm.mp3", constants.SampleRefDistance},
	{EmitterNameDrums, EmitterSample, constants.AsteroidOffset, constants.AsteroidOffset, "sounds/Drums170bpm.wav", constants.SampleRefDistance},
	{EmitterNameGuitars, EmitterSample, -constants.AsteroidOffset, constants.AsteroidOffset, "sounds/Guitar170bpm.wav", constants.SampleRefDistance},
}

var (
	moonColor = colorful.Color{R: 0.72, G: 0.72, B: 0.7}
	sunColor  = colorful.Color{R: 1, G: 0.6, B: 0.15}
	lavaColor = colorful.Color{R: 0.85, G: 0.3, B: 0.08}
	skyColor  = colorful.Color{R: 0.03, G: 0.03, B: 0.08}
)

// Scene is the populated world: ground, sky, sun, planets and asteroid emitters
type Scene struct {
	Ground    *Body
	Sky       *Body
	Sun       *Body
	Planets   []*Body
	Asteroids []*Body
	Emitters  []*Emitter
}

// New populates the scene once; rng drives placement and planet spin
func New(rng *rand.Rand) *Scene {
	s := &Scene{}

	s.Ground = &Body{
		Name:     "moon",
		Kind:     KindGround,
		Radius:   constants.GroundRadius,
		Position: vmath.Vec3{Y: constants.GroundY},
		Material: Material{TexturePath: "textures/moon.jpg", Color: moonColor, Repeat: 1},
	}

	s.Sky = &Body{
		Name:   "sky",
		Kind:   KindSky,
		Radius: constants.SkyRadius,
		Material: Material{
			TexturePath: "textures/galaxyseamless.jpg",
			Color:       skyColor,
			Repeat:      constants.SkyRepeat,
			BackSide:    true,
		},
	}

	for _, def := range planetRoster {
		s.Planets = append(s.Planets, &Body{
			Name:     def.name,
			Kind:     KindPlanet,
			Radius:   def.radius,
			Position: RandomPlacement(rng),
			Material: Material{TexturePath: def.texture, Color: def.color, Repeat: 1},
			Spin:     RandomSpin{Min: constants.PlanetSpinMin, Max: constants.PlanetSpinMax, Rng: rng},
		})
	}

	s.Sun = &Body{
		Name:     "sun",
		Kind:     KindSun,
		Radius:   constants.SunRadius,
		Position: vmath.Vec3{Y: constants.SunY},
		Material: Material{TexturePath: "textures/sun.jpg", Color: sunColor, Repeat: 1},
		Spin:     FixedSpin{Y: constants.SunSpin},
	}

	for _, def := range emitterRoster {
		body := &Body{
			Name:   def.name,
			Kind:   KindAsteroid,
			Shape:  ShapeOctahedron,
			Radius: constants.AsteroidRadius,
			Position: vmath.Vec3{
				X: def.x,
				Y: vmath.RandRange(rng, constants.AsteroidYMin, constants.AsteroidYMax),
				Z: def.z,
			},
			Material: Material{TexturePath: "textures/lava.jpg", Color: lavaColor, Repeat: 1},
			Spin:     FixedSpin{X: constants.AsteroidSpin, Y: -constants.AsteroidSpin, Z: constants.AsteroidSpin},
		}
		s.Asteroids = append(s.Asteroids, body)
		s.Emitters = append(s.Emitters, &Emitter{
			Name:        def.name,
			Kind:        def.kind,
			Body:        body,
			SoundPath:   def.sound,
			RefDistance: def.ref,
		})
	}

	return s
}

// Update advances every spinning body by one frame
func (s *Scene) Update() {
	for _, p := range s.Planets {
		p.Update()
	}
	s.Sun.Update()
	for _, a := range s.Asteroids {
		a.Update()
	}
}

// Bodies returns every renderable except the sky, which is drawn as background
func (s *Scene) Bodies() []*Body {
	out := make([]*Body, 0, len(s.Planets)+len(s.Asteroids)+2)
	out = append(out, s.Ground, s.Sun)
	out = append(out, s.Planets...)
	out = append(out, s.Asteroids...)
	return out
}

// Emitter looks up an emitter by name
func (s *Scene) Emitter(name string) *Emitter {
	for _, e := range s.Emitters {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// TextureRequests lists one load per distinct texture path, tagged with the path itself
func (s *Scene) TextureRequests() []asset.Request {
	seen := make(map[string]bool)
	var reqs []asset.Request
	for _, b := range append(s.Bodies(), s.Sky) {
		p := b.Material.TexturePath
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		reqs = append(reqs, asset.Request{Kind: asset.KindTexture, Path: p, Tag: p})
	}
	return reqs
}

// ApplyTexture assigns tex to every body using path and returns how many were updated
// A nil tex installs a per-body placeholder built from the fallback color
func (s *Scene) ApplyTexture(path string, tex *asset.Texture) int {
	n := 0
	for _, b := range append(s.Bodies(), s.Sky) {
		if b.Material.TexturePath != path {
			continue
		}
		switch {
		case tex != nil:
			b.Material.Texture = tex
		case b.Kind == KindSky:
			b.Material.Texture = asset.StarfieldTexture()
		default:
			b.Material.Texture = asset.PlaceholderTexture(b.Name, b.Material.Color)
		}
		n++
	}
	return n
}
