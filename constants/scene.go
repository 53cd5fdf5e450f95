package constants

// Placement ranges for decorative planets
const (
	PlacementHorizontalMin = -30.0
	PlacementHorizontalMax = 30.0
	PlacementVerticalMin   = -13.0
	PlacementVerticalMax   = 11.0

	// Planets never spawn inside the player's vertical band [-Band, Band]
	PlacementExcludedBand = 3.5
)

// Asteroid vertical jitter range
const (
	AsteroidYMin = -0.7
	AsteroidYMax = 0.4
	// AsteroidOffset is the |x| and |z| of each asteroid corner
	AsteroidOffset = 16.0
)

// Per-tick rotation rates (radians per frame, not time-normalized)
const (
	PlanetSpinMin = 0.01
	PlanetSpinMax = 0.02
	SunSpin       = 0.004
	AsteroidSpin  = 0.003
)

// Fixed bodies
const (
	GroundRadius = 1.0
	GroundY      = -1.0
	SunRadius    = 3.0
	SunY         = 15.0
	SkyRadius    = 150.0
	SkyRepeat    = 3.0

	AsteroidRadius = 1.0
)

// Reference distances for positional audio
const (
	OscillatorRefDistance = 1.0
	SampleRefDistance     = 1.5
)
