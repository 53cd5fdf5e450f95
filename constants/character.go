package constants

// Character movement
const (
	// MoveStep is the positional delta applied per key-down, shared by camera, character and ground
	MoveStep = 0.25

	// GroundNudge is the ground rotation delta applied per key-down
	GroundNudge = 0.1

	FacingRight   = 1.5
	FacingLeft    = -1.5
	FacingDown    = 0.0
	FacingUp      = 3.0
	FacingInitial = 3.0

	CharacterScale = 1.1
	CharacterSize  = 0.5
)

// Bounds monitor
const (
	// BoundsLimit is the |x| or |z| ground offset past which everything teleports home
	BoundsLimit = 20.0

	// BoundsEdge is the exact ground offset that only emits a diagnostic
	BoundsEdge = 18.0
)

// Orbit camera limits
const (
	OrbitMinDistance = 1.2
	OrbitMaxDistance = 3.3
	OrbitMinPolar    = 0.5
	OrbitMaxPolar    = 3.141592653589793 / 1.6

	// OrbitDragSpeed is radians of rotation per terminal cell dragged
	OrbitDragSpeed = 0.05
	// OrbitZoomStep is the distance change per wheel notch
	OrbitZoomStep = 0.15
)
