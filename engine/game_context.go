package engine

import (
	"time"

	"github.com/lixenwraith/moonwalk/animation"
	"github.com/lixenwraith/moonwalk/asset"
	"github.com/lixenwraith/moonwalk/audio"
	"github.com/lixenwraith/moonwalk/constants"
	"github.com/lixenwraith/moonwalk/scene"
	"github.com/lixenwraith/moonwalk/vmath"
)

// Home positions restored by the bounds monitor
var (
	CharacterHome = vmath.Vec3{}
	GroundHome    = vmath.Vec3{Y: constants.GroundY}
	CameraHome    = vmath.Vec3{Y: 3, Z: 2}
)

// AssetSource issues loads and delivers completion events
type AssetSource interface {
	Load(req asset.Request)
	Results() <-chan asset.Result
}

// Camera is the viewpoint; Target is what the orbit controls look at
type Camera struct {
	Position vmath.Vec3
	Target   vmath.Vec3
}

// GameContext holds all scene state; owned by the frame loop goroutine
type GameContext struct {
	// ===== Immutable After Init =====

	Scene  *scene.Scene
	Time   TimeSource
	Audio  *audio.Engine
	Assets AssetSource

	// ===== Frame Loop Exclusive =====
	// No synchronization: only the loop goroutine reads or writes these

	Camera    Camera
	Orbit     *OrbitControls
	Character *Character // nil until the model load completes
	Mixers    []*animation.Mixer
	Clock     *animation.Clock
	Listener  audio.Listener
	Ambience  *audio.Ambience

	Width, Height int // Terminal dimensions
	FrameNumber   int64

	LoadFailures int // assets replaced by placeholders
	PendingLoads int

	diagnostic   string
	diagnosticAt time.Time
	lastTick     time.Time
}

// NewGameContext creates a context around a populated scene
// eng and assets may be nil in tests; voices and loads are then skipped
func NewGameContext(sc *scene.Scene, eng *audio.Engine, assets AssetSource, ts TimeSource, width, height int) *GameContext {
	if ts == nil {
		ts = NewTimeProvider()
	}
	ctx := &GameContext{
		Scene:  sc,
		Time:   ts,
		Audio:  eng,
		Assets: assets,
		Camera: Camera{Position: CameraHome},
		Orbit:  NewOrbitControls(),
		Clock:  animation.NewClock(constants.AnimationInterval, constants.AnimationSpeed),
		Width:  width,
		Height: height,
	}
	ctx.Listener = audio.Listener{Position: ctx.Camera.Position, Right: vmath.Vec3{X: 1}}
	return ctx
}

// SetDiagnostic shows msg on the HUD until it times out
func (ctx *GameContext) SetDiagnostic(msg string) {
	ctx.diagnostic = msg
	ctx.diagnosticAt = ctx.Time.Now()
}

// Diagnostic returns the current HUD message, empty once expired
func (ctx *GameContext) Diagnostic() string {
	if ctx.diagnostic == "" {
		return ""
	}
	if ctx.Time.Now().Sub(ctx.diagnosticAt) > constants.DiagnosticTimeout {
		ctx.diagnostic = ""
	}
	return ctx.diagnostic
}

// Resize updates the viewport dimensions
func (ctx *GameContext) Resize(width, height int) {
	ctx.Width, ctx.Height = width, height
}

// OrbitTarget is the character position once loaded, the origin before
func (ctx *GameContext) OrbitTarget() vmath.Vec3 {
	if ctx.Character == nil {
		return vmath.Vec3{}
	}
	return ctx.Character.Position
}
