package engine

import (
	"errors"

	"github.com/lixenwraith/moonwalk/animation"
	"github.com/lixenwraith/moonwalk/asset"
	"github.com/lixenwraith/moonwalk/constants"
	"github.com/lixenwraith/moonwalk/input"
	"github.com/lixenwraith/moonwalk/vmath"
)

// ErrNotReady is returned for input that needs the character before its model has loaded
var ErrNotReady = errors.New("character not loaded")

// AnimationState is the character's locomotion state
type AnimationState uint8

const (
	AnimIdle AnimationState = iota
	AnimRunning
)

func (s AnimationState) String() string {
	if s == AnimRunning {
		return "running"
	}
	return "idle"
}

// Character is the player avatar
type Character struct {
	Position vmath.Vec3
	FacingZ  float64 // rotation about z, radians
	State    AnimationState
	Scale    float64
	Size     float64

	Model *asset.Model
	Mixer *animation.Mixer
	Idle  *animation.Action
	Run   *animation.Action
}

// NewCharacter places the avatar at the origin with the idle clip playing
func NewCharacter(model *asset.Model) *Character {
	mixer := animation.NewMixer()
	c := &Character{
		Position: CharacterHome,
		FacingZ:  constants.FacingInitial,
		State:    AnimIdle,
		Scale:    constants.CharacterScale,
		Size:     constants.CharacterSize,
		Model:    model,
		Mixer:    mixer,
		Idle:     mixer.ClipAction(model.Clip(asset.ClipIdle)),
		Run:      mixer.ClipAction(model.Clip(asset.ClipRun)),
	}
	c.Idle.Play()
	return c
}

// Frame returns the sprite rows to draw; run takes precedence while it plays
func (c *Character) Frame() []string {
	if c.Run.IsRunning() {
		return c.Run.Frame()
	}
	return c.Idle.Frame()
}

// SetCharacter installs a loaded character and registers its mixer
func (ctx *GameContext) SetCharacter(c *Character) {
	ctx.Character = c
	ctx.Mixers = append(ctx.Mixers, c.Mixer)
}

// KeyDown moves character, camera and ground together
// Horizontal and depth axes are handled independently; non-movement keys are ignored
func (ctx *GameContext) KeyDown(code input.KeyCode) error {
	if !code.IsMovement() {
		return nil
	}
	c := ctx.Character
	if c == nil {
		return ErrNotReady
	}
	ground := ctx.Scene.Ground

	var delta vmath.Vec3
	switch code {
	case input.KeyRight:
		delta.X = constants.MoveStep
		c.FacingZ = constants.FacingRight
		ground.Rotation.Z += constants.GroundNudge
	case input.KeyLeft:
		delta.X = -constants.MoveStep
		c.FacingZ = constants.FacingLeft
		ground.Rotation.Z -= constants.GroundNudge
	}
	switch code {
	case input.KeyDown:
		delta.Z = constants.MoveStep
		c.FacingZ = constants.FacingDown
		ground.Rotation.X -= constants.GroundNudge
	case input.KeyUp:
		delta.Z = -constants.MoveStep
		c.FacingZ = constants.FacingUp
		ground.Rotation.X += constants.GroundNudge
	}

	ctx.Camera.Position = vmath.V3Add(ctx.Camera.Position, delta)
	c.Position = vmath.V3Add(c.Position, delta)
	ground.Position = vmath.V3Add(ground.Position, delta)

	c.Run.Play()
	c.State = AnimRunning
	return nil
}

// KeyUp ends running on any key release
func (ctx *GameContext) KeyUp(code input.KeyCode) error {
	c := ctx.Character
	if c == nil {
		return ErrNotReady
	}
	c.Run.Stop()
	c.Idle.Play()
	c.State = AnimIdle
	return nil
}
