package engine

import (
	"log"
	"math"

	"github.com/lixenwraith/moonwalk/constants"
)

// BoundsResult reports what the monitor did this tick
type BoundsResult uint8

const (
	BoundsOK    BoundsResult = iota
	BoundsEdge               // exactly on the ±18 line, diagnostic only
	BoundsReset              // past ±20, everything teleported home
)

func (r BoundsResult) String() string {
	switch r {
	case BoundsEdge:
		return "edge"
	case BoundsReset:
		return "reset"
	}
	return "ok"
}

// CheckBounds watches the ground plane, which moves in lockstep with the character
// The edge check is exact equality and, when it matches, the reset check is skipped
func (ctx *GameContext) CheckBounds() BoundsResult {
	p := ctx.Scene.Ground.Position
	edge := constants.BoundsEdge
	if p.X == edge || p.Z == edge || p.X == -edge || p.Z == -edge {
		log.Printf("too far: ground at x=%.2f z=%.2f", p.X, p.Z)
		ctx.SetDiagnostic("too far")
		return BoundsEdge
	}

	limit := constants.BoundsLimit
	if math.Abs(p.X) > limit || math.Abs(p.Z) > limit {
		if ctx.Character != nil {
			ctx.Character.Position = CharacterHome
		}
		ctx.Scene.Ground.Position = GroundHome
		ctx.Camera.Position = CameraHome
		log.Printf("out of bounds at x=%.2f z=%.2f, reset to origin", p.X, p.Z)
		ctx.SetDiagnostic("reset to origin")
		return BoundsReset
	}
	return BoundsOK
}
