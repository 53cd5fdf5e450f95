package engine

import (
	"github.com/lixenwraith/moonwalk/constants"
	"github.com/lixenwraith/moonwalk/vmath"
)

// Renderer draws one frame of the context
type Renderer interface {
	Render(ctx *GameContext)
}

var worldUp = vmath.Vec3{Y: 1}

// Tick runs one frame: assets, orbit, body rotation, bounds, animation, listener, render
func (ctx *GameContext) Tick(r Renderer) BoundsResult {
	now := ctx.Time.Now()
	elapsed := 0.0
	if !ctx.lastTick.IsZero() {
		d := now.Sub(ctx.lastTick)
		if d > constants.MaxFrameDelta {
			d = constants.MaxFrameDelta
		}
		elapsed = d.Seconds()
	}
	ctx.lastTick = now
	ctx.FrameNumber++

	ctx.DrainAssets()
	ctx.Orbit.Update(&ctx.Camera, ctx.OrbitTarget())
	ctx.Scene.Update()
	bounds := ctx.CheckBounds()
	ctx.Clock.Advance(elapsed, ctx.Mixers)
	ctx.SyncListener()

	if r != nil {
		r.Render(ctx)
	}
	return bounds
}

// SyncListener moves the ear to the camera and re-spatializes every emitter
func (ctx *GameContext) SyncListener() {
	forward := vmath.V3Sub(ctx.Camera.Target, ctx.Camera.Position)
	right := vmath.V3Cross(forward, worldUp)
	if vmath.V3MagSq(right) > 0 {
		ctx.Listener.Right = vmath.V3Normalize(right)
	}
	ctx.Listener.Position = ctx.Camera.Position

	for _, e := range ctx.Scene.Emitters {
		if e.Ready() {
			ctx.Listener.Spatialize(e.Voice, e.Body.Position, e.RefDistance)
		}
	}
}
