package engine

import (
	"testing"

	"github.com/lixenwraith/moonwalk/input"
	"github.com/lixenwraith/moonwalk/vmath"
)

func TestCheckBounds(t *testing.T) {
	tests := []struct {
		name   string
		ground vmath.Vec3
		want   BoundsResult
	}{
		{"origin", vmath.Vec3{Y: -1}, BoundsOK},
		{"edge +x", vmath.Vec3{X: 18, Y: -1}, BoundsEdge},
		{"edge -z", vmath.Vec3{Y: -1, Z: -18}, BoundsEdge},
		{"near edge", vmath.Vec3{X: 18.25, Y: -1}, BoundsOK},
		{"at limit", vmath.Vec3{X: 20, Y: -1}, BoundsOK},
		{"past +x", vmath.Vec3{X: 20.25, Y: -1}, BoundsReset},
		{"past -z", vmath.Vec3{Y: -1, Z: -20.25}, BoundsReset},
		// Exact edge on one axis suppresses the reset on the other
		{"edge masks reset", vmath.Vec3{X: 18, Y: -1, Z: 25}, BoundsEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := NewTestContext(1, true)
			ctx.Character.Position = vmath.Vec3{X: tt.ground.X, Z: tt.ground.Z}
			ctx.Scene.Ground.Position = tt.ground
			ctx.Camera.Position = vmath.Vec3{X: tt.ground.X, Y: 3, Z: tt.ground.Z + 2}

			got := ctx.CheckBounds()
			if got != tt.want {
				t.Fatalf("CheckBounds = %v, want %v", got, tt.want)
			}

			switch got {
			case BoundsReset:
				if ctx.Character.Position != (vmath.Vec3{}) {
					t.Errorf("character = %+v, want origin", ctx.Character.Position)
				}
				if ctx.Scene.Ground.Position != (vmath.Vec3{Y: -1}) {
					t.Errorf("ground = %+v, want (0,-1,0)", ctx.Scene.Ground.Position)
				}
				if ctx.Camera.Position != (vmath.Vec3{Y: 3, Z: 2}) {
					t.Errorf("camera = %+v, want (0,3,2)", ctx.Camera.Position)
				}
			default:
				if ctx.Scene.Ground.Position != tt.ground {
					t.Errorf("ground moved to %+v", ctx.Scene.Ground.Position)
				}
			}
			if got == BoundsEdge && ctx.Diagnostic() != "too far" {
				t.Errorf("diagnostic = %q, want %q", ctx.Diagnostic(), "too far")
			}
		})
	}
}

func TestWalkOffEdge(t *testing.T) {
	ctx, _ := NewTestContext(1, true)

	// 72 steps of 0.25 land exactly on 18
	for i := 0; i < 72; i++ {
		if err := ctx.KeyDown(input.KeyRight); err != nil {
			t.Fatal(err)
		}
	}
	if got := ctx.CheckBounds(); got != BoundsEdge {
		t.Fatalf("at x=%v got %v, want edge", ctx.Scene.Ground.Position.X, got)
	}

	for i := 0; i < 8; i++ {
		ctx.KeyDown(input.KeyRight)
		if got := ctx.CheckBounds(); got != BoundsOK {
			t.Fatalf("at x=%v got %v, want ok", ctx.Scene.Ground.Position.X, got)
		}
	}

	ctx.KeyDown(input.KeyRight)
	if got := ctx.CheckBounds(); got != BoundsReset {
		t.Fatalf("at x=%v got %v, want reset", ctx.Scene.Ground.Position.X, got)
	}
	if ctx.Character.Position.X != 0 || ctx.Scene.Ground.Position.X != 0 {
		t.Errorf("not reset: character %+v ground %+v", ctx.Character.Position, ctx.Scene.Ground.Position)
	}
}

func TestResetBeforeLoad(t *testing.T) {
	ctx, _ := NewTestContext(1, false)
	ctx.Scene.Ground.Position = vmath.Vec3{X: -30, Y: -1}
	if got := ctx.CheckBounds(); got != BoundsReset {
		t.Fatalf("got %v, want reset", got)
	}
	if ctx.Scene.Ground.Position != (vmath.Vec3{Y: -1}) {
		t.Errorf("ground = %+v", ctx.Scene.Ground.Position)
	}
	if ctx.Character != nil {
		t.Error("reset must not create a character")
	}
}
