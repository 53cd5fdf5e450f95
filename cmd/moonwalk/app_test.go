package main

import (
	"testing"
	"time"

	"github.com/lixenwraith/moonwalk/audio"
	"github.com/lixenwraith/moonwalk/engine"
	"github.com/lixenwraith/moonwalk/input"
	"github.com/lixenwraith/moonwalk/panel"
	"github.com/lixenwraith/moonwalk/scene"
	"github.com/lixenwraith/moonwalk/vmath"
)

func newTestApp(t *testing.T, withCharacter bool) (*app, *engine.MockTimeProvider) {
	t.Helper()
	ctx, mock := engine.NewTestContext(1, withCharacter)
	return &app{ctx: ctx, panel: panel.NewMixer(mixerTargets(ctx))}, mock
}

func TestHandleQuit(t *testing.T) {
	a, _ := newTestApp(t, true)
	if a.handle(input.Intent{Type: input.IntentQuit}) {
		t.Error("quit should stop the loop")
	}
	if !a.handle(input.Intent{Type: input.IntentNone}) {
		t.Error("none should keep running")
	}
}

func TestHandleCharacterKeys(t *testing.T) {
	a, _ := newTestApp(t, true)

	a.handle(input.Intent{Type: input.IntentKeyDown, Key: input.KeyRight})
	c := a.ctx.Character
	if c.Position.X != 0.25 || c.State != engine.AnimRunning {
		t.Fatalf("after right: x=%v state=%v", c.Position.X, c.State)
	}

	a.handle(input.Intent{Type: input.IntentKeyUp, Key: input.KeyRight})
	if c.State != engine.AnimIdle {
		t.Errorf("after release: state=%v", c.State)
	}
}

func TestHandleBeforeLoad(t *testing.T) {
	a, _ := newTestApp(t, false)
	a.handle(input.Intent{Type: input.IntentKeyDown, Key: input.KeyUp})
	if got := a.ctx.Diagnostic(); got != "character loading" {
		t.Errorf("diagnostic = %q", got)
	}
	if a.ctx.Camera.Position != engine.CameraHome {
		t.Error("camera moved before load")
	}
}

func TestHandlePanelKeys(t *testing.T) {
	a, _ := newTestApp(t, true)

	a.handle(input.Intent{Type: input.IntentPanelNext})
	a.handle(input.Intent{Type: input.IntentPanelAdjust, Steps: 10})
	if v := a.panel.Number(panel.LabelBassline).Value(); v != 0.6 {
		t.Errorf("bassline = %v, want 0.6", v)
	}

	a.handle(input.Intent{Type: input.IntentPanelPrev})
	if a.panel.Focused().Label() != panel.LabelAmbience {
		t.Errorf("focus = %s", a.panel.Focused().Label())
	}

	a.handle(input.Intent{Type: input.IntentPanelToggle})
	if a.panel.Visible {
		t.Error("panel still visible")
	}
}

func TestHandleOrbit(t *testing.T) {
	a, _ := newTestApp(t, true)
	ref, _ := newTestApp(t, true)

	a.handle(input.Intent{Type: input.IntentClick, X: 0, Y: 10})
	if a.panelDrag {
		t.Fatal("click outside the panel started a panel drag")
	}
	a.handle(input.Intent{Type: input.IntentDrag, DX: 4, DY: 0})
	a.handle(input.Intent{Type: input.IntentZoom, Steps: 1})

	a.ctx.Orbit.Update(&a.ctx.Camera, a.ctx.OrbitTarget())
	ref.ctx.Orbit.Update(&ref.ctx.Camera, ref.ctx.OrbitTarget())

	if a.ctx.Camera.Position == ref.ctx.Camera.Position {
		t.Error("drag and zoom did not move the camera")
	}
	if d := vmath.V3Dist(a.ctx.Camera.Position, a.ctx.OrbitTarget()); d > 3.3+1e-9 {
		t.Errorf("orbit distance %v beyond max", d)
	}
}

func TestHandleResize(t *testing.T) {
	a, _ := newTestApp(t, true)
	a.handle(input.Intent{Type: input.IntentResize, Width: 120, Height: 40})
	if a.ctx.Width != 120 || a.ctx.Height != 40 {
		t.Errorf("size = %dx%d", a.ctx.Width, a.ctx.Height)
	}
}

func TestMixerTargetsFromEmitters(t *testing.T) {
	eng := audio.NewEngine(audio.Config{Enabled: false, MasterVolume: 1})
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	ctx := engine.NewGameContext(scene.New(vmath.NewRand(2)), eng, nil, mock, 80, 24)
	ctx.AttachVoices()

	targets := mixerTargets(ctx)
	if targets.Ambience == nil || targets.Oscillator == nil {
		t.Fatal("ambience or oscillator missing")
	}
	if len(targets.Voices) != 4 {
		t.Errorf("voices = %d, want 4", len(targets.Voices))
	}

	p := panel.NewMixer(targets)
	p.Number(panel.LabelDrums).SetValue(0.3)
	if v := targets.Voices[scene.EmitterNameDrums].Volume(); v != 0.3 {
		t.Errorf("drums voice volume = %v", v)
	}

	a := &app{ctx: ctx, panel: p}
	a.handle(input.Intent{Type: input.IntentToggleMute})
	if !eng.IsMuted() || a.ctx.Diagnostic() != "muted" {
		t.Errorf("mute: muted=%v diag=%q", eng.IsMuted(), a.ctx.Diagnostic())
	}
}
