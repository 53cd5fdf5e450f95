package main

import (
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/moonwalk/audio"
	"github.com/lixenwraith/moonwalk/engine"
	"github.com/lixenwraith/moonwalk/input"
	"github.com/lixenwraith/moonwalk/panel"
	"github.com/lixenwraith/moonwalk/scene"
)

// app routes input intents to the character, the mixer panel and the orbit camera
type app struct {
	ctx    *engine.GameContext
	panel  *panel.Panel
	screen tcell.Screen

	// set while a mouse drag that began on the panel is in progress
	panelDrag bool
}

// mixerTargets collects the audio state the mixer panel drives
func mixerTargets(ctx *engine.GameContext) panel.MixerTargets {
	t := panel.MixerTargets{
		Ambience: ctx.Ambience,
		Voices:   make(map[string]*audio.Voice),
	}
	for _, e := range ctx.Scene.Emitters {
		if e.Voice == nil {
			continue
		}
		t.Voices[e.Name] = e.Voice
		if e.Kind == scene.EmitterOscillator {
			t.Oscillator = e.Voice.Oscillator()
		}
	}
	return t
}

// handle applies one intent and reports false when the program should exit
func (a *app) handle(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		a.ctx.Resize(in.Width, in.Height)
		if a.screen != nil {
			a.screen.Sync()
		}

	case input.IntentToggleMute:
		if a.ctx.Audio == nil {
			break
		}
		if a.ctx.Audio.ToggleMute() {
			a.ctx.SetDiagnostic("sound on")
		} else {
			a.ctx.SetDiagnostic("muted")
		}

	case input.IntentKeyDown:
		a.report(a.ctx.KeyDown(in.Key))

	case input.IntentKeyUp:
		a.report(a.ctx.KeyUp(in.Key))

	case input.IntentPanelNext:
		a.panel.FocusNext(1)
	case input.IntentPanelPrev:
		a.panel.FocusNext(-1)
	case input.IntentPanelAdjust:
		a.panel.Adjust(in.Steps)
	case input.IntentPanelCycle:
		a.panel.Cycle()
	case input.IntentPanelToggle:
		a.panel.Toggle()

	case input.IntentClick:
		a.panelDrag = a.panel.Click(in.X, in.Y)

	case input.IntentDrag:
		if a.panelDrag {
			a.panel.Slide(in.X)
		} else if a.ctx.Orbit != nil {
			a.ctx.Orbit.Drag(in.DX, in.DY)
		}

	case input.IntentZoom:
		if a.ctx.Orbit != nil {
			a.ctx.Orbit.Zoom(in.Steps)
		}
	}
	return true
}

func (a *app) report(err error) {
	if errors.Is(err, engine.ErrNotReady) {
		a.ctx.SetDiagnostic("character loading")
		return
	}
	if err != nil {
		log.Printf("input: %v", err)
	}
}
