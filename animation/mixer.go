// Package animation plays text-art clips: actions hold per-clip time, mixers advance them, and the clock
// decouples sampling rate from render rate
package animation

import (
	"github.com/lixenwraith/moonwalk/asset"
)

// Action is the playback state of one clip on one mixer
type Action struct {
	Clip    *asset.Clip
	Time    float64
	playing bool
}

// Play starts the action; playing an action that already runs is a no-op
func (a *Action) Play() {
	a.playing = true
}

// Stop halts the action and rewinds it
func (a *Action) Stop() {
	a.playing = false
	a.Time = 0
}

// IsRunning reports whether the action is playing
func (a *Action) IsRunning() bool {
	return a.playing
}

// Frame returns the clip frame at the action's current time
func (a *Action) Frame() []string {
	if a.Clip == nil {
		return nil
	}
	return a.Clip.FrameAt(a.Time)
}

// Mixer owns the actions of a single animated object
type Mixer struct {
	actions []*Action
	elapsed float64
}

// NewMixer creates an empty mixer
func NewMixer() *Mixer {
	return &Mixer{}
}

// ClipAction returns the action for clip, creating it on first use
func (m *Mixer) ClipAction(clip *asset.Clip) *Action {
	for _, a := range m.actions {
		if a.Clip == clip {
			return a
		}
	}
	a := &Action{Clip: clip}
	m.actions = append(m.actions, a)
	return a
}

// Update advances every playing action by dt clip seconds
func (m *Mixer) Update(dt float64) {
	m.elapsed += dt
	for _, a := range m.actions {
		if a.playing {
			a.Time += dt
		}
	}
}

// Elapsed is the total clip time this mixer has been advanced by
func (m *Mixer) Elapsed() float64 {
	return m.elapsed
}
