package scene

import "github.com/lixenwraith/moonwalk/audio"

// EmitterKind selects the sound source attached to an emitter body
type EmitterKind int

const (
	EmitterOscillator EmitterKind = iota
	EmitterSample
)

// Emitter is a body carrying a positional sound source
// Voice is nil until the audio engine attaches one
type Emitter struct {
	Name        string
	Kind        EmitterKind
	Body        *Body
	SoundPath   string
	RefDistance float64
	Voice       *audio.Voice
}

// Ready reports whether a voice is attached
func (e *Emitter) Ready() bool {
	return e.Voice != nil
}
