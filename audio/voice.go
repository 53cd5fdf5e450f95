package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/moonwalk/asset"
)

// slot is a swappable source that never ends, so the voice stays in the mixer across swaps
type slot struct {
	s beep.Streamer
}

func (sl *slot) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	if sl.s != nil {
		filled, ok = sl.s.Stream(samples)
		if !ok {
			sl.s = nil
			filled = 0
		}
	}
	for i := filled; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (sl *slot) Err() error { return nil }

// Voice is one mixer channel: source, user volume, distance attenuation and pan
type Voice struct {
	eng  *Engine
	name string
	src  *slot
	vol  *effects.Volume
	pan  *effects.Pan
	osc  *Oscillator

	volume  float64
	spatial float64
	panPos  float64
}

func newVoice(eng *Engine, name string, src beep.Streamer, volume float64) *Voice {
	v := &Voice{
		eng:     eng,
		name:    name,
		src:     &slot{s: src},
		volume:  volume,
		spatial: 1,
	}
	v.vol = newVolume(v.src, v.Gain())
	v.pan = &effects.Pan{Streamer: v.vol}
	return v
}

// Name returns the channel label
func (v *Voice) Name() string {
	return v.name
}

// Oscillator returns the tone generator for oscillator voices, nil for sample voices
func (v *Voice) Oscillator() *Oscillator {
	return v.osc
}

// SetVolume sets the user level (linear gain, 0 silences)
func (v *Voice) SetVolume(vol float64) {
	v.eng.locker.Lock()
	v.volume = vol
	setGain(v.vol, v.Gain())
	v.eng.locker.Unlock()
}

// Volume returns the user level
func (v *Voice) Volume() float64 {
	return v.volume
}

// SetSpatial sets distance attenuation and stereo pan
func (v *Voice) SetSpatial(gain, pan float64) {
	v.eng.locker.Lock()
	v.spatial = gain
	v.panPos = pan
	setGain(v.vol, v.Gain())
	v.pan.Pan = pan
	v.eng.locker.Unlock()
}

// Gain is the effective linear gain: user level times distance attenuation
func (v *Voice) Gain() float64 {
	return v.volume * v.spatial
}

// PanPosition returns the last stereo pan applied
func (v *Voice) PanPosition() float64 {
	return v.panPos
}

// SetSound installs a decoded sample as an endless loop; nil installs silence
func (v *Voice) SetSound(snd *asset.Sound) {
	var src beep.Streamer
	if snd.Len() > 0 {
		src = beep.Loop(-1, snd.Buffer.Streamer(0, snd.Buffer.Len()))
	} else {
		src = generators.Silence(-1)
	}
	v.eng.locker.Lock()
	v.src.s = src
	v.eng.locker.Unlock()
}

// Ambience is the non-positional background track, leveled in decibels
type Ambience struct {
	eng *Engine
	src *slot
	vol *effects.Volume
	db  float64
}

// SetDecibels sets the track level
func (a *Ambience) SetDecibels(db float64) {
	a.eng.locker.Lock()
	a.db = db
	setDecibels(a.vol, db)
	a.eng.locker.Unlock()
}

// Decibels returns the track level
func (a *Ambience) Decibels() float64 {
	return a.db
}

// SetSound installs the looping track; nil installs silence
func (a *Ambience) SetSound(snd *asset.Sound) {
	var src beep.Streamer
	if snd.Len() > 0 {
		src = beep.Loop(-1, snd.Buffer.Streamer(0, snd.Buffer.Len()))
	} else {
		src = generators.Silence(-1)
	}
	a.eng.locker.Lock()
	a.src.s = src
	a.eng.locker.Unlock()
}
