package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// speakerLocker guards streamer state while the speaker goroutine is pulling samples
type speakerLocker struct{}

func (speakerLocker) Lock()   { speaker.Lock() }
func (speakerLocker) Unlock() { speaker.Unlock() }

// Engine owns the beep mixer and every voice in it
// Without a device (disabled or init failure) it runs silent: voices still track state, nothing is played
type Engine struct {
	cfg    Config
	rate   beep.SampleRate
	mixer  *beep.Mixer
	master *effects.Volume
	locker sync.Locker

	running atomic.Bool
	silent  atomic.Bool
	muted   atomic.Bool

	voices []*Voice
}

// NewEngine creates an engine; call Start to open the speaker
func NewEngine(cfg Config) *Engine {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	if cfg.BufferMs <= 0 {
		cfg.BufferMs = DefaultConfig().BufferMs
	}
	e := &Engine{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		locker: &sync.Mutex{},
	}
	e.master = newVolume(e.mixer, cfg.MasterVolume)
	e.silent.Store(true)
	return e
}

// Start opens the speaker and begins playback
// Device failure is not an error: the engine stays in silent mode
func (e *Engine) Start() error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	if !e.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(e.rate, e.rate.N(time.Duration(e.cfg.BufferMs)*time.Millisecond)); err != nil {
		log.Printf("audio: speaker init failed, continuing silent: %v", err)
		return nil
	}

	// Swap to the speaker lock before the speaker starts pulling
	e.locker = speakerLocker{}
	e.silent.Store(false)
	speaker.Play(e.master)
	return nil
}

// Stop halts playback and releases the device
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	if e.silent.Load() {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.locker = &sync.Mutex{}
	e.silent.Store(true)
}

// SampleRate returns the mix rate that decoded samples must match
func (e *Engine) SampleRate() beep.SampleRate {
	return e.rate
}

// IsSilent reports whether no device is attached
func (e *Engine) IsSilent() bool {
	return e.silent.Load()
}

// Streamer exposes the master bus, used when no speaker drives it
func (e *Engine) Streamer() beep.Streamer {
	return e.master
}

// Voices returns every voice added to the mixer
func (e *Engine) Voices() []*Voice {
	return e.voices
}

// ToggleMute flips the master mute, returns true if sound is now audible
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.muted.Store(muted)
	e.locker.Lock()
	if muted {
		setGain(e.master, 0)
	} else {
		setGain(e.master, e.cfg.MasterVolume)
	}
	e.locker.Unlock()
	return !muted
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// NewOscillatorVoice adds a tone voice to the mix
func (e *Engine) NewOscillatorVoice(name string, freq float64, wave Wave, volume float64) *Voice {
	osc := NewOscillator(freq, wave, e.rate)
	v := newVoice(e, name, osc, volume)
	v.osc = osc
	e.add(v)
	return v
}

// NewSampleVoice adds a sample voice that plays silence until SetSound
func (e *Engine) NewSampleVoice(name string, volume float64) *Voice {
	v := newVoice(e, name, nil, volume)
	e.add(v)
	return v
}

// NewAmbience adds the non-positional background track at db
func (e *Engine) NewAmbience(db float64) *Ambience {
	a := &Ambience{eng: e, src: &slot{}, db: db}
	a.vol = &effects.Volume{Streamer: a.src}
	setDecibels(a.vol, db)

	e.locker.Lock()
	e.mixer.Add(a.vol)
	e.locker.Unlock()
	return a
}

func (e *Engine) add(v *Voice) {
	e.locker.Lock()
	e.mixer.Add(v.pan)
	e.locker.Unlock()
	e.voices = append(e.voices, v)
}

// String summarizes engine state for the HUD
func (e *Engine) String() string {
	state := "on"
	switch {
	case e.silent.Load():
		state = "silent"
	case e.muted.Load():
		state = "muted"
	}
	return fmt.Sprintf("audio %s %dHz voices=%d", state, int(e.rate), len(e.voices))
}
