package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Oscillator is an endless, retunable tone generator
// Frequency and wave are atomics so the game goroutine can change them while the speaker streams
type Oscillator struct {
	freqBits atomic.Uint64
	wave     atomic.Int32
	phase    float64
	rate     beep.SampleRate
}

// NewOscillator creates a running oscillator at freq
func NewOscillator(freq float64, wave Wave, rate beep.SampleRate) *Oscillator {
	o := &Oscillator{rate: rate}
	o.SetFrequency(freq)
	o.SetWave(wave)
	return o
}

// SetFrequency retunes the oscillator without resetting phase
func (o *Oscillator) SetFrequency(freq float64) {
	o.freqBits.Store(math.Float64bits(freq))
}

// Frequency returns the current frequency in Hz
func (o *Oscillator) Frequency() float64 {
	return math.Float64frombits(o.freqBits.Load())
}

// SetWave switches the wave shape
func (o *Oscillator) SetWave(w Wave) {
	o.wave.Store(int32(w))
}

// Wave returns the current wave shape
func (o *Oscillator) Wave() Wave {
	return Wave(o.wave.Load())
}

func (o *Oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	step := o.Frequency() / float64(o.rate)
	wave := o.Wave()
	for i := range samples {
		val := waveSample(wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += step
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
	}
	return len(samples), true
}

func (o *Oscillator) Err() error { return nil }

// waveSample evaluates one period-normalized wave at phase p in [0, 1)
// Every shape starts at zero and rises, matching the sine
func waveSample(w Wave, p float64) float64 {
	switch w {
	case WaveSquare:
		if p < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSawtooth:
		q := p + 0.5
		return 2.0*(q-math.Floor(q)) - 1.0
	case WaveTriangle:
		switch {
		case p < 0.25:
			return 4 * p
		case p < 0.75:
			return 2 - 4*p
		default:
			return 4*p - 4
		}
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so 0 gain is expressed as silent
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, gain)
	return v
}

func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}

// setDecibels sets v to a decibel level, the unit the ambience track is mixed in
func setDecibels(v *effects.Volume, db float64) {
	v.Base = 10
	v.Volume = db / 20
	v.Silent = false
}
