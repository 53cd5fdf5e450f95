package audio

import (
	"errors"
	"fmt"
	"strings"
)

// Wave defines oscillator wave shapes
type Wave int32

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

// WaveNames lists the selectable waveforms in panel order
var WaveNames = []string{"sine", "square", "sawtooth", "triangle"}

func (w Wave) String() string {
	if w < 0 || int(w) >= len(WaveNames) {
		return fmt.Sprintf("wave(%d)", int(w))
	}
	return WaveNames[w]
}

// ParseWave maps a waveform name to its Wave
func ParseWave(name string) (Wave, error) {
	for i, n := range WaveNames {
		if strings.EqualFold(n, name) {
			return Wave(i), nil
		}
	}
	return WaveSine, fmt.Errorf("%w: %q", ErrUnknownWave, name)
}

// Sentinel errors
var (
	ErrUnknownWave    = errors.New("unknown waveform")
	ErrAlreadyRunning = errors.New("audio engine already running")
)
