package constants

import "time"

// Audio Engine
const (
	// DefaultSampleRate is the speaker rate; decoded samples are resampled to it
	DefaultSampleRate = 44100

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond

	// ResampleQuality is the beep resampler quality for mismatched sample rates
	ResampleQuality = 4
)

// Oscillator defaults
const (
	OscillatorFrequency = 440.0
	OscillatorVolume    = 0.25
)

// Mixer panel ranges and defaults
const (
	AmbienceMin     = -50.0
	AmbienceMax     = -12.0
	AmbienceStep    = 0.001
	AmbienceDefault = -12.0

	BasslineDefault   = 0.5
	DrumsDefault      = 0.5
	GuitarsDefault    = 1.5
	OscillatorDefault = 0.5

	VolumeMin     = 0.0
	VolumeMax     = 1.0
	VolumeMaxWide = 2.0
	VolumeStep    = 0.01

	FrequencyMin  = 50.0
	FrequencyMax  = 1500.0
	FrequencyStep = 1.0
)
