package audio

import (
	"github.com/lixenwraith/moonwalk/constants"
)

// Config controls the speaker and master level
type Config struct {
	Enabled      bool    `toml:"enabled" env:"ENABLED"`
	SampleRate   int     `toml:"sample_rate" env:"SAMPLE_RATE"`
	BufferMs     int     `toml:"buffer_ms" env:"BUFFER_MS"`
	MasterVolume float64 `toml:"master_volume" env:"MASTER_VOLUME"`
}

// DefaultConfig returns the default audio configuration
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   constants.DefaultSampleRate,
		BufferMs:     int(constants.SpeakerBuffer.Milliseconds()),
		MasterVolume: 1.0,
	}
}
