// Package config loads moonwalk settings from defaults, a TOML file, the
// environment and the command line, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lixenwraith/moonwalk/audio"
	"github.com/lixenwraith/moonwalk/constants"
	"github.com/lixenwraith/moonwalk/panel"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "MOONWALK_"

// DefaultPath is used when --config is not given
const DefaultPath = "~/.config/moonwalk/config.toml"

type AssetsConfig struct {
	Dir          string `toml:"dir" env:"DIR"`
	Retries      int    `toml:"retries" env:"RETRIES"`
	RetryDelayMs int    `toml:"retry_delay_ms" env:"RETRY_DELAY_MS"`
	Concurrency  int    `toml:"concurrency" env:"CONCURRENCY"`
}

type InputConfig struct {
	ReleaseDelayMs int `toml:"release_delay_ms" env:"RELEASE_DELAY_MS"`
}

type RenderConfig struct {
	Color string `toml:"color" env:"COLOR"`
	FPS   int    `toml:"fps" env:"FPS"`
}

type OrbitConfig struct {
	Enabled bool `toml:"enabled" env:"ENABLED"`
}

type LogConfig struct {
	Debug bool   `toml:"debug" env:"DEBUG"`
	Dir   string `toml:"dir" env:"DIR"`
}

// Config is the full application configuration
type Config struct {
	Seed   uint64         `toml:"seed" env:"SEED"`
	Assets AssetsConfig   `toml:"assets" envPrefix:"ASSETS_"`
	Audio  audio.Config   `toml:"audio" envPrefix:"AUDIO_"`
	Input  InputConfig    `toml:"input" envPrefix:"INPUT_"`
	Render RenderConfig   `toml:"render" envPrefix:"RENDER_"`
	Orbit  OrbitConfig    `toml:"orbit" envPrefix:"ORBIT_"`
	Log    LogConfig      `toml:"log" envPrefix:"LOG_"`
	Mixer  panel.Settings `toml:"mixer" envPrefix:"MIXER_"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Assets: AssetsConfig{
			Dir:          "assets",
			Retries:      2,
			RetryDelayMs: 100,
			Concurrency:  4,
		},
		Audio: audio.DefaultConfig(),
		Input: InputConfig{
			ReleaseDelayMs: int(constants.DefaultReleaseDelay.Milliseconds()),
		},
		Render: RenderConfig{
			Color: "auto",
			FPS:   int(time.Second / constants.FrameUpdateInterval),
		},
		Orbit: OrbitConfig{Enabled: true},
		Log:   LogConfig{Dir: "logs"},
		Mixer: panel.DefaultSettings(),
	}
}

// ReleaseDelay is the synthesized key-up delay
func (c Config) ReleaseDelay() time.Duration {
	return time.Duration(c.Input.ReleaseDelayMs) * time.Millisecond
}

// RetryDelay is the initial asset retry backoff
func (c Config) RetryDelay() time.Duration {
	return time.Duration(c.Assets.RetryDelayMs) * time.Millisecond
}

// FrameInterval is the ticker period for the configured frame rate
func (c Config) FrameInterval() time.Duration {
	if c.Render.FPS <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Render.FPS)
}

// ExpandPath resolves a leading ~ to the home directory
func ExpandPath(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return p, nil
}

// Load builds the configuration from defaults, the TOML file at path and the environment
// A missing file is not an error
func Load(path string) (Config, error) {
	cfg := Default()
	if err := readFile(path, &cfg); err != nil {
		return cfg, err
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}
	p, err := ExpandPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", p, err)
	}
	return nil
}
