package config

import (
	"github.com/spf13/pflag"
)

// NewFlagSet declares the command-line flags; values are applied with ApplyFlags
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", DefaultPath, "config file path")
	fs.String("assets", "assets", "asset directory")
	fs.String("color", "auto", "color mode: auto, truecolor, 256")
	fs.Int("fps", 0, "frame rate")
	fs.Bool("mute", false, "start with audio muted")
	fs.Bool("no-orbit", false, "disable mouse orbit controls")
	fs.Uint64("seed", 0, "placement seed, 0 picks one from the clock")
	fs.Bool("debug", false, "write logs to the log directory")
	return fs
}

// ConfigPath returns the --config value
func ConfigPath(fs *pflag.FlagSet) string {
	p, err := fs.GetString("config")
	if err != nil || p == "" {
		return DefaultPath
	}
	return p
}

// Muted reports --mute; muting is a runtime toggle, not a config value
func Muted(fs *pflag.FlagSet) bool {
	m, _ := fs.GetBool("mute")
	return m
}

// ApplyFlags overrides c with every flag set explicitly on the command line
func (c *Config) ApplyFlags(fs *pflag.FlagSet) {
	if fs.Changed("assets") {
		c.Assets.Dir, _ = fs.GetString("assets")
	}
	if fs.Changed("color") {
		c.Render.Color, _ = fs.GetString("color")
	}
	if fs.Changed("fps") {
		c.Render.FPS, _ = fs.GetInt("fps")
	}
	if fs.Changed("no-orbit") {
		off, _ := fs.GetBool("no-orbit")
		c.Orbit.Enabled = !off
	}
	if fs.Changed("seed") {
		c.Seed, _ = fs.GetUint64("seed")
	}
	if fs.Changed("debug") {
		c.Log.Debug, _ = fs.GetBool("debug")
	}
}
