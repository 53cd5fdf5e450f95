package asset

import (
	"fmt"
	"math"

	"github.com/pelletier/go-toml/v2"
)

// Clip names the controller relies on
const (
	ClipIdle = "idle"
	ClipRun  = "run"
)

// Clip is a looping sequence of text-art frames
type Clip struct {
	Name          string     `toml:"name"`
	FrameDuration float64    `toml:"frame_duration"`
	Frames        [][]string `toml:"frames"`
}

// Duration is the loop length in clip seconds
func (c *Clip) Duration() float64 {
	return c.FrameDuration * float64(len(c.Frames))
}

// FrameAt returns the frame shown at clip time t, looping
func (c *Clip) FrameAt(t float64) []string {
	if len(c.Frames) == 0 {
		return nil
	}
	if c.FrameDuration <= 0 {
		return c.Frames[0]
	}
	t = math.Mod(t, c.Duration())
	if t < 0 {
		t += c.Duration()
	}
	idx := int(t / c.FrameDuration)
	if idx >= len(c.Frames) {
		idx = len(c.Frames) - 1
	}
	return c.Frames[idx]
}

// Model is a character description with its animation clips
type Model struct {
	Name  string `toml:"name"`
	Clips []Clip `toml:"clips"`
}

// Clip looks up a clip by name
func (m *Model) Clip(name string) *Clip {
	for i := range m.Clips {
		if m.Clips[i].Name == name {
			return &m.Clips[i]
		}
	}
	return nil
}

// ParseModel decodes a TOML model description
func ParseModel(data []byte) (*Model, error) {
	var m Model
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if len(m.Clips) == 0 {
		return nil, ErrEmptyModel
	}
	for _, name := range []string{ClipIdle, ClipRun} {
		if m.Clip(name) == nil {
			return nil, fmt.Errorf("parse model: missing clip %q", name)
		}
	}
	return &m, nil
}

// DefaultModel returns the embedded stick figure
func DefaultModel() *Model {
	m, err := ParseModel([]byte(DefaultCharacterModel))
	if err != nil {
		panic(fmt.Sprintf("embedded model invalid: %v", err))
	}
	return m
}
