package panel

import (
	"fmt"

	"github.com/lixenwraith/moonwalk/audio"
	"github.com/lixenwraith/moonwalk/constants"
)

// Folder and controller labels of the mixer panel
const (
	FolderVolume     = "Volume"
	FolderOscillator = "Oscillator Controls"

	LabelAmbience   = "ambience"
	LabelBassline   = "bassline"
	LabelDrums      = "drums"
	LabelGuitars    = "guitars"
	LabelOscillator = "oscillator"
	LabelFrequency  = "frequency"
	LabelWavetype   = "wavetype"
)

// Settings is a full set of mixer values, as found in the config file
type Settings struct {
	Ambience   float64 `toml:"ambience" env:"AMBIENCE"`
	Bassline   float64 `toml:"bassline" env:"BASSLINE"`
	Drums      float64 `toml:"drums" env:"DRUMS"`
	Guitars    float64 `toml:"guitars" env:"GUITARS"`
	Oscillator float64 `toml:"oscillator" env:"OSCILLATOR"`
	Frequency  float64 `toml:"frequency" env:"FREQUENCY"`
	Wavetype   string  `toml:"wavetype" env:"WAVETYPE"`
}

// DefaultSettings are the values the panel starts with
func DefaultSettings() Settings {
	return Settings{
		Ambience:   constants.AmbienceDefault,
		Bassline:   constants.BasslineDefault,
		Drums:      constants.DrumsDefault,
		Guitars:    constants.GuitarsDefault,
		Oscillator: constants.OscillatorDefault,
		Frequency:  constants.OscillatorFrequency,
		Wavetype:   audio.WaveSine.String(),
	}
}

// MixerTargets is the audio state the panel drives; nil entries are skipped
type MixerTargets struct {
	Ambience   *audio.Ambience
	Voices     map[string]*audio.Voice // keyed by emitter name
	Oscillator *audio.Oscillator
}

// NewMixer builds the two-folder mixer panel bound to t and applies the defaults through the callbacks
func NewMixer(t MixerTargets) *Panel {
	p := New()

	vol := p.AddFolder(FolderVolume)
	vol.AddNumber(LabelAmbience, constants.AmbienceMin, constants.AmbienceMax, constants.AmbienceStep).
		OnChange(func(db float64) {
			if t.Ambience != nil {
				t.Ambience.SetDecibels(db)
			}
		})
	for _, c := range []struct {
		label string
		max   float64
	}{
		{LabelBassline, constants.VolumeMax},
		{LabelDrums, constants.VolumeMax},
		{LabelGuitars, constants.VolumeMaxWide},
		{LabelOscillator, constants.VolumeMax},
	} {
		v := t.Voices[c.label]
		vol.AddNumber(c.label, constants.VolumeMin, c.max, constants.VolumeStep).
			OnChange(func(level float64) {
				if v != nil {
					v.SetVolume(level)
				}
			})
	}

	osc := p.AddFolder(FolderOscillator)
	osc.AddNumber(LabelFrequency, constants.FrequencyMin, constants.FrequencyMax, constants.FrequencyStep).
		OnChange(func(hz float64) {
			if t.Oscillator != nil {
				t.Oscillator.SetFrequency(hz)
			}
		})
	osc.AddOption(LabelWavetype, audio.WaveNames).
		OnChange(func(name string) {
			if t.Oscillator == nil {
				return
			}
			if w, err := audio.ParseWave(name); err == nil {
				t.Oscillator.SetWave(w)
			}
		})

	// Options are built from the same table, so the defaults always apply
	_ = p.Apply(DefaultSettings())
	return p
}

// Apply sets every mixer control, firing the bound callbacks
func (p *Panel) Apply(s Settings) error {
	// Validate first so a bad file leaves the controls untouched
	if _, err := audio.ParseWave(s.Wavetype); err != nil {
		return err
	}
	for label, v := range map[string]float64{
		LabelAmbience:   s.Ambience,
		LabelBassline:   s.Bassline,
		LabelDrums:      s.Drums,
		LabelGuitars:    s.Guitars,
		LabelOscillator: s.Oscillator,
		LabelFrequency:  s.Frequency,
	} {
		c := p.Number(label)
		if c == nil {
			return fmt.Errorf("mixer panel has no %q slider", label)
		}
		c.SetValue(v)
	}
	w := p.Option(LabelWavetype)
	if w == nil {
		return fmt.Errorf("mixer panel has no %q option", LabelWavetype)
	}
	return w.SetValue(s.Wavetype)
}

// Settings reads the current mixer values back
func (p *Panel) Settings() Settings {
	get := func(label string) float64 {
		if c := p.Number(label); c != nil {
			return c.Value()
		}
		return 0
	}
	s := Settings{
		Ambience:   get(LabelAmbience),
		Bassline:   get(LabelBassline),
		Drums:      get(LabelDrums),
		Guitars:    get(LabelGuitars),
		Oscillator: get(LabelOscillator),
		Frequency:  get(LabelFrequency),
	}
	if w := p.Option(LabelWavetype); w != nil {
		s.Wavetype = w.Value()
	}
	return s
}
