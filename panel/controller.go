// Package panel is a small dat.GUI-style control surface: folders of labeled sliders and option pickers
// whose changes are pushed to bound callbacks as they happen
package panel

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
)

// ErrUnknownOption is returned when an option controller is given a value outside its list
var ErrUnknownOption = errors.New("unknown option")

// Controller is one row of the panel
type Controller interface {
	Label() string
	// Text is the value as displayed
	Text() string
	// Adjust moves the value by steps increments
	Adjust(steps int)
	// Cycle advances option controllers; numbers ignore it
	Cycle()
	// SetFraction sets the value from a slider position in [0, 1]
	SetFraction(f float64)
}

// NumberController is a bounded slider
type NumberController struct {
	label    string
	min, max float64
	step     float64
	value    float64
	decimals int
	onChange func(float64)
}

func newNumber(label string, min, max, step float64) *NumberController {
	return &NumberController{
		label:    label,
		min:      min,
		max:      max,
		step:     step,
		value:    min,
		decimals: stepDecimals(step),
	}
}

// OnChange binds fn; it runs on every SetValue, including ones that do not change the value
func (c *NumberController) OnChange(fn func(float64)) *NumberController {
	c.onChange = fn
	return c
}

// SetValue clamps v to the slider range, rounds it to the step and fires the callback
func (c *NumberController) SetValue(v float64) *NumberController {
	c.value = c.normalize(v)
	if c.onChange != nil {
		c.onChange(c.value)
	}
	return c
}

// Value returns the current value
func (c *NumberController) Value() float64 {
	return c.value
}

// Range returns the slider bounds and step
func (c *NumberController) Range() (min, max, step float64) {
	return c.min, c.max, c.step
}

// Fraction is the slider fill in [0, 1]
func (c *NumberController) Fraction() float64 {
	if c.max == c.min {
		return 0
	}
	return (c.value - c.min) / (c.max - c.min)
}

func (c *NumberController) Label() string { return c.label }

func (c *NumberController) Text() string {
	return strconv.FormatFloat(c.value, 'f', c.decimals, 64)
}

func (c *NumberController) Adjust(steps int) {
	c.SetValue(c.value + float64(steps)*c.step)
}

func (c *NumberController) Cycle() {}

func (c *NumberController) SetFraction(f float64) {
	f = math.Max(0, math.Min(1, f))
	c.SetValue(c.min + f*(c.max-c.min))
}

func (c *NumberController) normalize(v float64) float64 {
	if math.IsNaN(v) {
		v = c.min
	}
	v = math.Max(c.min, math.Min(c.max, v))
	if c.step > 0 {
		v = math.Round(v/c.step) * c.step
		p := math.Pow(10, float64(c.decimals))
		v = math.Round(v*p) / p
		v = math.Max(c.min, math.Min(c.max, v))
	}
	return v
}

// stepDecimals is the number of fractional digits needed to print multiples of step
func stepDecimals(step float64) int {
	if step <= 0 {
		return 2
	}
	for d := 0; d < 8; d++ {
		p := math.Pow(10, float64(d))
		if math.Abs(step*p-math.Round(step*p)) < 1e-9 {
			return d
		}
	}
	return 8
}

// OptionController picks one string from a fixed list
type OptionController struct {
	label    string
	options  []string
	index    int
	onChange func(string)
}

func newOption(label string, options []string) *OptionController {
	return &OptionController{label: label, options: slices.Clone(options)}
}

// OnChange binds fn to every selection
func (c *OptionController) OnChange(fn func(string)) *OptionController {
	c.onChange = fn
	return c
}

// SetValue selects v and fires the callback
func (c *OptionController) SetValue(v string) error {
	i := slices.Index(c.options, v)
	if i < 0 {
		return fmt.Errorf("%s: %w %q", c.label, ErrUnknownOption, v)
	}
	c.selectIndex(i)
	return nil
}

// Value returns the selected option
func (c *OptionController) Value() string {
	if len(c.options) == 0 {
		return ""
	}
	return c.options[c.index]
}

// Options returns the choices in display order
func (c *OptionController) Options() []string {
	return slices.Clone(c.options)
}

func (c *OptionController) selectIndex(i int) {
	n := len(c.options)
	if n == 0 {
		return
	}
	c.index = ((i % n) + n) % n
	if c.onChange != nil {
		c.onChange(c.options[c.index])
	}
}

func (c *OptionController) Label() string { return c.label }

func (c *OptionController) Text() string { return c.Value() }

func (c *OptionController) Adjust(steps int) {
	switch {
	case steps > 0:
		c.selectIndex(c.index + 1)
	case steps < 0:
		c.selectIndex(c.index - 1)
	}
}

func (c *OptionController) Cycle() {
	c.selectIndex(c.index + 1)
}

func (c *OptionController) SetFraction(f float64) {
	n := len(c.options)
	if n == 0 {
		return
	}
	i := int(f * float64(n))
	if i >= n {
		i = n - 1
	}
	c.selectIndex(i)
}
