package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ColorMode selects how shaded colors reach the terminal
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota
	ColorMode256
)

func (m ColorMode) String() string {
	if m == ColorMode256 {
		return "256"
	}
	return "truecolor"
}

// ParseColorMode maps the --color flag; "auto" probes the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DetectColorMode(), nil
	case "truecolor", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	}
	return ColorModeTrueColor, fmt.Errorf("unknown color mode %q (want auto, truecolor or 256)", s)
}

// DetectColorMode uses the environment's advertised color profile; anything short of truecolor gets the 256 palette
func DetectColorMode() ColorMode {
	if termenv.EnvColorProfile() == termenv.TrueColor {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// Color converts c for the terminal
func (m ColorMode) Color(c colorful.Color) tcell.Color {
	c = c.Clamped()
	if m == ColorMode256 {
		return tcell.PaletteColor(Quantize256(c))
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// cubeLevels are the channel values of the xterm 6x6x6 color cube
var cubeLevels = [6]float64{0, 95.0 / 255, 135.0 / 255, 175.0 / 255, 215.0 / 255, 1}

func nearestLevel(v float64) int {
	best, bestD := 0, 2.0
	for i, l := range cubeLevels {
		d := v - l
		if d < 0 {
			d = -d
		}
		if d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// Quantize256 picks the closest xterm palette index from the color cube or the gray ramp
func Quantize256(c colorful.Color) int {
	ri, gi, bi := nearestLevel(c.R), nearestLevel(c.G), nearestLevel(c.B)
	cube := colorful.Color{R: cubeLevels[ri], G: cubeLevels[gi], B: cubeLevels[bi]}
	cubeIdx := 16 + 36*ri + 6*gi + bi

	// Gray ramp 232..255 covers 8..238 in steps of 10
	avg := (c.R + c.G + c.B) / 3 * 255
	gi24 := int((avg-8)/10 + 0.5)
	gi24 = max(0, min(23, gi24))
	gv := float64(8+gi24*10) / 255
	gray := colorful.Color{R: gv, G: gv, B: gv}

	if c.DistanceRgb(gray) < c.DistanceRgb(cube) {
		return 232 + gi24
	}
	return cubeIdx
}

// Shade scales c by a light factor
func Shade(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}.Clamped()
}
