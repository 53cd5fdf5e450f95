package animation

import "math"

// Clock accumulates real frame time and advances mixers on a fixed sampling interval
type Clock struct {
	interval float64
	speed    float64
	delta    float64
}

// NewClock creates a clock sampling every interval seconds at a fixed playback speed
func NewClock(interval, speed float64) *Clock {
	return &Clock{interval: interval, speed: speed}
}

// Advance adds elapsed seconds; once the accumulator exceeds the interval it is reduced
// modulo the interval and every mixer advances by the remainder times speed
// Returns the clip time applied, 0 when the interval was not exceeded
func (c *Clock) Advance(elapsed float64, mixers []*Mixer) float64 {
	c.delta += elapsed
	if c.delta <= c.interval {
		return 0
	}

	c.delta = math.Mod(c.delta, c.interval)
	step := c.delta * c.speed
	for _, m := range mixers {
		m.Update(step)
	}
	return step
}

// Accumulated returns the time carried toward the next sample
func (c *Clock) Accumulated() float64 {
	return c.delta
}
