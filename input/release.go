package input

import (
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminals report presses only; a held key shows up as auto-repeat
// A key counts as released once it has not repeated for the release delay

type heldKey struct {
	key tcell.Key
	r   rune
}

type heldEntry struct {
	code KeyCode
	last time.Time
}

// ReleaseTracker synthesizes key-up events from press timestamps
type ReleaseTracker struct {
	delay time.Duration
	held  map[heldKey]heldEntry
}

// NewReleaseTracker creates a tracker; delay <= 0 releases on the next poll
func NewReleaseTracker(delay time.Duration) *ReleaseTracker {
	return &ReleaseTracker{
		delay: delay,
		held:  make(map[heldKey]heldEntry),
	}
}

// Delay returns the configured release delay
func (t *ReleaseTracker) Delay() time.Duration {
	return t.delay
}

// Press records a press or repeat of ev's key
func (t *ReleaseTracker) Press(ev *tcell.EventKey, code KeyCode, now time.Time) {
	k := heldKey{key: ev.Key()}
	if ev.Key() == tcell.KeyRune {
		k.r = ev.Rune()
	}
	t.held[k] = heldEntry{code: code, last: now}
}

// Poll returns the codes of keys released as of now, oldest press first
func (t *ReleaseTracker) Poll(now time.Time) []KeyCode {
	var expired []heldEntry
	for k, e := range t.held {
		if now.Sub(e.last) >= t.delay {
			expired = append(expired, e)
			delete(t.held, k)
		}
	}
	if len(expired) == 0 {
		return nil
	}
	sort.Slice(expired, func(i, j int) bool {
		return expired[i].last.Before(expired[j].last)
	})
	codes := make([]KeyCode, len(expired))
	for i, e := range expired {
		codes[i] = e.code
	}
	return codes
}

// Held returns the number of keys considered down
func (t *ReleaseTracker) Held() int {
	return len(t.held)
}

// Reset forgets every held key without reporting releases
func (t *ReleaseTracker) Reset() {
	clear(t.held)
}
