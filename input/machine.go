package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Machine turns raw tcell events into intents and tracks held keys
type Machine struct {
	table   *KeyTable
	release *ReleaseTracker

	dragging     bool
	lastX, lastY int
}

// NewMachine creates a parser; releaseDelay drives key-up synthesis
func NewMachine(table *KeyTable, releaseDelay time.Duration) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{
		table:   table,
		release: NewReleaseTracker(releaseDelay),
	}
}

// Process parses one event; nil means nothing to do
func (m *Machine) Process(ev tcell.Event, now time.Time) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev, now)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Width: w, Height: h}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey, now time.Time) *Intent {
	entry := m.table.Lookup(ev)
	if entry.Intent == IntentQuit {
		return &Intent{Type: IntentQuit}
	}
	// Every key takes part in release tracking, matching a browser's keyup on any key
	m.release.Press(ev, entry.Code, now)
	return &Intent{Type: entry.Intent, Key: entry.Code, Steps: entry.Steps}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	btn := ev.Buttons()

	switch {
	case btn&tcell.WheelUp != 0:
		return &Intent{Type: IntentZoom, Steps: -1, X: x, Y: y}
	case btn&tcell.WheelDown != 0:
		return &Intent{Type: IntentZoom, Steps: 1, X: x, Y: y}
	case btn&tcell.Button1 != 0:
		if !m.dragging {
			m.dragging = true
			m.lastX, m.lastY = x, y
			return &Intent{Type: IntentClick, X: x, Y: y}
		}
		dx, dy := x-m.lastX, y-m.lastY
		m.lastX, m.lastY = x, y
		if dx == 0 && dy == 0 {
			return nil
		}
		return &Intent{Type: IntentDrag, X: x, Y: y, DX: dx, DY: dy}
	default:
		m.dragging = false
	}
	return nil
}

// Poll returns synthesized key-up intents for keys that stopped repeating
func (m *Machine) Poll(now time.Time) []Intent {
	codes := m.release.Poll(now)
	if len(codes) == 0 {
		return nil
	}
	out := make([]Intent, len(codes))
	for i, c := range codes {
		out[i] = Intent{Type: IntentKeyUp, Key: c}
	}
	return out
}

// Dragging reports whether the primary button is held
func (m *Machine) Dragging() bool {
	return m.dragging
}

// HeldKeys returns the number of keys not yet released
func (m *Machine) HeldKeys() int {
	return m.release.Held()
}
