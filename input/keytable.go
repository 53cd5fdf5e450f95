package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// KeyCode identifies a key as the character controller sees it
// Movement keys keep the browser key codes so scripted input stays portable
type KeyCode int

const (
	KeyOther KeyCode = 0
	KeyLeft  KeyCode = 37
	KeyUp    KeyCode = 38
	KeyRight KeyCode = 39
	KeyDown  KeyCode = 40
)

// IsMovement reports whether k drives the character
func (k KeyCode) IsMovement() bool {
	return k >= KeyLeft && k <= KeyDown
}

func (k KeyCode) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	case KeyOther:
		return "other"
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// KeyEntry describes what a terminal key does
type KeyEntry struct {
	Code   KeyCode
	Intent IntentType
	Steps  int // panel adjust multiplier
}

// KeyTable maps terminal keys to behaviors
type KeyTable struct {
	// Special keys (arrows, Tab, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the standard bindings: arrows and hjkl move, Tab walks the mixer panel
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:    {Code: KeyLeft, Intent: IntentKeyDown},
			tcell.KeyUp:      {Code: KeyUp, Intent: IntentKeyDown},
			tcell.KeyRight:   {Code: KeyRight, Intent: IntentKeyDown},
			tcell.KeyDown:    {Code: KeyDown, Intent: IntentKeyDown},
			tcell.KeyEscape:  {Intent: IntentQuit},
			tcell.KeyCtrlC:   {Intent: IntentQuit},
			tcell.KeyTab:     {Intent: IntentPanelNext},
			tcell.KeyBacktab: {Intent: IntentPanelPrev},
		},
		Runes: map[rune]KeyEntry{
			'h': {Code: KeyLeft, Intent: IntentKeyDown},
			'k': {Code: KeyUp, Intent: IntentKeyDown},
			'l': {Code: KeyRight, Intent: IntentKeyDown},
			'j': {Code: KeyDown, Intent: IntentKeyDown},
			'q': {Intent: IntentQuit},
			'+': {Intent: IntentPanelAdjust, Steps: 1},
			'=': {Intent: IntentPanelAdjust, Steps: 1},
			'-': {Intent: IntentPanelAdjust, Steps: -1},
			'*': {Intent: IntentPanelAdjust, Steps: 10},
			'/': {Intent: IntentPanelAdjust, Steps: -10},
			' ': {Intent: IntentPanelCycle},
			'g': {Intent: IntentPanelToggle},
			'm': {Intent: IntentToggleMute},
		},
	}
}

// Lookup resolves a key event; unbound keys come back as IntentKeyDown with KeyOther
func (t *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev.Key() == tcell.KeyRune {
		if e, ok := t.Runes[ev.Rune()]; ok {
			return e
		}
		return KeyEntry{Code: KeyOther, Intent: IntentKeyDown}
	}
	if e, ok := t.SpecialKeys[ev.Key()]; ok {
		return e
	}
	return KeyEntry{Code: KeyOther, Intent: IntentKeyDown}
}
