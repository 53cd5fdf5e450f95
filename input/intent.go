package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, q
	IntentResize     // Terminal resize event
	IntentToggleMute // m

	// Character keys
	IntentKeyDown // Any key press, movement or not
	IntentKeyUp   // Synthesized after the release delay

	// Mixer panel
	IntentPanelNext   // Tab
	IntentPanelPrev   // Shift+Tab
	IntentPanelAdjust // + - * /
	IntentPanelCycle  // Space
	IntentPanelToggle // g

	// Mouse
	IntentClick // Button press at X,Y
	IntentDrag  // Button held, moved by DX,DY
	IntentZoom  // Wheel; Steps > 0 zooms out
)

// Intent is the parsed form of one terminal event
type Intent struct {
	Type  IntentType
	Key   KeyCode
	Steps int

	X, Y   int
	DX, DY int

	Width, Height int
}
