package constants

import "time"

// UI Layout Constants
const (
	// PanelWidth is the column width of the mixer panel
	PanelWidth = 34

	// HudRows is the number of status rows reserved at the bottom of the screen
	HudRows = 1

	// SliderWidth is the cell width of a panel slider bar
	SliderWidth = 12
)

// UI Timing Constants
const (
	// DiagnosticTimeout is how long a diagnostic line stays on the HUD
	DiagnosticTimeout = 2 * time.Second

	// DefaultReleaseDelay is the quiet period after which a held key is reported released
	// Must exceed the terminal autorepeat delay (X11 default 660ms) or a held key flickers
	DefaultReleaseDelay = 700 * time.Millisecond
)
