package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the real elapsed time fed to the animation clock after a stall
	MaxFrameDelta = 250 * time.Millisecond

	// InputQueueSize is the buffered capacity of the terminal event channel
	InputQueueSize = 256

	// LoadQueueSize is the buffered capacity of the asset completion channel
	LoadQueueSize = 64
)

// Animation Clock
const (
	// AnimationInterval is the sampling interval for skeletal animation mixers (1/25 s)
	AnimationInterval = 1.0 / 25.0

	// AnimationSpeed is the fixed playback multiplier applied to every mixer advance
	AnimationSpeed = 3.0
)
