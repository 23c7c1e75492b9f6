package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputHoldTimeout releases a key that has not been seen for this long
	// Terminals report key repeats but never key releases
	InputHoldTimeout = 180 * time.Millisecond

	// InputEdgeHoldTimeout is the hold timeout for confirm, restart, mute and quit
	// Longer than common auto-repeat delays (500-660ms) so a held key fires once
	InputEdgeHoldTimeout = 700 * time.Millisecond
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "term-pong.log"
	MaxLogSize  = 10 * 1024 * 1024
)
