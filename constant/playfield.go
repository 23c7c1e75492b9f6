package constant

// Playfield dimensions in simulation units
const (
	FieldWidth  = 1280.0
	FieldHeight = 720.0
)

// Paddle geometry and motion
const (
	PaddleWidth  = 20.0
	PaddleHeight = 200.0

	// PaddleSpeed is the vertical speed in units per second
	PaddleSpeed = 1000.0

	// PaddleOffsetX is the gap between a paddle and its side wall
	PaddleOffsetX = 30.0

	// PaddleOffsetY is the starting gap from the top (player 1) or bottom (player 2)
	PaddleOffsetY = 30.0
)

// Ball geometry and launch speed
const (
	BallWidth  = 20.0
	BallHeight = 20.0

	// BallSpeed is the per-axis launch speed in units per second
	BallSpeed = 200.0
)

// Launch policies
const (
	LaunchFixed  = "fixed"
	LaunchRandom = "random"
)
