package game

// Contact reports what the ball touched during one update
type Contact uint8

const (
	ContactPaddle Contact = 1 << iota
	ContactWall

	ContactNone Contact = 0
)

// Ball is a moving rectangle that bounces off paddles and the top and bottom walls
// Horizontal position is unbounded so a crossing can signal a point
type Ball struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	DX     float64
	DY     float64

	speed       float64
	fieldWidth  float64
	fieldHeight float64
	launch      LaunchPolicy
}

// NewBall creates a ball at (x, y) already carrying a launch velocity
func NewBall(x, y, width, height, speed, fieldWidth, fieldHeight float64, launch LaunchPolicy) *Ball {
	if launch == nil {
		launch = FixedLaunch{}
	}
	b := &Ball{
		Width:       width,
		Height:      height,
		speed:       speed,
		fieldWidth:  fieldWidth,
		fieldHeight: fieldHeight,
		launch:      launch,
	}
	b.Reset(x, y)
	return b
}

// Speed is the per-axis launch speed
func (b *Ball) Speed() float64 {
	return b.speed
}

// Reset moves the ball to (x, y) with a fresh launch velocity
func (b *Ball) Reset(x, y float64) {
	b.X = x
	b.Y = y
	sx, sy := b.launch.Direction()
	b.DX = sx * b.speed
	b.DY = sy * b.speed
}

// Center returns the top-left position that centers the ball in the field
func (b *Ball) Center() (x, y float64) {
	return b.fieldWidth/2 - b.Width/2, b.fieldHeight/2 - b.Height/2
}

// DidCollide reports strict AABB overlap with the paddle
func (b *Ball) DidCollide(p *Paddle) bool {
	return b.Rect().Overlaps(p.Rect())
}

// Update runs one physics step: paddle reflection, wall reflection, then integration
// Paddles are never mutated. A large dt can carry the ball through a paddle or wall
// in one step; there is no swept collision.
func (b *Ball) Update(dt float64, player1, player2 *Paddle) Contact {
	contact := ContactNone

	if b.DidCollide(player1) || b.DidCollide(player2) {
		b.DX = -b.DX
		contact |= ContactPaddle
	}

	if b.Y <= 0 {
		b.Y = 0
		b.DY = -b.DY
		contact |= ContactWall
	}

	if bottom := b.fieldHeight - b.Height; b.Y >= bottom {
		b.Y = bottom
		b.DY = -b.DY
		contact |= ContactWall
	}

	b.X += b.DX * dt
	b.Y += b.DY * dt
	return contact
}

// Rect returns the ball's bounds
func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}
