package game

import "math"

// Paddle is a vertically moving rectangle clamped to the field
type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Speed  float64

	// DY is the signed velocity applied in the current frame
	DY float64

	fieldHeight float64
}

// NewPaddle creates a paddle at (x, y), y clamped into the field
func NewPaddle(x, y, width, height, speed, fieldHeight float64) *Paddle {
	p := &Paddle{
		X:           x,
		Width:       width,
		Height:      height,
		Speed:       speed,
		fieldHeight: fieldHeight,
	}
	p.Reset(y)
	return p
}

// MaxY is the lowest top edge that keeps the paddle inside the field
func (p *Paddle) MaxY() float64 {
	return p.fieldHeight - p.Height
}

// MoveUp moves the paddle up by Speed*dt, stopping at the top wall
func (p *Paddle) MoveUp(dt float64) {
	p.DY = -p.Speed
	p.Y = math.Max(0, p.Y-p.Speed*dt)
}

// MoveDown moves the paddle down by Speed*dt, stopping at the bottom wall
func (p *Paddle) MoveDown(dt float64) {
	p.DY = p.Speed
	p.Y = math.Min(p.MaxY(), p.Y+p.Speed*dt)
}

// Stop zeroes the frame velocity
func (p *Paddle) Stop() {
	p.DY = 0
}

// Reset places the paddle at y and stops it
func (p *Paddle) Reset(y float64) {
	p.Y = math.Min(math.Max(0, y), p.MaxY())
	p.DY = 0
}

// Rect returns the paddle's bounds
func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
