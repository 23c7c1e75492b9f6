package engine

import (
	"sync/atomic"
	"time"
)

// StepFunc advances the simulation by dt seconds
type StepFunc func(dt float64)

// RenderFunc draws the state produced by the preceding step
type RenderFunc func()

// Driver turns scheduler timestamps into per-frame deltas
// Each frame runs step then render, then re-arms itself unless stopped
type Driver struct {
	scheduler FrameScheduler
	step      StepFunc
	render    RenderFunc

	last    time.Duration
	hasLast bool
	frames  atomic.Uint64
	stopped atomic.Bool
}

// NewDriver wires a scheduler to the step and render callbacks; render may be nil
func NewDriver(scheduler FrameScheduler, step StepFunc, render RenderFunc) *Driver {
	return &Driver{
		scheduler: scheduler,
		step:      step,
		render:    render,
	}
}

// Start requests the first frame, whose delta is zero
func (d *Driver) Start() {
	d.stopped.Store(false)
	d.hasLast = false
	d.scheduler.RequestNextFrame(d.frame)
}

// Stop prevents the next frame from being requested
// Safe from any goroutine; the frame in flight still completes
func (d *Driver) Stop() {
	d.stopped.Store(true)
}

// Stopped reports whether Stop has been called since Start
func (d *Driver) Stopped() bool {
	return d.stopped.Load()
}

// Frames returns the number of frames run
func (d *Driver) Frames() uint64 {
	return d.frames.Load()
}

func (d *Driver) frame(timestamp time.Duration) {
	var dt float64
	if d.hasLast {
		dt = (timestamp - d.last).Seconds()
		// Timestamps going backwards are clamped
		if dt < 0 {
			dt = 0
		}
	}
	d.last = timestamp
	d.hasLast = true

	d.frames.Add(1)
	d.step(dt)
	if d.render != nil {
		d.render()
	}

	if !d.stopped.Load() {
		d.scheduler.RequestNextFrame(d.frame)
	}
}
