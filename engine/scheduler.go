package engine

import (
	"errors"
	"sync"
	"time"
)

// ErrNoCallback is returned by Fire when no frame has been requested
var ErrNoCallback = errors.New("engine: no frame callback pending")

// FrameCallback receives a monotonically increasing timestamp measured from the scheduler's origin
type FrameCallback func(timestamp time.Duration)

// FrameScheduler delivers exactly one future frame per request
// Hosts drive it from a ticker, a window's vsync, or a fixed step loop
type FrameScheduler interface {
	RequestNextFrame(cb FrameCallback)
}

// pendingFrame holds at most one outstanding callback
// A second request before the first fires replaces it
type pendingFrame struct {
	mu sync.Mutex
	cb FrameCallback
}

func (p *pendingFrame) set(cb FrameCallback) {
	p.mu.Lock()
	p.cb = cb
	p.mu.Unlock()
}

func (p *pendingFrame) take() FrameCallback {
	p.mu.Lock()
	defer p.mu.Unlock()
	cb := p.cb
	p.cb = nil
	return cb
}

// ManualScheduler fires frames only when told to
// Window hosts call Fire from their own update hook
type ManualScheduler struct {
	pending pendingFrame
}

// NewManualScheduler creates an idle scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RequestNextFrame implements FrameScheduler
func (s *ManualScheduler) RequestNextFrame(cb FrameCallback) {
	s.pending.set(cb)
}

// Pending reports whether a callback is waiting
func (s *ManualScheduler) Pending() bool {
	s.pending.mu.Lock()
	defer s.pending.mu.Unlock()
	return s.pending.cb != nil
}

// Fire runs the pending callback with the given timestamp
func (s *ManualScheduler) Fire(timestamp time.Duration) error {
	cb := s.pending.take()
	if cb == nil {
		return ErrNoCallback
	}
	cb(timestamp)
	return nil
}
