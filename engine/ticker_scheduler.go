package engine

import (
	"context"
	"time"
)

// TickerScheduler fires requested frames on a fixed wall clock interval
// Missed ticks are dropped by time.Ticker, the next frame sees the full elapsed delta
type TickerScheduler struct {
	interval time.Duration
	clock    TimeProvider
	pending  pendingFrame
}

// NewTickerScheduler creates a scheduler; a nil clock uses the system clock
func NewTickerScheduler(interval time.Duration, clock TimeProvider) *TickerScheduler {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &TickerScheduler{
		interval: interval,
		clock:    clock,
	}
}

// RequestNextFrame implements FrameScheduler
func (s *TickerScheduler) RequestNextFrame(cb FrameCallback) {
	s.pending.set(cb)
}

// Run blocks, firing one pending callback per tick
// Returns nil once a tick finds nothing pending (the driver stopped), ctx.Err() on cancellation
func (s *TickerScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	origin := s.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			cb := s.pending.take()
			if cb == nil {
				return nil
			}
			cb(s.clock.Now().Sub(origin))
		}
	}
}
