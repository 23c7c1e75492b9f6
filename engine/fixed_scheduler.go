package engine

import (
	"context"
	"time"
)

// FixedStepScheduler fires frames back to back with a synthetic timestamp
// Used by the headless host and tests; no wall clock involved
type FixedStepScheduler struct {
	step      time.Duration
	maxFrames uint64
	now       time.Duration
	fired     uint64
	pending   pendingFrame
}

// NewFixedStepScheduler advances the timestamp by step per frame
// maxFrames of 0 runs until the driver stops or ctx is cancelled
func NewFixedStepScheduler(step time.Duration, maxFrames uint64) *FixedStepScheduler {
	return &FixedStepScheduler{
		step:      step,
		maxFrames: maxFrames,
	}
}

// RequestNextFrame implements FrameScheduler
func (s *FixedStepScheduler) RequestNextFrame(cb FrameCallback) {
	s.pending.set(cb)
}

// Fired returns the number of callbacks run so far
func (s *FixedStepScheduler) Fired() uint64 {
	return s.fired
}

// Run fires pending callbacks until the limit, a stop, or cancellation
func (s *FixedStepScheduler) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.maxFrames > 0 && s.fired >= s.maxFrames {
			return nil
		}
		cb := s.pending.take()
		if cb == nil {
			return nil
		}
		cb(s.now)
		s.fired++
		s.now += s.step
	}
}
