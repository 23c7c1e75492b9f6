package engine

import "time"

// TimeProvider is the wall clock the schedulers stamp frames from
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock
// time.Now carries a monotonic reading, so frame deltas survive wall clock jumps
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a provider backed by time.Now
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
