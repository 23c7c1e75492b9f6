package input

import (
	"sync"
	"time"
)

// Source is the held-state view the game reads once per frame
// Edge-triggered actions are consumed by calling Clear after reading them held
type Source interface {
	Held(a Action) bool
	Clear(a Action)
}

// Clock supplies the time used for hold expiry
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Keys tracks physical key state written by a host event loop and read by the game loop
//
// A key has two layers: down (physically pressed, with the time it was last seen) and
// held (the logical flag exposed through Source). Press raises held only on a rising
// edge, so key repeat while down never re-arms a flag the game already cleared.
// Hosts without release events call Refresh each frame; keys not seen for the hold
// timeout are released. Edge actions use the longer edge timeout, which must outlast
// the OS auto-repeat delay so the first repeat is not taken for a new press.
type Keys struct {
	mu          sync.Mutex
	held        [actionCount]bool
	down        [actionCount]time.Time
	holdTimeout time.Duration
	edgeTimeout time.Duration
	clock       Clock
}

// NewKeys creates a key state, holdTimeout <= 0 disables expiry
// edgeTimeout below holdTimeout is raised to it
func NewKeys(holdTimeout, edgeTimeout time.Duration, clock Clock) *Keys {
	if clock == nil {
		clock = systemClock{}
	}
	return &Keys{
		holdTimeout: holdTimeout,
		edgeTimeout: max(holdTimeout, edgeTimeout),
		clock:       clock,
	}
}

// Press records a key-down or key-repeat for the action
func (k *Keys) Press(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.down[a].IsZero() {
		k.held[a] = true
	}
	k.down[a] = k.clock.Now()
}

// Release records a key-up for the action
func (k *Keys) Release(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	k.down[a] = time.Time{}
	k.held[a] = false
}

// Refresh releases keys that have not been seen within the hold timeout
func (k *Keys) Refresh() {
	if k.holdTimeout <= 0 {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.clock.Now()
	for a := range k.down {
		timeout := k.holdTimeout
		if Action(a).Edge() {
			timeout = k.edgeTimeout
		}
		if !k.down[a].IsZero() && now.Sub(k.down[a]) > timeout {
			k.down[a] = time.Time{}
			k.held[a] = false
		}
	}
}

// Held reports the logical flag for the action
func (k *Keys) Held(a Action) bool {
	if a >= actionCount {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[a]
}

// Clear drops the logical flag while the key stays down
func (k *Keys) Clear(a Action) {
	if a >= actionCount {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[a] = false
}

// Consume reads and clears an edge-triggered action in one step
func Consume(src Source, a Action) bool {
	if !src.Held(a) {
		return false
	}
	src.Clear(a)
	return true
}
