package testutil

import (
	"sync"
	"time"
)

// Clock reports the current time. Runner dependencies accept a Now func, so
// a FakeClock plugs in as clock.Now.
type Clock interface {
	Now() time.Time
}

// FakeClock is a manually advanced clock. Safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock frozen at start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the clock's current time.
func (clock *FakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

// Advance moves the clock forward by d.
func (clock *FakeClock) Advance(d time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(d)
}
