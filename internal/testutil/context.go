package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds helper-created contexts when the caller does not ask
// for a tighter one.
const DefaultTimeout = 5 * time.Second

// deadliner is the part of *testing.T that exposes the -timeout deadline.
// testing.TB does not carry Deadline, so it has to be looked up dynamically.
type deadliner interface {
	Deadline() (time.Time, bool)
}

// Context returns a context canceled when the test finishes. When the test
// binary itself has a deadline, the timeout shrinks to fit inside it with a
// second spared for cleanup.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if d, ok := t.(deadliner); ok {
		if deadline, has := d.Deadline(); has {
			remaining := time.Until(deadline) - time.Second
			if remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
