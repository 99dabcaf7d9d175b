//go:build !darwin

package testutil

import "errors"

// cloneFixture reports that this platform has no copy-on-write clone;
// callers fall back to a byte copy.
func cloneFixture(src, dst string) error {
	return errors.New("copy-on-write clone unavailable")
}
