//go:build darwin

package testutil

import "golang.org/x/sys/unix"

// cloneFixture clones src to dst with APFS copy-on-write, leaving the
// source untouched by later writes to the clone.
func cloneFixture(src, dst string) error {
	return unix.Clonefile(src, dst, 0)
}
