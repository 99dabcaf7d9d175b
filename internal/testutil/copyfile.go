package testutil

import (
	"os"
	"testing"
)

// CopyFile copies a fixture from src to dst, preferring a copy-on-write
// clone where the platform supports one.
func CopyFile(t testing.TB, src, dst string) {
	t.Helper()
	if err := cloneFixture(src, dst); err == nil {
		return
	}
	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("read fixture %s: %v", src, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", dst, err)
	}
}
