package runner

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"
)

const sessionIDSuffixBytes = 6

// NewSessionID returns a timestamped session identifier with a random
// suffix, unique enough to key output directories and database rows.
func NewSessionID() (string, error) {
	return NewSessionIDWithRand(time.Now().UTC(), rand.Reader)
}

// NewSessionIDWithRand builds a session identifier from an explicit clock
// and randomness source, for deterministic tests.
func NewSessionIDWithRand(now time.Time, r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("random reader is nil")
	}
	buf := make([]byte, sessionIDSuffixBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return FormatSessionID(now, hex.EncodeToString(buf)), nil
}

// FormatSessionID joins a UTC timestamp and suffix into a session id.
func FormatSessionID(now time.Time, suffix string) string {
	return now.UTC().Format("20060102T150405Z") + "-" + suffix
}
