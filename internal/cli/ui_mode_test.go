package cli

import (
	"io"
	"testing"
)

// fakeTTY forces the terminal check to a fixed answer.
func fakeTTY(t *testing.T, tty bool) {
	t.Helper()
	previous := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = previous })
}

// TestResolveUIMode covers the mode and TTY combinations.
func TestResolveUIMode(t *testing.T) {
	cases := []struct {
		name     string
		mode     string
		tty      bool
		styled   bool
		wantWarn bool
		wantErr  bool
	}{
		{name: "auto on tty", mode: "auto", tty: true, styled: true},
		{name: "auto off tty", mode: "auto", tty: false, styled: false},
		{name: "empty defaults to auto", mode: "", tty: true, styled: true},
		{name: "live on tty", mode: "live", tty: true, styled: true},
		{name: "live off tty warns", mode: "live", tty: false, styled: false, wantWarn: true},
		{name: "plain ignores tty", mode: "plain", tty: true, styled: false},
		{name: "unknown mode", mode: "fancy", tty: true, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fakeTTY(t, tc.tty)
			decision, err := resolveUIMode(tc.mode, io.Discard)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error for mode %q", tc.mode)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveUIMode: %v", err)
			}
			if decision.styled != tc.styled {
				t.Fatalf("styled = %v, want %v", decision.styled, tc.styled)
			}
			if (decision.warning != "") != tc.wantWarn {
				t.Fatalf("warning = %q, want warning: %v", decision.warning, tc.wantWarn)
			}
		})
	}
}
