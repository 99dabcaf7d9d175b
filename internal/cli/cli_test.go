package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// sessionYAML is a small valid session file used across command tests.
const sessionYAML = `version: 1
trials:
  - id: t1
    prompt: "Which bar is taller?"
    left: {min: 100, max: 100, color: blue}
    right: {min: 40, max: 40, color: red}
    choices: [f, j]
    correct_side: left
    trial_duration_ms: 2000
  - id: t2
    prompt: "Which bar is taller?"
    left: {min: 30, max: 30, color: blue}
    right: {min: 90, max: 90, color: red}
    choices: [f, j]
    correct_side: right
    trial_duration_ms: 2000
`

// writeSessionFile writes sessionYAML into a temp dir and returns its path.
func writeSessionFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.yml")
	if err := os.WriteFile(path, []byte(sessionYAML), 0o644); err != nil {
		t.Fatalf("write session file: %v", err)
	}
	return path
}

// runCLI invokes the dispatcher and captures its output.
func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// TestRunNoArgs checks that a bare invocation prints usage and fails.
func TestRunNoArgs(t *testing.T) {
	code, stdout, _ := runCLI()
	if code != ExitUsage {
		t.Fatalf("exit = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stdout, "Commands:") {
		t.Fatalf("usage output missing command list:\n%s", stdout)
	}
}

// TestRunHelp checks the top-level help flag.
func TestRunHelp(t *testing.T) {
	code, stdout, _ := runCLI("--help")
	if code != ExitOK {
		t.Fatalf("exit = %d, want %d", code, ExitOK)
	}
	for _, name := range []string{"validate", "run", "simulate", "report", "serve"} {
		if !strings.Contains(stdout, name) {
			t.Fatalf("usage output missing %q:\n%s", name, stdout)
		}
	}
}

// TestRunUnknownCommand checks the unknown-command path.
func TestRunUnknownCommand(t *testing.T) {
	code, _, stderr := runCLI("frobnicate")
	if code != ExitUsage {
		t.Fatalf("exit = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr, "Unknown command: frobnicate") {
		t.Fatalf("stderr missing unknown-command message:\n%s", stderr)
	}
}

// TestCommandHelp checks per-command help output.
func TestCommandHelp(t *testing.T) {
	code, stdout, _ := runCLI("validate", "--help")
	if code != ExitOK {
		t.Fatalf("exit = %d, want %d", code, ExitOK)
	}
	if !strings.Contains(stdout, "twobar validate --session") {
		t.Fatalf("help output missing usage line:\n%s", stdout)
	}
}
