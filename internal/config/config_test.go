package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"twobar/internal/spec"
	"twobar/internal/trial"
)

func writeSessionFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write session file: %v", err)
	}
	return path
}

const validSession = `
version: 1
output:
  dir: results
trials:
  - prompt: "Which is more?"
    left: {min: 50, max: 150, color: blue}
    right: {min: 50, max: 150, color: orange}
    choices: [f, j]
    correct_side: left
    trial_duration_ms: 2000
`

// TestLoadValidSession verifies loading applies defaults and validation
// passes.
func TestLoadValidSession(t *testing.T) {
	file, err := Load(writeSessionFile(t, validSession))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	tr := file.Trials[0]
	if tr.ID != "trial-001" {
		t.Fatalf("expected defaulted id trial-001, got %q", tr.ID)
	}
	if tr.Kind != string(trial.StimulusBar) {
		t.Fatalf("expected defaulted kind bar, got %q", tr.Kind)
	}
}

// TestLoadRejectsUnresolvableTrial verifies a trial that could never resolve
// fails at load time, before any experiment runs.
func TestLoadRejectsUnresolvableTrial(t *testing.T) {
	contents := `
version: 1
trials:
  - prompt: "p"
    left: {min: 1, max: 2}
    right: {min: 1, max: 2}
    choices: [f, j]
    response_ends_trial: false
`
	_, err := Load(writeSessionFile(t, contents))
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "trials[0].response_ends_trial") {
		t.Fatalf("expected response_ends_trial issue, got %v", err)
	}
}

// TestValidateDuplicateIDs verifies duplicate trial ids are rejected.
func TestValidateDuplicateIDs(t *testing.T) {
	duration := 1000
	file := spec.File{
		Version: 1,
		Trials: []spec.TrialSpec{
			{ID: "a", Prompt: "p", Kind: "bar", Left: spec.SideSpec{Min: 1, Max: 2}, Right: spec.SideSpec{Min: 1, Max: 2}, Choices: []string{"f", "j"}, TrialDurationMs: &duration},
			{ID: "a", Prompt: "p", Kind: "bar", Left: spec.SideSpec{Min: 1, Max: 2}, Right: spec.SideSpec{Min: 1, Max: 2}, Choices: []string{"f", "j"}, TrialDurationMs: &duration},
		},
	}
	err := Validate(&file)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(err.Error(), `trials[1].id: duplicate id "a"`) {
		t.Fatalf("expected duplicate id issue, got %v", err)
	}
}

// TestValidateImageTrialRequiresImages verifies image trials name both image
// references.
func TestValidateImageTrialRequiresImages(t *testing.T) {
	contents := `
version: 1
trials:
  - prompt: "p"
    kind: image
    left: {min: 1, max: 2, image: stimuli/left.png}
    right: {min: 1, max: 2}
    choices: [f, j]
    trial_duration_ms: 1000
`
	_, err := Load(writeSessionFile(t, contents))
	if err == nil || !strings.Contains(err.Error(), "trials[0].right.image") {
		t.Fatalf("expected right image issue, got %v", err)
	}
}

// TestToTrialConfigDefaults verifies conversion defaults response_ends_trial
// to true and maps the correct side.
func TestToTrialConfigDefaults(t *testing.T) {
	tr := spec.TrialSpec{
		Prompt:      "p",
		Kind:        "bar",
		Left:        spec.SideSpec{Min: 1, Max: 2, Color: "blue"},
		Right:       spec.SideSpec{Min: 3, Max: 4, Color: "orange"},
		Choices:     []string{"f", "j"},
		CorrectSide: "right",
	}
	cfg := ToTrialConfig(tr)
	if !cfg.ResponseEndsTrial {
		t.Fatalf("expected response_ends_trial default true")
	}
	if cfg.CorrectSide == nil || *cfg.CorrectSide != trial.SideRight {
		t.Fatalf("expected correct side right, got %v", cfg.CorrectSide)
	}
	if cfg.LeftStyle.Color != "blue" || cfg.RightStyle.Color != "orange" {
		t.Fatalf("expected colors carried over, got %+v / %+v", cfg.LeftStyle, cfg.RightStyle)
	}
}
