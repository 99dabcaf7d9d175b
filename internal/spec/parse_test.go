package spec

import (
	"strings"
	"testing"
)

const sampleYAML = `
version: 1
output:
  dir: results
trials:
  - id: t1
    prompt: "Which is more?"
    kind: bar
    left: {min: 50, max: 150, color: blue}
    right: {min: 50, max: 150, color: orange}
    jitter_bound: 10
    choices: [f, j]
    correct_side: left
    trial_duration_ms: 2000
`

// TestParseYAML verifies a well-formed YAML session file decodes fully.
func TestParseYAML(t *testing.T) {
	file, err := Parse([]byte(sampleYAML), "session.yml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if file.Version != 1 {
		t.Fatalf("expected version 1, got %d", file.Version)
	}
	if len(file.Trials) != 1 {
		t.Fatalf("expected one trial, got %d", len(file.Trials))
	}
	tr := file.Trials[0]
	if tr.Left.Min != 50 || tr.Left.Max != 150 || tr.Left.Color != "blue" {
		t.Fatalf("unexpected left side: %+v", tr.Left)
	}
	if tr.TrialDurationMs == nil || *tr.TrialDurationMs != 2000 {
		t.Fatalf("expected duration 2000, got %v", tr.TrialDurationMs)
	}
	if tr.ResponseEndsTrial != nil {
		t.Fatalf("expected response_ends_trial to be unset, got %v", *tr.ResponseEndsTrial)
	}
}

// TestParseJSONByExtension verifies the JSON path takes the strict JSON
// decoder.
func TestParseJSONByExtension(t *testing.T) {
	data := []byte(`{"version": 1, "trials": [{"id": "t1", "prompt": "p", "kind": "bar", "left": {"min": 1, "max": 2}, "right": {"min": 1, "max": 2}, "choices": ["f", "j"]}]}`)
	file, err := Parse(data, "session.JSON")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if file.Trials[0].ID != "t1" {
		t.Fatalf("expected trial id t1, got %q", file.Trials[0].ID)
	}
}

// TestParseRejectsUnknownFields verifies strict decoding surfaces typos.
func TestParseRejectsUnknownFields(t *testing.T) {
	data := []byte("version: 1\ntrails: []\n")
	if _, err := Parse(data, "session.yml"); err == nil {
		t.Fatalf("expected unknown-field error")
	}
}

// TestParseRejectsMultipleDocuments verifies only one document is accepted,
// and that extra documents are reported as such even when their fields would
// not decode into the session schema.
func TestParseRejectsMultipleDocuments(t *testing.T) {
	data := []byte("version: 1\n---\nversion: 2\n")
	_, err := Parse(data, "session.yml")
	if err == nil || !strings.Contains(err.Error(), "multiple documents") {
		t.Fatalf("expected multiple-documents error, got %v", err)
	}

	data = []byte("version: 1\n---\nnot_a_session_field: true\n")
	_, err = Parse(data, "session.yml")
	if err == nil || !strings.Contains(err.Error(), "multiple documents") {
		t.Fatalf("expected multiple-documents error, got %v", err)
	}
}

// TestParseRejectsMultipleJSONValues verifies trailing values are rejected.
func TestParseRejectsMultipleJSONValues(t *testing.T) {
	data := []byte(`{"version": 1, "trials": []}{"version": 2}`)
	_, err := Parse(data, "session.json")
	if err == nil || !strings.Contains(err.Error(), "multiple documents") {
		t.Fatalf("expected multiple-documents error, got %v", err)
	}
}
