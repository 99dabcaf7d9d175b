package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPaths describes filesystem locations for session outputs.
type OutputPaths struct {
	Root      string
	SessionID string
}

// NewOutputPaths validates and constructs output paths metadata.
func NewOutputPaths(root, sessionID string) (OutputPaths, error) {
	if strings.TrimSpace(root) == "" {
		return OutputPaths{}, fmt.Errorf("output root is empty")
	}
	if strings.TrimSpace(sessionID) == "" {
		return OutputPaths{}, fmt.Errorf("session ID is empty")
	}
	return OutputPaths{Root: root, SessionID: sessionID}, nil
}

// SessionDir returns the directory for a specific session.
func (o OutputPaths) SessionDir() string {
	return filepath.Join(o.Root, o.SessionID)
}

// ResultsPath returns the path to results.json.
func (o OutputPaths) ResultsPath() string {
	return filepath.Join(o.SessionDir(), "results.json")
}

// ReportPath returns the path to the HTML report.
func (o OutputPaths) ReportPath() string {
	return filepath.Join(o.SessionDir(), "report.html")
}

// WriteResults creates the session directory and writes results.json.
func WriteResults(paths OutputPaths, results Results) error {
	if err := os.MkdirAll(paths.SessionDir(), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(paths.ResultsPath(), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// LoadResults reads a results.json written by WriteResults.
func LoadResults(path string) (Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Results{}, fmt.Errorf("read results: %w", err)
	}
	var results Results
	if err := json.Unmarshal(data, &results); err != nil {
		return Results{}, fmt.Errorf("parse results: %w", err)
	}
	return results, nil
}
