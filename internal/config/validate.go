package config

import (
	"fmt"
	"strings"

	"twobar/internal/spec"
	"twobar/internal/trial"
)

// Issue captures a validation problem in a session file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("session file validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks the session file structure and every trial's engine
// configuration, collecting all issues in one pass. Trial-level checks are
// delegated to the engine so a trial that passes here is guaranteed to start.
func Validate(file *spec.File) error {
	collector := &issueCollector{}
	if file.Version == 0 {
		collector.add("version", "is required")
	} else if file.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", file.Version))
	}
	if len(file.Trials) == 0 {
		collector.add("trials", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, tr := range file.Trials {
		prefix := fmt.Sprintf("trials[%d]", i)
		if _, exists := seenIDs[tr.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", tr.ID))
		} else {
			seenIDs[tr.ID] = struct{}{}
		}
		if tr.Prompt == "" {
			collector.add(prefix+".prompt", "is required")
		}
		if trial.StimulusKind(tr.Kind) == trial.StimulusImage {
			if tr.Left.Image == "" {
				collector.add(prefix+".left.image", "is required for image trials")
			}
			if tr.Right.Image == "" {
				collector.add(prefix+".right.image", "is required for image trials")
			}
		}
		trial.CollectIssues(ToTrialConfig(tr), prefix, collector.add)
	}

	return collector.result()
}
