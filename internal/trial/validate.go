package trial

import (
	"fmt"
	"strings"
)

// Issue captures a single problem found in a trial configuration.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more configuration issues.
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
	return fmt.Sprintf("trial config validation failed: %s", strings.Join(parts, "; "))
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

// Validate rejects configurations the engine cannot run correctly. It runs
// before any listener or timer is registered, so a failed trial acquires no
// resources.
//
// A configuration with response capture disabled and no trial duration, or
// with ResponseEndsTrial unset and no trial duration, would never resolve;
// both are reported as errors here rather than left to hang at runtime.
func Validate(cfg Config) error {
	collector := &issueCollector{}
	CollectIssues(cfg, "", collector.add)
	return collector.result()
}

// CollectIssues reports every configuration issue through add, prefixing
// field paths with prefix. Shared by Validate and the session-file validator.
func CollectIssues(cfg Config, prefix string, add func(field, message string)) {
	field := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	switch cfg.Kind {
	case StimulusBar, StimulusImage:
	default:
		add(field("kind"), fmt.Sprintf("unknown stimulus kind %q", cfg.Kind))
	}

	if cfg.LeftRange.Min > cfg.LeftRange.Max {
		add(field("left_range"), fmt.Sprintf("min %d exceeds max %d", cfg.LeftRange.Min, cfg.LeftRange.Max))
	}
	if cfg.RightRange.Min > cfg.RightRange.Max {
		add(field("right_range"), fmt.Sprintf("min %d exceeds max %d", cfg.RightRange.Min, cfg.RightRange.Max))
	}
	if cfg.JitterBound < 0 {
		add(field("jitter_bound"), fmt.Sprintf("must not be negative, got %d", cfg.JitterBound))
	}

	capture := len(cfg.Choices) > 0
	if capture {
		if len(cfg.Choices) != 2 {
			add(field("choices"), fmt.Sprintf("must hold exactly two tokens, got %d", len(cfg.Choices)))
		} else {
			for i, token := range cfg.Choices {
				if strings.TrimSpace(token) == "" {
					add(fmt.Sprintf("%s[%d]", field("choices"), i), "is required")
				}
			}
			if cfg.Choices[0] == cfg.Choices[1] {
				add(field("choices"), fmt.Sprintf("tokens must differ, both are %q", cfg.Choices[0]))
			}
		}
	}

	if cfg.CorrectSide != nil && *cfg.CorrectSide != SideLeft && *cfg.CorrectSide != SideRight {
		add(field("correct_side"), fmt.Sprintf("must be %q or %q, got %q", SideLeft, SideRight, *cfg.CorrectSide))
	}

	if cfg.TrialDurationMs != nil && *cfg.TrialDurationMs <= 0 {
		add(field("trial_duration_ms"), fmt.Sprintf("must be positive, got %d", *cfg.TrialDurationMs))
	}

	if cfg.TrialDurationMs == nil {
		if !capture {
			add(field("choices"), "response capture is disabled and no trial_duration_ms is set; the trial can never resolve")
		} else if !cfg.ResponseEndsTrial {
			add(field("response_ends_trial"), "is false and no trial_duration_ms is set; the trial can never resolve")
		}
	}
}
