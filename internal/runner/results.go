package runner

import (
	"time"

	"twobar/internal/trial"
)

// Results is the complete record of one session: every trial's result plus
// aggregate counts.
type Results struct {
	SessionID  string        `json:"session_id"`
	Source     string        `json:"source"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Trials     []TrialRecord `json:"trials"`
	Summary    Summary       `json:"summary"`
}

// TrialRecord couples a trial's result with its identity in the session.
type TrialRecord struct {
	TrialID string       `json:"trial_id"`
	Index   int          `json:"index"`
	Result  trial.Result `json:"result"`
}

// Summary aggregates a session's outcomes.
type Summary struct {
	TrialsTotal        int      `json:"trials_total"`
	TrialsResponded    int      `json:"trials_responded"`
	TrialsScored       int      `json:"trials_scored"`
	TrialsCorrect      int      `json:"trials_correct"`
	Accuracy           *float64 `json:"accuracy"`
	MeanReactionTimeMs *float64 `json:"mean_reaction_time_ms"`
}

// summarize aggregates trial records into a session summary. Accuracy is
// present only when at least one trial was scored, and mean reaction time
// only when at least one trial got a response.
func summarize(records []TrialRecord) Summary {
	summary := Summary{TrialsTotal: len(records)}
	rtSum := 0.0
	for _, record := range records {
		result := record.Result
		if result.Token != nil {
			summary.TrialsResponded++
			if result.ReactionTimeMs != nil {
				rtSum += *result.ReactionTimeMs
			}
		}
		if result.Accuracy != nil {
			summary.TrialsScored++
			summary.TrialsCorrect += *result.Accuracy
		}
	}
	if summary.TrialsScored > 0 {
		accuracy := float64(summary.TrialsCorrect) / float64(summary.TrialsScored)
		summary.Accuracy = &accuracy
	}
	if summary.TrialsResponded > 0 {
		mean := rtSum / float64(summary.TrialsResponded)
		summary.MeanReactionTimeMs = &mean
	}
	return summary
}
