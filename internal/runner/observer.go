package runner

import "twobar/internal/trial"

// TrialEventType identifies a trial status update for observers.
type TrialEventType string

const (
	// TrialShown marks a trial's stimulus presented and awaiting input.
	TrialShown TrialEventType = "shown"
	// TrialResolved marks a trial's outcome fixed.
	TrialResolved TrialEventType = "resolved"
)

// TrialEvent carries a single status update for a trial.
type TrialEvent struct {
	Type    TrialEventType
	TrialID string
	Index   int
	Total   int
	Result  *trial.Result
}

// Observer receives trial events as the session progresses. A nil observer
// is allowed and ignored.
type Observer func(event TrialEvent)

func notify(observer Observer, event TrialEvent) {
	if observer != nil {
		observer(event)
	}
}
