package trial

// CaptureFunc receives the first matching key press together with the elapsed
// time from stimulus onset in milliseconds.
type CaptureFunc func(token string, reactionTimeMs float64)

// CancelFunc stops a pending listener or timer. Calling it after the
// underlying event already fired, or calling it twice, is a no-op.
type CancelFunc func()

// Host supplies the runtime primitives a trial needs: randomness, keyboard
// capture, timer scheduling, and the completion sink. Implementations are
// expected to invoke callbacks from a single event loop; the engine relies on
// callbacks never running concurrently with each other.
type Host interface {
	// RandomInt samples uniformly from the inclusive interval [min, max].
	RandomInt(min, max int) int
	// RandomFloat samples uniformly from [0, 1).
	RandomFloat() float64
	// RegisterKeyResponse begins listening for the given tokens and invokes
	// onCapture for every matching key press until canceled.
	RegisterKeyResponse(validTokens []string, onCapture CaptureFunc) CancelFunc
	// ScheduleTimeout invokes onFire once after ms milliseconds unless
	// canceled first.
	ScheduleTimeout(ms int, onFire func()) CancelFunc
	// ReportTrialComplete receives the trial's result record. Called exactly
	// once per trial.
	ReportTrialComplete(result Result)
}
