package trial

// sessionState tracks the trial lifecycle. Transitions only move forward:
// Initialized -> AwaitingResponse -> Resolved -> Finalized.
type sessionState int

const (
	stateInitialized sessionState = iota
	stateAwaitingResponse
	stateResolved
	stateFinalized
)

// Session owns the mutable state of one running trial: the sampled stimulus,
// the first recorded response, and the cancel handles for the key listener
// and the duration timer.
//
// Sessions are not safe for concurrent use. The host invokes capture and
// timer callbacks from a single event loop, so the resolution guard is a
// plain state check rather than a lock.
type Session struct {
	cfg      Config
	host     Host
	stimulus Stimulus
	state    sessionState
	response Response

	cancelKeys  CancelFunc
	cancelTimer CancelFunc
}

// Start validates the configuration and samples the stimulus. No listener or
// timer is registered yet; call Await once the stimulus has been rendered.
func Start(cfg Config, host Host) (*Session, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return &Session{
		cfg:      cfg,
		host:     host,
		stimulus: Generate(cfg, host),
		state:    stateInitialized,
	}, nil
}

// Config returns the trial's immutable configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Stimulus returns the magnitudes sampled at Start, for rendering.
func (s *Session) Stimulus() Stimulus {
	return s.stimulus
}

// Await registers the key listener and, when a duration is configured, the
// trial timer. It is a no-op unless the session is freshly started.
func (s *Session) Await() {
	if s.state != stateInitialized {
		return
	}
	s.state = stateAwaitingResponse
	if len(s.cfg.Choices) > 0 {
		s.cancelKeys = s.host.RegisterKeyResponse(s.cfg.Choices, s.handleCapture)
	}
	if s.cfg.TrialDurationMs != nil {
		s.cancelTimer = s.host.ScheduleTimeout(*s.cfg.TrialDurationMs, s.handleTimeout)
	}
}

// Done reports whether the trial has finalized.
func (s *Session) Done() bool {
	return s.state == stateFinalized
}

// handleCapture records the first qualifying response. Later captures keep
// the first recorded token and reaction time. When ResponseEndsTrial is set
// the trial resolves immediately; otherwise it keeps waiting for the timer.
func (s *Session) handleCapture(token string, reactionTimeMs float64) {
	if s.state != stateAwaitingResponse {
		return
	}
	if s.response.Token == nil {
		captured := token
		elapsed := reactionTimeMs
		s.response = Response{Token: &captured, ReactionTimeMs: &elapsed}
	}
	if s.cfg.ResponseEndsTrial {
		s.resolve()
	}
}

// handleTimeout resolves the trial when the duration timer fires. A timeout
// arriving after a response already resolved the trial is a no-op.
func (s *Session) handleTimeout() {
	if s.state != stateAwaitingResponse {
		return
	}
	s.resolve()
}

// resolve transitions to Resolved exactly once, releases both handles, and
// finalizes. The state check is the single-assignment guard: whichever event
// fires second finds the session past AwaitingResponse and returns.
func (s *Session) resolve() {
	if s.state != stateAwaitingResponse {
		return
	}
	s.state = stateResolved
	s.release()
	s.finalize()
}

// release cancels any outstanding listener and timer. Safe to call more than
// once and after either has already fired.
func (s *Session) release() {
	if s.cancelKeys != nil {
		s.cancelKeys()
		s.cancelKeys = nil
	}
	if s.cancelTimer != nil {
		s.cancelTimer()
		s.cancelTimer = nil
	}
}

// finalize assembles the result record and reports it to the host sink. This
// is the trial's terminal action; no state changes after it.
func (s *Session) finalize() {
	result := buildResult(s.cfg, s.stimulus, s.response)
	s.state = stateFinalized
	s.host.ReportTrialComplete(result)
}
