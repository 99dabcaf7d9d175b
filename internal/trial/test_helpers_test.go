package trial

import "math/rand"

// fakeHost is a deterministic, manually driven host for engine tests. Events
// are delivered by calling press and fireTimer; both honor cancellation the
// way a real host would, while the raw callbacks stay reachable for tests
// that simulate events firing after cancellation.
type fakeHost struct {
	rng      *rand.Rand
	listener *fakeListener
	timer    *fakeTimer
	results  []Result
}

type fakeListener struct {
	tokens    []string
	onCapture CaptureFunc
	cancels   int
}

type fakeTimer struct {
	ms      int
	onFire  func()
	cancels int
}

func newFakeHost(seed int64) *fakeHost {
	return &fakeHost{rng: rand.New(rand.NewSource(seed))}
}

func (h *fakeHost) RandomInt(min, max int) int {
	if min == max {
		return min
	}
	return min + h.rng.Intn(max-min+1)
}

func (h *fakeHost) RandomFloat() float64 {
	return h.rng.Float64()
}

func (h *fakeHost) RegisterKeyResponse(validTokens []string, onCapture CaptureFunc) CancelFunc {
	listener := &fakeListener{tokens: validTokens, onCapture: onCapture}
	h.listener = listener
	return func() { listener.cancels++ }
}

func (h *fakeHost) ScheduleTimeout(ms int, onFire func()) CancelFunc {
	timer := &fakeTimer{ms: ms, onFire: onFire}
	h.timer = timer
	return func() { timer.cancels++ }
}

func (h *fakeHost) ReportTrialComplete(result Result) {
	h.results = append(h.results, result)
}

// press delivers a key press the way a live host would: only registered,
// matching tokens reach the engine, and a canceled listener delivers nothing.
func (h *fakeHost) press(token string, reactionTimeMs float64) {
	if h.listener == nil || h.listener.cancels > 0 {
		return
	}
	for _, valid := range h.listener.tokens {
		if token == valid {
			h.listener.onCapture(token, reactionTimeMs)
			return
		}
	}
}

// fireTimer elapses the trial timer unless it was canceled.
func (h *fakeHost) fireTimer() {
	if h.timer == nil || h.timer.cancels > 0 {
		return
	}
	h.timer.onFire()
}

func side(s Side) *Side {
	return &s
}

func intPtr(v int) *int {
	return &v
}

// barConfig returns a valid response-ends-trial configuration used as the
// baseline across tests.
func barConfig() Config {
	return Config{
		Prompt:            "Which is more?",
		Kind:              StimulusBar,
		LeftRange:         Range{Min: 50, Max: 150},
		RightRange:        Range{Min: 50, Max: 150},
		JitterBound:       0,
		Choices:           []string{"f", "j"},
		CorrectSide:       side(SideLeft),
		ResponseEndsTrial: true,
		LeftStyle:         SideStyle{Color: "blue"},
		RightStyle:        SideStyle{Color: "orange"},
	}
}
