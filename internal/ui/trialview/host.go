package trialview

import (
	"math/rand"
	"time"

	"twobar/internal/trial"
)

// teaHost adapts the Bubble Tea event loop to the engine's host interface.
// Key presses and timer checks are delivered from Update, so all callbacks
// run on the program's single goroutine, which is exactly the cooperative
// scheduling the engine expects.
type teaHost struct {
	rng    *rand.Rand
	onset  time.Time
	keys   keyListener
	timer  timeoutState
	result *trial.Result
}

type keyListener struct {
	tokens    []string
	onCapture trial.CaptureFunc
	active    bool
}

type timeoutState struct {
	deadline time.Time
	onFire   func()
	active   bool
}

func newTeaHost(seed int64) *teaHost {
	return &teaHost{rng: rand.New(rand.NewSource(seed))}
}

func (h *teaHost) RandomInt(min, max int) int {
	if min == max {
		return min
	}
	return min + h.rng.Intn(max-min+1)
}

func (h *teaHost) RandomFloat() float64 {
	return h.rng.Float64()
}

func (h *teaHost) RegisterKeyResponse(validTokens []string, onCapture trial.CaptureFunc) trial.CancelFunc {
	h.keys = keyListener{tokens: validTokens, onCapture: onCapture, active: true}
	return func() { h.keys.active = false }
}

func (h *teaHost) ScheduleTimeout(ms int, onFire func()) trial.CancelFunc {
	h.timer = timeoutState{
		deadline: h.onset.Add(time.Duration(ms) * time.Millisecond),
		onFire:   onFire,
		active:   true,
	}
	return func() { h.timer.active = false }
}

func (h *teaHost) ReportTrialComplete(result trial.Result) {
	h.result = &result
}

// deliverKey forwards a matching key press to the engine with the reaction
// time measured from stimulus onset.
func (h *teaHost) deliverKey(token string, now time.Time) {
	if !h.keys.active {
		return
	}
	for _, valid := range h.keys.tokens {
		if token == valid {
			elapsed := float64(now.Sub(h.onset)) / float64(time.Millisecond)
			h.keys.onCapture(token, elapsed)
			return
		}
	}
}

// checkTimer fires the trial timer once its deadline has passed. The key
// handler runs before the tick handler in Update, so a response arriving on
// the same iteration wins the race.
func (h *teaHost) checkTimer(now time.Time) {
	if !h.timer.active || now.Before(h.timer.deadline) {
		return
	}
	h.timer.onFire()
}

// remainingFraction reports the unexpired share of the trial duration, for
// the countdown bar.
func (h *teaHost) remainingFraction(now time.Time, durationMs int) float64 {
	if durationMs <= 0 {
		return 0
	}
	total := time.Duration(durationMs) * time.Millisecond
	left := h.timer.deadline.Sub(now)
	if left < 0 {
		return 0
	}
	if left > total {
		return 1
	}
	return float64(left) / float64(total)
}
