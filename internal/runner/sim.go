package runner

import (
	"context"
	"fmt"
	"math/rand"

	"twobar/internal/trial"
)

// ScriptedResponse describes the simulated participant's action for one
// trial: which token is pressed and after how long.
type ScriptedResponse struct {
	Token     string
	LatencyMs float64
}

// RespondFunc decides the simulated response for a trial, given its sampled
// stimulus. Returning nil means no key is pressed.
type RespondFunc func(index int, cfg trial.Config, stimulus trial.Stimulus) *ScriptedResponse

// SimPresenter executes trials headlessly against a virtual clock. Events
// are delivered in virtual-time order: a response whose latency is within
// the trial duration arrives before the timer, everything else times out.
type SimPresenter struct {
	rng     *rand.Rand
	respond RespondFunc
	index   int
}

// NewSimPresenter builds a presenter with a seeded random source. A nil
// respond falls back to LargerSideResponder.
func NewSimPresenter(seed int64, respond RespondFunc) *SimPresenter {
	presenter := &SimPresenter{rng: rand.New(rand.NewSource(seed)), respond: respond}
	if presenter.respond == nil {
		presenter.respond = LargerSideResponder(seed)
	}
	return presenter
}

// LargerSideResponder simulates a participant who always chooses the side
// with the larger final magnitude, with uniform response latency in
// [300, 700) ms. Ties go left.
func LargerSideResponder(seed int64) RespondFunc {
	rng := rand.New(rand.NewSource(seed))
	return func(index int, cfg trial.Config, stimulus trial.Stimulus) *ScriptedResponse {
		if len(cfg.Choices) != 2 {
			return nil
		}
		token := cfg.Choices[0]
		if stimulus.RightMagnitude > stimulus.LeftMagnitude {
			token = cfg.Choices[1]
		}
		return &ScriptedResponse{Token: token, LatencyMs: 300 + rng.Float64()*400}
	}
}

// Present runs one trial to completion under the virtual clock.
func (p *SimPresenter) Present(ctx context.Context, cfg trial.Config) (trial.Result, error) {
	if err := ctx.Err(); err != nil {
		return trial.Result{}, err
	}
	host := &simHost{rng: p.rng}
	session, err := trial.Start(cfg, host)
	if err != nil {
		return trial.Result{}, err
	}
	session.Await()

	response := p.respond(p.index, cfg, session.Stimulus())
	p.index++

	if response != nil {
		withinDuration := cfg.TrialDurationMs == nil || response.LatencyMs <= float64(*cfg.TrialDurationMs)
		if withinDuration {
			host.press(response.Token, response.LatencyMs)
		}
	}
	if !session.Done() {
		host.fireTimer()
	}
	if host.result == nil {
		return trial.Result{}, fmt.Errorf("simulated trial never resolved")
	}
	return *host.result, nil
}

// simHost implements trial.Host against the simulator's synthetic event
// delivery. Listener and timer callbacks are invoked directly by Present.
type simHost struct {
	rng      *rand.Rand
	listener *simListener
	timer    *simTimer
	result   *trial.Result
}

type simListener struct {
	tokens    []string
	onCapture trial.CaptureFunc
	canceled  bool
}

type simTimer struct {
	onFire   func()
	canceled bool
}

func (h *simHost) RandomInt(min, max int) int {
	if min == max {
		return min
	}
	return min + h.rng.Intn(max-min+1)
}

func (h *simHost) RandomFloat() float64 {
	return h.rng.Float64()
}

func (h *simHost) RegisterKeyResponse(validTokens []string, onCapture trial.CaptureFunc) trial.CancelFunc {
	listener := &simListener{tokens: validTokens, onCapture: onCapture}
	h.listener = listener
	return func() { listener.canceled = true }
}

func (h *simHost) ScheduleTimeout(ms int, onFire func()) trial.CancelFunc {
	timer := &simTimer{onFire: onFire}
	h.timer = timer
	return func() { timer.canceled = true }
}

func (h *simHost) ReportTrialComplete(result trial.Result) {
	h.result = &result
}

func (h *simHost) press(token string, latencyMs float64) {
	if h.listener == nil || h.listener.canceled {
		return
	}
	for _, valid := range h.listener.tokens {
		if token == valid {
			h.listener.onCapture(token, latencyMs)
			return
		}
	}
}

func (h *simHost) fireTimer() {
	if h.timer == nil || h.timer.canceled {
		return
	}
	h.timer.onFire()
}
