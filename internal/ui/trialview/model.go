package trialview

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"twobar/internal/trial"
)

// Model presents one trial in the terminal: the prompt, the two stimuli,
// and a countdown bar while a duration is running.
type Model struct {
	cfg          trial.Config
	host         *teaHost
	session      *trial.Session
	countdown    progress.Model
	tickInterval time.Duration
	now          time.Time
	width        int
	height       int
	noColor      bool
	aborted      bool
}

// Options configures a trial view.
type Options struct {
	Seed         int64
	NoColor      bool
	TickInterval time.Duration
}

// NewModel validates the trial, samples its stimulus, and builds the view.
// The trial does not start listening until Init runs.
func NewModel(cfg trial.Config, opts Options) (Model, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	host := newTeaHost(seed)
	session, err := trial.Start(cfg, host)
	if err != nil {
		return Model{}, err
	}
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = 50 * time.Millisecond
	}
	return Model{
		cfg:          cfg,
		host:         host,
		session:      session,
		countdown:    progress.New(progress.WithDefaultGradient()),
		tickInterval: tickInterval,
		noColor:      opts.NoColor,
	}, nil
}

// Init marks stimulus onset and begins awaiting the response and timer.
func (m Model) Init() tea.Cmd {
	m.host.onset = time.Now()
	m.session.Await()
	return tick(m.tickInterval)
}

// Update feeds key presses and clock ticks to the trial host.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.countdown.Width = min(typed.Width-4, 60)
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
		m.host.deliverKey(typed.String(), time.Now())
		if m.session.Done() {
			return m, tea.Quit
		}
		return m, nil
	case tickMsg:
		m.now = time.Time(typed)
		m.host.checkTimer(m.now)
		if m.session.Done() {
			return m, tea.Quit
		}
		return m, tick(m.tickInterval)
	}
	return m, nil
}

// View renders the trial screen.
func (m Model) View() string {
	if m.session.Done() || m.aborted {
		return ""
	}
	return renderTrial(m)
}

// Result returns the finalized result, or nil while the trial is running.
func (m Model) Result() *trial.Result {
	return m.host.result
}

// Aborted reports whether the participant quit mid-trial.
func (m Model) Aborted() bool {
	return m.aborted
}

// tickMsg carries a clock tick for timer checks and countdown redraws.
type tickMsg time.Time

// tick emits a periodic tick message.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}
