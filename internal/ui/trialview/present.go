package trialview

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"twobar/internal/trial"
)

// ErrAborted reports that the participant quit the session mid-trial.
var ErrAborted = errors.New("session aborted by participant")

// Presenter runs trials interactively in the terminal.
type Presenter struct {
	opts   Options
	trials int64
}

// NewPresenter builds an interactive presenter.
func NewPresenter(opts Options) *Presenter {
	return &Presenter{opts: opts}
}

// Present shows one trial full screen and blocks until it resolves.
func (p *Presenter) Present(ctx context.Context, cfg trial.Config) (trial.Result, error) {
	opts := p.opts
	if opts.Seed != 0 {
		// A fixed seed still has to vary between trials or every trial
		// would sample the same jitter.
		opts.Seed += p.trials
	}
	p.trials++
	model, err := NewModel(cfg, opts)
	if err != nil {
		return trial.Result{}, err
	}
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return trial.Result{}, ctx.Err()
		}
		return trial.Result{}, err
	}
	done, ok := final.(Model)
	if !ok {
		return trial.Result{}, fmt.Errorf("unexpected final model %T", final)
	}
	if done.Aborted() {
		return trial.Result{}, ErrAborted
	}
	result := done.Result()
	if result == nil {
		return trial.Result{}, errors.New("trial ended without a result")
	}
	return *result, nil
}
