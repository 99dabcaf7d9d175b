package runner

import (
	"context"
	"fmt"
	"time"

	"twobar/internal/config"
	"twobar/internal/spec"
	"twobar/internal/trial"
)

// Presenter runs a single prepared trial to completion and returns its
// result: rendering the stimulus, collecting the response, and reporting.
// The interactive TUI and the scripted simulator both satisfy this.
type Presenter interface {
	Present(ctx context.Context, cfg trial.Config) (trial.Result, error)
}

// RunDependencies allows injecting the session ID generator and clock.
type RunDependencies struct {
	SessionID func() (string, error)
	Now       func() time.Time
}

// RunParams configures a session run.
type RunParams struct {
	Source    string
	OutputDir string
	Presenter Presenter
	Observer  Observer
	Deps      RunDependencies
}

// Run executes every trial in the session file in order and aggregates the
// results. Trials run strictly sequentially; no counterbalancing or
// cross-trial randomization policy is applied here.
func Run(ctx context.Context, file spec.File, params RunParams) (Results, error) {
	if params.Presenter == nil {
		return Results{}, fmt.Errorf("presenter is nil")
	}
	sessionID, err := ensureSessionID(params.Deps.SessionID)
	if err != nil {
		return Results{}, err
	}
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}

	results := Results{
		SessionID: sessionID,
		Source:    params.Source,
		StartedAt: now().UTC(),
	}
	total := len(file.Trials)
	for i, trialSpec := range file.Trials {
		if err := ctx.Err(); err != nil {
			return Results{}, fmt.Errorf("session interrupted: %w", err)
		}
		cfg := config.ToTrialConfig(trialSpec)
		notify(params.Observer, TrialEvent{Type: TrialShown, TrialID: trialSpec.ID, Index: i, Total: total})
		result, err := params.Presenter.Present(ctx, cfg)
		if err != nil {
			return Results{}, fmt.Errorf("trial %s: %w", trialSpec.ID, err)
		}
		record := TrialRecord{TrialID: trialSpec.ID, Index: i, Result: result}
		results.Trials = append(results.Trials, record)
		notify(params.Observer, TrialEvent{Type: TrialResolved, TrialID: trialSpec.ID, Index: i, Total: total, Result: &record.Result})
	}
	results.FinishedAt = now().UTC()
	results.Summary = summarize(results.Trials)
	return results, nil
}

// RunAndWrite runs the session and writes results.json under the output dir.
func RunAndWrite(ctx context.Context, file spec.File, params RunParams) (Results, OutputPaths, error) {
	results, err := Run(ctx, file, params)
	if err != nil {
		return Results{}, OutputPaths{}, err
	}
	outputDir := params.OutputDir
	if outputDir == "" {
		outputDir = file.Output.Dir
	}
	if outputDir == "" {
		outputDir = "results"
	}
	paths, err := NewOutputPaths(outputDir, results.SessionID)
	if err != nil {
		return Results{}, OutputPaths{}, err
	}
	if err := WriteResults(paths, results); err != nil {
		return Results{}, OutputPaths{}, err
	}
	return results, paths, nil
}

// ensureSessionID uses the provided generator or falls back to NewSessionID.
func ensureSessionID(generator func() (string, error)) (string, error) {
	if generator != nil {
		return generator()
	}
	return NewSessionID()
}
