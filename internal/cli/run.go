package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"twobar/internal/config"
	"twobar/internal/runner"
	"twobar/internal/trial"
	"twobar/internal/ui/trialview"
)

// newInteractivePresenter is a test seam for the terminal presenter.
var newInteractivePresenter = func(opts trialview.Options) runner.Presenter {
	return trialview.NewPresenter(opts)
}

func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		sessionPath := fs.String("session", "", "Path to the session file")
		outputDir := fs.String("output-dir", "", "Override output directory")
		dbPath := fs.String("db", "", "Override DuckDB path")
		seed := fs.Int64("seed", 0, "Stimulus seed (0 means time-based)")
		uiMode := fs.String("ui", "auto", "Progress output mode: auto|live|plain")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *sessionPath == "" {
			fmt.Fprintln(stderr, "Missing --session")
			return ExitUsage
		}

		file, err := config.Load(*sessionPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load session file: %v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		presenter := newInteractivePresenter(trialview.Options{Seed: *seed, NoColor: !decision.styled})
		results, paths, err := runner.RunAndWrite(context.Background(), file, runner.RunParams{
			Source:    *sessionPath,
			OutputDir: *outputDir,
			Presenter: presenter,
			Observer:  progressObserver(stdout, decision.styled),
		})
		if err != nil {
			fmt.Fprintf(stderr, "Session failed: %v\n", err)
			return ExitError
		}

		return finishSession(results, paths, resolveDBPath(*dbPath, file.Output.DB), stdout, stderr)
	}
}

// progressObserver prints one line per trial lifecycle event.
func progressObserver(stdout io.Writer, styled bool) runner.Observer {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	return func(event runner.TrialEvent) {
		var line string
		switch event.Type {
		case runner.TrialShown:
			line = fmt.Sprintf("[%d/%d] trial %s", event.Index+1, event.Total, event.TrialID)
		case runner.TrialResolved:
			line = fmt.Sprintf("[%d/%d] trial %s %s", event.Index+1, event.Total, event.TrialID, describeResult(event.Result))
		default:
			return
		}
		if styled {
			line = dim.Render(line)
		}
		fmt.Fprintln(stdout, line)
	}
}

// describeResult summarizes a finalized trial for progress output.
func describeResult(result *trial.Result) string {
	if result == nil || result.Token == nil {
		return "no response"
	}
	line := fmt.Sprintf("response=%s", *result.Token)
	if result.ReactionTimeMs != nil {
		line += fmt.Sprintf(" rt=%.0fms", *result.ReactionTimeMs)
	}
	if result.Accuracy != nil {
		line += fmt.Sprintf(" accuracy=%d", *result.Accuracy)
	}
	return line
}

// resolveDBPath picks the flag override or the session file setting.
func resolveDBPath(flagPath, filePath string) string {
	if flagPath != "" {
		return flagPath
	}
	return filePath
}
