package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"twobar/internal/config"
	"twobar/internal/runner"
)

func runSimulate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
		seed := fs.Int64("seed", 1, "Simulation seed")
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

		presenter := runner.NewSimPresenter(*seed, nil)
		results, paths, err := runner.RunAndWrite(context.Background(), file, runner.RunParams{
			Source:    *sessionPath,
			OutputDir: *outputDir,
			Presenter: presenter,
			Observer:  progressObserver(stdout, false),
		})
		if err != nil {
			fmt.Fprintf(stderr, "Simulation failed: %v\n", err)
			return ExitError
		}

		return finishSession(results, paths, resolveDBPath(*dbPath, file.Output.DB), stdout, stderr)
	}
}
