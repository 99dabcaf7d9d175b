// Command generate_fixture builds a sample sessions database by running
// scripted sessions and ingesting their results. Useful for trying the
// serve command against realistic data.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"twobar/internal/duckdb"
	"twobar/internal/runner"
	"twobar/internal/spec"
)

func main() {
	outPath := flag.String("out", "", "output duckdb file path")
	sessions := flag.Int("sessions", 3, "number of simulated sessions")
	seed := flag.Int64("seed", 1, "simulation seed")
	flag.Parse()
	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --out <duckdb file> [--sessions <n>] [--seed <n>]")
		os.Exit(2)
	}
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir output dir: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := generateFixture(ctx, *outPath, *sessions, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
}

func generateFixture(ctx context.Context, path string, sessions int, seed int64) error {
	db, err := duckdb.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := duckdb.EnsureSchema(db); err != nil {
		return err
	}
	file := fixtureSession()
	for i := 0; i < sessions; i++ {
		presenter := runner.NewSimPresenter(seed+int64(i), nil)
		results, err := runner.Run(ctx, file, runner.RunParams{
			Source:    "fixture",
			Presenter: presenter,
		})
		if err != nil {
			return fmt.Errorf("session %d: %w", i, err)
		}
		if err := duckdb.IngestResults(ctx, db, results); err != nil {
			return fmt.Errorf("ingest session %d: %w", i, err)
		}
	}
	return nil
}

// fixtureSession builds a six trial session with varied difficulty.
func fixtureSession() spec.File {
	duration := 2000
	trials := make([]spec.TrialSpec, 0, 6)
	gaps := []int{60, 40, 25, 15, 8, 3}
	for i, gap := range gaps {
		trials = append(trials, spec.TrialSpec{
			ID:              fmt.Sprintf("trial-%03d", i+1),
			Prompt:          "Which bar is taller?",
			Kind:            "bar",
			Left:            spec.SideSpec{Min: 50 + gap, Max: 50 + gap, Color: "blue"},
			Right:           spec.SideSpec{Min: 50, Max: 50, Color: "orange"},
			JitterBound:     2,
			Choices:         []string{"f", "j"},
			CorrectSide:     "left",
			TrialDurationMs: &duration,
		})
	}
	return spec.File{Version: 1, Trials: trials}
}
