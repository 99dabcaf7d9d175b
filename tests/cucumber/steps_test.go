package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"twobar/internal/cli"

	"github.com/cucumber/godog"
)

type featureState struct {
	workDir    string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a session file with two bar trials$`, state.aSessionFileWithTwoBarTrials)
	ctx.Step(`^a session file with a duplicate trial id$`, state.aSessionFileWithDuplicateID)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error message points to the duplicate id$`, state.theErrorPointsToDuplicateID)
	ctx.Step(`^the session directory contains "([^"]+)"$`, state.theSessionDirectoryContains)
}

func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0

	dir, err := os.MkdirTemp("", "twobar-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.workDir = dir
	s.previousWD = wd
	return nil
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

func (s *featureState) aSessionFileWithTwoBarTrials() error {
	return s.writeSessionFile(`version: 1
trials:
  - id: t1
    prompt: "Which bar is taller?"
    left: {min: 100, max: 100, color: blue}
    right: {min: 40, max: 40, color: red}
    choices: [f, j]
    correct_side: left
    trial_duration_ms: 2000
  - id: t2
    prompt: "Which bar is taller?"
    left: {min: 30, max: 30, color: blue}
    right: {min: 90, max: 90, color: red}
    choices: [f, j]
    correct_side: right
    trial_duration_ms: 2000
`)
}

func (s *featureState) aSessionFileWithDuplicateID() error {
	return s.writeSessionFile(`version: 1
trials:
  - id: t1
    prompt: "Which bar is taller?"
    left: {min: 100, max: 100}
    right: {min: 40, max: 40}
    choices: [f, j]
  - id: t1
    prompt: "Which bar is taller?"
    left: {min: 30, max: 30}
    right: {min: 90, max: 90}
    choices: [f, j]
`)
}

func (s *featureState) writeSessionFile(contents string) error {
	path := filepath.Join(s.workDir, "session.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "twobar" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theOutputContains(expected string) error {
	if !strings.Contains(s.stdout.String(), expected) {
		return fmt.Errorf("expected output to contain %q, got %q", expected, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorPointsToDuplicateID() error {
	errOutput := s.stderr.String()
	if !strings.Contains(errOutput, "trials[1].id") {
		return fmt.Errorf("expected error to mention trials[1].id, got %q", errOutput)
	}
	return nil
}

func (s *featureState) theSessionDirectoryContains(name string) error {
	outputDir := filepath.Join(s.workDir, "out")
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return fmt.Errorf("read output dir: %w", err)
	}
	if len(entries) != 1 {
		return fmt.Errorf("expected one session directory, found %d", len(entries))
	}
	path := filepath.Join(outputDir, entries[0].Name(), name)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("expected %s in session directory: %w", name, err)
	}
	return nil
}
