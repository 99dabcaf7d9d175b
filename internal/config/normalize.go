package config

import (
	"fmt"
	"strings"

	"twobar/internal/spec"
	"twobar/internal/trial"
)

// Normalize fills defaults and trims whitespace in place. Trials without an
// id are numbered by position; an omitted kind defaults to the plain bar and
// an omitted response_ends_trial defaults to true.
func Normalize(file *spec.File) {
	file.Output.Dir = strings.TrimSpace(file.Output.Dir)
	file.Output.DB = strings.TrimSpace(file.Output.DB)
	for i := range file.Trials {
		tr := &file.Trials[i]
		tr.ID = strings.TrimSpace(tr.ID)
		if tr.ID == "" {
			tr.ID = fmt.Sprintf("trial-%03d", i+1)
		}
		tr.Prompt = strings.TrimSpace(tr.Prompt)
		tr.Kind = strings.ToLower(strings.TrimSpace(tr.Kind))
		if tr.Kind == "" {
			tr.Kind = string(trial.StimulusBar)
		}
		tr.CorrectSide = strings.ToLower(strings.TrimSpace(tr.CorrectSide))
		for j := range tr.Choices {
			tr.Choices[j] = strings.TrimSpace(tr.Choices[j])
		}
		tr.Left.Color = strings.TrimSpace(tr.Left.Color)
		tr.Left.Image = strings.TrimSpace(tr.Left.Image)
		tr.Right.Color = strings.TrimSpace(tr.Right.Color)
		tr.Right.Image = strings.TrimSpace(tr.Right.Image)
	}
}
