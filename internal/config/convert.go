package config

import (
	"twobar/internal/spec"
	"twobar/internal/trial"
)

// ToTrialConfig maps a normalized trial spec onto the engine's configuration.
func ToTrialConfig(tr spec.TrialSpec) trial.Config {
	cfg := trial.Config{
		Prompt:            tr.Prompt,
		Kind:              trial.StimulusKind(tr.Kind),
		LeftRange:         trial.Range{Min: tr.Left.Min, Max: tr.Left.Max},
		RightRange:        trial.Range{Min: tr.Right.Min, Max: tr.Right.Max},
		JitterBound:       tr.JitterBound,
		Choices:           tr.Choices,
		TrialDurationMs:   tr.TrialDurationMs,
		ResponseEndsTrial: tr.ResponseEndsTrial == nil || *tr.ResponseEndsTrial,
		LeftStyle:         trial.SideStyle{Color: tr.Left.Color, Image: tr.Left.Image},
		RightStyle:        trial.SideStyle{Color: tr.Right.Color, Image: tr.Right.Image},
	}
	if tr.CorrectSide != "" {
		side := trial.Side(tr.CorrectSide)
		cfg.CorrectSide = &side
	}
	return cfg
}
