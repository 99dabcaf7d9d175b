package spec

// File defines the session specification schema loaded from YAML or JSON.
type File struct {
	Version int         `json:"version" yaml:"version"`
	Output  Output      `json:"output" yaml:"output"`
	Trials  []TrialSpec `json:"trials" yaml:"trials"`
}

// Output configures where session results are written.
type Output struct {
	Dir string `json:"dir" yaml:"dir"`
	DB  string `json:"db" yaml:"db"`
}

// TrialSpec describes one trial in the session file. Fields mirror the
// engine's trial.Config with file-friendly optionality: an omitted
// response_ends_trial defaults to true, an empty correct_side disables
// scoring, and empty choices disable response capture.
type TrialSpec struct {
	ID                string   `json:"id" yaml:"id"`
	Prompt            string   `json:"prompt" yaml:"prompt"`
	Kind              string   `json:"kind" yaml:"kind"`
	Left              SideSpec `json:"left" yaml:"left"`
	Right             SideSpec `json:"right" yaml:"right"`
	JitterBound       int      `json:"jitter_bound" yaml:"jitter_bound"`
	Choices           []string `json:"choices" yaml:"choices"`
	CorrectSide       string   `json:"correct_side" yaml:"correct_side"`
	TrialDurationMs   *int     `json:"trial_duration_ms" yaml:"trial_duration_ms"`
	ResponseEndsTrial *bool    `json:"response_ends_trial" yaml:"response_ends_trial"`
}

// SideSpec bounds one side's magnitude and carries its rendering parameters.
type SideSpec struct {
	Min   int    `json:"min" yaml:"min"`
	Max   int    `json:"max" yaml:"max"`
	Color string `json:"color" yaml:"color"`
	Image string `json:"image" yaml:"image"`
}
