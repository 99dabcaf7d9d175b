package trial

// Side identifies one of the two response alternatives.
type Side string

const (
	// SideLeft is the left alternative, mapped from the first choice token.
	SideLeft Side = "left"
	// SideRight is the right alternative, mapped from the second choice token.
	SideRight Side = "right"
)

// StimulusKind selects how a side's stimulus is presented.
type StimulusKind string

const (
	// StimulusBar presents a plain colored bar.
	StimulusBar StimulusKind = "bar"
	// StimulusImage presents a bar overlaid on an image reference.
	StimulusImage StimulusKind = "image"
)

// Range bounds a sampled magnitude, inclusive on both ends.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SideStyle carries the rendering parameters for one side. The engine never
// interprets these; they are passed to the presenter and echoed into the
// result record for provenance.
type SideStyle struct {
	Color string `json:"color,omitempty"`
	Image string `json:"image,omitempty"`
}

// Config is the immutable input for a single trial.
//
// An empty Choices slice disables response capture entirely; otherwise it
// must hold exactly two tokens, the first mapping to the left side and the
// second to the right.
type Config struct {
	Prompt            string       `json:"prompt"`
	Kind              StimulusKind `json:"kind"`
	LeftRange         Range        `json:"left_range"`
	RightRange        Range        `json:"right_range"`
	JitterBound       int          `json:"jitter_bound"`
	Choices           []string     `json:"choices,omitempty"`
	CorrectSide       *Side        `json:"correct_side,omitempty"`
	TrialDurationMs   *int         `json:"trial_duration_ms,omitempty"`
	ResponseEndsTrial bool         `json:"response_ends_trial"`
	LeftStyle         SideStyle    `json:"left_style"`
	RightStyle        SideStyle    `json:"right_style"`
}

// Stimulus holds the magnitudes sampled once at trial start.
type Stimulus struct {
	LeftMagnitude  int `json:"left_magnitude"`
	RightMagnitude int `json:"right_magnitude"`
	LeftJitter     int `json:"left_jitter"`
	RightJitter    int `json:"right_jitter"`
}

// Response records the first captured response, if any. Both fields are nil
// when no qualifying key was pressed before resolution.
type Response struct {
	Token          *string  `json:"token"`
	ReactionTimeMs *float64 `json:"reaction_time_ms"`
}

// Result is the single record emitted when a trial finalizes.
//
// Accuracy is 0 or 1 and present only when both CorrectSide and ChosenSide
// are present; it is never a defaulted false.
type Result struct {
	Prompt         string       `json:"prompt"`
	Kind           StimulusKind `json:"kind"`
	Token          *string      `json:"response"`
	ReactionTimeMs *float64     `json:"rt_ms"`
	ChosenSide     *Side        `json:"chosen_side"`
	CorrectSide    *Side        `json:"correct_side"`
	Accuracy       *int         `json:"accuracy"`
	LeftMagnitude  int          `json:"left_magnitude"`
	RightMagnitude int          `json:"right_magnitude"`
	LeftJitter     int          `json:"left_jitter"`
	RightJitter    int          `json:"right_jitter"`
	LeftStyle      SideStyle    `json:"left_style"`
	RightStyle     SideStyle    `json:"right_style"`
}
