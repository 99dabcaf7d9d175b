package trial

import "math"

// RandSource provides the uniform sampling primitives the generator needs.
// Host satisfies this interface.
type RandSource interface {
	RandomInt(min, max int) int
	RandomFloat() float64
}

// Generate samples both stimulus magnitudes for a trial.
//
// Heights are drawn uniformly from the inclusive integer ranges. Jitter is
// drawn uniformly from the real interval [-JitterBound, +JitterBound] and
// rounded half away from zero, so a jitter of exactly 2.5 becomes 3 and -2.5
// becomes -3. The final magnitude is height plus jitter, computed once here
// and never recomputed.
func Generate(cfg Config, rand RandSource) Stimulus {
	leftHeight := rand.RandomInt(cfg.LeftRange.Min, cfg.LeftRange.Max)
	rightHeight := rand.RandomInt(cfg.RightRange.Min, cfg.RightRange.Max)
	leftJitter := sampleJitter(cfg.JitterBound, rand)
	rightJitter := sampleJitter(cfg.JitterBound, rand)
	return Stimulus{
		LeftMagnitude:  leftHeight + leftJitter,
		RightMagnitude: rightHeight + rightJitter,
		LeftJitter:     leftJitter,
		RightJitter:    rightJitter,
	}
}

// sampleJitter draws an integer jitter from [-bound, +bound].
func sampleJitter(bound int, rand RandSource) int {
	if bound == 0 {
		return 0
	}
	raw := rand.RandomFloat()*2*float64(bound) - float64(bound)
	return int(math.Round(raw))
}
