package trial

// ChosenSide maps a captured token to its side: the first choice token means
// left, the second means right, anything else (including no capture) means
// no side was chosen.
func ChosenSide(cfg Config, token *string) *Side {
	if token == nil || len(cfg.Choices) != 2 {
		return nil
	}
	switch *token {
	case cfg.Choices[0]:
		return sidePtr(SideLeft)
	case cfg.Choices[1]:
		return sidePtr(SideRight)
	default:
		return nil
	}
}

// Accuracy scores a choice against the configured correct side. It is
// present only when both sides are present; an unscored trial carries nil,
// not zero.
func Accuracy(correct, chosen *Side) *int {
	if correct == nil || chosen == nil {
		return nil
	}
	score := 0
	if *correct == *chosen {
		score = 1
	}
	return &score
}

// buildResult derives the terminal record from validated inputs. By the time
// it runs only deterministic field derivation remains, so it cannot fail.
func buildResult(cfg Config, stimulus Stimulus, response Response) Result {
	chosen := ChosenSide(cfg, response.Token)
	return Result{
		Prompt:         cfg.Prompt,
		Kind:           cfg.Kind,
		Token:          response.Token,
		ReactionTimeMs: response.ReactionTimeMs,
		ChosenSide:     chosen,
		CorrectSide:    cfg.CorrectSide,
		Accuracy:       Accuracy(cfg.CorrectSide, chosen),
		LeftMagnitude:  stimulus.LeftMagnitude,
		RightMagnitude: stimulus.RightMagnitude,
		LeftJitter:     stimulus.LeftJitter,
		RightJitter:    stimulus.RightJitter,
		LeftStyle:      cfg.LeftStyle,
		RightStyle:     cfg.RightStyle,
	}
}

func sidePtr(side Side) *Side {
	return &side
}
