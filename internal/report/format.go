package report

import (
	"fmt"

	"twobar/internal/trial"
)

// formatAccuracy returns a percentage string for report output.
func formatAccuracy(rate *float64) string {
	if rate == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f%%", *rate*100)
}

// formatRT renders a reaction time in milliseconds, or a dash when absent.
func formatRT(rt *float64) string {
	if rt == nil {
		return "—"
	}
	return fmt.Sprintf("%.0f ms", *rt)
}

// formatSide renders a side, or a dash when absent.
func formatSide(side *trial.Side) string {
	if side == nil {
		return "—"
	}
	return string(*side)
}

// formatToken renders a captured token, or a dash when absent.
func formatToken(token *string) string {
	if token == nil {
		return "—"
	}
	return *token
}

// formatScore renders a trial's accuracy score, or a dash when unscored.
func formatScore(score *int) string {
	if score == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *score)
}
