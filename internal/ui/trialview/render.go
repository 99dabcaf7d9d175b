package trialview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"twobar/internal/trial"
)

const (
	maxBarRows = 12
	barWidth   = 6
	sideGap    = 8
)

// renderTrial composes the full trial screen.
func renderTrial(m Model) string {
	sections := []string{
		renderPrompt(m.cfg, m.noColor),
		"",
		renderStimuli(m.cfg, m.session.Stimulus(), m.noColor),
		"",
		renderHints(m.cfg, m.noColor),
	}
	if m.cfg.TrialDurationMs != nil {
		sections = append(sections, "", renderCountdown(m))
	}
	return strings.Join(sections, "\n") + "\n"
}

// renderPrompt renders the instruction line.
func renderPrompt(cfg trial.Config, noColor bool) string {
	return stylize(cfg.Prompt, noColor, lipgloss.Color("33"))
}

// renderStimuli renders the left and right stimuli side by side.
func renderStimuli(cfg trial.Config, stim trial.Stimulus, noColor bool) string {
	var left, right string
	switch cfg.Kind {
	case trial.StimulusImage:
		left = renderImagePanel("L", cfg.LeftStyle, noColor)
		right = renderImagePanel("R", cfg.RightStyle, noColor)
	default:
		taller := stim.LeftMagnitude
		if stim.RightMagnitude > taller {
			taller = stim.RightMagnitude
		}
		left = renderBar(stim.LeftMagnitude, taller, cfg.LeftStyle.Color, noColor)
		right = renderBar(stim.RightMagnitude, taller, cfg.RightStyle.Color, noColor)
	}
	gap := strings.Repeat(" ", sideGap)
	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, gap, right)
}

// renderBar renders one vertical bar, scaled against the taller of the pair.
func renderBar(magnitude, taller int, color string, noColor bool) string {
	rows := 1
	if taller > 0 && magnitude > 0 {
		rows = (magnitude*maxBarRows + taller - 1) / taller
	}
	if rows > maxBarRows {
		rows = maxBarRows
	}
	segment := strings.Repeat("█", barWidth)
	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		lines = append(lines, segment)
	}
	bar := strings.Join(lines, "\n")
	if !noColor && color != "" {
		bar = lipgloss.NewStyle().Foreground(barColor(color)).Render(bar)
	}
	return bar
}

// renderImagePanel renders a bordered placeholder naming the image asset.
// Terminal cells cannot show the bitmap itself, so the panel carries the
// reference for the participant-facing host to substitute.
func renderImagePanel(label string, style trial.SideStyle, noColor bool) string {
	body := label
	if style.Image != "" {
		body = label + "\n" + style.Image
	}
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 3).
		Align(lipgloss.Center)
	if !noColor && style.Color != "" {
		panel = panel.BorderForeground(barColor(style.Color))
	}
	return panel.Render(body)
}

// renderHints renders the accepted keys line.
func renderHints(cfg trial.Config, noColor bool) string {
	if len(cfg.Choices) != 2 {
		return stylize("passive viewing, no response required", noColor, lipgloss.Color("242"))
	}
	line := fmt.Sprintf("left: %q   right: %q   (esc to quit)", cfg.Choices[0], cfg.Choices[1])
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderCountdown renders the remaining-time bar.
func renderCountdown(m Model) string {
	fraction := m.host.remainingFraction(m.now, *m.cfg.TrialDurationMs)
	return m.countdown.ViewAs(fraction)
}

// barColor maps a configured color name to a terminal color.
func barColor(name string) lipgloss.Color {
	switch strings.ToLower(name) {
	case "red":
		return lipgloss.Color("196")
	case "green":
		return lipgloss.Color("46")
	case "blue":
		return lipgloss.Color("39")
	case "yellow":
		return lipgloss.Color("226")
	case "magenta":
		return lipgloss.Color("201")
	case "cyan":
		return lipgloss.Color("51")
	case "white":
		return lipgloss.Color("255")
	case "gray", "grey":
		return lipgloss.Color("245")
	default:
		return lipgloss.Color(name)
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
