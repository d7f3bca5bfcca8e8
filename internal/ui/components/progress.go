package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

// lowFraction is the remaining share below which the bar turns red.
const lowFraction = 0.4

// CountdownBar displays the seconds left on a question as a draining bar.
type CountdownBar struct {
	Remaining int
	Total     int
	Width     int
}

// NewCountdownBar creates a countdown bar.
func NewCountdownBar(remaining, total, width int) CountdownBar {
	return CountdownBar{
		Remaining: remaining,
		Total:     total,
		Width:     width,
	}
}

// Fraction returns the share of time remaining in [0, 1].
func (c CountdownBar) Fraction() float64 {
	if c.Total <= 0 {
		return 0
	}
	f := float64(c.Remaining) / float64(c.Total)
	return min(max(f, 0), 1)
}

// View renders the bar followed by the seconds left, e.g. "████░░  3s".
func (c CountdownBar) View() string {
	label := fmt.Sprintf("  %ds", max(c.Remaining, 0))

	barWidth := max(c.Width-lipgloss.Width(label), 4)

	frac := c.Fraction()
	filled := min(max(int(float64(barWidth)*frac), 0), barWidth)
	empty := barWidth - filled

	fill := theme.ProgressFilled
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if frac < lowFraction {
		fill = theme.ProgressLow
		labelStyle = labelStyle.Foreground(theme.Error)
	}

	return fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		labelStyle.Render(label)
}
