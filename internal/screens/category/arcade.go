package category

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/theme"
)

const arcadeTitleFull = `╔╦╗╦═╗╦╦  ╦╦╔═╗
 ║ ╠╦╝║╚╗╔╝║╠═╣
 ╩ ╩╚═╩ ╚╝ ╩╩ ╩`

const arcadeTitleCompact = "T · R · I · V · I · A"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderGreeting renders the welcome line and instructions.
func renderGreeting(cw int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Welcome to Trivia!")
	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Choose a category to start your game.")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(heading + "\n" + sub)
}

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.ArcadeButton(label, i == selected)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
