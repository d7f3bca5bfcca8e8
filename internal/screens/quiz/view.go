package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/theme"
)

func scoreStatus(score, total int) string {
	return fmt.Sprintf("★ %d/%d", score, total)
}

func (q *QuizScreen) View(width, height int) string {
	st := q.machine.State()
	if st.Question == nil {
		return renderWaiting(width)
	}
	if q.confirmQuit {
		return renderQuitConfirm(width, st)
	}
	return q.renderQuestionView(width, st)
}

// renderQuestionView renders the active question display.
func (q *QuizScreen) renderQuestionView(width int, st session.State) string {
	cw := min(width-4, 72)
	var b strings.Builder

	b.WriteString(theme.Subtitle.Width(width).
		Render(fmt.Sprintf("Test your knowledge in %s!", st.Selection)))
	b.WriteString("\n\n")

	// Info line: position on the left, countdown on the right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Question %d of %d (%s):", st.Index+1, st.Total, st.Question.Category))
	bar := components.NewCountdownBar(st.TimeLeft, q.machine.Config().QuestionSeconds, 20).View()

	info := infoLeft
	if gap := cw - lipgloss.Width(infoLeft) - lipgloss.Width(bar); gap > 0 {
		info += strings.Repeat(" ", gap) + bar
	} else {
		info += "\n" + bar
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, info))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(cw, 0)))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(st.Question.Text))
	b.WriteString("\n\n")

	optionsBlock := lipgloss.NewStyle().Width(min(cw, 48)).Render(q.options.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, optionsBlock))
	b.WriteString("\n")

	b.WriteString(renderFeedbackLine(width, st))
	return b.String()
}

// renderFeedbackLine shows the outcome while locked, or a prompt while the
// player is still choosing.
func renderFeedbackLine(width int, st session.State) string {
	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if st.Feedback != "" {
		if strings.HasPrefix(st.Feedback, session.FeedbackCorrect) {
			return style.Inherit(theme.Correct).Render(st.Feedback)
		}
		return style.Inherit(theme.Incorrect).Render(st.Feedback)
	}
	if st.HasSelection() {
		return style.Foreground(theme.Text).Render("Press Enter to submit your answer")
	}
	return style.Inherit(theme.Hint).Render("Choose an answer")
}

// renderQuitConfirm renders the abandon confirmation dialog. The
// countdown keeps running underneath it.
func renderQuitConfirm(width int, st session.State) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(theme.Title.Width(width).Render("Abandon this game?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("You are on question %d of %d with %ds left. Your score will be lost.",
			st.Index+1, st.Total, st.TimeLeft)))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Render("[Y] Yes, back to categories"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep playing"))
	return b.String()
}

func renderWaiting(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Shuffling questions...")
}
