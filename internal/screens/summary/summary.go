package summary

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

var playAgainKey = key.NewBinding(
	key.WithKeys("enter", "esc"),
	key.WithHelp("Enter", "Play Again"),
)

// SummaryScreen is the game-over screen.
type SummaryScreen struct {
	machine *session.Machine
	summary *session.SessionSummary
	logger  *log.Logger
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a SummaryScreen. Play Again restarts machine and returns to
// the category menu.
func New(machine *session.Machine, summary *session.SessionSummary, logger *log.Logger) *SummaryScreen {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &SummaryScreen{machine: machine, summary: summary, logger: logger}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Over"
}

func (s *SummaryScreen) Status() string {
	if s.summary == nil {
		return ""
	}
	return fmt.Sprintf("★ %d/%d", s.summary.Score, s.summary.Total)
}

func (s *SummaryScreen) HandlesEscape() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return components.Hints(playAgainKey, components.KeyQuit)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, playAgainKey) {
		if s.summary != nil {
			s.logger.Printf("restart: id=%s", s.summary.SessionID)
		}
		if s.machine != nil {
			s.machine.Restart()
		}
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	// The card centers each line.
	text := lipgloss.NewStyle()
	sections := []string{
		text.Foreground(theme.ArcadeYellow).Bold(true).Render("Game Over!"),
		text.Foreground(theme.Text).
			Render(fmt.Sprintf("You scored %d out of %d questions correctly.", sum.Score, sum.Total)),
		text.Foreground(verdictColor(sum.Verdict)).Bold(true).Render(sum.Verdict),
		text.Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s · %s", sum.Selection.Label(), formatDuration(sum))),
		components.ArcadeButton("Play Again", true),
	}

	card := components.ArcadeCard(strings.Join(sections, "\n\n"), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func formatDuration(sum *session.SessionSummary) string {
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// verdictColor returns the theme color for a verdict.
func verdictColor(verdict string) color.Color {
	switch verdict {
	case session.VerdictMaster:
		return theme.Success
	case session.VerdictGood:
		return theme.ArcadeCyan
	default:
		return theme.Error
	}
}
