package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/session"
)

// countdownTickMsg is the one-second countdown firing for Handle.
type countdownTickMsg struct {
	Handle session.Handle
}

// feedbackDoneMsg is sent when the feedback window armed as Handle ends.
type feedbackDoneMsg struct {
	Handle session.Handle
}

// scheduleCmd turns a machine Schedule into a delayed message carrying its
// handle. The zero Schedule yields no command.
func scheduleCmd(s session.Schedule) tea.Cmd {
	if s.IsZero() {
		return nil
	}
	h := s.Handle
	switch s.Kind {
	case session.TimerCountdown:
		return tea.Tick(s.Delay, func(time.Time) tea.Msg {
			return countdownTickMsg{Handle: h}
		})
	case session.TimerFeedback:
		return tea.Tick(s.Delay, func(time.Time) tea.Msg {
			return feedbackDoneMsg{Handle: h}
		})
	}
	return nil
}
