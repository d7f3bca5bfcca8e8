package session

import (
	"time"

	"github.com/abhisek/trivia/internal/questionbank"
)

// Phase represents where the game currently is.
type Phase int

const (
	PhaseCategorySelect Phase = iota // No game; waiting for a category
	PhaseActive                      // Countdown running on the current question
	PhaseLocked                      // Answer locked, feedback showing
	PhaseEnded                       // Last question done, showing the score
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseLocked:
		return "locked"
	case PhaseEnded:
		return "ended"
	default:
		return "category-select"
	}
}

// Handle identifies one scheduled timer firing. A firing is honoured only
// while its handle is still the live one stored in the session; the zero
// Handle is never live.
type Handle uint64

// TimerKind distinguishes the two scheduled operations.
type TimerKind int

const (
	TimerCountdown TimerKind = iota + 1 // One-second countdown tick
	TimerFeedback                       // End of the feedback window
)

// Schedule asks the caller to deliver a firing for Handle after Delay.
// The zero Schedule means nothing needs to be scheduled.
type Schedule struct {
	Kind   TimerKind
	Handle Handle
	Delay  time.Duration
}

// IsZero reports whether s schedules nothing.
func (s Schedule) IsZero() bool {
	return s.Handle == 0
}

// Feedback texts.
const (
	FeedbackCorrect   = "Correct!"
	feedbackIncorrect = "Incorrect. The correct answer was: "
	feedbackTimeout   = "Time's up! The correct answer was: "
)

// SessionState tracks one play-through.
type SessionState struct {
	// ID is the UUID for this play-through.
	ID string

	// Selection is the category the player chose.
	Selection Selection

	// Playlist is the shuffled, padded question list.
	Playlist []questionbank.Question

	// Index is the position of the current question in Playlist.
	Index int

	// Score is the number of correct answers so far.
	Score int

	// TimeLeft is the countdown for the current question, in seconds.
	TimeLeft int

	// SelectedOption is the highlighted option; empty when none.
	SelectedOption string

	// AnswerSubmitted is true while the current answer is locked.
	AnswerSubmitted bool

	// LastCorrect records whether the locked answer was accepted.
	LastCorrect bool

	// TimedOut is true when the locked answer came from the countdown.
	TimedOut bool

	// Feedback is the text shown during the feedback window.
	Feedback string

	// Ended is true once the last question's feedback window has elapsed.
	Ended bool

	// StartTime is when the play-through began.
	StartTime time.Time

	// countdown and feedback are the live timer handles (0 = none).
	countdown Handle
	feedback  Handle
}

// CurrentQuestion returns the question being played, or nil when there
// is none.
func (s *SessionState) CurrentQuestion() *questionbank.Question {
	if s == nil || s.Index < 0 || s.Index >= len(s.Playlist) {
		return nil
	}
	return &s.Playlist[s.Index]
}

// Total returns the playlist length.
func (s *SessionState) Total() int {
	if s == nil {
		return 0
	}
	return len(s.Playlist)
}

// State is the read-only view the presentation layer renders from.
type State struct {
	Phase           Phase
	Selection       Selection
	SessionID       string
	Question        *questionbank.Question
	Index           int
	Total           int
	TimeLeft        int
	SelectedOption  string
	AnswerSubmitted bool
	LastCorrect     bool
	TimedOut        bool
	Feedback        string
	Score           int
	Ended           bool
}

// HasSelection reports whether an option is highlighted.
func (s State) HasSelection() bool {
	return s.SelectedOption != ""
}
