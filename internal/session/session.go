package session

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/trivia/internal/questionbank"
)

// Machine is the quiz state machine. It owns at most one SessionState and
// is driven by player intents and timer firings, all delivered on a
// single goroutine.
//
// Timers are not run by the Machine itself. Operations that arm a timer
// return a Schedule; the caller delivers the firing later through Tick or
// FeedbackElapsed with the Schedule's Handle. Arming a new timer or
// discarding the session invalidates earlier handles, which is how
// cancellation works.
type Machine struct {
	cfg   Config
	bank  *questionbank.Bank
	rng   *rand.Rand
	now   func() time.Time
	newID func() string

	// seq is shared by every session so a handle from a discarded session
	// can never match one issued later.
	seq   Handle
	state *SessionState
}

// NewMachine creates a Machine over bank. A nil rng shuffles with the
// global source.
func NewMachine(bank *questionbank.Bank, cfg Config, rng *rand.Rand) *Machine {
	return &Machine{
		cfg:   cfg,
		bank:  bank,
		rng:   rng,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Config returns the game parameters the machine was built with.
func (m *Machine) Config() Config {
	return m.cfg
}

// Session returns the current play-through, or nil in category select.
func (m *Machine) Session() *SessionState {
	return m.state
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	s := m.state
	switch {
	case s == nil:
		return PhaseCategorySelect
	case s.Ended:
		return PhaseEnded
	case s.AnswerSubmitted:
		return PhaseLocked
	default:
		return PhaseActive
	}
}

// State returns a snapshot of everything the presentation layer renders.
func (m *Machine) State() State {
	st := State{
		Phase:    m.Phase(),
		TimeLeft: m.cfg.QuestionSeconds,
	}
	s := m.state
	if s == nil {
		return st
	}

	st.Selection = s.Selection
	st.SessionID = s.ID
	st.Index = s.Index
	st.Total = s.Total()
	st.TimeLeft = s.TimeLeft
	st.SelectedOption = s.SelectedOption
	st.AnswerSubmitted = s.AnswerSubmitted
	st.LastCorrect = s.LastCorrect
	st.TimedOut = s.TimedOut
	st.Feedback = s.Feedback
	st.Score = s.Score
	st.Ended = s.Ended

	if q := s.CurrentQuestion(); q != nil && !s.Ended {
		cp := *q
		cp.Options = slices.Clone(q.Options)
		st.Question = &cp
	}
	return st
}

// SelectCategory starts a new game for sel, discarding any game in
// progress. It returns the first countdown tick to schedule. An invalid
// selection, or a bank that yields no questions, leaves the machine
// unchanged.
func (m *Machine) SelectCategory(sel Selection) Schedule {
	if !sel.Valid() {
		return Schedule{}
	}
	playlist := BuildPlaylist(sel, m.bank, m.cfg.MinQuestions, m.rng)
	if len(playlist) == 0 {
		return Schedule{}
	}

	m.state = &SessionState{
		ID:        m.newID(),
		Selection: sel,
		Playlist:  playlist,
		TimeLeft:  m.cfg.QuestionSeconds,
		StartTime: m.now(),
	}
	return m.armCountdown()
}

// SelectOption highlights opt on the current question. It is ignored once
// the answer is locked, outside an active question, or when opt is not
// one of the question's options.
func (m *Machine) SelectOption(opt string) bool {
	if m.Phase() != PhaseActive {
		return false
	}
	q := m.state.CurrentQuestion()
	if q == nil || !slices.Contains(q.Options, opt) {
		return false
	}
	m.state.SelectedOption = opt
	return true
}

// SubmitAnswer locks the highlighted option as the answer and returns the
// feedback window to schedule. It is a no-op when nothing is highlighted,
// the answer is already locked, or the game has ended.
func (m *Machine) SubmitAnswer() Schedule {
	if m.Phase() != PhaseActive || m.state.SelectedOption == "" {
		return Schedule{}
	}
	chosen := m.state.SelectedOption
	return m.submit(&chosen)
}

// Tick delivers a countdown firing. Stale handles are ignored. When the
// countdown reaches zero the question is submitted with no answer and the
// feedback window is returned; otherwise the next tick is.
func (m *Machine) Tick(h Handle) Schedule {
	s := m.state
	if s == nil || h == 0 || h != s.countdown || m.Phase() != PhaseActive {
		return Schedule{}
	}
	s.countdown = 0

	s.TimeLeft--
	if s.TimeLeft > 0 {
		return m.armCountdown()
	}
	s.TimeLeft = 0
	return m.submit(nil)
}

// FeedbackElapsed delivers the end of the feedback window. Stale handles
// are ignored. The machine moves to the next question, returning its
// first countdown tick, or ends the game.
func (m *Machine) FeedbackElapsed(h Handle) Schedule {
	s := m.state
	if s == nil || h == 0 || h != s.feedback {
		return Schedule{}
	}
	s.feedback = 0

	s.Feedback = ""
	s.SelectedOption = ""
	s.AnswerSubmitted = false
	s.LastCorrect = false
	s.TimedOut = false

	if s.Index < len(s.Playlist)-1 {
		s.Index++
		s.TimeLeft = m.cfg.QuestionSeconds
		return m.armCountdown()
	}

	s.Ended = true
	return Schedule{}
}

// Restart discards the current game and returns to category select. Every
// outstanding handle becomes stale.
func (m *Machine) Restart() {
	m.state = nil
}

// submit locks the current question. A nil chosen is the timeout path.
func (m *Machine) submit(chosen *string) Schedule {
	s := m.state
	q := s.CurrentQuestion()
	if q == nil {
		return Schedule{}
	}

	s.countdown = 0
	s.AnswerSubmitted = true
	s.TimedOut = chosen == nil

	correct := Evaluate(chosen, q.Answer)
	s.LastCorrect = correct
	switch {
	case correct:
		s.Score++
		s.Feedback = FeedbackCorrect
	case chosen == nil:
		s.Feedback = feedbackTimeout + q.Answer
	default:
		s.Feedback = feedbackIncorrect + q.Answer
	}

	s.feedback = m.nextHandle()
	return Schedule{Kind: TimerFeedback, Handle: s.feedback, Delay: m.cfg.FeedbackWindow}
}

func (m *Machine) armCountdown() Schedule {
	m.state.countdown = m.nextHandle()
	return Schedule{Kind: TimerCountdown, Handle: m.state.countdown, Delay: TickInterval}
}

func (m *Machine) nextHandle() Handle {
	m.seq++
	return m.seq
}
