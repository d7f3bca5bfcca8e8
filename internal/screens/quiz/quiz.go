package quiz

import (
	"io"
	"log"
	"slices"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/screens/summary"
	"github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
)

// QuizScreen drives one play-through of the state machine: it translates
// keys into intents, turns schedules into ticks and renders the state.
type QuizScreen struct {
	machine   *session.Machine
	selection session.Selection
	logger    *log.Logger
	keys      keyMap
	now       func() time.Time
	schedule  func(session.Schedule) tea.Cmd

	options     components.OptionList
	shownIndex  int
	confirmQuit bool
	started     bool
	finished    bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.EscapeHandler = (*QuizScreen)(nil)

// New creates a quiz screen that starts a sel game on machine when it is
// first shown. A nil logger discards output.
func New(machine *session.Machine, sel session.Selection, logger *log.Logger) *QuizScreen {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &QuizScreen{
		machine:    machine,
		selection:  sel,
		logger:     logger,
		keys:       newKeyMap(),
		now:        time.Now,
		schedule:   scheduleCmd,
		shownIndex: -1,
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	sched := q.machine.SelectCategory(q.selection)
	if sched.IsZero() {
		q.logger.Printf("session not started: selection=%s yields no questions", q.selection)
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	q.started = true

	st := q.machine.State()
	q.logger.Printf("session start: id=%s selection=%s questions=%d", st.SessionID, st.Selection, st.Total)
	q.sync()
	return q.schedule(sched)
}

func (q *QuizScreen) Title() string {
	return q.selection.Label()
}

// Status shows the running score in the header.
func (q *QuizScreen) Status() string {
	if !q.started {
		return ""
	}
	st := q.machine.State()
	return scoreStatus(st.Score, st.Total)
}

func (q *QuizScreen) HandlesEscape() bool {
	return true
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.confirmQuit {
		return components.Hints(q.keys.Yes, q.keys.No)
	}
	st := q.machine.State()
	if st.Phase == session.PhaseLocked {
		return components.Hints(q.keys.Abandon, components.KeyQuit)
	}
	submit := q.keys.Submit
	submit.SetEnabled(st.HasSelection())
	return components.Hints(q.keys.Up, q.keys.Down, q.keys.Choose, submit, q.keys.Abandon)
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		return q.handleTick(msg)
	case feedbackDoneMsg:
		return q.handleFeedbackDone(msg)
	case tea.KeyPressMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleTick(msg countdownTickMsg) (screen.Screen, tea.Cmd) {
	sched := q.machine.Tick(msg.Handle)
	if sched.Kind == session.TimerFeedback {
		q.logAnswer()
	}
	q.sync()
	return q, q.schedule(sched)
}

func (q *QuizScreen) handleFeedbackDone(msg feedbackDoneMsg) (screen.Screen, tea.Cmd) {
	sched := q.machine.FeedbackElapsed(msg.Handle)
	if q.machine.Phase() == session.PhaseEnded {
		return q, q.finish()
	}
	q.sync()
	return q, q.schedule(sched)
}

func (q *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if q.confirmQuit {
		switch {
		case key.Matches(msg, q.keys.Yes):
			return q, q.abandon()
		case key.Matches(msg, q.keys.No):
			q.confirmQuit = false
		}
		return q, nil
	}

	if key.Matches(msg, q.keys.Abandon) {
		if q.machine.Phase() == session.PhaseActive || q.machine.Phase() == session.PhaseLocked {
			q.confirmQuit = true
		}
		return q, nil
	}

	if q.machine.Phase() != session.PhaseActive {
		return q, nil
	}

	switch {
	case key.Matches(msg, q.keys.Up):
		q.options = q.options.MoveUp()
	case key.Matches(msg, q.keys.Down):
		q.options = q.options.MoveDown()
	case key.Matches(msg, q.keys.Choose):
		q.choose(msg)
	case key.Matches(msg, q.keys.Submit):
		sched := q.machine.SubmitAnswer()
		if sched.IsZero() {
			return q, nil
		}
		q.logAnswer()
		q.sync()
		return q, q.schedule(sched)
	}
	return q, nil
}

// choose selects the option under the cursor, or the numbered option for
// digit keys.
func (q *QuizScreen) choose(msg tea.KeyPressMsg) {
	if k := msg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		idx := int(k[0] - '1')
		if idx >= len(q.options.Options) {
			return
		}
		q.options.Cursor = idx
	}
	if q.machine.SelectOption(q.options.Current()) {
		q.sync()
	}
}

// sync copies the machine state into the option list, resetting the
// cursor when a new question comes up.
func (q *QuizScreen) sync() {
	st := q.machine.State()
	if st.Question == nil {
		return
	}
	if st.Index != q.shownIndex || !slices.Equal(st.Question.Options, q.options.Options) {
		q.options = components.NewOptionList(st.Question.Options)
		q.shownIndex = st.Index
	}
	q.options.Chosen = st.SelectedOption
	q.options.Locked = st.AnswerSubmitted
	q.options.Answer = st.Question.Answer
}

func (q *QuizScreen) logAnswer() {
	st := q.machine.State()
	outcome := "incorrect"
	switch {
	case st.LastCorrect:
		outcome = "correct"
	case st.TimedOut:
		outcome = "timeout"
	}
	q.logger.Printf("answer: id=%s question=%d/%d outcome=%s chosen=%q score=%d",
		st.SessionID, st.Index+1, st.Total, outcome, st.SelectedOption, st.Score)
}

// finish swaps this screen for the game-over screen.
func (q *QuizScreen) finish() tea.Cmd {
	if q.finished {
		return nil
	}
	q.finished = true

	sum := session.BuildSummary(q.machine.Session(), q.now())
	q.logger.Printf("session end: id=%s score=%d/%d duration=%s",
		sum.SessionID, sum.Score, sum.Total, sum.Duration.Round(time.Second))

	next := summary.New(q.machine, sum, q.logger)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// abandon discards the game and goes back to the category menu.
func (q *QuizScreen) abandon() tea.Cmd {
	st := q.machine.State()
	q.logger.Printf("session abandoned: id=%s question=%d/%d score=%d",
		st.SessionID, st.Index+1, st.Total, st.Score)
	q.machine.Restart()
	q.confirmQuit = false
	q.finished = true
	return func() tea.Msg { return router.PopScreenMsg{} }
}
