package quiz

import (
	"bytes"
	"log"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screens/summary"
	"github.com/abhisek/trivia/internal/session"
)

// harness records schedules instead of arming real tea.Tick timers so
// tests can deliver firings by hand.
type harness struct {
	t      *testing.T
	q      *QuizScreen
	m      *session.Machine
	scheds []session.Schedule
	logs   *bytes.Buffer
}

func newHarness(t *testing.T, sel session.Selection) *harness {
	t.Helper()
	m := session.NewMachine(questionbank.Default(), session.DefaultConfig(), rand.New(rand.NewPCG(3, 3)))
	h := &harness{t: t, m: m, logs: &bytes.Buffer{}}
	h.q = New(m, sel, log.New(h.logs, "", 0))
	h.q.schedule = func(s session.Schedule) tea.Cmd {
		if s.IsZero() {
			return nil
		}
		h.scheds = append(h.scheds, s)
		return func() tea.Msg { return nil }
	}
	return h
}

func (h *harness) start() {
	h.t.Helper()
	if cmd := h.q.Init(); cmd == nil {
		h.t.Fatal("expected Init to arm the countdown")
	}
}

func (h *harness) last() session.Schedule {
	if len(h.scheds) == 0 {
		return session.Schedule{}
	}
	return h.scheds[len(h.scheds)-1]
}

// fire delivers the most recent schedule's message.
func (h *harness) fire() tea.Cmd {
	s := h.last()
	var msg tea.Msg
	switch s.Kind {
	case session.TimerCountdown:
		msg = countdownTickMsg{Handle: s.Handle}
	case session.TimerFeedback:
		msg = feedbackDoneMsg{Handle: s.Handle}
	default:
		h.t.Fatal("nothing scheduled")
	}
	_, cmd := h.q.Update(msg)
	return cmd
}

func (h *harness) press(msg tea.KeyPressMsg) tea.Cmd {
	_, cmd := h.q.Update(msg)
	return cmd
}

func (h *harness) answerIndex() int {
	st := h.m.State()
	return slices.Index(st.Question.Options, st.Question.Answer)
}

func digit(i int) tea.KeyPressMsg {
	r := rune('1' + i)
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var (
	enterKey = tea.KeyPressMsg{Code: tea.KeyEnter}
	escKey   = tea.KeyPressMsg{Code: tea.KeyEscape}
	spaceKey = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	downKey  = tea.KeyPressMsg{Code: tea.KeyDown}
)

func TestQuizScreen_Init(t *testing.T) {
	h := newHarness(t, session.SelectionGeography)
	h.start()

	if h.last().Kind != session.TimerCountdown {
		t.Errorf("first schedule = %+v, want countdown", h.last())
	}
	if !strings.Contains(h.logs.String(), "session start") {
		t.Errorf("expected session start log, got %q", h.logs.String())
	}

	view := h.q.View(100, 30)
	for _, want := range []string{
		"Test your knowledge in Geography!",
		"Question 1 of 10 (",
		"5s",
		"Choose an answer",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if h.q.Title() != "Geography Trivia" {
		t.Errorf("Title = %q", h.q.Title())
	}
	if h.q.Status() != "★ 0/10" {
		t.Errorf("Status = %q", h.q.Status())
	}
}

func TestQuizScreen_InitInvalidSelection(t *testing.T) {
	h := newHarness(t, session.Selection("Science"))
	cmd := h.q.Init()
	if cmd == nil {
		t.Fatal("expected a command for an unusable selection")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestQuizScreen_ChooseAndSubmitCorrect(t *testing.T) {
	h := newHarness(t, session.SelectionAll)
	h.start()

	idx := h.answerIndex()
	h.press(digit(idx))
	if got := h.m.State().SelectedOption; got != h.m.State().Question.Answer {
		t.Fatalf("SelectedOption = %q, want the answer", got)
	}
	if !strings.Contains(h.q.View(100, 30), "Press Enter to submit") {
		t.Error("expected submit prompt once an option is chosen")
	}

	h.press(enterKey)

	st := h.m.State()
	if st.Phase != session.PhaseLocked || st.Score != 1 {
		t.Errorf("Phase = %v, Score = %d, want locked with 1", st.Phase, st.Score)
	}
	if h.last().Kind != session.TimerFeedback {
		t.Errorf("last schedule = %+v, want feedback window", h.last())
	}
	if !strings.Contains(h.q.View(100, 30), "Correct!") {
		t.Error("expected Correct! feedback in view")
	}
	if !strings.Contains(h.logs.String(), "outcome=correct") {
		t.Errorf("expected answer log, got %q", h.logs.String())
	}
}

func TestQuizScreen_SubmitWithoutChoice(t *testing.T) {
	h := newHarness(t, session.SelectionAll)
	h.start()
	n := len(h.scheds)

	if cmd := h.press(enterKey); cmd != nil {
		t.Error("expected Enter without a choice to do nothing")
	}
	if len(h.scheds) != n || h.m.Phase() != session.PhaseActive {
		t.Error("submit without a choice must not lock the question")
	}
}

func TestQuizScreen_CursorAndSpace(t *testing.T) {
	h := newHarness(t, session.SelectionAll)
	h.start()

	h.press(downKey)
	h.press(spaceKey)

	want := h.m.State().Question.Options[1]
	if got := h.m.State().SelectedOption; got != want {
		t.Errorf("SelectedOption = %q, want %q", got, want)
	}

	// Digits beyond the option count are ignored.
	h.press(digit(8))
	if got := h.m.State().SelectedOption; got != want {
		t.Errorf("SelectedOption = %q after out-of-range digit, want %q", got, want)
	}
}

func TestQuizScreen_KeysIgnoredWhileLocked(t *testing.T) {
	h := newHarness(t, session.SelectionAll)
	h.start()
	h.press(digit(0))
	h.press(enterKey)
	chosen := h.m.State().SelectedOption

	h.press(digit(1))
	h.press(enterKey)

	if got := h.m.State().SelectedOption; got != chosen {
		t.Errorf("SelectedOption = %q, want %q after lock", got, chosen)
	}
}

func TestQuizScreen_Timeout(t *testing.T) {
	h := newHarness(t, session.SelectionHistory)
	h.start()
	answer := h.m.State().Question.Answer

	for i := 0; i < session.DefaultQuestionSeconds; i++ {
		h.fire()
	}

	st := h.m.State()
	if st.Phase != session.PhaseLocked || !st.TimedOut {
		t.Fatalf("Phase = %v, TimedOut = %v, want timed-out lock", st.Phase, st.TimedOut)
	}
	if !strings.Contains(h.q.View(100, 30), "Time's up! The correct answer was: "+answer) {
		t.Error("expected timeout feedback in view")
	}
	if !strings.Contains(h.logs.String(), "outcome=timeout") {
		t.Errorf("expected timeout log, got %q", h.logs.String())
	}
}

func TestQuizScreen_FeedbackAdvances(t *testing.T) {
	h := newHarness(t, session.SelectionGeography)
	h.start()
	h.press(digit(0))
	h.press(enterKey)

	h.fire()

	st := h.m.State()
	if st.Index != 1 || st.Phase != session.PhaseActive {
		t.Fatalf("Index = %d, Phase = %v, want question 2 active", st.Index, st.Phase)
	}
	if h.q.options.Cursor != 0 || h.q.options.Chosen != "" {
		t.Errorf("option list not reset for new question: %+v", h.q.options)
	}
	if !strings.Contains(h.q.View(100, 30), "Question 2 of 10") {
		t.Error("expected second question in view")
	}
}

func TestQuizScreen_StaleTickIgnored(t *testing.T) {
	h := newHarness(t, session.SelectionAll)
	h.start()
	stale := h.last()
	h.fire()
	left := h.m.State().TimeLeft

	h.q.Update(countdownTickMsg{Handle: stale.Handle})

	if got := h.m.State().TimeLeft; got != left {
		t.Errorf("TimeLeft = %d after stale tick, want %d", got, left)
	}
}

func TestQuizScreen_GameOver(t *testing.T) {
	h := newHarness(t, session.SelectionGeography)
	h.start()

	var cmd tea.Cmd
	for h.m.Phase() != session.PhaseEnded {
		h.press(digit(h.answerIndex()))
		h.press(enterKey)
		cmd = h.fire()
	}

	if cmd == nil {
		t.Fatal("expected a command after the last feedback window")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", replace.Screen)
	}
	if h.m.State().Score != 10 {
		t.Errorf("Score = %d, want 10", h.m.State().Score)
	}
	if !strings.Contains(h.logs.String(), "session end") || !strings.Contains(h.logs.String(), "score=10/10") {
		t.Errorf("expected session end log, got %q", h.logs.String())
	}
}

func TestQuizScreen_AbandonConfirm(t *testing.T) {
	h := newHarness(t, session.SelectionAll)
	h.start()

	h.press(escKey)
	if !h.q.confirmQuit {
		t.Fatal("expected abandon confirmation after Esc")
	}
	if !strings.Contains(h.q.View(100, 30), "Abandon this game?") {
		t.Error("expected confirmation dialog in view")
	}

	// The countdown keeps running behind the dialog.
	h.fire()
	if got := h.m.State().TimeLeft; got != session.DefaultQuestionSeconds-1 {
		t.Errorf("TimeLeft = %d, want %d", got, session.DefaultQuestionSeconds-1)
	}

	// Option keys do nothing while the dialog is open.
	h.press(digit(0))
	if h.m.State().HasSelection() {
		t.Error("expected no selection while confirming")
	}

	h.press(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if h.q.confirmQuit {
		t.Error("expected N to dismiss the dialog")
	}
	if h.m.Phase() != session.PhaseActive {
		t.Errorf("Phase = %v, want active after N", h.m.Phase())
	}

	h.press(escKey)
	cmd := h.press(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd == nil {
		t.Fatal("expected a command after Y")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
	if h.m.Phase() != session.PhaseCategorySelect {
		t.Errorf("Phase = %v, want category-select after abandon", h.m.Phase())
	}
	if !strings.Contains(h.logs.String(), "session abandoned") {
		t.Errorf("expected abandon log, got %q", h.logs.String())
	}

	// Firings still in flight after abandoning are inert.
	h.fire()
	if h.m.Phase() != session.PhaseCategorySelect {
		t.Error("stale firing revived the abandoned game")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	h := newHarness(t, session.SelectionAll)
	h.start()

	hasSubmit := func() bool {
		for _, hint := range h.q.KeyHints() {
			if hint.Description == "Submit" {
				return true
			}
		}
		return false
	}

	if hasSubmit() {
		t.Error("submit hint should be hidden until an option is chosen")
	}
	h.press(digit(0))
	if !hasSubmit() {
		t.Error("expected submit hint once an option is chosen")
	}

	h.press(escKey)
	if hints := h.q.KeyHints(); len(hints) != 2 || hints[0].Key != "Y" {
		t.Errorf("confirm hints = %+v", hints)
	}
}

func TestScheduleCmd(t *testing.T) {
	if scheduleCmd(session.Schedule{}) != nil {
		t.Error("zero schedule should produce no command")
	}
	cmd := scheduleCmd(session.Schedule{Kind: session.TimerFeedback, Handle: 9, Delay: time.Millisecond})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if msg, ok := cmd().(feedbackDoneMsg); !ok || msg.Handle != 9 {
		t.Errorf("got %#v, want feedbackDoneMsg{Handle: 9}", cmd())
	}
}
