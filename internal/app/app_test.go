package app

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screens/category"
	"github.com/abhisek/trivia/internal/screens/quiz"
	"github.com/abhisek/trivia/internal/screens/welcome"
	"github.com/abhisek/trivia/internal/session"
)

func testOptions(sel session.Selection) Options {
	return Options{
		Config:    session.DefaultConfig(),
		Selection: sel,
		Rand:      rand.New(rand.NewPCG(5, 5)),
	}
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestNewAppModel_Splash(t *testing.T) {
	m := newAppModel(testOptions(""))
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("active = %T, want splash", m.router.Active())
	}

	m, cmd := update(m, tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected the splash to hand over on a key press")
	}
	m, _ = update(m, cmd())
	if _, ok := m.router.Active().(*category.CategoryScreen); !ok {
		t.Errorf("active = %T, want category menu", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("Depth = %d, want the menu at the bottom", m.router.Depth())
	}
}

func TestNewAppModel_DirectStart(t *testing.T) {
	m := newAppModel(testOptions(session.SelectionHistory))
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected Init to push the quiz")
	}
	m, _ = update(m, cmd())

	if _, ok := m.router.Active().(*quiz.QuizScreen); !ok {
		t.Fatalf("active = %T, want quiz", m.router.Active())
	}
	if m.machine.Phase() != session.PhaseActive {
		t.Errorf("Phase = %v, want active", m.machine.Phase())
	}
	if got := m.machine.State().Selection; got != session.SelectionHistory {
		t.Errorf("Selection = %q, want History", got)
	}
}

func TestEscapeHandledByQuiz(t *testing.T) {
	m := newAppModel(testOptions(session.SelectionAll))
	m, _ = update(m, m.Init()())

	m, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Fatal("Esc on the quiz must open the confirmation, not pop")
		}
	}
	if m.router.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", m.router.Depth())
	}
}

func TestView(t *testing.T) {
	m := newAppModel(testOptions(session.SelectionGeography))
	m, _ = update(m, m.Init()())
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	out := m.render()
	if !strings.Contains(out, "Geography Trivia") {
		t.Error("expected the selection label in the header")
	}
	if !strings.Contains(out, "★ 0/10") {
		t.Error("expected the score in the header")
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected the minimum size message")
	}
}
