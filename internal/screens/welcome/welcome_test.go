package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "menu" }
func (s *stubScreen) Title() string                          { return "Menu" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	next := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(next), &callCount
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcome()

	if strings.Contains(w.View(80, 24), tagline) {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 5)
	if w.elapsed != phase1End {
		t.Errorf("elapsed = %v, want %v", w.elapsed, phase1End)
	}

	sendTicks(w, 10)
	if w.elapsed != phase2End {
		t.Errorf("elapsed = %v, want %v", w.elapsed, phase2End)
	}
	if !strings.Contains(w.View(80, 24), tagline) {
		t.Error("tagline should be visible after phase 2")
	}
}

func TestKeypressDuringAnimationSkipsAhead(t *testing.T) {
	w, callCount := newTestWelcome()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replacement screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("next should be called once, got %d", *callCount)
	}
}

func TestNoAutoTransition(t *testing.T) {
	w, callCount := newTestWelcome()

	sendTicks(w, 45)
	if *callCount != 0 {
		t.Errorf("next should not be called without keypress, got %d", *callCount)
	}
	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want capped at %v", w.elapsed, totalDur)
	}
}

func TestTransitionOnce(t *testing.T) {
	w, callCount := newTestWelcome()

	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("next should be called exactly once, got %d", *callCount)
	}

	// Ticks stop once the screen has handed over.
	if _, cmd := w.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("expected ticking to stop after transition")
	}
}

func TestBannerCompact(t *testing.T) {
	if got := RenderBanner(30); !strings.Contains(got, bannerCompact) {
		t.Errorf("expected compact banner for narrow widths, got %q", got)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
