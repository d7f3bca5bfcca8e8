package app

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/screens/category"
	"github.com/abhisek/trivia/internal/screens/quiz"
	"github.com/abhisek/trivia/internal/screens/welcome"
	"github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
)

// Options holds dependencies for the app.
type Options struct {
	// Bank is the question bank. Nil uses the embedded default.
	Bank *questionbank.Bank

	// Config holds the game parameters.
	Config session.Config

	// Selection, when set, skips the splash and menu and starts a game
	// straight away.
	Selection session.Selection

	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Rand drives playlist shuffling. Nil uses the global source.
	Rand *rand.Rand
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	machine *session.Machine
	start   tea.Cmd
	width   int
	height  int
}

// newAppModel wires the machine and screens. The category menu is the
// bottom of the stack; the splash replaces itself with it.
func newAppModel(opts Options) AppModel {
	if opts.Bank == nil {
		opts.Bank = questionbank.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}

	machine := session.NewMachine(opts.Bank, opts.Config, opts.Rand)
	newQuiz := func(sel session.Selection) screen.Screen {
		return quiz.New(machine, sel, opts.Logger)
	}
	newMenu := func() screen.Screen {
		return category.New(opts.Bank, newQuiz)
	}

	m := AppModel{machine: machine}
	if opts.Selection != "" {
		m.router = router.New(newMenu())
		first := newQuiz(opts.Selection)
		m.start = func() tea.Msg { return router.PushScreenMsg{Screen: first} }
	} else {
		m.router = router.New(welcome.New(newMenu))
		m.start = m.router.Init()
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.start
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{{Key: "any key", Description: "Continue"}}
		footerHints = append(footerHints, components.Hints(components.KeyQuit)...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
