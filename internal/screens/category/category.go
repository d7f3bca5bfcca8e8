package category

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
)

// QuizFactory builds the game screen for a selection.
type QuizFactory func(sel session.Selection) screen.Screen

// CategoryScreen is the category menu shown before each game.
type CategoryScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*CategoryScreen)(nil)
var _ screen.KeyHintProvider = (*CategoryScreen)(nil)

// New creates the category menu. Each selection is labelled with the
// number of bank questions it draws from; choosing one pushes the screen
// newQuiz builds.
func New(bank *questionbank.Bank, newQuiz QuizFactory) *CategoryScreen {
	counts := bank.CountByCategory()

	items := make([]components.MenuItem, 0, len(session.Selections)+1)
	for _, sel := range session.Selections {
		n := bank.Len()
		if sel != session.SelectionAll {
			n = counts[questionbank.Category(sel)]
		}
		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("%s (%d)", sel.Label(), n),
			Disabled: n == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: newQuiz(sel)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Exit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &CategoryScreen{menu: components.NewMenu(items)}
}

func (c *CategoryScreen) Init() tea.Cmd {
	return nil
}

func (c *CategoryScreen) Title() string {
	return "Choose a Category"
}

func (c *CategoryScreen) KeyHints() []layout.KeyHint {
	return components.Hints(components.KeyUp, components.KeyDown, components.KeyEnter, components.KeyQuit)
}

func (c *CategoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *CategoryScreen) View(width, height int) string {
	// height excludes the header and footer bars
	compact := layout.IsCompactHeight(height+6) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)
	labels := c.menu.Labels()

	sections := []string{renderTitle(cw, compact), renderGreeting(cw)}
	if compact {
		sections = append(sections, renderArcadeMenuCompact(labels, c.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(labels, c.menu.Selected, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
