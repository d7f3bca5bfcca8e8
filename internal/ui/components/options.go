package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

// OptionList renders the answer options of a question. Cursor is the
// highlighted row, Chosen is the option the player picked. Once Locked,
// rows are greyed except the correct answer and a wrong pick, which are
// coloured by outcome.
type OptionList struct {
	Options []string
	Cursor  int
	Chosen  string
	Locked  bool
	Answer  string
}

// NewOptionList creates an option list with the cursor on the first row.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// MoveUp moves the cursor up one row, stopping at the top.
func (o OptionList) MoveUp() OptionList {
	if o.Cursor > 0 {
		o.Cursor--
	}
	return o
}

// MoveDown moves the cursor down one row, stopping at the bottom.
func (o OptionList) MoveDown() OptionList {
	if o.Cursor < len(o.Options)-1 {
		o.Cursor++
	}
	return o
}

// Current returns the option under the cursor.
func (o OptionList) Current() string {
	if o.Cursor < 0 || o.Cursor >= len(o.Options) {
		return ""
	}
	return o.Options[o.Cursor]
}

// View renders one row per option.
func (o OptionList) View() string {
	var b strings.Builder
	for i, opt := range o.Options {
		marker := "  "
		if i == o.Cursor && !o.Locked {
			marker = "▸ "
		}
		radio := "○"
		if opt == o.Chosen {
			radio = "●"
		}
		line := fmt.Sprintf("%s%d) %s %s", marker, i+1, radio, opt)

		b.WriteString(o.style(i, opt).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (o OptionList) style(i int, opt string) lipgloss.Style {
	if o.Locked {
		switch {
		case opt == o.Answer:
			return theme.Correct
		case opt == o.Chosen:
			return theme.Incorrect
		default:
			return theme.Locked
		}
	}
	switch {
	case opt == o.Chosen:
		return theme.Chosen
	case i == o.Cursor:
		return theme.Highlighted
	default:
		return theme.Unselected
	}
}
