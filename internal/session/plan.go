package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/trivia/internal/questionbank"
)

// Selection is the player's category choice for a game.
type Selection string

const (
	SelectionAll       Selection = "All"
	SelectionGeography Selection = Selection(questionbank.CategoryGeography)
	SelectionHistory   Selection = Selection(questionbank.CategoryHistory)
)

// Selections lists the choices offered on the category screen, in order.
var Selections = []Selection{SelectionGeography, SelectionHistory, SelectionAll}

// ErrUnknownSelection is returned by ParseSelection for unrecognised input.
var ErrUnknownSelection = errors.New("unknown category")

// Valid reports whether s is one of the known selections.
func (s Selection) Valid() bool {
	switch s {
	case SelectionAll, SelectionGeography, SelectionHistory:
		return true
	}
	return false
}

// Label returns the menu text for the selection.
func (s Selection) Label() string {
	if s == SelectionAll {
		return "All Categories"
	}
	return string(s) + " Trivia"
}

// ParseSelection maps user input (case-insensitive) to a Selection.
func ParseSelection(raw string) (Selection, error) {
	for _, s := range Selections {
		if strings.EqualFold(strings.TrimSpace(raw), string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSelection, raw)
}

// Default game parameters.
const (
	// DefaultMinQuestions is the minimum playlist length (bank permitting).
	DefaultMinQuestions = 10

	// DefaultQuestionSeconds is the countdown each question starts with.
	DefaultQuestionSeconds = 5

	// DefaultFeedbackWindow is how long feedback stays up after an answer.
	DefaultFeedbackWindow = 2 * time.Second

	// TickInterval is the countdown resolution.
	TickInterval = time.Second
)

// Config holds the tunable game parameters.
type Config struct {
	MinQuestions    int
	QuestionSeconds int
	FeedbackWindow  time.Duration
}

// DefaultConfig returns a Config with the standard game parameters.
func DefaultConfig() Config {
	return Config{
		MinQuestions:    DefaultMinQuestions,
		QuestionSeconds: DefaultQuestionSeconds,
		FeedbackWindow:  DefaultFeedbackWindow,
	}
}
