package questionbank

import "slices"

// Category is the subject area a question belongs to.
type Category string

const (
	CategoryGeography Category = "Geography"
	CategoryHistory   Category = "History"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryGeography, CategoryHistory}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// Question is a single multiple-choice trivia question.
type Question struct {
	// Text is the prompt shown to the player. It also serves as the
	// question's identity: no two questions in a bank share a Text.
	Text string `json:"text"`

	// Answer is the correct option, verbatim.
	Answer string `json:"answer"`

	Category Category `json:"category"`

	// Options holds the choices in display order. Answer appears exactly once.
	Options []string `json:"options"`
}
