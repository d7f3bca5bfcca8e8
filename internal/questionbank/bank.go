package questionbank

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

//go:embed questions.json
var seedJSON []byte

var (
	// ErrDuplicateQuestion is returned when two questions share the same text.
	ErrDuplicateQuestion = errors.New("duplicate question text")
	// ErrAnswerNotInOptions is returned when a question's answer is not
	// exactly one of its options.
	ErrAnswerNotInOptions = errors.New("answer must appear exactly once in options")
	// ErrMissingCategory is returned when a category has no questions.
	ErrMissingCategory = errors.New("category has no questions")
)

// Bank is a fixed, ordered collection of questions. It is never mutated
// after construction; accessors hand out copies.
type Bank struct {
	questions []Question
}

type document struct {
	Questions []Question `json:"questions"`
}

// defaultBank is the embedded bank, set by init().
var defaultBank *Bank

func init() {
	b, err := Parse(seedJSON)
	if err != nil {
		panic(fmt.Sprintf("questionbank: embedded bank is invalid: %v", err))
	}
	defaultBank = b
}

// Default returns the question bank compiled into the binary.
func Default() *Bank {
	return defaultBank
}

// Parse decodes a bank document, checks it against the bank schema, and
// validates the invariants the schema cannot express.
func Parse(data []byte) (*Bank, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	return New(doc.Questions)
}

// New builds a Bank from questions, preserving their order.
func New(questions []Question) (*Bank, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}
	return &Bank{questions: cloneQuestions(questions)}, nil
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// All returns a copy of every question in bank order.
func (b *Bank) All() []Question {
	return cloneQuestions(b.questions)
}

// ByCategory returns the questions in category c, in bank order.
func (b *Bank) ByCategory(c Category) []Question {
	var out []Question
	for _, q := range b.questions {
		if q.Category == c {
			out = append(out, cloneQuestion(q))
		}
	}
	return out
}

// CountByCategory returns the number of questions per category.
func (b *Bank) CountByCategory() map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, q := range b.questions {
		counts[q.Category]++
	}
	return counts
}

// validateQuestions checks the invariants a bank must hold. All problems
// are reported together.
func validateQuestions(questions []Question) error {
	var errs []error

	seen := make(map[string]bool, len(questions))
	perCategory := make(map[Category]int)

	for i, q := range questions {
		if !q.Category.Valid() {
			errs = append(errs, fmt.Errorf("question %d: unknown category %q", i, q.Category))
		}
		perCategory[q.Category]++

		if seen[q.Text] {
			errs = append(errs, fmt.Errorf("question %d %q: %w", i, q.Text, ErrDuplicateQuestion))
		}
		seen[q.Text] = true

		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Errorf("question %d: empty text", i))
		}
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Errorf("question %d %q: need at least 2 options, got %d", i, q.Text, len(q.Options)))
		}

		matches := 0
		for _, opt := range q.Options {
			if opt == q.Answer {
				matches++
			}
		}
		if matches != 1 {
			errs = append(errs, fmt.Errorf("question %d %q: %w", i, q.Text, ErrAnswerNotInOptions))
		}
	}

	for _, c := range Categories {
		if perCategory[c] == 0 {
			errs = append(errs, fmt.Errorf("%s: %w", c, ErrMissingCategory))
		}
	}

	return errors.Join(errs...)
}

func cloneQuestion(q Question) Question {
	q.Options = slices.Clone(q.Options)
	return q
}

func cloneQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = cloneQuestion(q)
	}
	return out
}
