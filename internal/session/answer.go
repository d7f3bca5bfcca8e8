package session

import "strings"

// Evaluate reports whether chosen should be accepted for correct.
//
// A nil chosen means the countdown ran out and is always wrong. Otherwise
// both strings are trimmed and case-folded, and the answer is accepted if
// they are equal or either contains the other. A choice that is empty
// after trimming never matches.
func Evaluate(chosen *string, correct string) bool {
	if chosen == nil {
		return false
	}

	c := normalize(*chosen)
	if c == "" {
		return false
	}
	want := normalize(correct)

	return c == want ||
		strings.Contains(want, c) ||
		strings.Contains(c, want)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
