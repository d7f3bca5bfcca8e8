package session

import (
	"math/rand/v2"

	"github.com/abhisek/trivia/internal/questionbank"
)

// BuildPlaylist derives the questions for one game.
//
// The playlist starts as the whole bank for SelectionAll, or the matching
// category in bank order otherwise. If it is shorter than minCount it is
// padded with bank questions not yet included, in bank order, until it
// reaches minCount or the bank runs out. The result is then shuffled once
// with rng. Question text is the identity key, so no question appears
// twice.
func BuildPlaylist(sel Selection, bank *questionbank.Bank, minCount int, rng *rand.Rand) []questionbank.Question {
	if bank == nil || !sel.Valid() {
		return nil
	}

	var playlist []questionbank.Question
	if sel == SelectionAll {
		playlist = bank.All()
	} else {
		playlist = bank.ByCategory(questionbank.Category(sel))
	}

	playlist = pad(playlist, bank.All(), minCount)
	shuffle(playlist, rng)
	return playlist
}

// pad appends candidates not already in playlist until it holds minCount
// questions or candidates are exhausted.
func pad(playlist, candidates []questionbank.Question, minCount int) []questionbank.Question {
	if len(playlist) >= minCount {
		return playlist
	}

	included := make(map[string]bool, len(playlist))
	for _, q := range playlist {
		included[q.Text] = true
	}

	for _, q := range candidates {
		if len(playlist) >= minCount {
			break
		}
		if included[q.Text] {
			continue
		}
		included[q.Text] = true
		playlist = append(playlist, q)
	}
	return playlist
}

// shuffle applies a Fisher–Yates permutation in place.
func shuffle(qs []questionbank.Question, rng *rand.Rand) {
	if rng == nil {
		rand.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
		return
	}
	for i := len(qs) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		qs[i], qs[j] = qs[j], qs[i]
	}
}
