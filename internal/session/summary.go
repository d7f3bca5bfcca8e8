package session

import "time"

// Verdict texts shown under the final score.
const (
	VerdictMaster = "Amazing! You're a trivia master!"
	VerdictGood   = "Good job! You have a solid knowledge base."
	VerdictLearn  = "Keep learning! There's always more to discover."
)

// SessionSummary holds the data displayed on the game-over screen.
type SessionSummary struct {
	SessionID string
	Selection Selection
	Score     int
	Total     int
	Duration  time.Duration
	Verdict   string
}

// BuildSummary creates a SessionSummary from a finished (or abandoned)
// session.
func BuildSummary(state *SessionState, now time.Time) *SessionSummary {
	if state == nil {
		return &SessionSummary{Verdict: Verdict(0, 0)}
	}
	return &SessionSummary{
		SessionID: state.ID,
		Selection: state.Selection,
		Score:     state.Score,
		Total:     state.Total(),
		Duration:  now.Sub(state.StartTime),
		Verdict:   Verdict(state.Score, state.Total()),
	}
}

// Verdict returns the qualitative comment for score out of total. Half
// marks count as good: the threshold is total/2 without rounding.
func Verdict(score, total int) string {
	switch {
	case score == total:
		return VerdictMaster
	case float64(score) >= float64(total)/2:
		return VerdictGood
	default:
		return VerdictLearn
	}
}
