package session

import (
	"sort"
	"time"

	"github.com/abhisek/mathforge/internal/store"
)

// SessionSummary holds the figures reported when a session ends.
type SessionSummary struct {
	SessionID      string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int

	// Planned is the accuracy denominator. For a daily challenge it is the
	// size of the bundle, so questions left unanswered count as wrong.
	Planned int

	Accuracy   float64 // percentage of Planned, 0-100
	BestStreak int
	Operations []Progress
}

// ElapsedSeconds returns the duration rounded to whole seconds.
func (s *SessionSummary) ElapsedSeconds() int {
	return int(s.Duration.Round(time.Second) / time.Second)
}

// BuildSummary creates a SessionSummary from the current session state.
func BuildSummary(state *SessionState) *SessionSummary {
	ops := make([]Progress, 0, len(state.PerOperation))
	for _, p := range state.PerOperation {
		ops = append(ops, *p)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Operation < ops[j].Operation })

	planned := plannedQuestions(state)
	return &SessionSummary{
		SessionID:      state.SessionID,
		Duration:       state.Elapsed,
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Planned:        planned,
		Accuracy:       AccuracyPercent(state.TotalCorrect, planned),
		BestStreak:     state.BestStreak,
		Operations:     ops,
	}
}

// plannedQuestions returns the number of questions the session is scored
// against: the whole bundle for a challenge, the answered count otherwise.
func plannedQuestions(state *SessionState) int {
	if state.Challenge == nil {
		return state.TotalQuestions
	}
	return max(state.TotalQuestions, state.Challenge.TotalQuestions, len(state.Challenge.Questions))
}

// EventData converts a finished session into its persisted form.
func EventData(state *SessionState) store.SessionEventData {
	summary := BuildSummary(state)
	op, level := state.Operation, state.Level
	if state.Challenge != nil {
		op, level = "daily:"+state.Challenge.ChallengeType, state.Challenge.Date
	}
	return store.SessionEventData{
		SessionID:       state.SessionID,
		Operation:       op,
		Level:           level,
		QuestionsServed: summary.TotalQuestions,
		CorrectAnswers:  summary.TotalCorrect,
		BestStreak:      summary.BestStreak,
		DurationSecs:    summary.ElapsedSeconds(),
	}
}
