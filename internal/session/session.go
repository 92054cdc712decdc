package session

import (
	"github.com/abhisek/mathforge/internal/problemgen"
	"github.com/abhisek/mathforge/internal/rewards"
)

func firstStreakMilestone() int {
	return rewards.NextStreakMilestone(0)
}

// NextQuestion serves the next question and makes it current. It returns
// nil and moves to the summary phase once the session is exhausted.
func NextQuestion(state *SessionState) *problemgen.Question {
	if state.Phase == PhaseSummary {
		return nil
	}

	var q *problemgen.Question
	switch {
	case len(state.Queue) > 0:
		q = state.Queue[0]
		state.Queue = state.Queue[1:]
	case state.Engine != nil && (state.Limit == 0 || state.TotalQuestions < state.Limit):
		q = state.Engine.Generate(state.Operation, state.Level)
	}

	state.CurrentQuestion = q
	if q == nil {
		state.Phase = PhaseSummary
		return nil
	}
	state.Phase = PhaseActive
	return q
}

// HandleAnswer checks learnerAnswer against the current question and
// updates totals, streaks and elapsed time. It reports whether the answer
// was correct; without a current question it reports false and changes
// nothing.
func HandleAnswer(state *SessionState, learnerAnswer string) bool {
	q := state.CurrentQuestion
	if q == nil {
		return false
	}

	correct := problemgen.CheckAnswer(learnerAnswer, q)
	recordAnswer(state, q, correct)
	return correct
}

// HandleChoice is HandleAnswer for a 1-based option position.
func HandleChoice(state *SessionState, position int) bool {
	q := state.CurrentQuestion
	if q == nil {
		return false
	}

	correct := problemgen.CheckChoice(position, q)
	recordAnswer(state, q, correct)
	return correct
}

func recordAnswer(state *SessionState, q *problemgen.Question, correct bool) {
	state.LastAnswerCorrect = correct
	state.TotalQuestions++
	if correct {
		state.TotalCorrect++
	}

	p := state.PerOperation[q.Operation]
	if p == nil {
		p = &Progress{Operation: q.Operation}
		state.PerOperation[q.Operation] = p
	}
	p.Record(correct)

	// Update streak tracking.
	state.StreakMilestone = 0
	if correct {
		state.ConsecutiveCorrect++
		state.BestStreak = max(state.BestStreak, state.ConsecutiveCorrect)
		if state.ConsecutiveCorrect >= state.NextStreakMilestone {
			state.StreakMilestone = state.ConsecutiveCorrect
			state.NextStreakMilestone = rewards.NextStreakMilestone(state.ConsecutiveCorrect)
		}
	} else {
		state.ConsecutiveCorrect = 0
		state.NextStreakMilestone = firstStreakMilestone()
	}

	state.CurrentQuestion = nil
	state.Phase = PhaseFeedback
	UpdateElapsed(state)
}

// UpdateElapsed refreshes the elapsed time and flags a timed challenge
// whose limit has passed.
func UpdateElapsed(state *SessionState) {
	state.Elapsed = state.now().Sub(state.StartTime)
	if state.Challenge != nil && state.Challenge.TimeLimit != nil {
		limit := *state.Challenge.TimeLimit
		if int(state.Elapsed.Seconds()) >= limit {
			state.TimeExpired = true
			state.Queue = nil
			state.Phase = PhaseSummary
		}
	}
}

// Rewards scores a finished daily challenge session. Practice sessions are
// scored without a bonus target.
func Rewards(state *SessionState) rewards.Result {
	summary := BuildSummary(state)
	return rewards.Calculate(state.Challenge, summary.Accuracy, summary.ElapsedSeconds(), summary.BestStreak)
}
