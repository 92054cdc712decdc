// Package session tracks a learner's practice or daily challenge run:
// the questions served, answers given, accuracy, time and streaks.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathforge/internal/daily"
	"github.com/abhisek/mathforge/internal/problemgen"
)

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseActive   SessionPhase = iota // Serving questions
	PhaseFeedback                     // Showing answer feedback
	PhaseSummary                      // All questions answered or time expired
)

// SessionState tracks the runtime state of a session.
type SessionState struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Operation and Level describe a practice session. Both are empty for a
	// daily challenge session.
	Operation string
	Level     string

	// Challenge is set for daily challenge sessions.
	Challenge *daily.Challenge

	// Engine generates practice questions on demand (nil for challenges).
	Engine *problemgen.Engine

	// Queue holds the questions still to be served, in order.
	Queue []*problemgen.Question

	// Limit caps the number of practice questions (0 = unlimited).
	Limit int

	// CurrentQuestion is the active question (nil between questions).
	CurrentQuestion *problemgen.Question

	// TotalQuestions is the count of questions answered so far.
	TotalQuestions int

	// TotalCorrect is the count of correct answers so far.
	TotalCorrect int

	// ConsecutiveCorrect is the current run of correct answers.
	ConsecutiveCorrect int

	// BestStreak is the longest run of correct answers this session.
	BestStreak int

	// NextStreakMilestone is the streak length that triggers the next
	// milestone notice.
	NextStreakMilestone int

	// StreakMilestone is set when the last answer reached a milestone.
	StreakMilestone int

	// PerOperation tracks per-operation stats for the summary.
	PerOperation map[string]*Progress

	// LastAnswerCorrect records whether the most recent answer was correct.
	LastAnswerCorrect bool

	// StartTime is when the session began.
	StartTime time.Time

	// Elapsed tracks total elapsed time, updated on every answer.
	Elapsed time.Duration

	// TimeExpired indicates a timed challenge ran out of time.
	TimeExpired bool

	// Phase is the current session phase.
	Phase SessionPhase

	// now is the clock, replaceable in tests.
	now func() time.Time
}

// NewPracticeState creates a practice session generating questions of op at
// level with engine. A limit of 0 serves questions until the caller stops.
func NewPracticeState(engine *problemgen.Engine, op, level string, limit int) *SessionState {
	s := newState()
	s.Engine = engine
	s.Operation = op
	s.Level = level
	s.Limit = limit
	return s
}

// NewChallengeState creates a session serving the questions of ch in order.
func NewChallengeState(ch *daily.Challenge) *SessionState {
	s := newState()
	s.Challenge = ch
	s.Queue = append([]*problemgen.Question(nil), ch.Questions...)
	return s
}

func newState() *SessionState {
	return &SessionState{
		SessionID:           uuid.NewString(),
		PerOperation:        make(map[string]*Progress),
		NextStreakMilestone: firstStreakMilestone(),
		StartTime:           time.Now(),
		Phase:               PhaseActive,
		now:                 time.Now,
	}
}
