package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ChallengeEventData captures a daily challenge that was served.
type ChallengeEventData struct {
	Date           string // YYYY-MM-DD
	ChallengeType  string
	TotalQuestions int
	Concepts       []string
	Payload        []byte // JSON encoding of the challenge, optional
}

// ChallengeEventRecord is a stored challenge event.
type ChallengeEventRecord struct {
	ChallengeEventData
	Sequence  int64
	Timestamp time.Time
}

// RewardEventData captures the rewards granted for a completed challenge.
type RewardEventData struct {
	Date          string
	ChallengeType string
	Accuracy      float64
	TimeTakenSecs int
	Streak        int
	BonusStars    int
	BonusCoins    int
	PerfectScore  bool
	SpeedBonus    bool
}

// RewardEventRecord is a stored reward event.
type RewardEventRecord struct {
	RewardEventData
	Sequence  int64
	Timestamp time.Time
}

// RewardTotals aggregates every reward event.
type RewardTotals struct {
	Challenges int
	Stars      int
	Coins      int
}

// SessionEventData captures a finished practice session.
type SessionEventData struct {
	SessionID       string
	Operation       string
	Level           string
	QuestionsServed int
	CorrectAnswers  int
	BestStreak      int
	DurationSecs    int
}

// SessionSummaryRecord is a stored practice session.
type SessionSummaryRecord struct {
	SessionEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events. Queries
// return the newest events first.
type EventRepo interface {
	AppendChallengeEvent(ctx context.Context, data ChallengeEventData) error
	QueryChallengeEvents(ctx context.Context, opts QueryOpts) ([]ChallengeEventRecord, error)

	AppendRewardEvent(ctx context.Context, data RewardEventData) error
	QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error)
	RewardTotals(ctx context.Context) (RewardTotals, error)

	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)
}
