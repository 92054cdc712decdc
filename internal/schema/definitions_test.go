package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathforge/internal/catalog"
	"github.com/abhisek/mathforge/internal/daily"
	"github.com/abhisek/mathforge/internal/problemgen"
	"github.com/abhisek/mathforge/internal/rewards"
)

func TestQuestionSchema_GeneratedQuestions(t *testing.T) {
	engine := problemgen.New(problemgen.NewSeededRand(42, 0), problemgen.DefaultConfig())
	for _, op := range catalog.AllOperations() {
		for _, level := range catalog.AllLevels() {
			q := engine.Generate(string(op), string(level))
			require.NoError(t, ValidateQuestion(q), "%s/%s: %+v", op, level, q)
		}
	}
}

func TestQuestionSchema_Rejects(t *testing.T) {
	valid := func() *problemgen.Question {
		return &problemgen.Question{
			ID:          "q-1",
			Operation:   "addition",
			Level:       "easy",
			Question:    "3 + 4",
			Answer:      "7",
			AnswerType:  problemgen.AnswerTypeInteger,
			Options:     []string{"7", "5", "6", "8"},
			Explanation: "3 + 4 = 7",
			Tags:        []string{"core", "easy"},
			Difficulty:  2,
			GradeLevel:  []string{"K", "1"},
		}
	}
	require.NoError(t, ValidateQuestion(valid()))

	tests := []struct {
		name   string
		mutate func(q *problemgen.Question)
	}{
		{"empty question", func(q *problemgen.Question) { q.Question = "" }},
		{"one option", func(q *problemgen.Question) { q.Options = []string{"7"} }},
		{"seven options", func(q *problemgen.Question) { q.Options = []string{"1", "2", "3", "4", "5", "6", "7"} }},
		{"duplicate options", func(q *problemgen.Question) { q.Options = []string{"7", "7", "8"} }},
		{"difficulty too high", func(q *problemgen.Question) { q.Difficulty = 11 }},
		{"unknown grade", func(q *problemgen.Question) { q.GradeLevel = []string{"9"} }},
		{"unknown answer type", func(q *problemgen.Question) { q.AnswerType = "roman" }},
		{"nil tags", func(q *problemgen.Question) { q.Tags = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid()
			tt.mutate(q)
			assert.Error(t, ValidateQuestion(q))
		})
	}
}

func TestChallengeSchema_AssembledChallenges(t *testing.T) {
	date, err := daily.ParseDate("2025-03-10")
	require.NoError(t, err)
	for _, ct := range daily.Types() {
		t.Run(ct, func(t *testing.T) {
			require.NoError(t, ValidateChallenge(daily.Assemble(date, ct)))
		})
	}
}

func TestChallengeSchema_Rejects(t *testing.T) {
	date, err := daily.ParseDate("2025-03-10")
	require.NoError(t, err)

	ch := daily.Assemble(date, daily.TypeSpeedRound)
	ch.BonusTarget.Accuracy = 120
	assert.Error(t, ValidateChallenge(ch))

	ch = daily.Assemble(date, daily.TypeSpeedRound)
	ch.ChallengeType = "mystery_tour"
	assert.Error(t, ValidateChallenge(ch))

	ch = daily.Assemble(date, daily.TypeSpeedRound)
	ch.Questions[0].Explanation = ""
	assert.Error(t, ValidateChallenge(ch))
}

func TestRewardSchema(t *testing.T) {
	date, err := daily.ParseDate("2025-03-10")
	require.NoError(t, err)
	ch := daily.Assemble(date, daily.TypeBrainTeaser)
	assert.NoError(t, ValidateReward(rewards.Calculate(ch, 100, 10, 12)))
	assert.NoError(t, ValidateReward(rewards.Result{}))
	assert.Error(t, ValidateReward(rewards.Result{BonusStars: 6}))
	assert.Error(t, ValidateReward(rewards.Result{BonusCoins: -1}))
}
