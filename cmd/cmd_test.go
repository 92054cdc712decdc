package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathforge/internal/daily"
	"github.com/abhisek/mathforge/internal/problemgen"
	"github.com/abhisek/mathforge/internal/session"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, "mathforge (devel)\n", execute(t, "version"))
}

func TestCatalogLevels(t *testing.T) {
	out := execute(t, "catalog", "levels")
	for _, level := range []string{"easy", "medium", "hard", "expert"} {
		assert.Contains(t, out, level)
	}
}

func TestQuestionJSONIsReproducible(t *testing.T) {
	args := []string{"--no-store", "question", "fractions", "--level", "medium", "--count", "3", "--seed", "11", "--json"}
	first := execute(t, args...)
	second := execute(t, args...)
	assert.Equal(t, first, second)

	var questions []problemgen.Question
	require.NoError(t, json.Unmarshal([]byte(first), &questions))
	require.Len(t, questions, 3)
	for _, q := range questions {
		assert.Equal(t, "fractions", q.Operation)
		assert.Equal(t, "medium", q.Level)
	}
}

func TestDailyJSON(t *testing.T) {
	out := execute(t, "--no-store", "daily", "--date", "2025-03-10", "--type", "speed_round", "--json")

	var ch daily.Challenge
	require.NoError(t, json.Unmarshal([]byte(out), &ch))
	assert.Equal(t, "2025-03-10", ch.Date)
	assert.Equal(t, daily.TypeSpeedRound, ch.ChallengeType)
	assert.Len(t, ch.Questions, 20)
}

func TestRewardsCommand(t *testing.T) {
	out := execute(t, "--no-store", "rewards", "--date", "2025-03-10", "--type", "standard_mixed",
		"--accuracy", "96", "--time", "100", "--streak", "5")
	assert.Contains(t, out, "★★★★★")
	assert.Contains(t, out, "70 coins")
	assert.Contains(t, out, "Perfect score bonus!")
	assert.Contains(t, out, "Speed bonus!")
}

func quizChallenge() *daily.Challenge {
	q := func(answer string) *problemgen.Question {
		return &problemgen.Question{
			Operation:   "addition",
			Level:       "easy",
			Question:    "? + 0",
			Answer:      answer,
			AnswerType:  problemgen.AnswerTypeInteger,
			Options:     []string{answer, "90", "91", "92"},
			Explanation: "adding zero",
		}
	}
	return &daily.Challenge{
		Date:          "2025-03-10",
		ChallengeType: daily.TypeStandardMixed,
		Questions:     []*problemgen.Question{q("1"), q("2"), q("3"), q("4")},
	}
}

func TestRunQuiz(t *testing.T) {
	state := session.NewChallengeState(quizChallenge())
	// letter choice, typed answer, wrong letter, skip
	in := strings.NewReader("a\n2\nb\n\n")
	var out bytes.Buffer

	summary := runQuiz(in, &out, state)

	assert.Equal(t, 4, summary.TotalQuestions)
	assert.Equal(t, 2, summary.TotalCorrect)
	assert.Equal(t, 2, summary.BestStreak)
	assert.Contains(t, out.String(), "✓ Correct!")
	assert.Contains(t, out.String(), "Answer: 3")
	assert.Contains(t, out.String(), "(skipped)")
	assert.Contains(t, out.String(), "── Summary: 2/4 correct (50%)")
}

func TestRunQuiz_InputClosed(t *testing.T) {
	state := session.NewChallengeState(quizChallenge())
	var out bytes.Buffer

	summary := runQuiz(strings.NewReader("1\n"), &out, state)

	assert.Equal(t, 1, summary.TotalQuestions)
	assert.InDelta(t, 25.0, summary.Accuracy, 0.001)
	assert.Contains(t, out.String(), "(input closed)")
	assert.Contains(t, out.String(), "── Summary: 1/4 correct (25%)")
}

func TestParseChoice(t *testing.T) {
	q := &problemgen.Question{Options: []string{"1", "2", "3"}}

	tests := []struct {
		input string
		pos   int
		ok    bool
	}{
		{"a", 1, true},
		{"C", 3, true},
		{"d", 0, false},
		{"7", 0, false},
		{"ab", 0, false},
	}
	for _, tt := range tests {
		pos, ok := parseChoice(tt.input, q)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.pos, pos, tt.input)
	}
}
