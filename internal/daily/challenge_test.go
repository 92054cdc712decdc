package daily

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathforge/internal/catalog"
	"github.com/abhisek/mathforge/internal/problemgen"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestAssemble_Deterministic(t *testing.T) {
	date := mustDate(t, "2025-03-10")
	for _, ct := range Types() {
		t.Run(ct, func(t *testing.T) {
			a, err := json.Marshal(Assemble(date, ct))
			require.NoError(t, err)
			b, err := json.Marshal(Assemble(date, ct))
			require.NoError(t, err)
			assert.JSONEq(t, string(a), string(b))
			assert.Equal(t, a, b, "challenge JSON must be byte-identical")
		})
	}
}

func TestAssemble_SameDayDifferentClock(t *testing.T) {
	morning := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	night := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	a, _ := json.Marshal(Assemble(morning, TypeConceptMastery))
	b, _ := json.Marshal(Assemble(night, TypeConceptMastery))
	assert.Equal(t, string(a), string(b))
}

func TestAssemble_ConceptMasterySelection(t *testing.T) {
	date := mustDate(t, "2025-03-10")
	a := GenerateDailyChallenge(date, TypeConceptMastery)
	b := GenerateDailyChallenge(date, TypeConceptMastery)

	require.NotEmpty(t, a.FocusConcept)
	assert.Equal(t, a.FocusConcept, b.FocusConcept)
	assert.Equal(t, []string{a.FocusConcept}, a.Concepts)
	require.Len(t, a.Questions, 12)
	for i := range a.Questions {
		assert.Equal(t, a.Questions[i].Operation, b.Questions[i].Operation)
		assert.Equal(t, a.Questions[i].Level, b.Questions[i].Level)
		assert.Equal(t, a.FocusConcept, a.Questions[i].Operation)
	}
	assert.Equal(t, "easy", a.Questions[0].Level)
	assert.Equal(t, "expert", a.Questions[11].Level)
}

func TestAssemble_Strategies(t *testing.T) {
	date := mustDate(t, "2024-11-05")
	tests := []struct {
		ctype     string
		count     int
		accuracy  float64
		time      int
		timeLimit bool
	}{
		{TypeStandardMixed, 10, 80, 300, false},
		{TypeSpeedRound, 20, 85, 90, true},
		{TypeAccuracyFocus, 8, 100, 600, false},
		{TypeConceptMastery, 12, 90, 480, false},
		{TypeWordProblemDay, 6, 80, 600, false},
		{TypeBrainTeaser, 5, 80, 900, false},
		{TypeGradeLevelChallenge, 10, 85, 420, false},
		{TypeStreakBuilder, 15, 90, 360, false},
	}
	for _, tt := range tests {
		t.Run(tt.ctype, func(t *testing.T) {
			ch := Assemble(date, tt.ctype)
			assert.Equal(t, tt.ctype, ch.ChallengeType)
			assert.Equal(t, "2024-11-05", ch.Date)
			assert.Equal(t, tt.count, ch.TotalQuestions)
			assert.Len(t, ch.Questions, tt.count)
			assert.Equal(t, tt.accuracy, ch.BonusTarget.Accuracy)
			assert.Equal(t, tt.time, ch.BonusTarget.Time)
			assert.Equal(t, tt.timeLimit, ch.TimeLimit != nil)
			assert.NotEmpty(t, ch.Objective)
			assert.NotEmpty(t, ch.Description)
			assert.NotEmpty(t, ch.Concepts)

			ids := map[string]bool{}
			validators := problemgen.DefaultConfig().Validators
			for _, q := range ch.Questions {
				assert.False(t, ids[q.ID], "duplicate id %s", q.ID)
				ids[q.ID] = true
				assert.Contains(t, ch.Concepts, q.Operation)
				assert.Nil(t, problemgen.RunValidators(q, validators))
			}
		})
	}
}

func TestAssemble_UnknownTypeFallsBack(t *testing.T) {
	ch := Assemble(mustDate(t, "2025-01-01"), "mystery_tour")
	assert.Equal(t, TypeStandardMixed, ch.ChallengeType)
	assert.Len(t, ch.Questions, 10)
}

func TestAssemble_GradeLevel(t *testing.T) {
	ch := Assemble(mustDate(t, "2025-06-01"), TypeGradeLevelChallenge)
	require.NotEmpty(t, ch.GradeLevel)
	allowed := catalog.ByGrade(ch.GradeLevel)
	for _, q := range ch.Questions {
		assert.Contains(t, allowed, catalog.Operation(q.Operation))
	}
}

func TestAssemble_StreakAndTimedFlags(t *testing.T) {
	date := mustDate(t, "2025-06-01")
	assert.True(t, Assemble(date, TypeStreakBuilder).StreakFocus)

	speed := Assemble(date, TypeSpeedRound)
	require.NotNil(t, speed.TimeLimit)
	assert.Equal(t, 120, *speed.TimeLimit)
}

func TestAssemble_Progressions(t *testing.T) {
	date := mustDate(t, "2025-06-01")
	levels := func(ch *Challenge) []string {
		out := make([]string, len(ch.Questions))
		for i, q := range ch.Questions {
			out[i] = q.Level
		}
		return out
	}

	mixed := levels(Assemble(date, TypeStandardMixed))
	assert.Equal(t, []string{"easy", "easy", "easy", "easy", "medium", "medium", "medium", "hard", "hard", "hard"}, mixed)

	teaser := levels(Assemble(date, TypeBrainTeaser))
	assert.Equal(t, []string{"hard", "hard", "hard", "expert", "expert"}, teaser)

	streak := levels(Assemble(date, TypeStreakBuilder))
	assert.Equal(t, "easy", streak[4])
	assert.Equal(t, "medium", streak[5])
	assert.Equal(t, "hard", streak[14])
}

func TestAssemble_DifferentDaysDiffer(t *testing.T) {
	a, _ := json.Marshal(Assemble(mustDate(t, "2025-03-10"), TypeStandardMixed))
	b, _ := json.Marshal(Assemble(mustDate(t, "2025-03-11"), TypeStandardMixed))
	assert.NotEqual(t, string(a), string(b))
}
