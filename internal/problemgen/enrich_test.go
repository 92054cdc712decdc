package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/mathforge/internal/catalog"
)

func TestEnrich_KnownOperation(t *testing.T) {
	raw := RawProblem{
		Question:    "3 + 4",
		Answer:      "7",
		AnswerType:  AnswerTypeInteger,
		Options:     []string{"6", "7", "8", "9"},
		Explanation: "3 + 4 = 7.",
	}
	q := Enrich(raw, catalog.OpAddition, catalog.LevelHard, "id-1")

	meta := catalog.MetadataFor(catalog.OpAddition)
	assert.Equal(t, "id-1", q.ID)
	assert.Equal(t, "addition", q.Operation)
	assert.Equal(t, "hard", q.Level)
	assert.Equal(t, 7, q.Difficulty)
	assert.Equal(t, meta.Grades, q.GradeLevel)
	assert.Equal(t, string(meta.Category), q.Tags[0])
	assert.Equal(t, "hard", q.Tags[len(q.Tags)-1])
}

func TestEnrich_DeduplicatesTags(t *testing.T) {
	q := Enrich(RawProblem{}, catalog.OpAddition, catalog.Level(catalog.CategoryCore), "id")
	seen := map[string]bool{}
	for _, tag := range q.Tags {
		assert.False(t, seen[tag], "duplicate tag %q", tag)
		seen[tag] = true
	}
}

func TestEnrich_UnknownOperationUsesDefaults(t *testing.T) {
	q := Enrich(RawProblem{}, "not_in_catalog", "mystery", "id")
	assert.Equal(t, []string{"core", "mystery"}, q.Tags)
	assert.Equal(t, []string{"3"}, q.GradeLevel)
	assert.Equal(t, catalog.DefaultDifficulty, q.Difficulty)
	assert.NotNil(t, q.Options)
}
