package problemgen

import (
	"strings"
	"testing"
)

func validQuestion() *Question {
	return &Question{
		ID:          "q-1",
		Operation:   "addition",
		Level:       "medium",
		Question:    "345 + 278",
		Answer:      "623",
		AnswerType:  AnswerTypeInteger,
		Options:     []string{"613", "623", "633", "523"},
		Explanation: "345 + 278 = 623",
		Tags:        []string{"core", "arithmetic", "medium"},
		Difficulty:  4,
		GradeLevel:  []string{"1", "2", "3"},
	}
}

func TestStructural_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validQuestion()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_EmptyQuestionText(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Question = ""
	err := v.Validate(q)
	if err == nil {
		t.Fatal("expected error for empty question")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestStructural_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
	}{
		{"empty id", func(q *Question) { q.ID = "" }},
		{"empty operation", func(q *Question) { q.Operation = "" }},
		{"empty explanation", func(q *Question) { q.Explanation = "" }},
		{"no tags", func(q *Question) { q.Tags = nil }},
		{"no grades", func(q *Question) { q.GradeLevel = []string{} }},
		{"question too long", func(q *Question) { q.Question = strings.Repeat("a", 501) }},
		{"explanation too long", func(q *Question) { q.Explanation = strings.Repeat("a", 1001) }},
		{"index without display", func(q *Question) { q.AnswerType = AnswerTypeIndex }},
	}
	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			if err := v.Validate(q); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestStructural_DifficultyOutOfRange(t *testing.T) {
	v := &StructuralValidator{}
	for _, d := range []int{0, -1, 11, 100} {
		q := validQuestion()
		q.Difficulty = d
		if err := v.Validate(q); err == nil {
			t.Errorf("expected error for difficulty %d", d)
		}
	}
}

func TestStructural_ValidDifficulty(t *testing.T) {
	v := &StructuralValidator{}
	for _, d := range []int{1, 2, 4, 7, 9, 10} {
		q := validQuestion()
		q.Difficulty = d
		if err := v.Validate(q); err != nil {
			t.Errorf("unexpected error for difficulty %d: %v", d, err)
		}
	}
}

func TestStructural_UnknownAnswerType(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.AnswerType = "boolean"
	if err := v.Validate(q); err == nil {
		t.Fatal("expected error for unknown answerType")
	}
}
