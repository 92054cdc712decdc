package schema

import (
	"github.com/abhisek/mathforge/internal/catalog"
	"github.com/abhisek/mathforge/internal/daily"
	"github.com/abhisek/mathforge/internal/problemgen"
	"github.com/abhisek/mathforge/internal/rewards"
)

func enumOf(values ...string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func nonEmptyString(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"minLength":   1,
		"description": description,
	}
}

func stringArray(minItems int) map[string]any {
	return map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "string"},
		"minItems": minItems,
	}
}

func questionDefinition() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":        nonEmptyString("Unique question id"),
			"operation": nonEmptyString("Operation that produced the question"),
			"level":     map[string]any{"type": "string"},
			"question":  nonEmptyString("Prompt shown to the learner"),
			"answer":    nonEmptyString("Canonical correct value"),
			"answerType": map[string]any{
				"type": "string",
				"enum": enumOf(
					string(problemgen.AnswerTypeInteger),
					string(problemgen.AnswerTypeDecimal),
					string(problemgen.AnswerTypeFraction),
					string(problemgen.AnswerTypeText),
					string(problemgen.AnswerTypeIndex),
				),
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string", "minLength": 1},
				"minItems":    problemgen.MinOptions,
				"maxItems":    problemgen.MaxOptions,
				"uniqueItems": true,
			},
			"optionsDisplay": stringArray(problemgen.MinOptions),
			"explanation":    nonEmptyString("Worked solution"),
			"tags":           stringArray(1),
			"difficulty": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": 10,
			},
			"gradeLevel": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "enum": enumOf(catalog.Grades()...)},
				"minItems": 1,
			},
		},
		"required": enumOf(
			"id", "operation", "level", "question", "answer", "answerType",
			"options", "explanation", "tags", "difficulty", "gradeLevel",
		),
		"additionalProperties": false,
	}
}

// QuestionSchema describes an enriched question.
var QuestionSchema = &Schema{
	Name:        "math-question",
	Description: "A single multiple-choice math question with answer and explanation",
	Definition:  questionDefinition(),
}

// ChallengeSchema describes a daily challenge bundle.
var ChallengeSchema = &Schema{
	Name:        "daily-challenge",
	Description: "One day's bundle of questions for a challenge type",
	Definition: map[string]any{
		"type": "object",
		"$defs": map[string]any{
			"question": questionDefinition(),
		},
		"properties": map[string]any{
			"date": map[string]any{
				"type":    "string",
				"pattern": `^\d{4}-\d{2}-\d{2}$`,
			},
			"challengeType": map[string]any{
				"type": "string",
				"enum": enumOf(daily.Types()...),
			},
			"questions": map[string]any{
				"type":     "array",
				"items":    map[string]any{"$ref": "#/$defs/question"},
				"minItems": 1,
			},
			"totalQuestions": map[string]any{"type": "integer", "minimum": 1},
			"objective":      nonEmptyString("What the learner should aim for"),
			"description":    nonEmptyString("Summary of the challenge"),
			"bonusTarget": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"accuracy": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
					"time":     map[string]any{"type": "integer", "minimum": 0},
				},
				"required":             enumOf("accuracy", "time"),
				"additionalProperties": false,
			},
			"concepts":     stringArray(1),
			"timeLimit":    map[string]any{"type": "integer", "minimum": 1},
			"focusConcept": map[string]any{"type": "string"},
			"gradeLevel":   map[string]any{"type": "string", "enum": enumOf(catalog.Grades()...)},
			"streakFocus":  map[string]any{"type": "boolean"},
		},
		"required": enumOf(
			"date", "challengeType", "questions", "totalQuestions", "objective",
			"description", "bonusTarget", "concepts",
		),
		"additionalProperties": false,
	},
}

// RewardSchema describes a reward result.
var RewardSchema = &Schema{
	Name:        "challenge-reward",
	Description: "Bonus stars and coins earned for a daily challenge",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"bonusStars":        map[string]any{"type": "integer", "minimum": 0, "maximum": rewards.MaxStars},
			"bonusCoins":        map[string]any{"type": "integer", "minimum": 0},
			"perfectScoreBonus": map[string]any{"type": "boolean"},
			"speedBonus":        map[string]any{"type": "boolean"},
		},
		"required":             enumOf("bonusStars", "bonusCoins", "perfectScoreBonus", "speedBonus"),
		"additionalProperties": false,
	},
}

// ValidateQuestion checks q against QuestionSchema.
func ValidateQuestion(q *problemgen.Question) error {
	return ValidateValue(QuestionSchema, q)
}

// ValidateChallenge checks ch against ChallengeSchema.
func ValidateChallenge(ch *daily.Challenge) error {
	return ValidateValue(ChallengeSchema, ch)
}

// ValidateReward checks res against RewardSchema.
func ValidateReward(res rewards.Result) error {
	return ValidateValue(RewardSchema, res)
}
