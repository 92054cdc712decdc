package problemgen

import "github.com/abhisek/mathforge/internal/catalog"

// Question is an enriched, display-ready multiple-choice problem.
type Question struct {
	// ID is unique per generated question. Daily challenge questions carry
	// a name-based id so the bundle is reproducible.
	ID string `json:"id"`

	// Operation is the operation that produced the question. Unknown
	// operations fall back to addition and report "addition" here.
	Operation string `json:"operation"`

	// Level is the requested level, verbatim even if unrecognized.
	Level string `json:"level"`

	// Question is the prompt shown to the learner, e.g. "345 + 278".
	Question string `json:"question"`

	// Answer is the canonical correct value.
	// Numbers: "623", "0.75". Fractions: "3/4". Remainders: "7 R2".
	// Index answers refer to an entry in Options.
	Answer string `json:"answer"`

	// AnswerType describes how Answer is compared.
	AnswerType AnswerType `json:"answerType"`

	// Options holds 2-6 unique candidates, exactly one equal to Answer.
	Options []string `json:"options"`

	// OptionsDisplay, when present, is parallel to Options and holds the
	// label shown for each comparable value (e.g. ">" for "0").
	OptionsDisplay []string `json:"optionsDisplay,omitempty"`

	// Explanation is a short worked solution shown after answering.
	Explanation string `json:"explanation"`

	// Tags is category, topical tags and level, deduplicated.
	Tags []string `json:"tags"`

	// Difficulty is 1-10 from the difficulty scale.
	Difficulty int `json:"difficulty"`

	// GradeLevel lists suggested grades in order, "K" through "8".
	GradeLevel []string `json:"gradeLevel"`
}

// AnswerType describes the representation of the correct answer.
type AnswerType string

const (
	AnswerTypeInteger  AnswerType = "integer"  // e.g. "623", "-15"
	AnswerTypeDecimal  AnswerType = "decimal"  // e.g. "3.75", "0.5"
	AnswerTypeFraction AnswerType = "fraction" // e.g. "3/4", "7/2"
	AnswerTypeText     AnswerType = "text"     // e.g. "7 R2", "even", "2:3"
	AnswerTypeIndex    AnswerType = "index"    // e.g. "1", paired with OptionsDisplay
)

// RawProblem is a generator's output before enrichment.
type RawProblem struct {
	Question       string
	Answer         string
	AnswerType     AnswerType
	Options        []string
	OptionsDisplay []string
	Explanation    string
}

// Generator renders one problem of an operation at a level. Unknown levels
// resolve to the generator's easiest bucket.
type Generator func(r Rand, level catalog.Level) RawProblem
