package problemgen

import (
	"slices"

	"github.com/abhisek/mathforge/internal/catalog"
)

// Enrich attaches curriculum metadata to a raw problem. Operations missing
// from the catalog get the default metadata and unknown levels get the
// default difficulty; Enrich never fails.
func Enrich(raw RawProblem, op catalog.Operation, level catalog.Level, id string) *Question {
	meta := catalog.MetadataFor(op)

	tags := make([]string, 0, len(meta.Tags)+2)
	seen := make(map[string]bool, cap(tags))
	for _, t := range slices.Concat([]string{string(meta.Category)}, meta.Tags, []string{string(level)}) {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}

	options := raw.Options
	if options == nil {
		options = []string{}
	}

	return &Question{
		ID:             id,
		Operation:      string(op),
		Level:          string(level),
		Question:       raw.Question,
		Answer:         raw.Answer,
		AnswerType:     raw.AnswerType,
		Options:        options,
		OptionsDisplay: raw.OptionsDisplay,
		Explanation:    raw.Explanation,
		Tags:           tags,
		Difficulty:     catalog.Difficulty(level),
		GradeLevel:     slices.Clone(meta.Grades),
	}
}
