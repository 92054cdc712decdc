package problemgen

import (
	"strconv"

	"github.com/abhisek/mathforge/internal/catalog"
)

// item is a hand-authored bank entry.
type item struct {
	q       string
	a       string
	options []string
	why     string
}

// fromBank picks one item uniformly from the level's bucket and shuffles its
// options.
func fromBank(r Rand, level catalog.Level, buckets ...[]item) RawProblem {
	it := pick(r, byLevel(level, buckets...))
	return choice(r, it.q, it.a, detectAnswerType(it.a), it.options, it.why)
}

// detectAnswerType infers the answer type of a hand-authored answer.
func detectAnswerType(a string) AnswerType {
	if validateInteger(a) == nil {
		return AnswerTypeInteger
	}
	if validateFraction(a) == nil {
		return AnswerTypeFraction
	}
	if _, err := strconv.ParseFloat(a, 64); err == nil && validateDecimal(a) == nil {
		return AnswerTypeDecimal
	}
	return AnswerTypeText
}
