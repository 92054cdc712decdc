package problemgen

import (
	"math"
	"slices"
	"strings"
)

const (
	// widenAfter is the number of consecutive rejections after which the
	// perturbation radius doubles.
	widenAfter = 16

	// maxSynthAttempts bounds random sampling before the deterministic fill.
	maxSynthAttempts = 256
)

// Synthesize returns OptionCount shuffled numeric options around correct,
// rounded to decimals places. The rounded correct value is always included
// exactly once. When correct is non-negative, every option is too.
// A NaN or infinite correct value is treated as 0.
func Synthesize(r Rand, correct float64, decimals int) []string {
	if decimals < 0 {
		decimals = 0
	}
	if math.IsNaN(correct) || math.IsInf(correct, 0) {
		correct = 0
	}
	correct = round(correct, decimals)
	nonNeg := correct >= 0
	values := []float64{correct}

	accept := func(c float64) bool {
		if nonNeg && c < 0 {
			return false
		}
		if slices.Contains(values, c) {
			return false
		}
		values = append(values, c)
		return true
	}

	radius := math.Max(math.Abs(correct)*0.3, 5)
	misses := 0
	for attempt := 0; len(values) < OptionCount && attempt < maxSynthAttempts; attempt++ {
		offset := (r.Float64()*2 - 1) * radius
		if accept(round(correct+offset, decimals)) {
			misses = 0
			continue
		}
		misses++
		if misses%widenAfter == 0 {
			radius *= 2
		}
	}

	// Deterministic fill: correct ± k*step.
	step := math.Pow(10, -float64(decimals))
	for k := 1; len(values) < OptionCount; k++ {
		accept(round(correct+float64(k)*step, decimals))
		if len(values) < OptionCount {
			accept(round(correct-float64(k)*step, decimals))
		}
	}

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = num(v)
	}
	return ShuffleOptions(r, out)
}

// ShuffleOptions shuffles options in place and returns them.
func ShuffleOptions(r Rand, options []string) []string {
	r.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options
}

// ShufflePaired shuffles comparable options and their display labels with
// the same permutation.
func ShufflePaired(r Rand, options, display []string) ([]string, []string) {
	r.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
		display[i], display[j] = display[j], display[i]
	})
	return options, display
}

// withDistractors returns answer plus up to OptionCount-1 distinct entries of
// pool, shuffled. Pool entries equal to the answer are skipped.
func withDistractors(r Rand, answer string, pool []string) []string {
	seen := map[string]bool{strings.ToLower(answer): true}
	var distinct []string
	for _, p := range pool {
		key := strings.ToLower(strings.TrimSpace(p))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		distinct = append(distinct, p)
	}
	r.Shuffle(len(distinct), func(i, j int) { distinct[i], distinct[j] = distinct[j], distinct[i] })
	if len(distinct) > OptionCount-1 {
		distinct = distinct[:OptionCount-1]
	}
	return ShuffleOptions(r, append(distinct, answer))
}

// intPool renders integer distractor candidates, dropping negatives.
func intPool(ns ...int) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		if n >= 0 {
			out = append(out, itoa(n))
		}
	}
	return out
}

// numeric builds a parametric problem with synthesized numeric options.
func numeric(r Rand, question string, answer float64, decimals int, explanation string) RawProblem {
	at := AnswerTypeInteger
	if decimals > 0 {
		at = AnswerTypeDecimal
	}
	answer = round(answer, decimals)
	return RawProblem{
		Question:    question,
		Answer:      num(answer),
		AnswerType:  at,
		Options:     Synthesize(r, answer, decimals),
		Explanation: explanation,
	}
}

// choice builds a problem whose options are drawn from a hand-authored pool.
func choice(r Rand, question, answer string, at AnswerType, pool []string, explanation string) RawProblem {
	return RawProblem{
		Question:    question,
		Answer:      answer,
		AnswerType:  at,
		Options:     withDistractors(r, answer, pool),
		Explanation: explanation,
	}
}

// intChoice is choice for integer answers with integer distractors.
func intChoice(r Rand, question string, answer int, pool []int, explanation string) RawProblem {
	return choice(r, question, itoa(answer), AnswerTypeInteger, intPool(pool...), explanation)
}

// digitChoice offers other single digits as distractors.
func digitChoice(r Rand, question string, digit int, explanation string) RawProblem {
	return intChoice(r, question, digit, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, explanation)
}
