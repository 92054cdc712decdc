package problemgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's input against the correct answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed
// - Comparison is case-insensitive
// - For fractions: equivalent fractions are accepted (e.g., "2/4" matches "1/2")
// - For decimals: trailing zeros are ignored (e.g., "3.50" matches "3.5")
// - For integers: leading zeros are ignored (e.g., "007" matches "7")
// - For index answers: the display label of the correct option is accepted
func CheckAnswer(learnerAnswer string, question *Question) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}

	if question.AnswerType == AnswerTypeIndex {
		if label, ok := displayLabel(question, question.Answer); ok && strings.EqualFold(learnerAnswer, label) {
			return true
		}
	}

	return answersEqual(learnerAnswer, question.Answer, question.AnswerType)
}

// CheckChoice reports whether the 1-based option position is the correct one.
func CheckChoice(position int, question *Question) bool {
	if position < 1 || position > len(question.Options) {
		return false
	}
	return strings.EqualFold(
		strings.TrimSpace(question.Options[position-1]),
		strings.TrimSpace(question.Answer),
	)
}

// DisplayOptions returns the labels a learner sees, in option order.
func DisplayOptions(question *Question) []string {
	if len(question.OptionsDisplay) == len(question.Options) && len(question.OptionsDisplay) > 0 {
		return question.OptionsDisplay
	}
	return question.Options
}

func displayLabel(question *Question, value string) (string, bool) {
	if len(question.OptionsDisplay) != len(question.Options) {
		return "", false
	}
	for i, o := range question.Options {
		if o == value {
			return question.OptionsDisplay[i], true
		}
	}
	return "", false
}

// answersEqual compares two answer strings for equality, with normalization.
// Decimals compare within a small tolerance so binary rounding noise in a
// recomputed value does not count as a mismatch.
func answersEqual(a, b string, answerType AnswerType) bool {
	if answerType == AnswerTypeDecimal {
		fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
		fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
		if errA == nil && errB == nil {
			return math.Abs(fa-fb) < 1e-9
		}
	}
	na, err := normalizeAnswer(a, answerType)
	if err != nil {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	nb, err := normalizeAnswer(b, answerType)
	if err != nil {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	return na == nb
}

// normalizeAnswer normalizes an answer string for comparison.
func normalizeAnswer(answer string, answerType AnswerType) (string, error) {
	answer = strings.TrimSpace(answer)

	switch answerType {
	case AnswerTypeInteger, AnswerTypeIndex:
		n, err := strconv.ParseInt(answer, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid integer: %w", err)
		}
		return strconv.FormatInt(n, 10), nil

	case AnswerTypeDecimal:
		f, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return "", fmt.Errorf("invalid decimal: %w", err)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil

	case AnswerTypeFraction:
		num, den, err := parseFraction(answer)
		if err != nil {
			return "", err
		}
		if den == 0 {
			return "", fmt.Errorf("zero denominator")
		}
		// Normalize sign: negative sign on numerator only.
		if den < 0 {
			num = -num
			den = -den
		}
		g := gcd(num, den)
		num /= g
		den /= g
		return fmt.Sprintf("%d/%d", num, den), nil

	default:
		return strings.ToLower(strings.Join(strings.Fields(answer), " ")), nil
	}
}

// parseFraction parses "a/b" into numerator and denominator.
func parseFraction(s string) (int, int, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}
