package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MathCheckValidator independently recomputes the answer when the question
// text is a single binary expression, such as "345 + 278", "Add: 2.5 + 1.7"
// or "3/4 ÷ 1/2". Anything else passes through silently.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	computed, err := computeAnswer(q.Question, q.AnswerType)
	if err != nil {
		// Not a bare expression (word problem, comparison, etc.)
		return nil
	}
	if !answersEqual(computed, q.Answer, q.AnswerType) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %q but question claims %q", computed, q.Answer),
			Retryable: true,
		}
	}
	return nil
}

// Expressions must span the whole question, optionally behind a short
// "Label:" or "What is" prefix and before a "= ?" or "?" suffix.
const (
	exprPrefix = `^(?:[A-Za-z][A-Za-z ]*:\s*)?(?:What is\s+)?`
	exprSuffix = `\s*(?:=\s*\?)?\s*\??$`
	numToken   = `(\(?-?\d+(?:\.\d+)?\)?)`
)

var (
	// Fraction arithmetic: "a/b + c/d", "a/b - c/d", "a/b × c/d", "a/b ÷ c/d"
	fractionArithRe = regexp.MustCompile(exprPrefix + `(-?\d+)/(\d+)\s*([+\-*×÷])\s*(-?\d+)/(\d+)` + exprSuffix)

	// Integer/decimal arithmetic with +, -, *, ×, ÷
	intArithRe = regexp.MustCompile(exprPrefix + numToken + `\s*([+\-*×÷])\s*` + numToken + exprSuffix)

	// Division with "/" requires spaces to distinguish from fractions (3/4 vs 144 / 12).
	intDivRe = regexp.MustCompile(exprPrefix + numToken + `\s+/\s+` + numToken + exprSuffix)
)

// computeAnswer attempts to extract and compute the answer from question text.
// Returns the computed answer as a string, or an error if not computable.
func computeAnswer(text string, answerType AnswerType) (string, error) {
	if answerType == AnswerTypeFraction || answerType == AnswerTypeInteger {
		if result, err := tryFractionArith(text); err == nil {
			return result, nil
		}
	}

	if answerType == AnswerTypeInteger || answerType == AnswerTypeDecimal {
		if result, err := tryIntArith(text, answerType); err == nil {
			return result, nil
		}
	}

	return "", fmt.Errorf("not computable")
}

// tryFractionArith tries to extract and compute fraction arithmetic.
func tryFractionArith(text string) (string, error) {
	matches := fractionArithRe.FindStringSubmatch(text)
	if matches == nil {
		return "", fmt.Errorf("no fraction expression found")
	}

	aN, _ := strconv.Atoi(matches[1])
	aD, _ := strconv.Atoi(matches[2])
	op := normalizeOp(matches[3])
	bN, _ := strconv.Atoi(matches[4])
	bD, _ := strconv.Atoi(matches[5])

	if aD == 0 || bD == 0 {
		return "", fmt.Errorf("zero denominator")
	}

	var rN, rD int
	switch op {
	case "+":
		rN = aN*bD + bN*aD
		rD = aD * bD
	case "-":
		rN = aN*bD - bN*aD
		rD = aD * bD
	case "*":
		rN = aN * bN
		rD = aD * bD
	case "/":
		if bN == 0 {
			return "", fmt.Errorf("division by zero")
		}
		rN = aN * bD
		rD = aD * bN
	default:
		return "", fmt.Errorf("unsupported operator: %s", op)
	}

	return newRat(rN, rD).String(), nil
}

// tryIntArith tries to extract and compute integer/decimal arithmetic.
func tryIntArith(text string, answerType AnswerType) (string, error) {
	if m := intArithRe.FindStringSubmatch(text); m != nil {
		return computeIntOp(m[1], normalizeOp(m[2]), m[3], answerType)
	}
	if m := intDivRe.FindStringSubmatch(text); m != nil {
		return computeIntOp(m[1], "/", m[2], answerType)
	}
	return "", fmt.Errorf("no arithmetic expression found")
}

// computeIntOp evaluates a binary arithmetic operation on two number strings.
// Operands may be wrapped in parentheses, e.g. "(-4)".
func computeIntOp(aStr, op, bStr string, answerType AnswerType) (string, error) {
	a, err := strconv.ParseFloat(strings.Trim(aStr, "()"), 64)
	if err != nil {
		return "", err
	}
	b, err := strconv.ParseFloat(strings.Trim(bStr, "()"), 64)
	if err != nil {
		return "", err
	}

	var result float64
	switch op {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*":
		result = a * b
	case "/":
		if b == 0 {
			return "", fmt.Errorf("division by zero")
		}
		result = a / b
	default:
		return "", fmt.Errorf("unsupported operator: %s", op)
	}

	if answerType == AnswerTypeInteger {
		if result == float64(int64(result)) {
			return strconv.FormatInt(int64(result), 10), nil
		}
	}
	return strconv.FormatFloat(result, 'f', -1, 64), nil
}

// normalizeOp normalizes multiplication and division symbols.
func normalizeOp(op string) string {
	switch op {
	case "×":
		return "*"
	case "÷":
		return "/"
	default:
		return op
	}
}
