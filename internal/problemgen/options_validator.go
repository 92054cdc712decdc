package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var fractionPattern = regexp.MustCompile(`^-?\d+/\d+$`)

const (
	// OptionCount is the number of options generators aim for.
	OptionCount = 4

	// MinOptions and MaxOptions bound the options of a valid question.
	MinOptions = 2
	MaxOptions = 6
)

// OptionsValidator checks that the answer string matches the declared
// answerType and that the multiple choice constraints are satisfied.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *Question) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...), Retryable: true}
	}

	// Validate answer matches declared type.
	switch q.AnswerType {
	case AnswerTypeInteger, AnswerTypeIndex:
		if err := validateInteger(q.Answer); err != nil {
			return fail("invalid %s answer %q: %s", q.AnswerType, q.Answer, err)
		}
	case AnswerTypeDecimal:
		if err := validateDecimal(q.Answer); err != nil {
			return fail("invalid decimal answer %q: %s", q.Answer, err)
		}
	case AnswerTypeFraction:
		if err := validateFraction(q.Answer); err != nil {
			return fail("invalid fraction answer %q: %s", q.Answer, err)
		}
	case AnswerTypeText:
		if strings.TrimSpace(q.Answer) == "" {
			return fail("text answer is empty")
		}
	}

	if len(q.Options) < MinOptions || len(q.Options) > MaxOptions {
		return fail("must have %d-%d options, got %d", MinOptions, MaxOptions, len(q.Options))
	}

	// All options must be non-empty and distinct.
	seen := make(map[string]bool, len(q.Options))
	for i, o := range q.Options {
		o = strings.TrimSpace(o)
		if o == "" {
			return fail("option %d is empty", i+1)
		}
		key := strings.ToLower(o)
		if seen[key] {
			return fail("duplicate option %q", o)
		}
		seen[key] = true
	}

	// Exactly one option must match the answer.
	if !seen[strings.ToLower(strings.TrimSpace(q.Answer))] {
		return fail("answer %q not found in options", q.Answer)
	}

	if len(q.OptionsDisplay) > 0 {
		if len(q.OptionsDisplay) != len(q.Options) {
			return fail("optionsDisplay has %d labels for %d options", len(q.OptionsDisplay), len(q.Options))
		}
		for i, d := range q.OptionsDisplay {
			if strings.TrimSpace(d) == "" {
				return fail("display label %d is empty", i+1)
			}
		}
	}

	return nil
}

// validateInteger checks that s is a valid integer string with no leading zeros.
func validateInteger(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("not a valid integer")
	}
	// Check for leading zeros: formatted back should match.
	if strconv.FormatInt(n, 10) != s {
		return fmt.Errorf("has leading zeros")
	}
	return nil
}

// validateDecimal checks that s is a valid decimal string with no trailing zeros.
func validateDecimal(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a valid decimal")
	}
	normalized := strconv.FormatFloat(f, 'f', -1, 64)
	if normalized != s {
		return fmt.Errorf("has trailing zeros or is not normalized (expected %q)", normalized)
	}
	return nil
}

// validateFraction checks that s matches a/b pattern, denominator > 0, and is in lowest terms.
func validateFraction(s string) error {
	if !fractionPattern.MatchString(s) {
		return fmt.Errorf("does not match fraction pattern a/b")
	}
	num, den, err := parseFraction(s)
	if err != nil {
		return err
	}
	if den <= 0 {
		return fmt.Errorf("denominator must be positive")
	}
	if gcd(num, den) != 1 {
		return fmt.Errorf("fraction is not in lowest terms")
	}
	return nil
}
