package problemgen

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}
	if q.ID == "" {
		return fail("id is empty")
	}
	if q.Operation == "" {
		return fail("operation is empty")
	}
	if q.Question == "" {
		return fail("question is empty")
	}
	if len(q.Question) > 500 {
		return fail("question exceeds 500 characters")
	}
	if q.Explanation == "" {
		return fail("explanation is empty")
	}
	if len(q.Explanation) > 1000 {
		return fail("explanation exceeds 1000 characters")
	}
	if q.Difficulty < 1 || q.Difficulty > 10 {
		return fail("difficulty must be between 1 and 10")
	}
	switch q.AnswerType {
	case AnswerTypeInteger, AnswerTypeDecimal, AnswerTypeFraction, AnswerTypeText, AnswerTypeIndex:
	default:
		return fail("answerType must be \"integer\", \"decimal\", \"fraction\", \"text\", or \"index\"")
	}
	if q.AnswerType == AnswerTypeIndex && len(q.OptionsDisplay) == 0 {
		return fail("answerType \"index\" requires optionsDisplay")
	}
	if len(q.Tags) == 0 {
		return fail("tags are empty")
	}
	if len(q.GradeLevel) == 0 {
		return fail("gradeLevel is empty")
	}
	return nil
}
