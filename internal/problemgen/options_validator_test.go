package problemgen

import "testing"

// withAnswer returns a valid question whose answer is a, listed among
// filler options.
func withAnswer(at AnswerType, a string) *Question {
	q := validQuestion()
	q.AnswerType = at
	q.Answer = a
	q.Options = []string{"filler-1", a, "filler-2"}
	return q
}

func TestOptions_Integer(t *testing.T) {
	v := &OptionsValidator{}

	for _, a := range []string{"42", "0", "-5", "1000"} {
		if err := v.Validate(withAnswer(AnswerTypeInteger, a)); err != nil {
			t.Errorf("expected %q to be valid integer, got: %v", a, err)
		}
	}
	for _, a := range []string{"3.5", "abc", "3/4", "007", ""} {
		if err := v.Validate(withAnswer(AnswerTypeInteger, a)); err == nil {
			t.Errorf("expected %q to be invalid integer", a)
		}
	}
}

func TestOptions_Decimal(t *testing.T) {
	v := &OptionsValidator{}

	for _, a := range []string{"3.5", "0.75", "-2.1", "0", "100"} {
		if err := v.Validate(withAnswer(AnswerTypeDecimal, a)); err != nil {
			t.Errorf("expected %q to be valid decimal, got: %v", a, err)
		}
	}
	for _, a := range []string{"abc", "3.50"} {
		if err := v.Validate(withAnswer(AnswerTypeDecimal, a)); err == nil {
			t.Errorf("expected %q to be invalid decimal", a)
		}
	}
}

func TestOptions_Fraction(t *testing.T) {
	v := &OptionsValidator{}

	for _, a := range []string{"3/4", "1/2", "-7/3", "1/1"} {
		if err := v.Validate(withAnswer(AnswerTypeFraction, a)); err != nil {
			t.Errorf("expected %q to be valid fraction, got: %v", a, err)
		}
	}
	for _, a := range []string{"3/0", "2/4", "abc", "3.5", ""} {
		if err := v.Validate(withAnswer(AnswerTypeFraction, a)); err == nil {
			t.Errorf("expected %q to be invalid fraction", a)
		}
	}
}

func TestOptions_Text(t *testing.T) {
	v := &OptionsValidator{}
	if err := v.Validate(withAnswer(AnswerTypeText, "7 R2")); err != nil {
		t.Errorf("expected valid text answer, got: %v", err)
	}
	if err := v.Validate(withAnswer(AnswerTypeText, "  ")); err == nil {
		t.Error("expected error for blank text answer")
	}
}

func TestOptions_Shape(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		options []string
		wantErr bool
	}{
		{"four distinct", "623", []string{"612", "623", "633", "652"}, false},
		{"two options", "623", []string{"623", "612"}, false},
		{"six options", "1", []string{"1", "2", "3", "4", "5", "6"}, false},
		{"one option", "623", []string{"623"}, true},
		{"seven options", "1", []string{"1", "2", "3", "4", "5", "6", "7"}, true},
		{"duplicate", "623", []string{"612", "623", "623", "652"}, true},
		{"blank option", "623", []string{"612", "623", " "}, true},
		{"answer missing", "999", []string{"612", "623", "633", "652"}, true},
	}
	v := &OptionsValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			q.Answer = tt.answer
			q.Options = tt.options
			err := v.Validate(q)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptions_DuplicateIgnoresCase(t *testing.T) {
	v := &OptionsValidator{}
	q := withAnswer(AnswerTypeText, "even")
	q.Options = []string{"even", "EVEN", "odd"}
	if err := v.Validate(q); err == nil {
		t.Error("expected error for case-insensitive duplicate")
	}
}

func TestOptions_Display(t *testing.T) {
	v := &OptionsValidator{}

	q := withAnswer(AnswerTypeIndex, "1")
	q.Options = []string{"0", "1", "2"}
	q.OptionsDisplay = []string{">", "<", "="}
	if err := v.Validate(q); err != nil {
		t.Fatalf("expected valid display, got: %v", err)
	}

	q.OptionsDisplay = []string{">", "<"}
	if err := v.Validate(q); err == nil {
		t.Error("expected error for mismatched display length")
	}

	q.OptionsDisplay = []string{">", "", "="}
	if err := v.Validate(q); err == nil {
		t.Error("expected error for empty display label")
	}
}
