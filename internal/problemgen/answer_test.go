package problemgen

import "testing"

func TestCheckAnswer_Integer(t *testing.T) {
	q := &Question{
		Answer:     "42",
		AnswerType: AnswerTypeInteger,
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"42", true},
		{" 42 ", true},
		{"042", true},
		{"43", false},
		{"", false},
		{"abc", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, q)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 42/integer) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Decimal(t *testing.T) {
	q := &Question{
		Answer:     "3.5",
		AnswerType: AnswerTypeDecimal,
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"3.5", true},
		{"3.50", true},
		{"3.500", true},
		{" 3.5 ", true},
		{"3.6", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, q)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 3.5/decimal) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Fraction(t *testing.T) {
	q := &Question{
		Answer:     "1/2",
		AnswerType: AnswerTypeFraction,
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"1/2", true},
		{"2/4", true},
		{"3/6", true},
		{" 1/2 ", true},
		{"1/3", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, q)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 1/2/fraction) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckChoice(t *testing.T) {
	q := &Question{
		Answer:     "3/4",
		AnswerType: AnswerTypeFraction,
		Options:    []string{"1/2", "3/4", "2/3", "1/4"},
	}

	if !CheckChoice(2, q) {
		t.Error("expected position 2 to match option '3/4'")
	}
	for _, pos := range []int{0, 1, 5, -1} {
		if CheckChoice(pos, q) {
			t.Errorf("expected position %d not to match", pos)
		}
	}
}

func TestCheckAnswer_Text_CaseAndSpacing(t *testing.T) {
	q := &Question{
		Answer:     "7 R2",
		AnswerType: AnswerTypeText,
		Options:    []string{"7 R2", "6 R2", "7 R1", "8 R2"},
	}

	if !CheckAnswer("7  r2", q) {
		t.Error("expected case and spacing to be ignored")
	}
	if CheckAnswer("7 R1", q) {
		t.Error("expected '7 R1' not to match")
	}
}

func TestCheckAnswer_IndexAcceptsLabel(t *testing.T) {
	q := &Question{
		Answer:         "1",
		AnswerType:     AnswerTypeIndex,
		Options:        []string{"2", "1", "0"},
		OptionsDisplay: []string{"=", "<", ">"},
	}

	if !CheckAnswer("<", q) {
		t.Error("expected display label '<' to match")
	}
	if !CheckAnswer("1", q) {
		t.Error("expected raw index '1' to match")
	}
	if CheckAnswer(">", q) {
		t.Error("expected '>' not to match")
	}
}

func TestDisplayOptions(t *testing.T) {
	q := &Question{Options: []string{"0", "1"}, OptionsDisplay: []string{">", "<"}}
	got := DisplayOptions(q)
	if len(got) != 2 || got[0] != ">" || got[1] != "<" {
		t.Errorf("DisplayOptions() = %v, want display labels", got)
	}

	q.OptionsDisplay = nil
	got = DisplayOptions(q)
	if len(got) != 2 || got[0] != "0" {
		t.Errorf("DisplayOptions() = %v, want raw options", got)
	}
}

func TestCheckAnswer_DecimalTolerance(t *testing.T) {
	q := &Question{Answer: "0.3", AnswerType: AnswerTypeDecimal}
	if !CheckAnswer("0.30000000000000004", q) {
		t.Error("expected float noise to be tolerated")
	}
}
