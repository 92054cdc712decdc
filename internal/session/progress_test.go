package session

import "testing"

func TestProgress_Record_Correct(t *testing.T) {
	p := &Progress{Operation: "addition"}

	p.Record(true)

	if p.TotalAttempts != 1 {
		t.Errorf("TotalAttempts = %d, want 1", p.TotalAttempts)
	}
	if p.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", p.CorrectCount)
	}
	if p.Accuracy != 1.0 {
		t.Errorf("Accuracy = %f, want 1.0", p.Accuracy)
	}
}

func TestProgress_Record_Incorrect(t *testing.T) {
	p := &Progress{Operation: "addition"}

	p.Record(false)

	if p.TotalAttempts != 1 {
		t.Errorf("TotalAttempts = %d, want 1", p.TotalAttempts)
	}
	if p.CorrectCount != 0 {
		t.Errorf("CorrectCount = %d, want 0", p.CorrectCount)
	}
	if p.Accuracy != 0.0 {
		t.Errorf("Accuracy = %f, want 0.0", p.Accuracy)
	}
}

func TestProgress_Record_Mixed(t *testing.T) {
	p := &Progress{Operation: "addition"}

	p.Record(true)
	p.Record(true)
	p.Record(false)
	p.Record(true)

	if p.TotalAttempts != 4 {
		t.Errorf("TotalAttempts = %d, want 4", p.TotalAttempts)
	}
	if p.CorrectCount != 3 {
		t.Errorf("CorrectCount = %d, want 3", p.CorrectCount)
	}
	if p.Accuracy != 0.75 {
		t.Errorf("Accuracy = %f, want 0.75", p.Accuracy)
	}
}

func TestAccuracyPercent(t *testing.T) {
	tests := []struct {
		correct, total int
		want           float64
	}{
		{0, 0, 0},
		{3, 4, 75},
		{10, 10, 100},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := AccuracyPercent(tt.correct, tt.total); got != tt.want {
			t.Errorf("AccuracyPercent(%d, %d) = %v, want %v", tt.correct, tt.total, got, tt.want)
		}
	}
}
