package session

// Progress tracks answers for one operation within a session.
type Progress struct {
	Operation     string
	TotalAttempts int
	CorrectCount  int
	Accuracy      float64 // CorrectCount / TotalAttempts (computed)
}

// Record adds a new answer result to the progress.
func (p *Progress) Record(correct bool) {
	p.TotalAttempts++
	if correct {
		p.CorrectCount++
	}
	if p.TotalAttempts > 0 {
		p.Accuracy = float64(p.CorrectCount) / float64(p.TotalAttempts)
	}
}

// AccuracyPercent returns accuracy on the 0-100 scale used by rewards.
func AccuracyPercent(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
