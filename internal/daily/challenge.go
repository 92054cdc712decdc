// Package daily assembles the reproducible daily challenge bundles.
package daily

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathforge/internal/catalog"
	"github.com/abhisek/mathforge/internal/problemgen"
)

// BonusTarget is the accuracy percentage and time in seconds a learner must
// reach for the bonus rewards.
type BonusTarget struct {
	Accuracy float64 `json:"accuracy"`
	Time     int     `json:"time"`
}

// Challenge is one day's bundle of questions for a challenge type.
type Challenge struct {
	Date           string                 `json:"date"`
	ChallengeType  string                 `json:"challengeType"`
	Questions      []*problemgen.Question `json:"questions"`
	TotalQuestions int                    `json:"totalQuestions"`
	Objective      string                 `json:"objective"`
	Description    string                 `json:"description"`
	BonusTarget    BonusTarget            `json:"bonusTarget"`
	Concepts       []string               `json:"concepts"`

	// TimeLimit is the hard limit in seconds, set for timed challenges.
	TimeLimit *int `json:"timeLimit,omitempty"`

	// FocusConcept is the single operation of a concept_mastery challenge.
	FocusConcept string `json:"focusConcept,omitempty"`

	// GradeLevel is the grade of a grade_level_challenge.
	GradeLevel string `json:"gradeLevel,omitempty"`

	StreakFocus bool `json:"streakFocus,omitempty"`
}

// idNamespace scopes daily question ids so they never collide with random
// question ids.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/abhisek/mathforge/daily"))

// Assemble builds the challenge of challengeType for the calendar day of
// date. Unknown types fall back to standard_mixed. The result depends only on
// the calendar day and the resolved type.
func Assemble(date time.Time, challengeType string) *Challenge {
	ctype := resolveType(challengeType)
	seed := Seed(date)
	p := strategies[ctype](seed)
	if len(p.ops) == 0 {
		p.ops = standardMixed(seed).ops
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
	ch := &Challenge{
		Date:           day,
		ChallengeType:  ctype,
		Questions:      make([]*problemgen.Question, 0, p.count),
		TotalQuestions: p.count,
		Objective:      p.objective,
		Description:    p.description,
		BonusTarget:    p.bonus,
		Concepts:       []string{},
		FocusConcept:   p.focus,
		GradeLevel:     p.grade,
		StreakFocus:    p.streakFocus,
	}
	if p.timeLimit > 0 {
		limit := p.timeLimit
		ch.TimeLimit = &limit
	}

	seen := make(map[catalog.Operation]bool)
	for i := range p.count {
		op := p.ops[0]
		if len(p.ops) > 1 {
			op = p.ops[Sample(seed, 0, len(p.ops)-1, uint64(i))]
		}
		if !seen[op] {
			seen[op] = true
			ch.Concepts = append(ch.Concepts, string(op))
		}

		id := uuid.NewSHA1(idNamespace, []byte(fmt.Sprintf("%s/%s/%d", day, ctype, i))).String()
		engine := problemgen.New(StreamFor(seed, i), problemgen.Config{})
		q := engine.GenerateWithID(string(op), string(p.level(i, p.count)), id)
		ch.Questions = append(ch.Questions, q)
	}
	return ch
}

// GenerateDailyChallenge is Assemble under its public name.
func GenerateDailyChallenge(date time.Time, challengeType string) *Challenge {
	return Assemble(date, challengeType)
}
