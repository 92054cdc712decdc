package daily

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathforge/internal/catalog"
)

// Challenge types.
const (
	TypeStandardMixed       = "standard_mixed"
	TypeSpeedRound          = "speed_round"
	TypeAccuracyFocus       = "accuracy_focus"
	TypeConceptMastery      = "concept_mastery"
	TypeWordProblemDay      = "word_problem_day"
	TypeBrainTeaser         = "brain_teaser"
	TypeGradeLevelChallenge = "grade_level_challenge"
	TypeStreakBuilder       = "streak_builder"
)

// Types returns every challenge type in display order.
func Types() []string {
	return []string{
		TypeStandardMixed,
		TypeSpeedRound,
		TypeAccuracyFocus,
		TypeConceptMastery,
		TypeWordProblemDay,
		TypeBrainTeaser,
		TypeGradeLevelChallenge,
		TypeStreakBuilder,
	}
}

// plan is a strategy resolved for one day.
type plan struct {
	ops         []catalog.Operation
	count       int
	level       func(i, n int) catalog.Level
	objective   string
	description string
	bonus       BonusTarget
	timeLimit   int
	focus       string
	grade       string
	streakFocus bool
}

type strategy func(seed uint64) plan

var strategies = map[string]strategy{
	TypeStandardMixed:       standardMixed,
	TypeSpeedRound:          speedRound,
	TypeAccuracyFocus:       accuracyFocus,
	TypeConceptMastery:      conceptMastery,
	TypeWordProblemDay:      wordProblemDay,
	TypeBrainTeaser:         brainTeaser,
	TypeGradeLevelChallenge: gradeLevelChallenge,
	TypeStreakBuilder:       streakBuilder,
}

// resolveType maps unknown challenge types to standard_mixed.
func resolveType(challengeType string) string {
	if _, ok := strategies[challengeType]; ok {
		return challengeType
	}
	return TypeStandardMixed
}

// Level progressions. i is the question index and n the question count.

func thirds(i, n int) catalog.Level {
	return []catalog.Level{catalog.LevelEasy, catalog.LevelMedium, catalog.LevelHard}[min(3*i/n, 2)]
}

func quarters(i, n int) catalog.Level {
	return catalog.AllLevels()[min(4*i/n, 3)]
}

// halves returns first for the first half of the questions and second after.
func halves(first, second catalog.Level) func(i, n int) catalog.Level {
	return func(i, n int) catalog.Level {
		if 2*i < n {
			return first
		}
		return second
	}
}

// lastN returns base except for the final k questions.
func lastN(base, last catalog.Level, k int) func(i, n int) catalog.Level {
	return func(i, n int) catalog.Level {
		if i >= n-k {
			return last
		}
		return base
	}
}

// ramp climbs one level every five questions, topping out at hard.
func ramp(i, _ int) catalog.Level {
	return []catalog.Level{catalog.LevelEasy, catalog.LevelMedium, catalog.LevelHard}[min(i/5, 2)]
}

func standardMixed(uint64) plan {
	return plan{
		ops: []catalog.Operation{
			catalog.OpAddition, catalog.OpSubtraction, catalog.OpMultiplication, catalog.OpDivision,
			catalog.OpFractions, catalog.OpDecimals, catalog.OpWordProblems, catalog.OpOrderOfOperations,
			catalog.OpPercentages, catalog.OpAreaPerimeter,
		},
		count:       10,
		level:       thirds,
		objective:   "Complete 10 mixed problems",
		description: "A balanced mix of arithmetic, fractions, decimals and word problems that gets harder as you go.",
		bonus:       BonusTarget{Accuracy: 80, Time: 300},
	}
}

func speedRound(uint64) plan {
	return plan{
		ops: []catalog.Operation{
			catalog.OpAddition, catalog.OpSubtraction, catalog.OpMultiplication,
			catalog.OpDivision, catalog.OpMentalMath,
		},
		count:       20,
		level:       halves(catalog.LevelEasy, catalog.LevelMedium),
		objective:   "Answer 20 quick problems in 2 minutes",
		description: "Fast arithmetic against the clock. Keep moving and trust your facts.",
		bonus:       BonusTarget{Accuracy: 85, Time: 90},
		timeLimit:   120,
	}
}

func accuracyFocus(uint64) plan {
	return plan{
		ops: []catalog.Operation{
			catalog.OpFractionAddition, catalog.OpFractionMultiplication, catalog.OpDecimalMultiplication,
			catalog.OpOrderOfOperations, catalog.OpPercentages, catalog.OpLongDivision,
		},
		count:       8,
		level:       halves(catalog.LevelMedium, catalog.LevelHard),
		objective:   "Get all 8 problems right",
		description: "Careful multi-step problems. Take your time; every answer counts.",
		bonus:       BonusTarget{Accuracy: 100, Time: 600},
	}
}

var masteryConcepts = []catalog.Operation{
	catalog.OpAddition, catalog.OpSubtraction, catalog.OpMultiplication, catalog.OpDivision,
	catalog.OpFractions, catalog.OpDecimals, catalog.OpPercentages, catalog.OpRatios,
	catalog.OpExponents, catalog.OpOneStepEquations, catalog.OpAreaPerimeter, catalog.OpPlaceValue,
}

func conceptMastery(seed uint64) plan {
	focus := masteryConcepts[Sample(seed, 0, len(masteryConcepts)-1, focusOffset)]
	name := operationName(focus)
	return plan{
		ops:         []catalog.Operation{focus},
		count:       12,
		level:       quarters,
		objective:   fmt.Sprintf("Master %s from easy to expert", name),
		description: fmt.Sprintf("Twelve %s problems climbing through every level.", name),
		bonus:       BonusTarget{Accuracy: 90, Time: 480},
		focus:       string(focus),
	}
}

func wordProblemDay(uint64) plan {
	return plan{
		ops: []catalog.Operation{
			catalog.OpWordProblems, catalog.OpMultiplicationWordProblems, catalog.OpDivisionWordProblems,
			catalog.OpMoneyChange, catalog.OpTimeElapsed, catalog.OpSpeedDistanceTime, catalog.OpReadingTables,
		},
		count:       6,
		level:       halves(catalog.LevelMedium, catalog.LevelHard),
		objective:   "Solve 6 word problems",
		description: "Read carefully, find the numbers that matter and pick the right operation.",
		bonus:       BonusTarget{Accuracy: 80, Time: 600},
	}
}

func brainTeaser(uint64) plan {
	return plan{
		ops: []catalog.Operation{
			catalog.OpLogicPuzzles, catalog.OpNumberPuzzles, catalog.OpSequences,
			catalog.OpBrainTeasers, catalog.OpDigitSum, catalog.OpMagicSquares,
		},
		count:       5,
		level:       lastN(catalog.LevelHard, catalog.LevelExpert, 2),
		objective:   "Crack 5 brain teasers",
		description: "Puzzles, patterns and tricky questions. Think before you answer.",
		bonus:       BonusTarget{Accuracy: 80, Time: 900},
	}
}

func gradeLevelChallenge(seed uint64) plan {
	grades := catalog.Grades()
	grade := grades[Sample(seed, 0, len(grades)-1, focusOffset)]
	label := "grade " + grade
	if grade == "K" {
		label = "kindergarten"
	}
	return plan{
		ops:         catalog.ByGrade(grade),
		count:       10,
		level:       thirds,
		objective:   fmt.Sprintf("Take on 10 %s problems", label),
		description: fmt.Sprintf("A tour of the topics taught in %s.", label),
		bonus:       BonusTarget{Accuracy: 85, Time: 420},
		grade:       grade,
	}
}

func streakBuilder(uint64) plan {
	return plan{
		ops: []catalog.Operation{
			catalog.OpAddition, catalog.OpSubtraction, catalog.OpMultiplication,
			catalog.OpDivision, catalog.OpDoubles, catalog.OpMissingAddend,
		},
		count:       15,
		level:       ramp,
		objective:   "Build a streak of 15 correct answers",
		description: "Steady practice that ramps up every five questions. Keep the streak alive.",
		bonus:       BonusTarget{Accuracy: 90, Time: 360},
		streakFocus: true,
	}
}

// operationName renders an operation key for prose, e.g. "one step equations".
func operationName(op catalog.Operation) string {
	return strings.ReplaceAll(string(op), "_", " ")
}
