package catalog

// Level is a difficulty tier requested by the caller. Values outside
// AllLevels are carried verbatim; generators resolve them to their easiest
// bucket and the difficulty scale maps them to DefaultDifficulty.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
	LevelExpert Level = "expert"
)

// DefaultDifficulty is the score reported for levels missing from the scale.
const DefaultDifficulty = 5

// AllLevels returns all levels from easiest to hardest.
func AllLevels() []Level {
	return []Level{LevelEasy, LevelMedium, LevelHard, LevelExpert}
}

var difficultyScale = map[Level]int{
	LevelEasy:   2,
	LevelMedium: 4,
	LevelHard:   7,
	LevelExpert: 9,
}

// Difficulty returns the 1-10 score for a level.
func Difficulty(level Level) int {
	if d, ok := difficultyScale[level]; ok {
		return d
	}
	return DefaultDifficulty
}

// Known reports whether level is one of AllLevels.
func (l Level) Known() bool {
	_, ok := difficultyScale[l]
	return ok
}

// Index returns the position of the level in AllLevels, or 0 for unknown
// levels so callers fall back to the easiest bucket.
func (l Level) Index() int {
	for i, lv := range AllLevels() {
		if lv == l {
			return i
		}
	}
	return 0
}

// DisplayName returns a human-readable label for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelEasy:
		return "Easy"
	case LevelMedium:
		return "Medium"
	case LevelHard:
		return "Hard"
	case LevelExpert:
		return "Expert"
	default:
		return string(l)
	}
}
