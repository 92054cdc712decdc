package catalog

// Category is the teaching category an operation belongs to.
type Category string

const (
	CategoryBasics    Category = "basics"
	CategoryCore      Category = "core"
	CategoryAdvanced  Category = "advanced"
	CategoryApplied   Category = "applied"
	CategoryAlgebra   Category = "algebra"
	CategoryChallenge Category = "challenge"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryBasics,
		CategoryCore,
		CategoryAdvanced,
		CategoryApplied,
		CategoryAlgebra,
		CategoryChallenge,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryBasics:
		return "Basics"
	case CategoryCore:
		return "Core Skills"
	case CategoryAdvanced:
		return "Advanced"
	case CategoryApplied:
		return "Applied Math"
	case CategoryAlgebra:
		return "Algebra"
	case CategoryChallenge:
		return "Challenge"
	default:
		return string(c)
	}
}

// Grades returns all grade labels in order.
func Grades() []string {
	return []string{"K", "1", "2", "3", "4", "5", "6", "7", "8"}
}

// gradeIndex returns the ordinal of a grade label, or -1 if unknown.
func gradeIndex(g string) int {
	for i, label := range Grades() {
		if label == g {
			return i
		}
	}
	return -1
}
