package rewards

// NextStreakMilestone returns the next streak length above current that
// is worth celebrating.
func NextStreakMilestone(current int) int {
	if current < streakMinimum {
		return streakMinimum
	}
	thresholds := []int{5, 10, 15, 20}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	// Beyond 20, every 5.
	return ((current / 5) + 1) * 5
}

// IsStreakMilestone reports whether streak has just reached a milestone.
func IsStreakMilestone(streak int) bool {
	return streak >= streakMinimum && NextStreakMilestone(streak-1) == streak
}
