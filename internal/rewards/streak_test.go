package rewards

import "testing"

func TestNextStreakMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 3},
		{2, 3},
		{3, 5},
		{4, 5},
		{5, 10},
		{9, 10},
		{10, 15},
		{15, 20},
		{19, 20},
		{20, 25},
		{24, 25},
		{25, 30},
	}

	for _, tt := range tests {
		got := NextStreakMilestone(tt.current)
		if got != tt.want {
			t.Errorf("NextStreakMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestIsStreakMilestone(t *testing.T) {
	milestones := map[int]bool{3: true, 5: true, 10: true, 15: true, 20: true, 25: true, 30: true}
	for streak := 0; streak <= 30; streak++ {
		if got := IsStreakMilestone(streak); got != milestones[streak] {
			t.Errorf("IsStreakMilestone(%d) = %v, want %v", streak, got, milestones[streak])
		}
	}
}
