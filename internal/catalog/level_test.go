package catalog

import "testing"

func TestDifficulty(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{LevelEasy, 2},
		{LevelMedium, 4},
		{LevelHard, 7},
		{LevelExpert, 9},
		{"impossible", DefaultDifficulty},
		{"", DefaultDifficulty},
	}
	for _, tt := range tests {
		if got := Difficulty(tt.level); got != tt.want {
			t.Errorf("Difficulty(%q) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestDifficulty_Monotonic(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		if Difficulty(levels[i]) <= Difficulty(levels[i-1]) {
			t.Errorf("difficulty(%s) must exceed difficulty(%s)", levels[i], levels[i-1])
		}
	}
}

func TestLevel_Index(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{LevelEasy, 0},
		{LevelMedium, 1},
		{LevelHard, 2},
		{LevelExpert, 3},
		{"legendary", 0},
	}
	for _, tt := range tests {
		if got := tt.level.Index(); got != tt.want {
			t.Errorf("Level(%q).Index() = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevel_Known(t *testing.T) {
	if !LevelHard.Known() {
		t.Error("hard should be known")
	}
	if Level("HARD").Known() {
		t.Error("level keys are case-sensitive")
	}
}
