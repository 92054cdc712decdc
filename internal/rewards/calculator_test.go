package rewards

import (
	"testing"

	"github.com/abhisek/mathforge/internal/daily"
)

func challenge(ctype string, target int) *daily.Challenge {
	return &daily.Challenge{
		ChallengeType: ctype,
		BonusTarget:   daily.BonusTarget{Accuracy: 80, Time: target},
	}
}

func TestCalculate_Scenario(t *testing.T) {
	got := Calculate(challenge(daily.TypeStandardMixed, 120), 96, 100, 5)

	want := Result{BonusStars: 5, BonusCoins: 20 + 50, PerfectScoreBonus: true, SpeedBonus: true}
	if got != want {
		t.Errorf("Calculate = %+v, want %+v", got, want)
	}
}

func TestCalculate_AccuracyBands(t *testing.T) {
	tests := []struct {
		accuracy float64
		stars    int
		perfect  bool
	}{
		{100, 3, true},
		{95, 3, true},
		{94.9, 2, false},
		{85, 2, false},
		{84, 1, false},
		{70, 1, false},
		{69.9, 0, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		// Slow and no streak so only the accuracy band counts.
		got := Calculate(challenge(daily.TypeStandardMixed, 60), tt.accuracy, 600, 0)
		if got.BonusStars != tt.stars {
			t.Errorf("accuracy %.1f: stars = %d, want %d", tt.accuracy, got.BonusStars, tt.stars)
		}
		if got.PerfectScoreBonus != tt.perfect {
			t.Errorf("accuracy %.1f: perfect = %v, want %v", tt.accuracy, got.PerfectScoreBonus, tt.perfect)
		}
		if got.BonusCoins != 0 || got.SpeedBonus {
			t.Errorf("accuracy %.1f: unexpected bonus %+v", tt.accuracy, got)
		}
	}
}

func TestCalculate_Speed(t *testing.T) {
	ch := challenge(daily.TypeStandardMixed, 300)

	onTime := Calculate(ch, 50, 300, 0)
	if !onTime.SpeedBonus || onTime.BonusStars != 1 || onTime.BonusCoins != 20 {
		t.Errorf("on time: %+v", onTime)
	}

	late := Calculate(ch, 50, 301, 0)
	if late.SpeedBonus || late.BonusStars != 0 || late.BonusCoins != 0 {
		t.Errorf("late: %+v", late)
	}
}

func TestCalculate_StreakCoins(t *testing.T) {
	tests := []struct {
		streak int
		stars  int
		coins  int
	}{
		{0, 0, 0},
		{2, 0, 0},
		{3, 1, 30},
		{7, 1, 70},
		{10, 1, 100},
		{25, 1, 100},
	}

	for _, tt := range tests {
		got := Calculate(challenge(daily.TypeStandardMixed, 0), 0, 10, tt.streak)
		if got.BonusStars != tt.stars || got.BonusCoins != tt.coins {
			t.Errorf("streak %d: got %d stars %d coins, want %d stars %d coins",
				tt.streak, got.BonusStars, got.BonusCoins, tt.stars, tt.coins)
		}
	}
}

func TestCalculate_TypeBonuses(t *testing.T) {
	tests := []struct {
		name      string
		ch        *daily.Challenge
		accuracy  float64
		timeTaken int
		want      Result
	}{
		{
			name:      "speed round fast",
			ch:        challenge(daily.TypeSpeedRound, 90),
			accuracy:  50,
			timeTaken: 80,
			want:      Result{BonusStars: 1, BonusCoins: 20 + 30, SpeedBonus: true},
		},
		{
			name:      "speed round slow",
			ch:        challenge(daily.TypeSpeedRound, 90),
			accuracy:  50,
			timeTaken: 100,
			want:      Result{},
		},
		{
			name:      "accuracy focus perfect",
			ch:        challenge(daily.TypeAccuracyFocus, 600),
			accuracy:  100,
			timeTaken: 900,
			want:      Result{BonusStars: 3, BonusCoins: 40, PerfectScoreBonus: true},
		},
		{
			name:      "accuracy focus not perfect",
			ch:        challenge(daily.TypeAccuracyFocus, 600),
			accuracy:  90,
			timeTaken: 900,
			want:      Result{BonusStars: 2},
		},
		{
			name:      "brain teaser at target",
			ch:        challenge(daily.TypeBrainTeaser, 900),
			accuracy:  80,
			timeTaken: 1000,
			want:      Result{BonusStars: 2, BonusCoins: 25},
		},
		{
			name:      "brain teaser below target",
			ch:        challenge(daily.TypeBrainTeaser, 900),
			accuracy:  79,
			timeTaken: 1000,
			want:      Result{BonusStars: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.ch, tt.accuracy, tt.timeTaken, 0)
			if got != tt.want {
				t.Errorf("Calculate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculate_StarsCapped(t *testing.T) {
	got := Calculate(challenge(daily.TypeBrainTeaser, 900), 100, 10, 12)
	if got.BonusStars != MaxStars {
		t.Errorf("stars = %d, want %d", got.BonusStars, MaxStars)
	}
	if got.BonusCoins != 20+100+25 {
		t.Errorf("coins = %d, want %d", got.BonusCoins, 145)
	}
}

func TestCalculate_NilChallenge(t *testing.T) {
	got := Calculate(nil, 96, 0, 4)
	want := Result{BonusStars: 4, BonusCoins: 40, PerfectScoreBonus: true}
	if got != want {
		t.Errorf("Calculate(nil) = %+v, want %+v", got, want)
	}
}

func TestCalculate_Bounds(t *testing.T) {
	types := append(daily.Types(), "unknown")
	accuracies := []float64{-10, 0, 50, 70, 80, 85, 95, 100, 150}
	times := []int{-5, 0, 60, 120, 600, 10000}
	streaks := []int{-3, 0, 3, 10, 100}

	for _, ct := range types {
		for _, acc := range accuracies {
			for _, tt := range times {
				for _, st := range streaks {
					got := Calculate(challenge(ct, 120), acc, tt, st)
					if got.BonusStars < 0 || got.BonusStars > MaxStars {
						t.Fatalf("%s acc=%v time=%d streak=%d: stars %d out of range", ct, acc, tt, st, got.BonusStars)
					}
					if got.BonusCoins < 0 {
						t.Fatalf("%s acc=%v time=%d streak=%d: negative coins %d", ct, acc, tt, st, got.BonusCoins)
					}
				}
			}
		}
	}
}

func TestCalculate_AssembledChallenge(t *testing.T) {
	date, err := daily.ParseDate("2025-03-10")
	if err != nil {
		t.Fatal(err)
	}
	ch := daily.GenerateDailyChallenge(date, daily.TypeSpeedRound)

	got := CalculateDailyChallengeRewards(ch, 96, ch.BonusTarget.Time, 5)
	want := Result{BonusStars: 5, BonusCoins: 20 + 50 + 30, PerfectScoreBonus: true, SpeedBonus: true}
	if got != want {
		t.Errorf("rewards = %+v, want %+v", got, want)
	}
}

func TestResultTier(t *testing.T) {
	tests := []struct {
		stars int
		want  Tier
	}{
		{0, TierCommon},
		{1, TierCommon},
		{2, TierRare},
		{3, TierRare},
		{4, TierEpic},
		{5, TierLegendary},
	}
	for _, tt := range tests {
		if got := (Result{BonusStars: tt.stars}).Tier(); got != tt.want {
			t.Errorf("Tier(%d stars) = %q, want %q", tt.stars, got, tt.want)
		}
	}
	if TierEpic.DisplayName() != "Epic" {
		t.Errorf("DisplayName = %q", TierEpic.DisplayName())
	}
}
