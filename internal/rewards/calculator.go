// Package rewards scores finished daily challenges.
package rewards

import "github.com/abhisek/mathforge/internal/daily"

// MaxStars caps the bonus stars of a single challenge.
const MaxStars = 5

const (
	speedCoins         = 20
	streakMinimum      = 3
	streakCoinsPerStep = 10
	streakCoinSteps    = 10

	speedRoundCoins    = 30
	accuracyFocusCoins = 40
	brainTeaserCoins   = 25
	brainTeaserTarget  = 80
)

// accuracyBands maps minimum accuracy percentages to base stars, highest
// first. The top band also earns the perfect score bonus.
var accuracyBands = []struct {
	min   float64
	stars int
}{
	{95, 3},
	{85, 2},
	{70, 1},
}

// Calculate scores a finished challenge from the accuracy percentage
// (0-100), the seconds taken and the answer streak. A nil challenge is
// scored without a speed target or type bonus.
func Calculate(ch *daily.Challenge, accuracy float64, timeTaken, streak int) Result {
	var res Result

	for i, band := range accuracyBands {
		if accuracy >= band.min {
			res.BonusStars = band.stars
			res.PerfectScoreBonus = i == 0
			break
		}
	}

	var ctype string
	if ch != nil {
		ctype = ch.ChallengeType
		if timeTaken <= ch.BonusTarget.Time {
			res.BonusStars++
			res.BonusCoins += speedCoins
			res.SpeedBonus = true
		}
	}

	if streak >= streakMinimum {
		res.BonusStars++
		res.BonusCoins += streakCoinsPerStep * min(streak, streakCoinSteps)
	}

	switch ctype {
	case daily.TypeSpeedRound:
		if res.SpeedBonus {
			res.BonusCoins += speedRoundCoins
		}
	case daily.TypeAccuracyFocus:
		if res.PerfectScoreBonus {
			res.BonusCoins += accuracyFocusCoins
		}
	case daily.TypeBrainTeaser:
		if accuracy >= brainTeaserTarget {
			res.BonusStars++
			res.BonusCoins += brainTeaserCoins
		}
	}

	res.BonusStars = min(res.BonusStars, MaxStars)
	return res
}

// CalculateDailyChallengeRewards is Calculate under its public name.
func CalculateDailyChallengeRewards(ch *daily.Challenge, accuracy float64, timeTaken, streak int) Result {
	return Calculate(ch, accuracy, timeTaken, streak)
}
