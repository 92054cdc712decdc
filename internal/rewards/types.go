package rewards

// Result is the bonus granted for a finished daily challenge.
type Result struct {
	BonusStars        int  `json:"bonusStars"`
	BonusCoins        int  `json:"bonusCoins"`
	PerfectScoreBonus bool `json:"perfectScoreBonus"`
	SpeedBonus        bool `json:"speedBonus"`
}

// Tier is the display tier of a reward, derived from its stars.
type Tier string

const (
	TierCommon    Tier = "common"
	TierRare      Tier = "rare"
	TierEpic      Tier = "epic"
	TierLegendary Tier = "legendary"
)

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierCommon:
		return "Common"
	case TierRare:
		return "Rare"
	case TierEpic:
		return "Epic"
	case TierLegendary:
		return "Legendary"
	default:
		return string(t)
	}
}

// Tier returns the display tier for the result's star count.
func (r Result) Tier() Tier {
	switch {
	case r.BonusStars >= MaxStars:
		return TierLegendary
	case r.BonusStars >= 4:
		return TierEpic
	case r.BonusStars >= 2:
		return TierRare
	default:
		return TierCommon
	}
}
