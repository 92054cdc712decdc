package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var rewardColumns = []string{
	"challenge_date", "challenge_type", "accuracy", "time_taken_secs", "streak",
	"bonus_stars", "bonus_coins", "perfect_score", "speed_bonus",
}

func (r *eventRepo) AppendRewardEvent(ctx context.Context, data RewardEventData) error {
	return r.insert(ctx, rewardEventsTable, rewardColumns, []any{
		data.Date, data.ChallengeType, data.Accuracy, data.TimeTakenSecs, data.Streak,
		data.BonusStars, data.BonusCoins, data.PerfectScore, data.SpeedBonus,
	})
}

func (r *eventRepo) QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error) {
	sel := selectEvents(rewardEventsTable, opts, rewardColumns...)

	var records []RewardEventRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var (
			rec RewardEventRecord
			ts  int64
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.Date, &rec.ChallengeType,
			&rec.Accuracy, &rec.TimeTakenSecs, &rec.Streak,
			&rec.BonusStars, &rec.BonusCoins, &rec.PerfectScore, &rec.SpeedBonus); err != nil {
			return err
		}
		rec.Timestamp = fromMillis(ts)
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query reward events: %w", err)
	}
	return records, nil
}

// RewardTotals sums stars and coins over every recorded reward event.
func (r *eventRepo) RewardTotals(ctx context.Context) (RewardTotals, error) {
	b := builder()
	sel := b.Select("bonus_stars", "bonus_coins").From(b.Table(rewardEventsTable))

	var totals RewardTotals
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var stars, coins int
		if err := rows.Scan(&stars, &coins); err != nil {
			return err
		}
		totals.Challenges++
		totals.Stars += stars
		totals.Coins += coins
		return nil
	})
	if err != nil {
		return RewardTotals{}, fmt.Errorf("reward totals: %w", err)
	}
	return totals, nil
}
