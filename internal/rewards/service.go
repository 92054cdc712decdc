package rewards

import (
	"context"
	"log/slog"

	"github.com/abhisek/mathforge/internal/daily"
	"github.com/abhisek/mathforge/internal/store"
)

// Service scores challenges and records the rewards granted.
type Service struct {
	eventRepo store.EventRepo
	logger    *slog.Logger
}

// NewService creates a Service persisting through eventRepo, which may be nil.
func NewService(eventRepo store.EventRepo) *Service {
	return &Service{
		eventRepo: eventRepo,
		logger:    slog.Default().With("component", "rewards"),
	}
}

// Award scores a finished challenge and persists the result. A failure to
// persist is logged and never changes the returned result.
func (s *Service) Award(ctx context.Context, ch *daily.Challenge, accuracy float64, timeTaken, streak int) Result {
	res := Calculate(ch, accuracy, timeTaken, streak)
	s.persist(ctx, ch, accuracy, timeTaken, streak, res)
	return res
}

// Totals returns the lifetime reward totals, or zero totals without a store.
func (s *Service) Totals(ctx context.Context) (store.RewardTotals, error) {
	if s.eventRepo == nil {
		return store.RewardTotals{}, nil
	}
	return s.eventRepo.RewardTotals(ctx)
}

func (s *Service) persist(ctx context.Context, ch *daily.Challenge, accuracy float64, timeTaken, streak int, res Result) {
	if s.eventRepo == nil {
		return
	}
	data := store.RewardEventData{
		Accuracy:      accuracy,
		TimeTakenSecs: timeTaken,
		Streak:        streak,
		BonusStars:    res.BonusStars,
		BonusCoins:    res.BonusCoins,
		PerfectScore:  res.PerfectScoreBonus,
		SpeedBonus:    res.SpeedBonus,
	}
	if ch != nil {
		data.Date = ch.Date
		data.ChallengeType = ch.ChallengeType
	}
	if err := s.eventRepo.AppendRewardEvent(ctx, data); err != nil {
		s.logger.Warn("failed to record reward", "date", data.Date, "type", data.ChallengeType, "error", err)
	}
}
