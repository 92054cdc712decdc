package rewards

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/mathforge/internal/daily"
	"github.com/abhisek/mathforge/internal/store"
)

// mockEventRepo implements store.EventRepo for reward tests.
type mockEventRepo struct {
	rewardEvents []store.RewardEventData
	totals       store.RewardTotals
	appendErr    error
}

func (m *mockEventRepo) AppendChallengeEvent(_ context.Context, _ store.ChallengeEventData) error {
	return nil
}
func (m *mockEventRepo) QueryChallengeEvents(_ context.Context, _ store.QueryOpts) ([]store.ChallengeEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendRewardEvent(_ context.Context, data store.RewardEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.rewardEvents = append(m.rewardEvents, data)
	return nil
}
func (m *mockEventRepo) QueryRewardEvents(_ context.Context, _ store.QueryOpts) ([]store.RewardEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) RewardTotals(_ context.Context) (store.RewardTotals, error) {
	return m.totals, nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

func newTestService() (*Service, *mockEventRepo) {
	repo := &mockEventRepo{totals: store.RewardTotals{Challenges: 2, Stars: 7, Coins: 150}}
	return NewService(repo), repo
}

func TestAward_Persists(t *testing.T) {
	svc, repo := newTestService()
	ch := &daily.Challenge{
		Date:          "2025-03-10",
		ChallengeType: daily.TypeSpeedRound,
		BonusTarget:   daily.BonusTarget{Accuracy: 85, Time: 90},
	}

	res := svc.Award(context.Background(), ch, 96, 80, 5)

	if res.BonusStars != 5 || !res.SpeedBonus || !res.PerfectScoreBonus {
		t.Errorf("result = %+v", res)
	}
	if len(repo.rewardEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.rewardEvents))
	}
	ev := repo.rewardEvents[0]
	if ev.Date != "2025-03-10" || ev.ChallengeType != daily.TypeSpeedRound {
		t.Errorf("persisted challenge = %q/%q", ev.Date, ev.ChallengeType)
	}
	if ev.BonusStars != res.BonusStars || ev.BonusCoins != res.BonusCoins {
		t.Errorf("persisted rewards = %d/%d, want %d/%d", ev.BonusStars, ev.BonusCoins, res.BonusStars, res.BonusCoins)
	}
	if ev.Accuracy != 96 || ev.TimeTakenSecs != 80 || ev.Streak != 5 {
		t.Errorf("persisted inputs = %+v", ev)
	}
}

func TestAward_PersistFailureKeepsResult(t *testing.T) {
	svc, repo := newTestService()
	repo.appendErr = errors.New("disk full")

	got := svc.Award(context.Background(), nil, 90, 10, 0)
	want := Calculate(nil, 90, 10, 0)
	if got != want {
		t.Errorf("Award = %+v, want %+v", got, want)
	}
	if len(repo.rewardEvents) != 0 {
		t.Errorf("persisted %d events, want 0", len(repo.rewardEvents))
	}
}

func TestAward_NilEventRepo(t *testing.T) {
	svc := NewService(nil)

	// Should not panic with nil eventRepo.
	res := svc.Award(context.Background(), nil, 75, 10, 3)
	if res.BonusStars != 2 {
		t.Errorf("stars = %d, want 2", res.BonusStars)
	}

	totals, err := svc.Totals(context.Background())
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if totals != (store.RewardTotals{}) {
		t.Errorf("totals = %+v, want zero", totals)
	}
}

func TestTotals(t *testing.T) {
	svc, _ := newTestService()
	totals, err := svc.Totals(context.Background())
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if totals.Stars != 7 || totals.Coins != 150 || totals.Challenges != 2 {
		t.Errorf("totals = %+v", totals)
	}
}
