package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathforge/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded challenges, rewards and sessions",
}

var historyChallengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "List recently served daily challenges",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(cmd, func(repo store.EventRepo, opts store.QueryOpts) error {
			events, err := repo.QueryChallengeEvents(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No challenges found.")
				return nil
			}

			fmt.Fprintf(out, "%-5s  %-19s  %-10s  %-22s  %5s  %s\n",
				"Seq", "Timestamp", "Date", "Type", "Qs", "Concepts")
			fmt.Fprintln(out, strings.Repeat("─", 100))
			for _, e := range events {
				concepts := strings.Join(e.Concepts, ", ")
				if len(concepts) > 40 {
					concepts = concepts[:37] + "..."
				}
				fmt.Fprintf(out, "%-5d  %-19s  %-10s  %-22s  %5d  %s\n",
					e.Sequence, e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					e.Date, e.ChallengeType, e.TotalQuestions, concepts)
			}
			return nil
		})
	},
}

var historyRewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "List recently granted rewards",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(cmd, func(repo store.EventRepo, opts store.QueryOpts) error {
			events, err := repo.QueryRewardEvents(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No rewards found.")
				return nil
			}

			fmt.Fprintf(out, "%-5s  %-10s  %-22s  %6s  %6s  %6s  %5s  %5s  %s\n",
				"Seq", "Date", "Type", "Acc%", "Secs", "Streak", "Stars", "Coins", "Bonus")
			fmt.Fprintln(out, strings.Repeat("─", 100))
			for _, e := range events {
				var bonus []string
				if e.PerfectScore {
					bonus = append(bonus, "perfect")
				}
				if e.SpeedBonus {
					bonus = append(bonus, "speed")
				}
				fmt.Fprintf(out, "%-5d  %-10s  %-22s  %6.1f  %6d  %6d  %5d  %5d  %s\n",
					e.Sequence, e.Date, e.ChallengeType, e.Accuracy, e.TimeTakenSecs,
					e.Streak, e.BonusStars, e.BonusCoins, strings.Join(bonus, ","))
			}
			return nil
		})
	},
}

var historySessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recent practice and challenge sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(cmd, func(repo store.EventRepo, opts store.QueryOpts) error {
			events, err := repo.QuerySessionSummaries(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No sessions found.")
				return nil
			}

			fmt.Fprintf(out, "%-5s  %-19s  %-30s  %-10s  %7s  %6s  %s\n",
				"Seq", "Timestamp", "Operation", "Level", "Correct", "Streak", "Secs")
			fmt.Fprintln(out, strings.Repeat("─", 100))
			for _, e := range events {
				fmt.Fprintf(out, "%-5d  %-19s  %-30s  %-10s  %3d/%-3d  %6d  %d\n",
					e.Sequence, e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					e.Operation, e.Level, e.CorrectAnswers, e.QuestionsServed,
					e.BestStreak, e.DurationSecs)
			}
			return nil
		})
	},
}

// withHistory opens the store and runs fn with the --limit query options.
func withHistory(cmd *cobra.Command, fn func(store.EventRepo, store.QueryOpts) error) error {
	limit, _ := cmd.Flags().GetInt("limit")

	st, err := openStore()
	if err != nil {
		return err
	}
	if st == nil {
		return fmt.Errorf("history needs the store; drop --no-store")
	}
	defer st.Close()

	return fn(st.EventRepo(), store.QueryOpts{Limit: limit})
}

func init() {
	for _, c := range []*cobra.Command{historyChallengesCmd, historyRewardsCmd, historySessionsCmd} {
		c.Flags().Int("limit", 20, "Maximum number of events to show")
		historyCmd.AddCommand(c)
	}
}
