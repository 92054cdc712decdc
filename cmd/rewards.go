package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abhisek/mathforge/internal/daily"
	"github.com/abhisek/mathforge/internal/rewards"
	"github.com/abhisek/mathforge/internal/schema"
)

var printer = message.NewPrinter(language.English)

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "Score a finished daily challenge",
	Long: `Compute the bonus stars and coins for a daily challenge from the accuracy
percentage, seconds taken and answer streak. Nothing is recorded; use
"daily --play" to play and record a challenge.`,
	RunE: runRewards,
}

var rewardsTotalCmd = &cobra.Command{
	Use:   "total",
	Short: "Show lifetime reward totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		if st == nil {
			return fmt.Errorf("reward totals need the store; drop --no-store")
		}
		defer st.Close()

		totals, err := rewards.NewService(st.EventRepo()).Totals(cmd.Context())
		if err != nil {
			return fmt.Errorf("query totals: %w", err)
		}
		printer.Fprintf(cmd.OutOrStdout(), "%d challenges scored: ★ %d stars, ● %d coins\n",
			totals.Challenges, totals.Stars, totals.Coins)
		return nil
	},
}

func init() {
	rewardsCmd.Flags().String("date", "", "Challenge day as YYYY-MM-DD or RFC 3339 (default today, UTC)")
	rewardsCmd.Flags().String("type", "", "Challenge type (default from config): "+strings.Join(daily.Types(), ", "))
	rewardsCmd.Flags().Float64("accuracy", 0, "Accuracy percentage, 0-100")
	rewardsCmd.Flags().Int("time", 0, "Seconds taken")
	rewardsCmd.Flags().Int("streak", 0, "Answer streak length")
	rewardsCmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = rewardsCmd.MarkFlagRequired("accuracy")
	_ = rewardsCmd.MarkFlagRequired("time")

	rewardsCmd.AddCommand(rewardsTotalCmd)
}

func runRewards(cmd *cobra.Command, args []string) error {
	dateVal, _ := cmd.Flags().GetString("date")
	typeVal, _ := cmd.Flags().GetString("type")
	accuracy, _ := cmd.Flags().GetFloat64("accuracy")
	timeTaken, _ := cmd.Flags().GetInt("time")
	streak, _ := cmd.Flags().GetInt("streak")
	asJSON, _ := cmd.Flags().GetBool("json")

	date, err := challengeDate(dateVal)
	if err != nil {
		return err
	}
	ch := daily.Assemble(date, defaultChallengeType(typeVal))
	res := rewards.CalculateDailyChallengeRewards(ch, accuracy, timeTaken, streak)
	if err := schema.ValidateReward(res); err != nil {
		return fmt.Errorf("reward failed schema validation: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, res)
	}
	fmt.Fprintf(out, "Daily challenge %s · %s (target %.0f%% within %ds)\n",
		ch.Date, ch.ChallengeType, ch.BonusTarget.Accuracy, ch.BonusTarget.Time)
	printReward(out, res)
	return nil
}

func printReward(w io.Writer, res rewards.Result) {
	stars := strings.Repeat("★", res.BonusStars) + strings.Repeat("☆", rewards.MaxStars-res.BonusStars)
	printer.Fprintf(w, "%s  %d coins  (%s)\n", stars, res.BonusCoins, res.Tier().DisplayName())
	if res.PerfectScoreBonus {
		fmt.Fprintln(w, "Perfect score bonus!")
	}
	if res.SpeedBonus {
		fmt.Fprintln(w, "Speed bonus!")
	}
}
