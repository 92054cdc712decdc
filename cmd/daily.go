package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathforge/internal/daily"
	"github.com/abhisek/mathforge/internal/rewards"
	"github.com/abhisek/mathforge/internal/schema"
	"github.com/abhisek/mathforge/internal/session"
	"github.com/abhisek/mathforge/internal/store"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show or play the daily challenge",
	Long: `Assemble the daily challenge for a calendar day. Every player gets the
same questions for the same day and challenge type.

With --play the challenge is answered interactively and scored.`,
	RunE: runDaily,
}

func init() {
	dailyCmd.Flags().String("date", "", "Challenge day as YYYY-MM-DD or RFC 3339 (default today, UTC)")
	dailyCmd.Flags().String("type", "", "Challenge type (default from config): "+strings.Join(daily.Types(), ", "))
	dailyCmd.Flags().Bool("json", false, "Print the challenge as JSON")
	dailyCmd.Flags().Bool("answers", false, "Show answers and explanations")
	dailyCmd.Flags().Bool("play", false, "Answer the challenge interactively")
}

func runDaily(cmd *cobra.Command, args []string) error {
	dateVal, _ := cmd.Flags().GetString("date")
	typeVal, _ := cmd.Flags().GetString("type")
	asJSON, _ := cmd.Flags().GetBool("json")
	showAnswers, _ := cmd.Flags().GetBool("answers")
	play, _ := cmd.Flags().GetBool("play")

	date, err := challengeDate(dateVal)
	if err != nil {
		return err
	}

	ch := daily.GenerateDailyChallenge(date, defaultChallengeType(typeVal))
	payload, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("encode challenge: %w", err)
	}
	if err := schema.Validate(schema.ChallengeSchema, payload); err != nil {
		return fmt.Errorf("assembled challenge failed schema validation: %w", err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}
	repo := eventRepo(st)
	ctx := cmd.Context()
	recordChallenge(ctx, repo, ch, payload)

	out := cmd.OutOrStdout()
	if asJSON && !play {
		return writeJSON(out, ch)
	}

	printChallengeHeader(out, ch)
	if !play {
		for i, q := range ch.Questions {
			printQuestion(out, q, i+1, len(ch.Questions), showAnswers)
		}
		return nil
	}

	state := session.NewChallengeState(ch)
	summary := runQuiz(cmd.InOrStdin(), out, state)
	recordSession(ctx, repo, state)

	res := rewards.NewService(repo).Award(ctx, ch, summary.Accuracy, summary.ElapsedSeconds(), summary.BestStreak)
	if asJSON {
		return writeJSON(out, res)
	}
	printReward(out, res)
	return nil
}

// challengeDate parses val, defaulting to the current UTC day.
func challengeDate(val string) (time.Time, error) {
	if val == "" {
		return time.Now().UTC(), nil
	}
	d, err := daily.ParseDate(val)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", val, err)
	}
	return d, nil
}

func recordChallenge(ctx context.Context, repo store.EventRepo, ch *daily.Challenge, payload []byte) {
	if repo == nil {
		return
	}
	err := repo.AppendChallengeEvent(ctx, store.ChallengeEventData{
		Date:           ch.Date,
		ChallengeType:  ch.ChallengeType,
		TotalQuestions: ch.TotalQuestions,
		Concepts:       ch.Concepts,
		Payload:        payload,
	})
	if err != nil {
		slog.Warn("failed to record challenge", "date", ch.Date, "type", ch.ChallengeType, "error", err)
	}
}

func recordSession(ctx context.Context, repo store.EventRepo, state *session.SessionState) {
	if repo == nil || state.TotalQuestions == 0 {
		return
	}
	if err := repo.AppendSessionEvent(ctx, session.EventData(state)); err != nil {
		slog.Warn("failed to record session", "session", state.SessionID, "error", err)
	}
}

func printChallengeHeader(w io.Writer, ch *daily.Challenge) {
	fmt.Fprintf(w, "Daily challenge %s · %s\n", ch.Date, ch.ChallengeType)
	fmt.Fprintf(w, "Objective: %s\n", ch.Objective)
	fmt.Fprintf(w, "%s\n", ch.Description)
	fmt.Fprintf(w, "Bonus target: %.0f%% accuracy within %ds\n", ch.BonusTarget.Accuracy, ch.BonusTarget.Time)
	if ch.TimeLimit != nil {
		fmt.Fprintf(w, "Time limit: %ds\n", *ch.TimeLimit)
	}
	switch {
	case ch.FocusConcept != "":
		fmt.Fprintf(w, "Focus concept: %s\n", ch.FocusConcept)
	case ch.GradeLevel != "":
		fmt.Fprintf(w, "Grade: %s\n", ch.GradeLevel)
	}
	fmt.Fprintf(w, "Concepts: %s\n", strings.Join(ch.Concepts, ", "))
	fmt.Fprintf(w, "%d questions\n\n", ch.TotalQuestions)
}
