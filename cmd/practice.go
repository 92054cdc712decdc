package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathforge/internal/catalog"
	"github.com/abhisek/mathforge/internal/problemgen"
	"github.com/abhisek/mathforge/internal/session"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <operation>",
	Short: "Answer practice questions for an operation",
	Long: `Generate and interactively answer questions for one operation.

Answer with an option letter or type the answer. The finished session is
recorded unless --no-store is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().String("level", "", "Difficulty level: easy, medium, hard or expert (default from config)")
	practiceCmd.Flags().Int("count", 10, "Number of questions")
	practiceCmd.Flags().Uint64("seed", 0, "Seed for reproducible questions (0 = random)")
}

func runPractice(cmd *cobra.Command, args []string) error {
	levelVal, _ := cmd.Flags().GetString("level")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")

	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	op := args[0]
	if _, err := catalog.GetOperation(op); err != nil {
		slog.Warn("unknown operation, falling back", "operation", op, "fallback", problemgen.FallbackOperation)
	}
	level := defaultLevel(levelVal)

	st, err := openStore()
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	out := cmd.OutOrStdout()
	md := catalog.MetadataFor(catalog.Operation(op))
	fmt.Fprintf(out, "Practice: %s · %s (%s)\n\n", op, level, catalog.CategoryDisplayName(md.Category))

	state := session.NewPracticeState(newEngine(seed), op, level, count)
	runQuiz(cmd.InOrStdin(), out, state)
	recordSession(cmd.Context(), eventRepo(st), state)
	return nil
}
