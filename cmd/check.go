package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathforge/internal/catalog"
	"github.com/abhisek/mathforge/internal/problemgen"
	"github.com/abhisek/mathforge/internal/schema"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate generated questions for every operation and level",
	Long: `Generate --draws questions per operation and level, run the problem
validators and the JSON schema on each, and report every failure. The command
fails if any question is invalid.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("draws", 15, "Questions per operation and level")
	checkCmd.Flags().String("op", "", "Check a single operation")
	checkCmd.Flags().Uint64("seed", 0, "Seed for reproducible sweeps (0 = random)")
}

// checkFailure is one invalid generated question.
type checkFailure struct {
	op, level string
	question  string
	err       error
}

func runCheck(cmd *cobra.Command, args []string) error {
	draws, _ := cmd.Flags().GetInt("draws")
	opVal, _ := cmd.Flags().GetString("op")
	seed, _ := cmd.Flags().GetUint64("seed")

	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if err := problemgen.ValidateRegistry(); err != nil {
		return fmt.Errorf("generator registry: %w", err)
	}

	ops := catalog.AllOperations()
	if opVal != "" {
		op, err := catalog.GetOperation(opVal)
		if err != nil {
			return err
		}
		ops = []catalog.Operation{op}
	}

	engine := newEngine(seed)
	var failures []checkFailure
	checked := 0
	for _, op := range ops {
		for _, level := range catalog.AllLevels() {
			for range draws {
				q := engine.Generate(string(op), string(level))
				checked++
				if verr := engine.Check(q); verr != nil {
					failures = append(failures, checkFailure{string(op), string(level), q.Question, verr})
					continue
				}
				if err := schema.ValidateQuestion(q); err != nil {
					failures = append(failures, checkFailure{string(op), string(level), q.Question, err})
				}
			}
		}
	}

	out := cmd.OutOrStdout()
	for _, f := range failures {
		fmt.Fprintf(out, "✗ %s/%s %q: %v\n", f.op, f.level, f.question, f.err)
	}
	fmt.Fprintf(out, "%d operations, %d questions checked, %d failures\n", len(ops), checked, len(failures))
	if len(failures) > 0 {
		return fmt.Errorf("%d invalid questions", len(failures))
	}
	return nil
}
