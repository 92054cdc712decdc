package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/mathforge/internal/problemgen"
	"github.com/abhisek/mathforge/internal/session"
)

// runQuiz serves every question of state, reading one answer per line from
// in. An option letter picks that option; anything else is checked as a
// typed answer. Empty input skips the question. It returns when the session
// is exhausted or in is closed.
func runQuiz(in io.Reader, out io.Writer, state *session.SessionState) *session.SessionSummary {
	scanner := bufio.NewScanner(in)
	total := 0
	if state.Challenge != nil {
		total = len(state.Challenge.Questions)
	} else {
		total = state.Limit
	}

	for n := 1; ; n++ {
		q := session.NextQuestion(state)
		if q == nil {
			break
		}
		printQuestion(out, q, n, total, false)

		fmt.Fprint(out, "Your answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			fmt.Fprint(out, "(skipped)\n\n")
			session.HandleAnswer(state, "")
			continue
		}

		var correct bool
		if pos, ok := parseChoice(input, q); ok {
			correct = session.HandleChoice(state, pos)
		} else {
			correct = session.HandleAnswer(state, input)
		}

		if correct {
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s\n", answerLabel(q))
		}
		fmt.Fprintf(out, "Explanation: %s\n", q.Explanation)
		if state.StreakMilestone > 0 {
			fmt.Fprintf(out, "⚡ %d correct in a row!\n", state.StreakMilestone)
		}
		if state.TimeExpired {
			fmt.Fprintln(out, "⏱ Time is up!")
		}
		fmt.Fprintln(out)
	}

	summary := session.BuildSummary(state)
	fmt.Fprintf(out, "── Summary: %d/%d correct (%.0f%%), best streak %d, %ds ──\n",
		summary.TotalCorrect, summary.Planned, summary.Accuracy,
		summary.BestStreak, summary.ElapsedSeconds())
	return summary
}

// parseChoice maps a single option letter to its 1-based position.
func parseChoice(input string, q *problemgen.Question) (int, bool) {
	if len(input) != 1 {
		return 0, false
	}
	idx := strings.IndexByte(optionLetters, strings.ToLower(input)[0])
	if idx < 0 || idx >= len(q.Options) {
		return 0, false
	}
	return idx + 1, true
}
