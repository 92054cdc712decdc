package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/abhisek/mathforge/internal/catalog"
)

const drawsPerCase = 15

// scriptedRand replays fixed IntN results, then returns zero. Shuffle is a
// no-op so option order is predictable.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) Shuffle(int, func(i, j int)) {}

func levelsWithUnknown() []catalog.Level {
	return append(catalog.AllLevels(), catalog.Level("legendary"))
}

func TestGenerators_ProduceValidQuestions(t *testing.T) {
	cfg := DefaultConfig()
	for _, op := range catalog.AllOperations() {
		for _, level := range levelsWithUnknown() {
			t.Run(fmt.Sprintf("%s/%s", op, level), func(t *testing.T) {
				r := NewSeededRand(uint64(len(op)), uint64(level.Index()))
				e := New(r, cfg)
				for i := range drawsPerCase {
					q := e.Generate(string(op), string(level))
					if verr := e.Check(q); verr != nil {
						t.Fatalf("draw %d: %v\nquestion: %+v", i, verr, q)
					}
					if q.Operation != string(op) {
						t.Fatalf("draw %d: operation %q, want %q", i, q.Operation, op)
					}
					if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.Explanation) == "" {
						t.Fatalf("draw %d: empty text: %+v", i, q)
					}
					if !CheckAnswer(q.Answer, q) {
						t.Fatalf("draw %d: answer %q does not check against itself", i, q.Answer)
					}
				}
			})
		}
	}
}

func TestGenerators_DefaultRand(t *testing.T) {
	for _, op := range catalog.AllOperations() {
		q := GenerateQuestion(string(op), string(catalog.LevelMedium))
		if verr := RunValidators(q, DefaultConfig().Validators); verr != nil {
			t.Errorf("%s: %v", op, verr)
		}
	}
}

func TestGenerate_UnknownOperationFallsBack(t *testing.T) {
	q := GenerateQuestion("quantum_physics", "easy")
	if q.Operation != string(catalog.OpAddition) {
		t.Errorf("operation = %q, want addition", q.Operation)
	}
	if !regexp.MustCompile(`^\d+ \+ \d+$`).MatchString(q.Question) {
		t.Errorf("unexpected fallback question %q", q.Question)
	}
	if q.Difficulty != 2 {
		t.Errorf("difficulty = %d, want 2", q.Difficulty)
	}
}

func TestGenerate_UnknownLevel(t *testing.T) {
	q := GenerateQuestion("addition", "legendary")
	if q.Level != "legendary" {
		t.Errorf("level = %q, want verbatim", q.Level)
	}
	if q.Difficulty != catalog.DefaultDifficulty {
		t.Errorf("difficulty = %d, want %d", q.Difficulty, catalog.DefaultDifficulty)
	}
}

func TestGenerate_DifficultyIncreases(t *testing.T) {
	for _, op := range catalog.AllOperations() {
		easy := GenerateQuestion(string(op), "easy")
		hard := GenerateQuestion(string(op), "hard")
		if easy.Difficulty >= hard.Difficulty {
			t.Errorf("%s: easy difficulty %d >= hard %d", op, easy.Difficulty, hard.Difficulty)
		}
	}
}

func TestGenerate_ScriptedAddition(t *testing.T) {
	r := &scriptedRand{ints: []int{2, 3}}
	e := New(r, Config{IDFunc: func() string { return "fixed" }})

	q := e.Generate("addition", "easy")
	if q.Question != "3 + 4" {
		t.Errorf("question = %q, want %q", q.Question, "3 + 4")
	}
	if q.Answer != "7" {
		t.Errorf("answer = %q, want 7", q.Answer)
	}
	if q.ID != "fixed" {
		t.Errorf("id = %q, want fixed", q.ID)
	}
	if len(q.Options) != OptionCount {
		t.Fatalf("expected %d options, got %v", OptionCount, q.Options)
	}
	found := false
	for _, o := range q.Options {
		if o == "7" {
			found = true
		}
	}
	if !found {
		t.Errorf("answer missing from options %v", q.Options)
	}
}

func TestDivision_MediumShape(t *testing.T) {
	re := regexp.MustCompile(`^\d+ ÷ \d+$`)
	r := NewSeededRand(9, 9)
	for range 200 {
		raw := genDivision(r, catalog.LevelMedium)
		if !re.MatchString(raw.Question) {
			t.Fatalf("unexpected question %q", raw.Question)
		}
		if strings.Contains(raw.Question, "÷ 0") {
			t.Fatalf("division by zero in %q", raw.Question)
		}
		var n, d int
		fmt.Sscanf(raw.Question, "%d ÷ %d", &n, &d)
		q, _ := strconv.Atoi(raw.Answer)
		if d*q != n {
			t.Fatalf("%q answered %q is not exact", raw.Question, raw.Answer)
		}
	}
}

func TestDivisionRemainder_Identity(t *testing.T) {
	re := regexp.MustCompile(`^(\d+) ÷ (\d+) \(with remainder\)$`)
	ans := regexp.MustCompile(`^(\d+) R(\d+)$`)
	r := NewSeededRand(3, 1)
	for _, level := range catalog.AllLevels() {
		for range 50 {
			raw := genDivisionRemainder(r, level)
			qm := re.FindStringSubmatch(raw.Question)
			am := ans.FindStringSubmatch(raw.Answer)
			if qm == nil || am == nil {
				t.Fatalf("unexpected shape %q / %q", raw.Question, raw.Answer)
			}
			n, _ := strconv.Atoi(qm[1])
			d, _ := strconv.Atoi(qm[2])
			q, _ := strconv.Atoi(am[1])
			rem, _ := strconv.Atoi(am[2])
			if d == 0 || rem < 1 || rem >= d || d*q+rem != n {
				t.Fatalf("%q answered %q breaks n = d*q + r", raw.Question, raw.Answer)
			}
		}
	}
}

func TestAllDivisionOps_NoZeroDivisor(t *testing.T) {
	ops := []catalog.Operation{
		catalog.OpDivision, catalog.OpDivisionRemainder, catalog.OpLongDivision,
		catalog.OpDecimalDivision, catalog.OpFractionDivision, catalog.OpDivisionWordProblems,
	}
	r := NewSeededRand(5, 5)
	for _, op := range ops {
		gen, _ := Dispatch(op)
		for _, level := range catalog.AllLevels() {
			for range 30 {
				raw := gen(r, level)
				if strings.Contains(raw.Question, "÷ 0 ") || strings.HasSuffix(raw.Question, "÷ 0") {
					t.Fatalf("%s: division by zero in %q", op, raw.Question)
				}
			}
		}
	}
}

func TestNewSeededRand_Deterministic(t *testing.T) {
	a := New(NewSeededRand(42, 7), Config{IDFunc: func() string { return "x" }})
	b := New(NewSeededRand(42, 7), Config{IDFunc: func() string { return "x" }})
	for _, op := range catalog.AllOperations() {
		qa, qb := a.Generate(string(op), "hard"), b.Generate(string(op), "hard")
		if qa.Question != qb.Question || strings.Join(qa.Options, "|") != strings.Join(qb.Options, "|") {
			t.Fatalf("%s: same seed produced %q and %q", op, qa.Question, qb.Question)
		}
	}
}
