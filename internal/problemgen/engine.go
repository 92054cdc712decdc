package problemgen

import "github.com/abhisek/mathforge/internal/catalog"

// Engine generates enriched questions from the procedural generators.
type Engine struct {
	rand   Rand
	config Config
}

// New creates an Engine drawing from r. A nil r uses DefaultRand and a nil
// IDFunc uses the default id source.
func New(r Rand, cfg Config) *Engine {
	if r == nil {
		r = DefaultRand()
	}
	if cfg.IDFunc == nil {
		cfg.IDFunc = DefaultConfig().IDFunc
	}
	return &Engine{rand: r, config: cfg}
}

// Generate produces one question for op at level. Unknown operations fall
// back to addition and unknown levels to each generator's easiest bucket.
func (e *Engine) Generate(op, level string) *Question {
	return e.GenerateWithID(op, level, e.config.IDFunc())
}

// GenerateWithID is Generate with a caller-chosen id.
func (e *Engine) GenerateWithID(op, level, id string) *Question {
	gen, served := Dispatch(catalog.Operation(op))
	lv := catalog.Level(level)
	return Enrich(gen(e.rand, lv), served, lv, id)
}

// Check runs the configured validators on q.
func (e *Engine) Check(q *Question) *ValidationError {
	return RunValidators(q, e.config.Validators)
}

var defaultEngine = New(DefaultRand(), DefaultConfig())

// GenerateQuestion produces one question using the process-wide random
// source and random UUID ids.
func GenerateQuestion(op, level string) *Question {
	return defaultEngine.Generate(op, level)
}
