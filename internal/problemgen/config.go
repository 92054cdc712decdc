package problemgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Config controls the behavior of an Engine.
type Config struct {
	// Validators is the ordered list of validators Engine.Check runs on a
	// question. They execute in order; the first failure stops the pipeline.
	Validators []Validator

	// IDFunc returns a fresh question id.
	IDFunc func() string
}

// DefaultConfig returns a Config with the standard validator chain
// and random UUID ids.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&OptionsValidator{},
			&MathCheckValidator{},
		},
		IDFunc: uuid.NewString,
	}
}

// SeededIDs returns an IDFunc producing the same sequence of name-based
// UUIDs for the same seed. The returned func is not safe for concurrent use.
func SeededIDs(seed uint64) func() string {
	var n uint64
	return func() string {
		n++
		return uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "mathforge/%d/%d", seed, n)).String()
	}
}
