package problemgen

import (
	"math/rand/v2"
	"slices"

	"github.com/abhisek/mathforge/internal/catalog"
)

// Rand is the random source consumed by generators and the option
// synthesizer. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// globalRand delegates to the math/rand/v2 top-level functions, which are
// safe for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Float64() float64                   { return rand.Float64() }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultRand returns the process-wide random source.
func DefaultRand() Rand { return globalRand{} }

// NewSeededRand returns a PCG-backed source. Identical seeds yield identical
// streams on every platform.
func NewSeededRand(seed, stream uint64) Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

// randInt returns a uniform integer in [lo, hi].
func randInt(r Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.IntN(hi-lo+1)
}

// randNonZero returns a uniform non-zero integer in [-limit, limit].
func randNonZero(r Rand, limit int) int {
	if limit < 1 {
		limit = 1
	}
	n := randInt(r, 1, limit)
	if r.IntN(2) == 0 {
		return -n
	}
	return n
}

// randDecimal returns a value in [lo, hi] with exactly dp decimal places,
// sampled on the integer grid so no binary noise leaks into the operand.
func randDecimal(r Rand, lo, hi float64, dp int) float64 {
	scale := pow10(dp)
	n := randInt(r, int(lo*scale), int(hi*scale))
	return float64(n) / scale
}

// pick returns a uniformly chosen element of items.
func pick[T any](r Rand, items []T) T {
	return items[r.IntN(len(items))]
}

// chance returns true with probability 1/n.
func chance(r Rand, n int) bool {
	return r.IntN(n) == 0
}

// byLevel returns the bucket for level. Unknown levels resolve to the first
// bucket; levels past the last defined bucket resolve to the last one.
func byLevel[T any](level catalog.Level, buckets ...T) T {
	i := level.Index()
	if i >= len(buckets) {
		i = len(buckets) - 1
	}
	return buckets[i]
}

// span is an inclusive integer range.
type span struct{ lo, hi int }

func (s span) draw(r Rand) int { return randInt(r, s.lo, s.hi) }

// distinctInts draws k distinct integers from s. The span must hold at
// least k values.
func distinctInts(r Rand, s span, k int) []int {
	out := make([]int, 0, k)
	for attempt := 0; len(out) < k && attempt < 64*k; attempt++ {
		if n := s.draw(r); !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	for n := s.lo; len(out) < k; n++ {
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

// shuffled returns a shuffled copy of items.
func shuffled[T any](r Rand, items []T) []T {
	out := slices.Clone(items)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
