package daily

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/mathforge/internal/problemgen"
)

// Offsets at or above these values never collide with question indices.
const (
	focusOffset  uint64 = 1 << 32
	streamOffset uint64 = 1 << 33
)

// Seed derives the daily seed from the calendar day of date: the epoch
// milliseconds of that day at UTC midnight. Times on the same calendar day
// share a seed.
func Seed(date time.Time) uint64 {
	y, m, d := date.Date()
	return uint64(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).UnixMilli())
}

// Sample returns a deterministic integer in [lo, hi] for seed and offset.
// Reversed bounds are swapped. Any range, including the full int range, is
// accepted.
func Sample(seed uint64, lo, hi int, offset uint64) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	r := rand.New(rand.NewPCG(seed, offset))
	// The width wraps to 0 only for the full 64-bit range.
	width := uint64(hi) - uint64(lo) + 1
	if width == 0 {
		return int(r.Uint64())
	}
	return lo + int(r.Uint64N(width))
}

// StreamFor returns the random stream that renders question index of the
// challenge seeded with seed.
func StreamFor(seed uint64, index int) problemgen.Rand {
	return problemgen.NewSeededRand(seed, streamOffset+uint64(index))
}

// ParseDate accepts a calendar date ("2025-03-10") or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}
