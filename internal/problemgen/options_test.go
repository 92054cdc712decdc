package problemgen

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize_Shape(t *testing.T) {
	r := NewSeededRand(1, 2)
	for _, correct := range []float64{0, 1, 7, 42, 623, 10000} {
		opts := Synthesize(r, correct, 0)
		require.Len(t, opts, OptionCount)
		assert.Contains(t, opts, strconv.Itoa(int(correct)))

		seen := map[string]bool{}
		for _, o := range opts {
			assert.False(t, seen[o], "duplicate option %q", o)
			seen[o] = true
			v, err := strconv.Atoi(o)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, 0, "non-negative answer produced negative option")
		}
	}
}

func TestSynthesize_NonFinite(t *testing.T) {
	for _, correct := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		opts := Synthesize(NewSeededRand(9, 9), correct, 0)
		require.Len(t, opts, OptionCount)
		assert.Contains(t, opts, "0")

		seen := map[string]bool{}
		for _, o := range opts {
			assert.False(t, seen[o], "duplicate option %q for %v", o, correct)
			seen[o] = true
			_, err := strconv.Atoi(o)
			assert.NoError(t, err, "option %q for %v", o, correct)
		}
	}
}

func TestSynthesize_Decimals(t *testing.T) {
	r := NewSeededRand(3, 4)
	opts := Synthesize(r, 3.14159, 2)
	require.Len(t, opts, OptionCount)
	assert.Contains(t, opts, "3.14")
	for _, o := range opts {
		require.NoError(t, validateDecimal(o), "option %q is not normalized", o)
	}
}

func TestSynthesize_NegativeAllowed(t *testing.T) {
	opts := Synthesize(NewSeededRand(5, 6), -12, 0)
	require.Len(t, opts, OptionCount)
	assert.Contains(t, opts, "-12")
}

func TestSynthesize_TerminatesWithStuckRand(t *testing.T) {
	// Float64 always lands on the correct value, so random sampling never
	// succeeds and the deterministic fill must finish the job.
	opts := Synthesize(&scriptedRand{}, 5, 0)
	require.Len(t, opts, OptionCount)
	assert.ElementsMatch(t, []string{"5", "6", "4", "7"}, opts)
}

func TestShufflePaired_KeepsPairs(t *testing.T) {
	opts := []string{"0", "1", "2"}
	labels := []string{">", "<", "="}
	want := map[string]string{"0": ">", "1": "<", "2": "="}

	gotOpts, gotLabels := ShufflePaired(NewSeededRand(7, 8), opts, labels)
	for i, o := range gotOpts {
		assert.Equal(t, want[o], gotLabels[i])
	}
}

func TestWithDistractors(t *testing.T) {
	opts := withDistractors(NewSeededRand(1, 1), "even", []string{"odd", "EVEN", "", "odd", "neither", "both", "prime"})
	require.Len(t, opts, OptionCount)
	assert.Contains(t, opts, "even")
	assert.NotContains(t, opts, "EVEN")
	assert.NotContains(t, opts, "")
}

func TestDistinctInts(t *testing.T) {
	r := NewSeededRand(2, 2)
	got := distinctInts(r, span{1, 3}, 3)
	assert.ElementsMatch(t, []int{1, 2, 3}, got)

	got = distinctInts(r, span{1, 100}, 10)
	seen := map[int]bool{}
	for _, n := range got {
		assert.False(t, seen[n])
		seen[n] = true
	}
}
