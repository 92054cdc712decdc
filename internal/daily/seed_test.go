package daily

import (
	"math"
	"testing"
	"time"
)

func TestSeed_CalendarDay(t *testing.T) {
	want := uint64(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC).UnixMilli())
	tests := []time.Time{
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 13, 45, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC),
	}
	for _, d := range tests {
		if got := Seed(d); got != want {
			t.Errorf("Seed(%v) = %d, want %d", d, got, want)
		}
	}
	if Seed(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)) == want {
		t.Error("next day must have a different seed")
	}
}

func TestSample_Pure(t *testing.T) {
	seed := Seed(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	for offset := range uint64(50) {
		a := Sample(seed, 0, 9, offset)
		b := Sample(seed, 0, 9, offset)
		if a != b {
			t.Fatalf("offset %d: %d != %d", offset, a, b)
		}
		if a < 0 || a > 9 {
			t.Fatalf("offset %d: %d out of range", offset, a)
		}
	}
}

func TestSample_SwapsReversedBounds(t *testing.T) {
	for offset := range uint64(20) {
		got := Sample(7, 10, 3, offset)
		if got < 3 || got > 10 {
			t.Fatalf("Sample(7, 10, 3, %d) = %d, want within [3, 10]", offset, got)
		}
		if got != Sample(7, 3, 10, offset) {
			t.Fatalf("reversed bounds must behave like ordered bounds")
		}
	}
}

func TestSample_Varies(t *testing.T) {
	seen := map[int]bool{}
	for offset := range uint64(100) {
		seen[Sample(12345, 0, 9, offset)] = true
	}
	if len(seen) < 5 {
		t.Errorf("expected a varied sequence, saw only %d distinct values", len(seen))
	}
}

func TestSample_SingleValue(t *testing.T) {
	if got := Sample(1, 4, 4, 0); got != 4 {
		t.Errorf("Sample(1, 4, 4, 0) = %d, want 4", got)
	}
}

func TestSample_WideRanges(t *testing.T) {
	tests := []struct {
		lo, hi int
	}{
		{math.MinInt, math.MaxInt},
		{math.MaxInt, math.MinInt},
		{math.MinInt, 0},
		{-1, math.MaxInt},
	}
	for _, tt := range tests {
		lo, hi := min(tt.lo, tt.hi), max(tt.lo, tt.hi)
		for offset := range uint64(20) {
			got := Sample(1, tt.lo, tt.hi, offset)
			if got < lo || got > hi {
				t.Fatalf("Sample(1, %d, %d, %d) = %d, out of range", tt.lo, tt.hi, offset, got)
			}
			if got != Sample(1, tt.lo, tt.hi, offset) {
				t.Fatalf("Sample(1, %d, %d, %d) is not reproducible", tt.lo, tt.hi, offset)
			}
		}
	}
}

func TestStreamFor_Reproducible(t *testing.T) {
	a, b := StreamFor(99, 3), StreamFor(99, 3)
	for range 10 {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatal("streams with the same seed and index diverged")
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-03-10", "2025-03-10", false},
		{"2025-03-10T15:04:05Z", "2025-03-10", false},
		{"2025-03-10T23:30:00-05:00", "2025-03-10", false},
		{"03/10/2025", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got.Format(time.DateOnly) != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got.Format(time.DateOnly), tt.want)
		}
	}
}
