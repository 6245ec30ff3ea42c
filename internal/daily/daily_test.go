package daily

import (
	"testing"
	"time"
)

func TestSeed_SameUTCDay(t *testing.T) {
	base := time.Date(2026, 3, 14, 0, 0, 1, 0, time.UTC)
	tests := []time.Time{
		base,
		base.Add(6 * time.Hour),
		base.Add(23*time.Hour + 58*time.Minute),
		time.Date(2026, 3, 14, 9, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)),
	}

	want := Seed(base)
	for _, now := range tests {
		if got := Seed(now); got != want {
			t.Errorf("Seed(%v) = %d, want %d", now, got, want)
		}
	}
}

func TestSeed_DifferentDaysDistinct(t *testing.T) {
	seen := make(map[int64]time.Time)
	start := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 30; i++ {
		now := start.AddDate(0, 0, i)
		seed := Seed(now)
		if prev, ok := seen[seed]; ok {
			t.Fatalf("seed %d repeated for %v and %v", seed, prev, now)
		}
		seen[seed] = now
	}
}

func TestSeed_TimezoneDoesNotLeak(t *testing.T) {
	// 23:30 UTC on March 1 is already March 2 in UTC+5. The seed must
	// follow the UTC date.
	utc := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	shifted := utc.In(time.FixedZone("UTC+5", 5*3600))

	if Seed(utc) != Seed(shifted) {
		t.Errorf("Seed differs across zone representations of the same instant")
	}
}

func TestTestID(t *testing.T) {
	now := time.Date(2026, 7, 4, 18, 0, 0, 0, time.FixedZone("UTC-8", -8*3600))
	// 18:00 UTC-8 is 02:00 UTC on July 5.
	if got := TestID(now); got != "2026-07-05" {
		t.Errorf("TestID = %q, want 2026-07-05", got)
	}
}
