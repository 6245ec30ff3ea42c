// Package daily derives the shared per-day seed. Every selection made on
// the same UTC calendar day starts from the same seed, so a player sees
// the same daily test across restarts and a fresh one after midnight UTC.
package daily

import "time"

// Seed returns the seed for the UTC calendar date of now. Time of day,
// sub-day precision and the caller's timezone never affect the result.
func Seed(now time.Time) int64 {
	y, m, d := now.UTC().Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

// TestID returns the stable identifier for the daily test of now's UTC
// date, used as the attempt key in history.
func TestID(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}
