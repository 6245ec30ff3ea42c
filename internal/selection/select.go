// Package selection picks questions from the static pools
// deterministically. Same pool, same count, same seed: same questions in
// the same order, which is what makes daily tests shared across sessions
// and challenge replays possible.
package selection

import (
	"fmt"

	"github.com/pathgenius/genius/internal/question"
	"github.com/pathgenius/genius/internal/seeded"
)

// Select deterministically picks count distinct questions from pool via
// a seeded partial Fisher-Yates shuffle. It returns the picks, the
// unpicked remainder in working order, and the seed after all draws.
// Feeding the remainder and returned seed into a follow-up Select
// continues the same shuffle, so chained selections concatenate to one
// larger selection.
//
// A count of zero returns an empty result without consuming randomness.
// A count at or above len(pool) returns a full seeded permutation. An
// empty pool is never an error; callers check sufficiency themselves.
// A negative count is a caller bug and panics.
func Select(pool []question.Question, count int, seed int64) (picked, rest []question.Question, next int64) {
	if count < 0 {
		panic(fmt.Sprintf("selection: negative count %d", count))
	}
	if count == 0 {
		return nil, clone(pool), seed
	}

	work := clone(pool)
	n := count
	if n > len(work) {
		n = len(work)
	}
	next = seeded.ShufflePrefix(work, n, seed)
	return work[:n], work[n:], next
}

func clone(pool []question.Question) []question.Question {
	out := make([]question.Question, len(pool))
	copy(out, pool)
	return out
}
