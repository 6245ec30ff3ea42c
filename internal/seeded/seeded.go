// Package seeded provides a deterministic pseudo-random number generator
// with explicit seed threading. Every function is pure: the same input
// seed always produces the same value and the same next seed, which is
// what makes daily tests and challenge replays reproducible.
package seeded

// Linear congruential generator constants (the "minimal standard"
// Park-Miller generator). Fixed so golden outputs never drift.
const (
	Multiplier = 16807
	Modulus    = 2147483647 // 2^31 - 1
)

// Next advances the generator one step and returns a value in [0, 1)
// along with the next seed. Zero and negative seeds are normalized via
// absolute value, so any int64 is a valid input.
func Next(seed int64) (float64, int64) {
	s := normalize(seed)
	next := (s * Multiplier) % Modulus
	return float64(next) / Modulus, next
}

// NextInt returns a value in [0, n) and the next seed. n <= 1 always
// yields 0 but still advances the seed, keeping one draw per call.
func NextInt(seed int64, n int) (int, int64) {
	v, next := Next(seed)
	if n <= 1 {
		return 0, next
	}
	return int(v * float64(n)), next
}

// ShufflePrefix performs a seeded partial Fisher-Yates shuffle over the
// first count positions of items, in place, and returns the seed after
// all draws. Positions beyond count hold the unchosen remainder. A count
// at or above len(items) shuffles the whole slice.
func ShufflePrefix[T any](items []T, count int, seed int64) int64 {
	if count > len(items) {
		count = len(items)
	}
	s := seed
	for i := 0; i < count; i++ {
		var j int
		j, s = NextInt(s, len(items)-i)
		items[i], items[i+j] = items[i+j], items[i]
	}
	return s
}

// Shuffle is ShufflePrefix over the entire slice.
func Shuffle[T any](items []T, seed int64) int64 {
	return ShufflePrefix(items, len(items), seed)
}

// normalize maps any int64 into [1, Modulus). Zero is mapped to 1
// because the LCG fixes at zero otherwise.
func normalize(seed int64) int64 {
	s := seed % Modulus
	if s < 0 {
		s = -s
	}
	if s == 0 {
		s = 1
	}
	return s
}
