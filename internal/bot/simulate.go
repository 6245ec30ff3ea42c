package bot

import (
	"math"

	"github.com/pathgenius/genius/internal/question"
)

// Pseudo-random transform constants. pseudoRandom(seed) is the
// fractional part of sin(seed*k1 + k2) * k3, a fixed deterministic map
// from an integer seed to [0, 1). The constants never change: answer
// histories replay against them.
const (
	sinK1 = 12.9898
	sinK2 = 78.233
	sinK3 = 43758.5453
)

// Per-answer seed derivation strides. The correctness draw for question
// i uses profileHash + i*101; the timing draw uses profileHash + i*101
// + 53, keeping the two draws independent.
const (
	answerSeedStride = 101
	timeSeedOffset   = 53
)

// Effective accuracy is clamped to this band so no question is ever a
// guaranteed hit or a guaranteed miss, whatever the profile says.
const (
	MinAccuracy = 0.15
	MaxAccuracy = 0.98
)

// difficultyPenaltyStep lowers effective accuracy 6 points per
// difficulty level above 3 (and raises it below).
const difficultyPenaltyStep = 0.06

// MinResponseSeconds floors every simulated answer time. No opponent
// answers instantly.
const MinResponseSeconds = 3

// Simulate produces one answer record per question, in order. Records
// are independent: question i's outcome never depends on question i-1.
func Simulate(questions []question.Question, profile Profile) []question.AnswerRecord {
	records := make([]question.AnswerRecord, len(questions))
	base := profileHash(profile.ID)

	for i, q := range questions {
		acc := AdjustedAccuracy(profile.Accuracy(question.CategoryOf(q)), q.Difficulty)

		seed := base + int64(i)*answerSeedStride
		r := pseudoRandom(seed)

		variance := (pseudoRandom(seed+timeSeedOffset) - 0.5) * 6 // roughly +-3s
		secs := profile.BaseResponseSeconds + variance + float64(q.Difficulty)*1.5

		records[i] = question.AnswerRecord{
			QuestionID:       q.ID,
			IsCorrect:        r < acc,
			TimeSpentSeconds: flooredSeconds(secs),
		}
	}
	return records
}

// AdjustedAccuracy applies the difficulty penalty to a base accuracy and
// clamps the result into [MinAccuracy, MaxAccuracy].
func AdjustedAccuracy(base float64, difficulty int) float64 {
	penalty := float64(difficulty-3) * difficultyPenaltyStep
	return clamp(base-penalty, MinAccuracy, MaxAccuracy)
}

// pseudoRandom maps an integer seed to a value in [0, 1).
func pseudoRandom(seed int64) float64 {
	v := math.Sin(float64(seed)*sinK1+sinK2) * sinK3
	f := v - math.Floor(v)
	if f >= 1 { // guard against float rounding
		f = math.Nextafter(1, 0)
	}
	return f
}

// profileHash folds a profile id into an integer so distinct opponents
// draw from distinct seed sequences.
func profileHash(id string) int64 {
	var h int64
	for _, c := range id {
		h = h*31 + int64(c)
	}
	if h < 0 {
		h = -h
	}
	return h
}

func flooredSeconds(secs float64) int {
	n := int(math.Round(secs))
	if n < MinResponseSeconds {
		return MinResponseSeconds
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
