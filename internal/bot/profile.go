// Package bot simulates an opponent's answers to a question set. Each
// question's outcome depends only on its own position, the question, and
// the fixed opponent profile, so a replay with the same inputs always
// produces the same answers.
package bot

import "github.com/pathgenius/genius/internal/question"

// DefaultAccuracy is applied when a profile has no accuracy entry for a
// question's category. A profile with gaps degrades to an average
// opponent rather than failing.
const DefaultAccuracy = 0.7

// Profile describes a simulated opponent. Immutable; the ID participates
// in the per-answer seed so the same opponent replays identically.
type Profile struct {
	ID                  string                        `json:"id"`
	Name                string                        `json:"name"`
	AccuracyByCategory  map[question.Category]float64 `json:"accuracy_by_category"`
	BaseResponseSeconds float64                       `json:"base_response_seconds"`
}

// Accuracy returns the profile's accuracy for a category, falling back
// to DefaultAccuracy when the category has no entry.
func (p Profile) Accuracy(c question.Category) float64 {
	if acc, ok := p.AccuracyByCategory[c]; ok {
		return acc
	}
	return DefaultAccuracy
}
