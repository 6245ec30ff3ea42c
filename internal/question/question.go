// Package question defines the static question bank: immutable content
// items loaded once at startup and shared read-only by every selection.
package question

import "strings"

// Question is a single content item. Questions are defined at build time
// and never mutated after load.
type Question struct {
	ID         string   `json:"id"`
	Category   Category `json:"category"`
	Difficulty int      `json:"difficulty"` // 1-5
	Points     int      `json:"points"`
	Prompt     string   `json:"prompt"`
	// Options holds multiple-choice answers. Empty means the answer is
	// typed in directly (numeric entry).
	Options []string `json:"options,omitempty"`
	Answer  string   `json:"answer"`
}

// IsCorrect compares a submitted answer to the expected one by trimmed
// string equality.
func (q Question) IsCorrect(submitted string) bool {
	return strings.TrimSpace(submitted) == q.Answer
}

// AnswerRecord is one answer to one question, by the player or by a
// simulated opponent. It references the question by id only.
type AnswerRecord struct {
	QuestionID       string
	IsCorrect        bool
	TimeSpentSeconds int
}
