// Package scoring turns answer records into point totals. Pure
// arithmetic over explicit inputs; results are explainable from the
// question bank alone.
package scoring

import "github.com/pathgenius/genius/internal/question"

// Total sums the points of correctly answered questions. Answers are
// matched to questions by id; an answer referencing a question outside
// the set contributes nothing, which guards against stale answers from a
// previous set. Duplicate answers each count: the function stays
// defensive and leaves dedup to whoever builds the answer list.
func Total(answers []question.AnswerRecord, questions []question.Question) int {
	byID := make(map[string]question.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	total := 0
	for _, a := range answers {
		if !a.IsCorrect {
			continue
		}
		if q, ok := byID[a.QuestionID]; ok {
			total += q.Points
		}
	}
	return total
}

// CorrectCount returns how many answers in the list are correct and
// matched to a question in the set.
func CorrectCount(answers []question.AnswerRecord, questions []question.Question) int {
	byID := make(map[string]bool, len(questions))
	for _, q := range questions {
		byID[q.ID] = true
	}

	n := 0
	for _, a := range answers {
		if a.IsCorrect && byID[a.QuestionID] {
			n++
		}
	}
	return n
}

// TotalTimeSeconds sums the recorded time over all answers.
func TotalTimeSeconds(answers []question.AnswerRecord) int {
	total := 0
	for _, a := range answers {
		total += a.TimeSpentSeconds
	}
	return total
}

// Outcome is the comparison of two scored answer runs.
type Outcome int

const (
	OutcomeLoss Outcome = iota - 1
	OutcomeDraw
	OutcomeWin
)

// Compare ranks the user against the opponent: higher score wins, and
// equal scores fall back to lower total time. A draw needs both equal.
func Compare(userScore, botScore, userTimeSecs, botTimeSecs int) Outcome {
	switch {
	case userScore > botScore:
		return OutcomeWin
	case userScore < botScore:
		return OutcomeLoss
	case userTimeSecs < botTimeSecs:
		return OutcomeWin
	case userTimeSecs > botTimeSecs:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}
