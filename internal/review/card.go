// Package review schedules biography review cards on an expanding
// interval: remembered cards come back later each time, missed cards
// fall back to the start of the ladder. The clock is always passed in.
package review

import "time"

// CardState holds the review schedule for one card.
type CardState struct {
	CardID          string    `json:"card_id"`
	FigureID        string    `json:"figure_id"`
	Stage           int       `json:"stage"`
	NextReview      time.Time `json:"next_review"`
	ConsecutiveHits int       `json:"consecutive_hits"`
	Graduated       bool      `json:"graduated"`
	LastReview      time.Time `json:"last_review"`
}

// IsDue reports whether the card is at or past its review date.
func (cs *CardState) IsDue(now time.Time) bool {
	return !now.Before(cs.NextReview)
}

// OverdueDays returns how many days past due the card is, 0 if not due.
func (cs *CardState) OverdueDays(now time.Time) float64 {
	if now.Before(cs.NextReview) {
		return 0
	}
	return now.Sub(cs.NextReview).Hours() / 24.0
}

// CurrentIntervalDays returns the card's current interval in days.
func (cs *CardState) CurrentIntervalDays() int {
	if cs.Graduated {
		return GraduatedIntervalDays
	}
	if cs.Stage >= len(BaseIntervals) {
		return BaseIntervals[len(BaseIntervals)-1]
	}
	return BaseIntervals[cs.Stage]
}

// DaysUntilReview returns whole days until the next review, 0 if due.
func (cs *CardState) DaysUntilReview(now time.Time) int {
	if cs.IsDue(now) {
		return 0
	}
	return int(cs.NextReview.Sub(now).Hours()/24.0) + 1
}

// Status describes a card's review state for display.
type Status string

const (
	StatusNotDue    Status = "not_due"
	StatusDue       Status = "due"
	StatusGraduated Status = "graduated"
)

// ReviewStatus returns the display status of the card.
func (cs *CardState) ReviewStatus(now time.Time) Status {
	if cs.IsDue(now) {
		return StatusDue
	}
	if cs.Graduated {
		return StatusGraduated
	}
	return StatusNotDue
}
