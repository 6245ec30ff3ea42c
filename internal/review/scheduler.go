package review

import (
	"sort"
	"time"
)

// Scheduler tracks review state for all introduced cards.
type Scheduler struct {
	cards map[string]*CardState
}

// NewScheduler creates a scheduler, optionally restoring state from a
// snapshot.
func NewScheduler(snap *Snapshot) *Scheduler {
	s := &Scheduler{cards: make(map[string]*CardState)}
	if snap == nil {
		return s
	}
	for id, cd := range snap.Cards {
		nextReview, err := time.Parse(time.RFC3339, cd.NextReview)
		if err != nil {
			continue
		}
		lastReview, err := time.Parse(time.RFC3339, cd.LastReview)
		if err != nil {
			continue
		}
		s.cards[id] = &CardState{
			CardID:          cd.CardID,
			FigureID:        cd.FigureID,
			Stage:           cd.Stage,
			NextReview:      nextReview,
			ConsecutiveHits: cd.ConsecutiveHits,
			Graduated:       cd.Graduated,
			LastReview:      lastReview,
		}
	}
	return s
}

// InitCard introduces a new card, due after the first base interval.
// Already-tracked cards are left untouched.
func (s *Scheduler) InitCard(cardID, figureID string, introducedAt time.Time) {
	if _, ok := s.cards[cardID]; ok {
		return
	}
	s.cards[cardID] = &CardState{
		CardID:     cardID,
		FigureID:   figureID,
		Stage:      0,
		NextReview: introducedAt.AddDate(0, 0, BaseIntervals[0]),
		LastReview: introducedAt,
	}
}

// RecordReview updates a card's schedule after a review answer. A hit
// climbs the interval ladder; a miss resets the streak and sends the
// card back to the first stage.
func (s *Scheduler) RecordReview(cardID string, remembered bool, now time.Time) {
	cs := s.cards[cardID]
	if cs == nil {
		return
	}

	cs.LastReview = now

	if remembered {
		cs.ConsecutiveHits++
		if !cs.Graduated {
			cs.Stage++
			if cs.ConsecutiveHits >= GraduationStage {
				cs.Graduated = true
			}
		}
	} else {
		cs.ConsecutiveHits = 0
		cs.Stage = 0
		cs.Graduated = false
	}

	cs.NextReview = now.AddDate(0, 0, cs.CurrentIntervalDays())
}

// DueCards returns the ids of cards due for review, most overdue first,
// ties broken by id for stable output.
func (s *Scheduler) DueCards(now time.Time) []string {
	type dueCard struct {
		id      string
		overdue float64
	}
	var due []dueCard

	for id, cs := range s.cards {
		if cs.IsDue(now) {
			due = append(due, dueCard{id: id, overdue: cs.OverdueDays(now)})
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].id < due[j].id
	})

	ids := make([]string, len(due))
	for i, d := range due {
		ids[i] = d.id
	}
	return ids
}

// Card returns the state for a card, or nil if not tracked.
func (s *Scheduler) Card(cardID string) *CardState {
	return s.cards[cardID]
}

// AllCards returns every tracked card state.
func (s *Scheduler) AllCards() map[string]*CardState {
	out := make(map[string]*CardState, len(s.cards))
	for id, cs := range s.cards {
		out[id] = cs
	}
	return out
}

// Snapshot is the serialized review state.
type Snapshot struct {
	Cards map[string]*CardData `json:"cards"`
}

// CardData is the wire form of one card's state.
type CardData struct {
	CardID          string `json:"card_id"`
	FigureID        string `json:"figure_id"`
	Stage           int    `json:"stage"`
	NextReview      string `json:"next_review"`
	ConsecutiveHits int    `json:"consecutive_hits"`
	Graduated       bool   `json:"graduated"`
	LastReview      string `json:"last_review"`
}

// SnapshotData exports the current state for persistence.
func (s *Scheduler) SnapshotData() *Snapshot {
	snap := &Snapshot{Cards: make(map[string]*CardData, len(s.cards))}
	for id, cs := range s.cards {
		snap.Cards[id] = &CardData{
			CardID:          cs.CardID,
			FigureID:        cs.FigureID,
			Stage:           cs.Stage,
			NextReview:      cs.NextReview.Format(time.RFC3339),
			ConsecutiveHits: cs.ConsecutiveHits,
			Graduated:       cs.Graduated,
			LastReview:      cs.LastReview.Format(time.RFC3339),
		}
	}
	return snap
}
