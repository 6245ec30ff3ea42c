package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pathgenius/genius/internal/review"
)

// ReviewRepo persists the review scheduler's card states.
type ReviewRepo interface {
	// Save replaces the stored review state with snap.
	Save(ctx context.Context, snap *review.Snapshot) error

	// Load returns the stored review state, or an empty snapshot if
	// nothing has been saved yet.
	Load(ctx context.Context) (*review.Snapshot, error)
}

type reviewRepo struct {
	db *sql.DB
}

func (r *reviewRepo) Save(ctx context.Context, snap *review.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin review save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM review_cards`); err != nil {
		return fmt.Errorf("clear review cards: %w", err)
	}

	for id, cd := range snap.Cards {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO review_cards
				(card_id, figure_id, stage, next_review, consecutive_hits, graduated, last_review)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, cd.FigureID, cd.Stage, cd.NextReview,
			cd.ConsecutiveHits, boolToInt(cd.Graduated), cd.LastReview,
		)
		if err != nil {
			return fmt.Errorf("insert review card %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit review save: %w", err)
	}
	return nil
}

func (r *reviewRepo) Load(ctx context.Context) (*review.Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT card_id, figure_id, stage, next_review, consecutive_hits, graduated, last_review
		FROM review_cards`)
	if err != nil {
		return nil, fmt.Errorf("query review cards: %w", err)
	}
	defer rows.Close()

	snap := &review.Snapshot{Cards: make(map[string]*review.CardData)}
	for rows.Next() {
		var cd review.CardData
		var graduated int
		if err := rows.Scan(&cd.CardID, &cd.FigureID, &cd.Stage, &cd.NextReview,
			&cd.ConsecutiveHits, &graduated, &cd.LastReview); err != nil {
			return nil, fmt.Errorf("scan review card: %w", err)
		}
		cd.Graduated = graduated != 0
		snap.Cards[cd.CardID] = &cd
	}
	return snap, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
