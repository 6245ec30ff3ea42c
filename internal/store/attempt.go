package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Attempt kinds.
const (
	KindDaily     = "daily"
	KindChallenge = "challenge"
)

// AttemptRecord is one finished test or challenge.
type AttemptRecord struct {
	ID           string
	Kind         string // KindDaily or KindChallenge
	TestID       string // UTC date label for daily tests, empty otherwise
	Seed         int64
	OpponentID   string // empty for daily tests
	UserScore    int
	BotScore     int
	UserTimeSecs int
	BotTimeSecs  int
	Outcome      int // -1 loss, 0 draw, 1 win; 0 for daily tests
	FinishedAt   time.Time
}

// VsRecord is the win/loss tally against one opponent.
type VsRecord struct {
	OpponentID string
	Wins       int
	Losses     int
	Draws      int
}

// AttemptRepo stores finished attempts.
type AttemptRepo interface {
	// Append records a finished attempt.
	Append(ctx context.Context, rec AttemptRecord) error

	// Recent returns the most recent attempts, newest first.
	Recent(ctx context.Context, limit int) ([]AttemptRecord, error)

	// Versus returns the win/loss record against one opponent.
	Versus(ctx context.Context, opponentID string) (VsRecord, error)
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Append(ctx context.Context, rec AttemptRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attempts
			(id, kind, test_id, seed, opponent_id, user_score, bot_score,
			 user_time_secs, bot_time_secs, outcome, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Kind, rec.TestID, rec.Seed, rec.OpponentID,
		rec.UserScore, rec.BotScore, rec.UserTimeSecs, rec.BotTimeSecs,
		rec.Outcome, rec.FinishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]AttemptRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, test_id, seed, opponent_id, user_score, bot_score,
		       user_time_secs, bot_time_secs, outcome, finished_at
		FROM attempts
		ORDER BY finished_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		var finished string
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.TestID, &rec.Seed,
			&rec.OpponentID, &rec.UserScore, &rec.BotScore,
			&rec.UserTimeSecs, &rec.BotTimeSecs, &rec.Outcome, &finished); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		rec.FinishedAt, err = time.Parse(time.RFC3339, finished)
		if err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *attemptRepo) Versus(ctx context.Context, opponentID string) (VsRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT outcome, COUNT(*)
		FROM attempts
		WHERE kind = ? AND opponent_id = ?
		GROUP BY outcome`, KindChallenge, opponentID)
	if err != nil {
		return VsRecord{}, fmt.Errorf("query versus record: %w", err)
	}
	defer rows.Close()

	rec := VsRecord{OpponentID: opponentID}
	for rows.Next() {
		var outcome, n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return VsRecord{}, fmt.Errorf("scan versus row: %w", err)
		}
		switch {
		case outcome > 0:
			rec.Wins = n
		case outcome < 0:
			rec.Losses = n
		default:
			rec.Draws = n
		}
	}
	return rec, rows.Err()
}
