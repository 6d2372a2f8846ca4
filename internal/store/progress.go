package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ayato/kioku/internal/srs"
)

// ProgressRepo stores per-card scheduling state. It satisfies the
// session engine's ProgressStore interface.
//
// Reads degrade rather than fail: a corrupt or unreadable table reads
// as "no progress", so a damaged database never blocks studying.
type ProgressRepo struct {
	db *sqlx.DB
}

// Get returns a card's progress, or nil if the card has never been
// reviewed (or its row is unreadable).
func (r *ProgressRepo) Get(ctx context.Context, cardID string) (*srs.CardProgress, error) {
	var p srs.CardProgress
	err := r.db.GetContext(ctx, &p,
		`SELECT card_id, dataset_id, ease_factor, interval_days, repetitions, next_review, last_rating
		 FROM card_progress WHERE card_id = ?`, cardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, nil
	}
	return &p, nil
}

// All returns every progress record keyed by card ID. A failed read
// returns an empty map.
func (r *ProgressRepo) All(ctx context.Context) (map[string]srs.CardProgress, error) {
	var rows []srs.CardProgress
	err := r.db.SelectContext(ctx, &rows,
		`SELECT card_id, dataset_id, ease_factor, interval_days, repetitions, next_review, last_rating
		 FROM card_progress`)
	if err != nil {
		return map[string]srs.CardProgress{}, nil
	}

	out := make(map[string]srs.CardProgress, len(rows))
	for _, p := range rows {
		out[p.CardID] = p
	}
	return out, nil
}

// Put stores a progress record, replacing any prior one for the card.
func (r *ProgressRepo) Put(ctx context.Context, p srs.CardProgress) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO card_progress (card_id, dataset_id, ease_factor, interval_days, repetitions, next_review, last_rating)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(card_id) DO UPDATE SET
		   dataset_id = excluded.dataset_id,
		   ease_factor = excluded.ease_factor,
		   interval_days = excluded.interval_days,
		   repetitions = excluded.repetitions,
		   next_review = excluded.next_review,
		   last_rating = excluded.last_rating`,
		p.CardID, p.DatasetID, p.EaseFactor, p.Interval, p.Repetitions, p.NextReview, p.LastRating)
	if err != nil {
		return fmt.Errorf("put progress %s: %w", p.CardID, err)
	}
	return nil
}

// Reset deletes every progress record.
func (r *ProgressRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM card_progress`); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
