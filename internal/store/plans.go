package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ayato/kioku/internal/plan"
)

// PlanRepo stores at most one study plan per dataset. It satisfies
// plan.Repo. Day-buckets are serialized as JSON in a single column; a
// row that fails to decode reads as "no plan".
type PlanRepo struct {
	db *sqlx.DB
}

type planRow struct {
	DatasetID string `db:"dataset_id"`
	TotalDays int    `db:"total_days"`
	CardIDs   string `db:"card_ids"`
	CreatedAt string `db:"created_at"`
}

// Load returns the plan for a dataset, or nil if none is stored or the
// stored row is unreadable.
func (r *PlanRepo) Load(ctx context.Context, datasetID string) (*plan.StudyPlan, error) {
	var row planRow
	err := r.db.GetContext(ctx, &row,
		`SELECT dataset_id, total_days, card_ids, created_at FROM study_plans WHERE dataset_id = ?`,
		datasetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, nil
	}

	var cardIDs [][]string
	if err := json.Unmarshal([]byte(row.CardIDs), &cardIDs); err != nil {
		return nil, nil
	}
	createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
	if err != nil {
		return nil, nil
	}

	return &plan.StudyPlan{
		DatasetID: row.DatasetID,
		TotalDays: row.TotalDays,
		CardIDs:   cardIDs,
		CreatedAt: createdAt,
	}, nil
}

// Save stores a plan, replacing any prior plan for its dataset.
func (r *PlanRepo) Save(ctx context.Context, p *plan.StudyPlan) error {
	cardIDs, err := json.Marshal(p.CardIDs)
	if err != nil {
		return fmt.Errorf("marshal plan buckets: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO study_plans (dataset_id, total_days, card_ids, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(dataset_id) DO UPDATE SET
		   total_days = excluded.total_days,
		   card_ids = excluded.card_ids,
		   created_at = excluded.created_at`,
		p.DatasetID, p.TotalDays, string(cardIDs), p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save plan for %s: %w", p.DatasetID, err)
	}
	return nil
}

// Clear removes the plan for a dataset. Clearing a dataset with no plan
// is not an error.
func (r *PlanRepo) Clear(ctx context.Context, datasetID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM study_plans WHERE dataset_id = ?`, datasetID); err != nil {
		return fmt.Errorf("clear plan for %s: %w", datasetID, err)
	}
	return nil
}
