package plan

import (
	"context"
	"fmt"
	"time"
)

// Repo persists study plans, one per dataset.
type Repo interface {
	// Load returns the stored plan for a dataset, or nil if none exists
	// (or the stored plan is unreadable).
	Load(ctx context.Context, datasetID string) (*StudyPlan, error)

	// Save stores a plan, replacing any prior plan for its dataset.
	Save(ctx context.Context, p *StudyPlan) error

	// Clear removes the plan for a dataset.
	Clear(ctx context.Context, datasetID string) error
}

// Service creates and retrieves study plans.
type Service struct {
	repo Repo
	now  func() time.Time
}

// NewService creates a Service. now may be nil to use the system clock.
func NewService(repo Repo, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

// Create builds and stores a plan splitting cardIDs over totalDays.
// totalDays of 0 means "study all at once": any stored plan for the
// dataset is cleared and no plan is returned. Negative day counts are
// a caller bug and rejected.
func (s *Service) Create(ctx context.Context, datasetID string, cardIDs []string, totalDays int) (*StudyPlan, error) {
	if totalDays < 0 {
		return nil, fmt.Errorf("create plan: total days %d must not be negative", totalDays)
	}
	if totalDays == 0 {
		if err := s.repo.Clear(ctx, datasetID); err != nil {
			return nil, fmt.Errorf("clear prior plan: %w", err)
		}
		return nil, nil
	}

	p := &StudyPlan{
		DatasetID: datasetID,
		TotalDays: totalDays,
		CardIDs:   Split(cardIDs, totalDays),
		CreatedAt: s.now(),
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}
	return p, nil
}

// Load returns the current plan for a dataset, or nil if none exists.
func (s *Service) Load(ctx context.Context, datasetID string) (*StudyPlan, error) {
	return s.repo.Load(ctx, datasetID)
}

// Clear removes the plan for a dataset.
func (s *Service) Clear(ctx context.Context, datasetID string) error {
	return s.repo.Clear(ctx, datasetID)
}
