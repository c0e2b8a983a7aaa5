package qualitymock

import (
	"context"
	"time"

	domain "agrimarket-backend/internal/domain/quality"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, c *domain.Check) error
	GetByQualityIDFn func(ctx context.Context, qualityID string) (*domain.Check, error)
	FinalizeFn       func(ctx context.Context, qualityID string, status domain.VerificationStatus, remarks string, at time.Time) error
	CountPendingFn   func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Check) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByQualityID(ctx context.Context, qualityID string) (*domain.Check, error) {
	if m.GetByQualityIDFn != nil {
		return m.GetByQualityIDFn(ctx, qualityID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Finalize(ctx context.Context, qualityID string, status domain.VerificationStatus, remarks string, at time.Time) error {
	if m.FinalizeFn != nil {
		return m.FinalizeFn(ctx, qualityID, status, remarks, at)
	}
	return nil
}

func (m *Repo) CountPending(ctx context.Context) (int64, error) {
	if m.CountPendingFn != nil {
		return m.CountPendingFn(ctx)
	}
	return 0, nil
}
