package buyermock

import (
	"context"

	domain "agrimarket-backend/internal/domain/buyer"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, b *domain.Buyer) error
	GetByUserIDFn    func(ctx context.Context, userID string) (*domain.Buyer, error)
	RecordPurchaseFn func(ctx context.Context, userID string) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Buyer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Buyer, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) RecordPurchase(ctx context.Context, userID string) error {
	if m.RecordPurchaseFn != nil {
		return m.RecordPurchaseFn(ctx, userID)
	}
	return nil
}
