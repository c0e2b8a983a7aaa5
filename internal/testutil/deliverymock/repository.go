package deliverymock

import (
	"context"
	"time"

	domain "agrimarket-backend/internal/domain/delivery"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, d *domain.Delivery) error
	GetByDeliveryIDFn    func(ctx context.Context, deliveryID string) (*domain.Delivery, error)
	LatestByContractIDFn func(ctx context.Context, contractID string) (*domain.Delivery, error)
	ApplyUpdateFn        func(ctx context.Context, deliveryID string, u domain.Update, at time.Time) error
	MarkDeliveredFn      func(ctx context.Context, deliveryID string, at time.Time) error
}

func (m *Repo) Create(ctx context.Context, d *domain.Delivery) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDeliveryID(ctx context.Context, deliveryID string) (*domain.Delivery, error) {
	if m.GetByDeliveryIDFn != nil {
		return m.GetByDeliveryIDFn(ctx, deliveryID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) LatestByContractID(ctx context.Context, contractID string) (*domain.Delivery, error) {
	if m.LatestByContractIDFn != nil {
		return m.LatestByContractIDFn(ctx, contractID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ApplyUpdate(ctx context.Context, deliveryID string, u domain.Update, at time.Time) error {
	if m.ApplyUpdateFn != nil {
		return m.ApplyUpdateFn(ctx, deliveryID, u, at)
	}
	return nil
}

func (m *Repo) MarkDelivered(ctx context.Context, deliveryID string, at time.Time) error {
	if m.MarkDeliveredFn != nil {
		return m.MarkDeliveredFn(ctx, deliveryID, at)
	}
	return nil
}
