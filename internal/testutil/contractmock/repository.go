package contractmock

import (
	"context"

	domain "agrimarket-backend/internal/domain/contract"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, c *domain.Contract) error
	GetByContractIDFn func(ctx context.Context, contractID string) (*domain.Contract, error)
	ListFn            func(ctx context.Context, f domain.Filter) ([]domain.Contract, error)
	UpdateStatusFn    func(ctx context.Context, contractID string, from, to domain.Status) error
	AcceptFn          func(ctx context.Context, contractID, buyerID string) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Contract) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByContractID(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.GetByContractIDFn != nil {
		return m.GetByContractIDFn(ctx, contractID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Contract, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) UpdateStatus(ctx context.Context, contractID string, from, to domain.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, contractID, from, to)
	}
	return nil
}

func (m *Repo) Accept(ctx context.Context, contractID, buyerID string) error {
	if m.AcceptFn != nil {
		return m.AcceptFn(ctx, contractID, buyerID)
	}
	return nil
}
