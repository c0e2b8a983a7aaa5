package paymentmock

import (
	"context"
	"time"

	domain "agrimarket-backend/internal/domain/payment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, p *domain.Payment) error
	GetByOrderIDFn func(ctx context.Context, orderID string) (*domain.Payment, error)
	MarkPaidFn     func(ctx context.Context, orderID, transactionID string, at time.Time) error
	MarkFailedFn   func(ctx context.Context, orderID string) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	if m.GetByOrderIDFn != nil {
		return m.GetByOrderIDFn(ctx, orderID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) MarkPaid(ctx context.Context, orderID, transactionID string, at time.Time) error {
	if m.MarkPaidFn != nil {
		return m.MarkPaidFn(ctx, orderID, transactionID, at)
	}
	return nil
}

func (m *Repo) MarkFailed(ctx context.Context, orderID string) error {
	if m.MarkFailedFn != nil {
		return m.MarkFailedFn(ctx, orderID)
	}
	return nil
}

// Gateway satisfies domain.Gateway.
type Gateway struct {
	CreateOrderFn func(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
	Key           string
}

func (g *Gateway) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	if g.CreateOrderFn != nil {
		return g.CreateOrderFn(ctx, req)
	}
	return &domain.Order{ID: "order_mock", Amount: req.Amount, Currency: req.Currency, Receipt: req.Receipt, Status: "created"}, nil
}

func (g *Gateway) KeyID() string { return g.Key }
