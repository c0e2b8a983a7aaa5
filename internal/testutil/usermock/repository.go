package usermock

import (
	"context"

	domain "agrimarket-backend/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, u *domain.User) error
	GetByUserIDFn     func(ctx context.Context, userID string) (*domain.User, error)
	GetByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	SetVerifiedFn     func(ctx context.Context, userID string, verified bool) error
	CountUnverifiedFn func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) SetVerified(ctx context.Context, userID string, verified bool) error {
	if m.SetVerifiedFn != nil {
		return m.SetVerifiedFn(ctx, userID, verified)
	}
	return nil
}

func (m *Repo) CountUnverified(ctx context.Context) (int64, error) {
	if m.CountUnverifiedFn != nil {
		return m.CountUnverifiedFn(ctx)
	}
	return 0, nil
}
