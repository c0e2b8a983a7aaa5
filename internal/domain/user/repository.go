package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	SetVerified(ctx context.Context, userID string, verified bool) error
	CountUnverified(ctx context.Context) (int64, error)
}
