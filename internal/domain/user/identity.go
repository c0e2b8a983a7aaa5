package user

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// IdentityProvider owns secrets. The User document never carries a password.
type IdentityProvider interface {
	// CreateAccount returns ErrEmailTaken when the email already has credentials.
	CreateAccount(ctx context.Context, userID, email, password string, role Role) error
	Authenticate(ctx context.Context, email, password string) (Principal, error)
}

type TokenService interface {
	Issue(p Principal) (token string, expiresAt time.Time, err error)
	Verify(token string) (Principal, error)
}
