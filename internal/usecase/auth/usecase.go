package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agrimarket-backend/internal/domain/buyer"
	"agrimarket-backend/internal/domain/farmer"
	"agrimarket-backend/internal/domain/geo"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/pkg/id"

	"go.uber.org/zap"
)

var ErrMockLoginDisabled = errors.New("mock login is disabled")

type Usecase struct {
	users    user.Repository
	farmers  farmer.Repository
	buyers   buyer.Repository
	identity user.IdentityProvider
	tokens   user.TokenService
	log      *zap.Logger
	now      func() time.Time

	mockLogin bool
}

func NewUsecase(
	users user.Repository,
	farmers farmer.Repository,
	buyers buyer.Repository,
	idp user.IdentityProvider,
	tokens user.TokenService,
	log *zap.Logger,
) *Usecase {
	return &Usecase{users: users, farmers: farmers, buyers: buyers, identity: idp, tokens: tokens, log: log, now: time.Now}
}

// EnableMockLogin lets a client sign in by email alone. Demo mode only.
func (u *Usecase) EnableMockLogin() { u.mockLogin = true }

func (u *Usecase) MockLoginEnabled() bool { return u.mockLogin }

// Register creates credentials, the user document and the role profile.
// Only admins start out verified.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisteredDTO, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil, user.ErrEmailTaken
	} else if !errors.Is(err, user.ErrNotFound) {
		return nil, err
	}

	userID := id.NewID32()
	if err := u.identity.CreateAccount(ctx, userID, email, in.Password, in.Role); err != nil {
		return nil, err
	}

	now := u.now().UTC()
	usr := &user.User{
		UserID:     userID,
		Name:       in.Name,
		Email:      email,
		Phone:      in.Phone,
		Role:       in.Role,
		IsVerified: in.Role == user.RoleAdmin,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	switch in.Role {
	case user.RoleFarmer:
		var loc geo.Location
		if in.Location != nil {
			loc = *in.Location
		}
		if err := u.farmers.Create(ctx, farmer.NewProfile(userID, loc, now)); err != nil {
			return nil, fmt.Errorf("create farmer profile: %w", err)
		}
	case user.RoleBuyer:
		company := in.CompanyName
		if company == "" {
			company = in.Name
		}
		if err := u.buyers.Create(ctx, buyer.NewProfile(userID, company, in.BusinessType, now)); err != nil {
			return nil, fmt.Errorf("create buyer profile: %w", err)
		}
	}

	u.log.Info("user registered", zap.String("user_id", userID), zap.String("role", string(in.Role)))
	return &RegisteredDTO{UserID: userID, Email: email, Role: in.Role}, nil
}

func (u *Usecase) Login(ctx context.Context, email, password string) (*SessionDTO, error) {
	p, err := u.identity.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	usr, err := u.users.GetByUserID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	return u.session(usr)
}

// MockLogin trusts the email. It exists so the API can be exercised without a client SDK.
func (u *Usecase) MockLogin(ctx context.Context, email string) (*SessionDTO, error) {
	if !u.mockLogin {
		return nil, ErrMockLoginDisabled
	}
	usr, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	u.log.Warn("mock login used", zap.String("user_id", usr.UserID))
	return u.session(usr)
}

func (u *Usecase) Me(ctx context.Context, userID string) (*user.User, error) {
	return u.users.GetByUserID(ctx, userID)
}

func (u *Usecase) session(usr *user.User) (*SessionDTO, error) {
	tok, exp, err := u.tokens.Issue(user.Principal{UserID: usr.UserID, Role: usr.Role})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &SessionDTO{Token: tok, ExpiresAt: exp, User: usr}, nil
}
