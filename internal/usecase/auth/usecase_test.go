package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"agrimarket-backend/internal/domain/buyer"
	"agrimarket-backend/internal/domain/farmer"
	"agrimarket-backend/internal/domain/geo"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/testutil/buyermock"
	"agrimarket-backend/internal/testutil/farmermock"
	"agrimarket-backend/internal/testutil/usermock"

	"go.uber.org/zap"
)

// ----- test doubles -----

type fakeIdentity struct {
	accounts map[string]user.Principal
	password map[string]string
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{accounts: map[string]user.Principal{}, password: map[string]string{}}
}

func (f *fakeIdentity) CreateAccount(ctx context.Context, userID, email, password string, role user.Role) error {
	if _, ok := f.accounts[email]; ok {
		return user.ErrEmailTaken
	}
	f.accounts[email] = user.Principal{UserID: userID, Role: role}
	f.password[email] = password
	return nil
}

func (f *fakeIdentity) Authenticate(ctx context.Context, email, password string) (user.Principal, error) {
	p, ok := f.accounts[email]
	if !ok || f.password[email] != password {
		return user.Principal{}, user.ErrInvalidCredentials
	}
	return p, nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(p user.Principal) (string, time.Time, error) {
	return "tok-" + p.UserID, time.Unix(0, 0), nil
}

func (fakeTokens) Verify(token string) (user.Principal, error) { return user.Principal{}, nil }

// memUsers keeps created users so Login/Me can find them.
func memUsers() (*usermock.Repo, map[string]*user.User) {
	store := map[string]*user.User{}
	return &usermock.Repo{
		CreateFn: func(ctx context.Context, u *user.User) error {
			store[u.UserID] = u
			return nil
		},
		GetByUserIDFn: func(ctx context.Context, id string) (*user.User, error) {
			if u, ok := store[id]; ok {
				return u, nil
			}
			return nil, user.ErrNotFound
		},
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			for _, u := range store {
				if u.Email == email {
					return u, nil
				}
			}
			return nil, user.ErrNotFound
		},
	}, store
}

// ----- tests -----

func TestRegister_CreatesRoleProfile(t *testing.T) {
	tests := []struct {
		name         string
		in           RegisterInput
		wantVerified bool
		wantFarmer   bool
		wantBuyer    bool
	}{
		{
			name:       "farmer",
			in:         RegisterInput{Name: "Ravi", Email: "ravi@farm.in", Password: "pw", Role: user.RoleFarmer, Location: &geo.Location{Lat: 18.5, Lng: 73.8}},
			wantFarmer: true,
		},
		{
			name:      "buyer",
			in:        RegisterInput{Name: "Asha", Email: "asha@mart.in", Password: "pw", Role: user.RoleBuyer},
			wantBuyer: true,
		},
		{
			name:         "admin",
			in:           RegisterInput{Name: "Root", Email: "root@agri.in", Password: "pw", Role: user.RoleAdmin},
			wantVerified: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			users, store := memUsers()
			var gotFarmer *farmer.Farmer
			var gotBuyer *buyer.Buyer
			uc := NewUsecase(users,
				&farmermock.Repo{CreateFn: func(ctx context.Context, f *farmer.Farmer) error { gotFarmer = f; return nil }},
				&buyermock.Repo{CreateFn: func(ctx context.Context, b *buyer.Buyer) error { gotBuyer = b; return nil }},
				newFakeIdentity(), fakeTokens{}, zap.NewNop())

			dto, err := uc.Register(context.Background(), tt.in)
			if err != nil {
				t.Fatalf("Register err: %v", err)
			}
			if len(dto.UserID) != 32 {
				t.Fatalf("uid length %d", len(dto.UserID))
			}
			u := store[dto.UserID]
			if u == nil || u.IsVerified != tt.wantVerified {
				t.Fatalf("user=%+v", u)
			}
			if (gotFarmer != nil) != tt.wantFarmer || (gotBuyer != nil) != tt.wantBuyer {
				t.Fatalf("farmer=%v buyer=%v", gotFarmer != nil, gotBuyer != nil)
			}
			if gotFarmer != nil && (gotFarmer.TrustScore != 50 || gotFarmer.FarmLocation.Lat != 18.5) {
				t.Fatalf("farmer profile=%+v", gotFarmer)
			}
			if gotBuyer != nil && (gotBuyer.CompanyName != "Asha" || gotBuyer.BusinessType != "Retailer") {
				t.Fatalf("buyer profile=%+v", gotBuyer)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users, _ := memUsers()
	uc := NewUsecase(users, &farmermock.Repo{}, &buyermock.Repo{}, newFakeIdentity(), fakeTokens{}, zap.NewNop())
	in := RegisterInput{Name: "A", Email: "a@b.in", Password: "pw", Role: user.RoleBuyer}

	if _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("first Register err: %v", err)
	}
	in.Email = "A@B.in"
	if _, err := uc.Register(context.Background(), in); !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("err=%v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	users, _ := memUsers()
	uc := NewUsecase(users, &farmermock.Repo{}, &buyermock.Repo{}, newFakeIdentity(), fakeTokens{}, zap.NewNop())
	reg, err := uc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@b.in", Password: "pw", Role: user.RoleBuyer})
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}

	s, err := uc.Login(context.Background(), "a@b.in", "pw")
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if s.Token != "tok-"+reg.UserID || s.User.Email != "a@b.in" {
		t.Fatalf("session=%+v", s)
	}

	if _, err := uc.Login(context.Background(), "a@b.in", "nope"); !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("err=%v", err)
	}
}

func TestMockLogin(t *testing.T) {
	users, _ := memUsers()
	uc := NewUsecase(users, &farmermock.Repo{}, &buyermock.Repo{}, newFakeIdentity(), fakeTokens{}, zap.NewNop())
	if _, err := uc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@b.in", Password: "pw", Role: user.RoleFarmer}); err != nil {
		t.Fatalf("Register err: %v", err)
	}

	if _, err := uc.MockLogin(context.Background(), "a@b.in"); !errors.Is(err, ErrMockLoginDisabled) {
		t.Fatalf("err=%v, want disabled", err)
	}

	uc.EnableMockLogin()
	if _, err := uc.MockLogin(context.Background(), "a@b.in"); err != nil {
		t.Fatalf("MockLogin err: %v", err)
	}
	if _, err := uc.MockLogin(context.Background(), "ghost@b.in"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}
