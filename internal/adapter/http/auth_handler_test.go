package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"strings"
	"testing"
	"time"

	"agrimarket-backend/internal/adapter/identity"
	"agrimarket-backend/internal/domain/buyer"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/testutil/buyermock"
	"agrimarket-backend/internal/testutil/farmermock"
	"agrimarket-backend/internal/testutil/usermock"
	"agrimarket-backend/internal/usecase/auth"

	"go.uber.org/zap"
)

// memIdentity keeps credentials in a map keyed by email.
type memIdentity struct {
	accounts map[string]user.Principal
	secrets  map[string]string
}

func newMemIdentity() *memIdentity {
	return &memIdentity{accounts: map[string]user.Principal{}, secrets: map[string]string{}}
}

func (m *memIdentity) CreateAccount(_ context.Context, userID, email, password string, role user.Role) error {
	if _, ok := m.accounts[email]; ok {
		return user.ErrEmailTaken
	}
	m.accounts[email] = user.Principal{UserID: userID, Role: role}
	m.secrets[email] = password
	return nil
}

func (m *memIdentity) Authenticate(_ context.Context, email, password string) (user.Principal, error) {
	p, ok := m.accounts[email]
	if !ok || m.secrets[email] != password {
		return user.Principal{}, user.ErrInvalidCredentials
	}
	return p, nil
}

func newAuthHandler(users *usermock.Repo, buyers *buyermock.Repo, mock bool) *AuthHandler {
	uc := auth.NewUsecase(users, &farmermock.Repo{}, buyers, newMemIdentity(), identity.NewJWT("auth-test", time.Hour), zap.NewNop())
	if mock {
		uc.EnableMockLogin()
	}
	return NewAuthHandler(uc, zap.NewNop())
}

func TestRegister_Buyer_CreatesProfile(t *testing.T) {
	var created *buyer.Buyer
	buyers := &buyermock.Repo{CreateFn: func(_ context.Context, b *buyer.Buyer) error { created = b; return nil }}
	h := newAuthHandler(&usermock.Repo{}, buyers, false)
	e := newEchoWithValidator()

	body := `{"name":"Asha","email":"Asha@Mills.in","password":"secret1","role":"buyer","businessType":"Miller"}`
	c, rec := newCtx(e, stdhttp.MethodPost, "/api/auth/register", strings.NewReader(body), user.Principal{})
	if err := h.Register(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	expectStatus(t, rec, stdhttp.StatusCreated)

	var out struct {
		Success bool               `json:"success"`
		Data    auth.RegisteredDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if out.Data.Email != "asha@mills.in" || out.Data.Role != user.RoleBuyer {
		t.Fatalf("unexpected dto: %+v", out.Data)
	}
	if created == nil || created.CompanyName != "Asha" {
		t.Fatalf("buyer profile should default company to name, got %+v", created)
	}
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		msg   string
	}{
		{"unknown role", `{"name":"a","email":"a@b.co","password":"secret1","role":"trader"}`, "role", "farmer, buyer, admin"},
		{"short password", `{"name":"a","email":"a@b.co","password":"abc","role":"farmer"}`, "password", "at least 6"},
		{"bad latitude", `{"name":"a","email":"a@b.co","password":"secret1","role":"farmer","location":{"lat":123,"lng":10}}`, "lat", "latitude"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler(&usermock.Repo{}, &buyermock.Repo{}, false)
			e := newEchoWithValidator()
			c, rec := newCtx(e, stdhttp.MethodPost, "/api/auth/register", strings.NewReader(tt.body), user.Principal{})
			if err := h.Register(c); err != nil {
				t.Fatalf("handler err: %v", err)
			}
			expectStatus(t, rec, stdhttp.StatusUnprocessableEntity)
			er := decodeError(t, rec)
			if !containsFieldMsg(er.Details, tt.field, tt.msg) {
				t.Fatalf("want %s error containing %q, got %+v", tt.field, tt.msg, er.Details)
			}
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	users := &usermock.Repo{GetByEmailFn: func(context.Context, string) (*user.User, error) {
		return &user.User{UserID: "u1"}, nil
	}}
	h := newAuthHandler(users, &buyermock.Repo{}, false)
	e := newEchoWithValidator()

	body := `{"name":"a","email":"a@b.co","password":"secret1","role":"farmer"}`
	c, rec := newCtx(e, stdhttp.MethodPost, "/api/auth/register", strings.NewReader(body), user.Principal{})
	if err := h.Register(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	expectStatus(t, rec, stdhttp.StatusConflict)
}

func TestLogin_BadCredentials(t *testing.T) {
	h := newAuthHandler(&usermock.Repo{}, &buyermock.Repo{}, false)
	e := newEchoWithValidator()

	c, rec := newCtx(e, stdhttp.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"x@y.co","password":"nope"}`), user.Principal{})
	if err := h.Login(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	expectStatus(t, rec, stdhttp.StatusUnauthorized)
	if er := decodeError(t, rec); er.Error != "Invalid email or password" {
		t.Fatalf("error = %q", er.Error)
	}
}

func TestMockLogin(t *testing.T) {
	users := &usermock.Repo{GetByEmailFn: func(_ context.Context, email string) (*user.User, error) {
		if email == "demo@farm.in" {
			return &user.User{UserID: "u-demo", Email: email, Role: user.RoleFarmer}, nil
		}
		return nil, user.ErrNotFound
	}}

	tests := []struct {
		name    string
		enabled bool
		email   string
		code    int
	}{
		{"disabled", false, "demo@farm.in", stdhttp.StatusNotFound},
		{"known email", true, "Demo@Farm.in", stdhttp.StatusOK},
		{"unknown email", true, "ghost@farm.in", stdhttp.StatusNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler(users, &buyermock.Repo{}, tt.enabled)
			e := newEchoWithValidator()
			c, rec := newCtx(e, stdhttp.MethodPost, "/api/auth/mock-login", mustJSON(map[string]string{"email": tt.email}), user.Principal{})
			if err := h.MockLogin(c); err != nil {
				t.Fatalf("handler err: %v", err)
			}
			expectStatus(t, rec, tt.code)
		})
	}
}

func TestMe_ReturnsCaller(t *testing.T) {
	users := &usermock.Repo{GetByUserIDFn: func(_ context.Context, id string) (*user.User, error) {
		return &user.User{UserID: id, Role: user.RoleBuyer}, nil
	}}
	h := newAuthHandler(users, &buyermock.Repo{}, false)
	e := newEchoWithValidator()

	c, rec := newCtx(e, stdhttp.MethodGet, "/api/auth/me", nil, buyerP)
	if err := h.Me(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	expectStatus(t, rec, stdhttp.StatusOK)
	if !strings.Contains(rec.Body.String(), `"u-buyer"`) {
		t.Fatalf("body missing caller id: %s", rec.Body.String())
	}
}
