package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agrimarket-backend/internal/adapter/identity"
	"agrimarket-backend/internal/adapter/middleware"
	"agrimarket-backend/internal/domain/audit"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/infrastructure/metrics"
	"agrimarket-backend/internal/testutil/auditmock"
	"agrimarket-backend/internal/testutil/buyermock"
	"agrimarket-backend/internal/testutil/contractmock"
	"agrimarket-backend/internal/testutil/deliverymock"
	"agrimarket-backend/internal/testutil/farmermock"
	"agrimarket-backend/internal/testutil/insightmock"
	"agrimarket-backend/internal/testutil/paymentmock"
	"agrimarket-backend/internal/testutil/qualitymock"
	"agrimarket-backend/internal/testutil/usermock"
	adminUC "agrimarket-backend/internal/usecase/admin"
	"agrimarket-backend/internal/usecase/auditlog"
	authUC "agrimarket-backend/internal/usecase/auth"
	buyerUC "agrimarket-backend/internal/usecase/buyer"
	contractUC "agrimarket-backend/internal/usecase/contract"
	deliveryUC "agrimarket-backend/internal/usecase/delivery"
	"agrimarket-backend/internal/usecase/demand"
	farmerUC "agrimarket-backend/internal/usecase/farmer"
	insightUC "agrimarket-backend/internal/usecase/insight"
	paymentUC "agrimarket-backend/internal/usecase/payment"
	qualityUC "agrimarket-backend/internal/usecase/quality"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// noIdentity refuses every login; routing tests only need tokens.
type noIdentity struct{}

func (noIdentity) CreateAccount(context.Context, string, string, string, user.Role) error { return nil }
func (noIdentity) Authenticate(context.Context, string, string) (user.Principal, error) {
	return user.Principal{}, user.ErrInvalidCredentials
}

type testServer struct {
	srv       *httptest.Server
	tokens    *identity.JWT
	audit     *auditmock.Repo
	contracts *contractmock.Repo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	log := zap.NewNop()
	m := metrics.New()
	tokens := identity.NewJWT("router-test-secret", time.Hour)
	auditRepo := &auditmock.Repo{}
	rec := auditlog.NewRecorder(auditRepo, log)

	users := &usermock.Repo{}
	contracts := &contractmock.Repo{}
	farmers := &farmermock.Repo{}
	buyers := &buyermock.Repo{}
	checks := &qualitymock.Repo{}

	contractSvc := contractUC.NewUsecase(contracts, buyers, farmers, nil, rec, m, log)
	qualitySvc := qualityUC.NewUsecase(checks, contracts, log)

	r := &Router{
		Tokens:   tokens,
		Redis:    redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		IdempTTL: time.Minute,
		Metrics:  m,
		Log:      log,

		Health:   NewHandler(),
		Auth:     NewAuthHandler(authUC.NewUsecase(users, farmers, buyers, noIdentity{}, tokens, log), log),
		Contract: NewContractHandler(contractSvc, log),
		Buyer:    NewBuyerHandler(buyerUC.NewUsecase(buyers, contracts), contractSvc, log),
		Farmer:   NewFarmerHandler(farmerUC.NewUsecase(farmers, &farmermock.CropRepo{}, contracts, demand.NewEstimator(1)), log),
		Payment:  NewPaymentHandler(paymentUC.NewUsecase(&paymentmock.Repo{}, contracts, &paymentmock.Gateway{}, "s", rec, nil, m, log), log),
		Admin:    NewAdminHandler(adminUC.NewUsecase(users, contracts, contractSvc, qualitySvc, rec, log), log),
		Quality:  NewQualityHandler(qualitySvc, log),
		Insight:  NewInsightHandler(insightUC.NewUsecase(&insightmock.Repo{}, &insightmock.Source{}, nil, m, log), log),
		Delivery: NewDeliveryHandler(deliveryUC.NewUsecase(&deliverymock.Repo{}, contracts, nil, log), log),
	}
	srv := httptest.NewServer(r.NewEcho())
	t.Cleanup(srv.Close)
	return &testServer{srv: srv, tokens: tokens, audit: auditRepo, contracts: contracts}
}

func (s *testServer) do(t *testing.T, method, path string, p *user.Principal, body string, hdr map[string]string) *stdhttp.Response {
	t.Helper()
	req, err := stdhttp.NewRequest(method, s.srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if p != nil {
		tok, _, err := s.tokens.Issue(*p)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	res, err := stdhttp.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func TestRouter_AccessControl(t *testing.T) {
	s := newTestServer(t)
	farmer, buyer, admin := farmerP, buyerP, adminP

	tests := []struct {
		name   string
		method string
		path   string
		as     *user.Principal
		code   int
	}{
		{"health is public", stdhttp.MethodGet, "/health", nil, stdhttp.StatusOK},
		{"metrics is public", stdhttp.MethodGet, "/metrics", nil, stdhttp.StatusOK},
		{"contracts need a token", stdhttp.MethodGet, "/api/contracts", nil, stdhttp.StatusUnauthorized},
		{"any role lists contracts", stdhttp.MethodGet, "/api/contracts", &farmer, stdhttp.StatusOK},
		{"farmer cannot use admin", stdhttp.MethodGet, "/api/admin/analytics", &farmer, stdhttp.StatusForbidden},
		{"admin analytics", stdhttp.MethodGet, "/api/admin/analytics", &admin, stdhttp.StatusOK},
		{"buyer cannot set status", stdhttp.MethodPut, "/api/contracts/CTR-1/status", &buyer, stdhttp.StatusForbidden},
		{"farmer cannot browse marketplace", stdhttp.MethodGet, "/api/buyer/marketplace", &farmer, stdhttp.StatusForbidden},
		{"buyer marketplace", stdhttp.MethodGet, "/api/buyer/marketplace", &buyer, stdhttp.StatusOK},
		{"farmer cannot pay", stdhttp.MethodPost, "/api/payment/verify", &farmer, stdhttp.StatusForbidden},
		{"buyer cannot submit quality", stdhttp.MethodPost, "/api/quality", &buyer, stdhttp.StatusForbidden},
		{"mock login off by default", stdhttp.MethodPost, "/api/auth/mock-login", nil, stdhttp.StatusNotFound},
		{"unknown route", stdhttp.MethodGet, "/nope", nil, stdhttp.StatusNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			res := s.do(t, tt.method, tt.path, tt.as, "", nil)
			assert.Equal(t, tt.code, res.StatusCode)
		})
	}
}

func TestRouter_PaymentIdempotencyIsOptIn(t *testing.T) {
	s := newTestServer(t)
	buyer := buyerP
	body := `{"razorpay_order_id":"o","razorpay_payment_id":"p","razorpay_signature":"bad","contractId":"CTR-1"}`

	// no key: the handler runs every time
	res := s.do(t, stdhttp.MethodPost, "/api/payment/verify", &buyer, body, nil)
	assert.Equal(t, stdhttp.StatusBadRequest, res.StatusCode)
	assert.Empty(t, res.Header.Get("Idempotent-Replayed"))
	assert.Equal(t, []audit.Action{audit.ActionSignatureMismatch}, s.audit.Actions())

	hdr := map[string]string{
		middleware.HeaderIdempotencyKey: "3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88",
		middleware.HeaderIdempotencyAt:  time.Now().UTC().Format(time.RFC3339),
	}
	res = s.do(t, stdhttp.MethodPost, "/api/payment/verify", &buyer, body, hdr)
	assert.Equal(t, stdhttp.StatusBadRequest, res.StatusCode)
	assert.Len(t, s.audit.Actions(), 2)

	// the keyed 400 is cached and replayed without another audit entry
	res = s.do(t, stdhttp.MethodPost, "/api/payment/verify", &buyer, body, hdr)
	assert.Equal(t, stdhttp.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "true", res.Header.Get("Idempotent-Replayed"))
	assert.Len(t, s.audit.Actions(), 2)
}

func TestRouter_CreateOrderWithoutIdempotencyHeaders(t *testing.T) {
	s := newTestServer(t)
	s.contracts.GetByContractIDFn = draftContract
	buyer := buyerP

	res := s.do(t, stdhttp.MethodPost, "/api/payment/create-order", &buyer, `{"contractId":"CTR-1","amount":250}`, nil)
	require.Equal(t, stdhttp.StatusOK, res.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "order_mock", body["id"])
	assert.Equal(t, float64(25000), body["amount"])
	assert.Equal(t, "INR", body["currency"])
	assert.Contains(t, body, "key_id")
}
