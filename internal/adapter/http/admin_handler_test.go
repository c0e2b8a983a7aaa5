package http

import (
	"context"
	stdhttp "net/http"
	"testing"

	"agrimarket-backend/internal/domain/audit"
	"agrimarket-backend/internal/domain/contract"
	"agrimarket-backend/internal/testutil/auditmock"
	"agrimarket-backend/internal/testutil/buyermock"
	"agrimarket-backend/internal/testutil/contractmock"
	"agrimarket-backend/internal/testutil/farmermock"
	"agrimarket-backend/internal/testutil/qualitymock"
	"agrimarket-backend/internal/testutil/usermock"
	adminUC "agrimarket-backend/internal/usecase/admin"
	"agrimarket-backend/internal/usecase/auditlog"
	contractUC "agrimarket-backend/internal/usecase/contract"
	qualityUC "agrimarket-backend/internal/usecase/quality"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newAdminHandler(contracts *contractmock.Repo, auditRepo *auditmock.Repo) *AdminHandler {
	log := zap.NewNop()
	rec := auditlog.NewRecorder(auditRepo, log)
	lifecycle := contractUC.NewUsecase(contracts, &buyermock.Repo{}, &farmermock.Repo{}, nil, rec, nil, log)
	quality := qualityUC.NewUsecase(&qualitymock.Repo{}, contracts, log)
	return NewAdminHandler(adminUC.NewUsecase(&usermock.Repo{}, contracts, lifecycle, quality, rec, log), log)
}

func TestModerateContract(t *testing.T) {
	completed := func(_ context.Context, id string) (*contract.Contract, error) {
		return &contract.Contract{ContractID: id, Status: contract.StatusCompleted}, nil
	}
	draft := func(_ context.Context, id string) (*contract.Contract, error) {
		return &contract.Contract{ContractID: id, Status: contract.StatusDraft}, nil
	}

	tests := []struct {
		name   string
		get    func(context.Context, string) (*contract.Contract, error)
		action string
		code   int
	}{
		{"approve draft", draft, "approve", stdhttp.StatusOK},
		{"reject draft", draft, "reject", stdhttp.StatusOK},
		{"approve completed is a conflict", completed, "approve", stdhttp.StatusConflict},
		{"unknown action", draft, "archive", stdhttp.StatusBadRequest},
		{"missing contract", missingContract, "approve", stdhttp.StatusNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := newAdminHandler(&contractmock.Repo{GetByContractIDFn: tt.get}, &auditmock.Repo{})
			e := newEchoWithValidator()
			body := mustJSON(map[string]string{"contractId": "CTR-1", "action": tt.action, "reason": "review"})
			c, rec := newCtx(e, stdhttp.MethodPost, "/api/admin/moderate-contract", body, adminP)
			if err := h.ModerateContract(c); err != nil {
				t.Fatalf("handler err: %v", err)
			}
			expectStatus(t, rec, tt.code)
		})
	}
}

func TestModerateContract_Audited(t *testing.T) {
	auditRepo := &auditmock.Repo{}
	contracts := &contractmock.Repo{GetByContractIDFn: func(_ context.Context, id string) (*contract.Contract, error) {
		return &contract.Contract{ContractID: id, Status: contract.StatusCompleted}, nil
	}}
	h := newAdminHandler(contracts, auditRepo)
	e := newEchoWithValidator()

	body := mustJSON(map[string]string{"contractId": "CTR-9", "action": "approve"})
	c, rec := newCtx(e, stdhttp.MethodPost, "/api/admin/moderate-contract", body, adminP)
	_ = h.ModerateContract(c)
	expectStatus(t, rec, stdhttp.StatusConflict)

	assert.Equal(t, []audit.Action{audit.ActionContractStatus, audit.ActionModerateContract}, auditRepo.Actions())
	assert.Equal(t, "rejected", auditRepo.Entries[1].Outcome)
}

func TestVerifyUser_RejectsUnknownAction(t *testing.T) {
	h := newAdminHandler(&contractmock.Repo{}, &auditmock.Repo{})
	e := newEchoWithValidator()

	body := mustJSON(map[string]string{"userId": "u1", "action": "maybe"})
	c, rec := newCtx(e, stdhttp.MethodPost, "/api/admin/verify-user", body, adminP)
	if err := h.VerifyUser(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	expectStatus(t, rec, stdhttp.StatusUnprocessableEntity)
	if er := decodeError(t, rec); !containsFieldMsg(er.Details, "action", "approve reject") {
		t.Fatalf("details = %+v", er.Details)
	}
}

func TestAuditLog_Limit(t *testing.T) {
	auditRepo := &auditmock.Repo{}
	for i := 0; i < 3; i++ {
		_ = auditRepo.Create(context.Background(), &audit.Entry{Action: audit.ActionVerifyUser})
	}
	h := newAdminHandler(&contractmock.Repo{}, auditRepo)
	e := newEchoWithValidator()

	tests := []struct {
		target string
		code   int
		count  string
	}{
		{"/api/admin/audit", stdhttp.StatusOK, `"count":3`},
		{"/api/admin/audit?limit=2", stdhttp.StatusOK, `"count":2`},
		{"/api/admin/audit?limit=0", stdhttp.StatusBadRequest, ""},
		{"/api/admin/audit?limit=abc", stdhttp.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.target, func(t *testing.T) {
			c, rec := newCtx(e, stdhttp.MethodGet, tt.target, nil, adminP)
			if err := h.AuditLog(c); err != nil {
				t.Fatalf("handler err: %v", err)
			}
			expectStatus(t, rec, tt.code)
			if tt.count != "" {
				assert.Contains(t, rec.Body.String(), tt.count)
			}
		})
	}
}
