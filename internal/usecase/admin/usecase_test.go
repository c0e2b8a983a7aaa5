package admin

import (
	"context"
	"testing"

	"agrimarket-backend/internal/domain/audit"
	"agrimarket-backend/internal/domain/contract"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/testutil/auditmock"
	"agrimarket-backend/internal/testutil/buyermock"
	"agrimarket-backend/internal/testutil/contractmock"
	"agrimarket-backend/internal/testutil/farmermock"
	"agrimarket-backend/internal/testutil/qualitymock"
	"agrimarket-backend/internal/testutil/usermock"
	"agrimarket-backend/internal/usecase/auditlog"
	contractUC "agrimarket-backend/internal/usecase/contract"
	qualityUC "agrimarket-backend/internal/usecase/quality"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var adminP = user.Principal{UserID: "u-admin", Role: user.RoleAdmin}

type deps struct {
	users     *usermock.Repo
	contracts *contractmock.Repo
	quality   *qualitymock.Repo
	audit     *auditmock.Repo
}

func newDeps() *deps {
	return &deps{users: &usermock.Repo{}, contracts: &contractmock.Repo{}, quality: &qualitymock.Repo{}, audit: &auditmock.Repo{}}
}

func (d *deps) usecase() *Usecase {
	log := zap.NewNop()
	rec := auditlog.NewRecorder(d.audit, log)
	lifecycle := contractUC.NewUsecase(d.contracts, &buyermock.Repo{}, &farmermock.Repo{}, nil, rec, nil, log)
	q := qualityUC.NewUsecase(d.quality, d.contracts, log)
	return NewUsecase(d.users, d.contracts, lifecycle, q, rec, log)
}

func TestVerifyUser(t *testing.T) {
	tests := []struct {
		action  string
		want    bool
		wantErr error
	}{
		{ActionApprove, true, nil},
		{ActionReject, false, nil},
		{"ban", false, ErrInvalidAction},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.action, func(t *testing.T) {
			d := newDeps()
			var set *bool
			d.users.SetVerifiedFn = func(ctx context.Context, userID string, v bool) error {
				set = &v
				return nil
			}
			got, err := d.usecase().VerifyUser(context.Background(), adminP, "u1", tt.action)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr != nil {
				assert.Nil(t, set)
				assert.Empty(t, d.audit.Actions())
				return
			}
			assert.Equal(t, tt.want, got)
			require.NotNil(t, set)
			assert.Equal(t, tt.want, *set)
			assert.Equal(t, []audit.Action{audit.ActionVerifyUser}, d.audit.Actions())
		})
	}
}

func TestVerifyUser_Unknown(t *testing.T) {
	d := newDeps()
	d.users.SetVerifiedFn = func(ctx context.Context, userID string, v bool) error { return user.ErrNotFound }
	_, err := d.usecase().VerifyUser(context.Background(), adminP, "ghost", ActionApprove)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestModerateContract(t *testing.T) {
	tests := []struct {
		name    string
		from    contract.Status
		action  string
		want    contract.Status
		wantErr error
	}{
		{"approve draft", contract.StatusDraft, ActionApprove, contract.StatusActive, nil},
		{"reject active", contract.StatusActive, ActionReject, contract.StatusCancelled, nil},
		{"approve completed is a conflict", contract.StatusCompleted, ActionApprove, "", contract.ErrInvalidTransition},
		{"unknown action", contract.StatusDraft, "archive", "", ErrInvalidAction},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			d.contracts.GetByContractIDFn = func(ctx context.Context, id string) (*contract.Contract, error) {
				return &contract.Contract{ContractID: id, Status: tt.from}, nil
			}
			got, err := d.usecase().ModerateContract(context.Background(), adminP, "CTR-1", tt.action, "spam listing")
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.Equal(t, tt.want, got.Status)
				assert.Contains(t, d.audit.Actions(), audit.ActionModerateContract)
			}
		})
	}
}

func TestAnalytics(t *testing.T) {
	d := newDeps()
	d.contracts.ListFn = func(ctx context.Context, f contract.Filter) ([]contract.Contract, error) {
		return []contract.Contract{
			{Status: contract.StatusActive, Quantity: 10, LockedPrice: 2000.10},
			{Status: contract.StatusCompleted, Quantity: 2.5, LockedPrice: 4000},
			{Status: contract.StatusDraft, Quantity: 1, LockedPrice: 0.2},
		}, nil
	}
	d.users.CountUnverifiedFn = func(ctx context.Context) (int64, error) { return 4, nil }
	d.quality.CountPendingFn = func(ctx context.Context) (int64, error) { return 2, nil }

	got, err := d.usecase().Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Good", got.PlatformHealth)
	assert.Equal(t, ContractVolume{Total: 3, Active: 1, Completed: 1}, got.ContractVolume)
	assert.Equal(t, 30001.2, got.Financials.TotalEscrow)
	assert.Equal(t, PendingActions{Verifications: 4, QualityChecks: 2}, got.PendingActions)
}

func TestAuditLog(t *testing.T) {
	d := newDeps()
	uc := d.usecase()
	_, _ = uc.VerifyUser(context.Background(), adminP, "u1", ActionApprove)
	_, _ = uc.VerifyUser(context.Background(), adminP, "u2", ActionReject)

	got, err := uc.AuditLog(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].SubjectID)
}
