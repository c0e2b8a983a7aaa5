package quality

import (
	"context"
	"testing"
	"time"

	"agrimarket-backend/internal/domain/contract"
	domain "agrimarket-backend/internal/domain/quality"
	"agrimarket-backend/internal/testutil/contractmock"
	"agrimarket-backend/internal/testutil/qualitymock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func contracts() *contractmock.Repo {
	return &contractmock.Repo{GetByContractIDFn: func(ctx context.Context, id string) (*contract.Contract, error) {
		if id == "CTR-1" {
			return &contract.Contract{ContractID: id}, nil
		}
		return nil, contract.ErrNotFound
	}}
}

func TestSubmit_Defaults(t *testing.T) {
	var saved *domain.Check
	uc := NewUsecase(&qualitymock.Repo{CreateFn: func(ctx context.Context, c *domain.Check) error { saved = c; return nil }}, contracts(), zap.NewNop())

	got, err := uc.Submit(context.Background(), SubmitInput{ContractID: "CTR-1", QualityScore: 92, Grade: "A"})
	require.NoError(t, err)
	require.Same(t, saved, got)
	assert.Equal(t, domain.StatusPending, got.VerificationStatus)
	assert.Equal(t, domain.DefaultVerifier, got.VerifiedBy)
	assert.NotNil(t, got.Parameters)

	_, err = uc.Submit(context.Background(), SubmitInput{ContractID: "CTR-9"})
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestFinalize(t *testing.T) {
	tests := []struct {
		name     string
		decision string
		wantErr  error
	}{
		{"approve", "Approved", nil},
		{"reject", "Rejected", nil},
		{"pending is not a decision", "Pending", domain.ErrInvalidDecision},
		{"lowercase", "approved", domain.ErrInvalidDecision},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var wrote domain.VerificationStatus
			uc := NewUsecase(&qualitymock.Repo{FinalizeFn: func(ctx context.Context, id string, st domain.VerificationStatus, remarks string, at time.Time) error {
				wrote = st
				return nil
			}}, contracts(), zap.NewNop())

			st, err := uc.Finalize(context.Background(), "QC-1", tt.decision, "ok")
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.Equal(t, domain.VerificationStatus(tt.decision), st)
				assert.Equal(t, st, wrote)
			} else {
				assert.Empty(t, wrote)
			}
		})
	}
}

func TestFinalize_UnknownReport(t *testing.T) {
	uc := NewUsecase(&qualitymock.Repo{FinalizeFn: func(ctx context.Context, id string, st domain.VerificationStatus, remarks string, at time.Time) error {
		return domain.ErrNotFound
	}}, contracts(), zap.NewNop())
	_, err := uc.Finalize(context.Background(), "QC-404", "Approved", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
