package quality

import (
	"context"
	"fmt"
	"time"

	"agrimarket-backend/internal/domain/contract"
	domain "agrimarket-backend/internal/domain/quality"
	"agrimarket-backend/pkg/id"

	"go.uber.org/zap"
)

type SubmitInput struct {
	ContractID   string
	QualityScore float64
	Grade        string
	Remarks      string
	Parameters   map[string]string
	VerifiedBy   string
}

type Usecase struct {
	checks    domain.Repository
	contracts contract.Repository
	log       *zap.Logger
	now       func() time.Time
}

func NewUsecase(checks domain.Repository, contracts contract.Repository, log *zap.Logger) *Usecase {
	return &Usecase{checks: checks, contracts: contracts, log: log, now: time.Now}
}

// Submit files a Pending report against an existing contract.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*domain.Check, error) {
	if _, err := u.contracts.GetByContractID(ctx, in.ContractID); err != nil {
		return nil, err
	}
	c := &domain.Check{
		QualityID:          id.New("QC"),
		ContractID:         in.ContractID,
		QualityScore:       in.QualityScore,
		Grade:              in.Grade,
		Remarks:            in.Remarks,
		Parameters:         in.Parameters,
		VerifiedBy:         in.VerifiedBy,
		VerificationStatus: domain.StatusPending,
		CreatedAt:          u.now().UTC(),
	}
	if c.VerifiedBy == "" {
		c.VerifiedBy = domain.DefaultVerifier
	}
	if c.Parameters == nil {
		c.Parameters = map[string]string{}
	}
	if err := u.checks.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create quality check: %w", err)
	}
	return c, nil
}

// Finalize overwrites the decision. It never touches the contract.
func (u *Usecase) Finalize(ctx context.Context, qualityID, decision, remarks string) (domain.VerificationStatus, error) {
	st, err := domain.ParseDecision(decision)
	if err != nil {
		return "", err
	}
	if err := u.checks.Finalize(ctx, qualityID, st, remarks, u.now().UTC()); err != nil {
		return "", err
	}
	u.log.Info("quality check finalized", zap.String("quality_id", qualityID), zap.String("decision", string(st)))
	return st, nil
}

func (u *Usecase) CountPending(ctx context.Context) (int64, error) {
	return u.checks.CountPending(ctx)
}
