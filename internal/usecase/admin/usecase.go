package admin

import (
	"context"
	"errors"
	"fmt"

	"agrimarket-backend/internal/domain/audit"
	"agrimarket-backend/internal/domain/contract"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/usecase/auditlog"
	contractUC "agrimarket-backend/internal/usecase/contract"
	qualityUC "agrimarket-backend/internal/usecase/quality"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidAction = errors.New("action must be approve or reject")

const platformHealthy = "Good"

type Usecase struct {
	users     user.Repository
	contracts contract.Repository
	lifecycle *contractUC.Usecase
	quality   *qualityUC.Usecase
	audit     *auditlog.Recorder
	log       *zap.Logger
}

func NewUsecase(
	users user.Repository,
	contracts contract.Repository,
	lifecycle *contractUC.Usecase,
	quality *qualityUC.Usecase,
	rec *auditlog.Recorder,
	log *zap.Logger,
) *Usecase {
	return &Usecase{users: users, contracts: contracts, lifecycle: lifecycle, quality: quality, audit: rec, log: log}
}

// VerifyUser sets isVerified from the decision; reject revokes.
func (u *Usecase) VerifyUser(ctx context.Context, caller user.Principal, userID, action string) (bool, error) {
	var verified bool
	switch action {
	case ActionApprove:
		verified = true
	case ActionReject:
	default:
		return false, ErrInvalidAction
	}
	if err := u.users.SetVerified(ctx, userID, verified); err != nil {
		return false, err
	}
	u.audit.Record(ctx, caller, audit.ActionVerifyUser, userID, action, "")
	return verified, nil
}

// ModerateContract goes through the same transition table as everyone else.
// Approving a Completed contract is a conflict, not an override.
// ModerateContract approves (Active) or rejects (Cancelled) a contract. The
// lifecycle records the status change; this records the admin decision on top.
func (u *Usecase) ModerateContract(ctx context.Context, caller user.Principal, contractID, action, reason string) (*contract.Contract, error) {
	var to contract.Status
	switch action {
	case ActionApprove:
		to = contract.StatusActive
	case ActionReject:
		to = contract.StatusCancelled
	default:
		return nil, ErrInvalidAction
	}
	c, err := u.lifecycle.UpdateStatus(ctx, caller, contractID, to)
	outcome := action
	if err != nil {
		outcome = "rejected"
	}
	u.audit.Record(ctx, caller, audit.ActionModerateContract, contractID, outcome, reason)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Usecase) VerifyQuality(ctx context.Context, caller user.Principal, qualityID, decision, remarks string) (string, error) {
	st, err := u.quality.Finalize(ctx, qualityID, decision, remarks)
	if err != nil {
		return "", err
	}
	u.audit.Record(ctx, caller, audit.ActionVerifyQuality, qualityID, string(st), remarks)
	return string(st), nil
}

func (u *Usecase) Analytics(ctx context.Context) (*Analytics, error) {
	all, err := u.contracts.List(ctx, contract.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	out := &Analytics{PlatformHealth: platformHealthy}
	escrow := decimal.Zero
	for i := range all {
		c := &all[i]
		out.ContractVolume.Total++
		switch c.Status {
		case contract.StatusActive:
			out.ContractVolume.Active++
		case contract.StatusCompleted:
			out.ContractVolume.Completed++
		}
		escrow = escrow.Add(decimal.NewFromFloat(c.Quantity).Mul(decimal.NewFromFloat(c.LockedPrice)))
	}
	out.Financials.TotalEscrow = escrow.InexactFloat64()

	if out.PendingActions.Verifications, err = u.users.CountUnverified(ctx); err != nil {
		return nil, fmt.Errorf("count unverified: %w", err)
	}
	if out.PendingActions.QualityChecks, err = u.quality.CountPending(ctx); err != nil {
		return nil, fmt.Errorf("count pending checks: %w", err)
	}
	return out, nil
}

func (u *Usecase) AuditLog(ctx context.Context, limit int) ([]audit.Entry, error) {
	return u.audit.Recent(ctx, limit)
}
