package contract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agrimarket-backend/internal/domain/audit"
	"agrimarket-backend/internal/domain/buyer"
	domain "agrimarket-backend/internal/domain/contract"
	"agrimarket-backend/internal/domain/farmer"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/infrastructure/metrics"
	"agrimarket-backend/internal/usecase/auditlog"
	"agrimarket-backend/internal/usecase/notification"
	"agrimarket-backend/internal/usecase/pricing"
	"agrimarket-backend/pkg/id"

	"go.uber.org/zap"
)

// CompletionCredibility is added to the farmer's trust score when a contract completes.
const CompletionCredibility = 5

type Usecase struct {
	contracts domain.Repository
	buyers    buyer.Repository
	farmers   farmer.Repository
	notify    *notification.Service
	audit     *auditlog.Recorder
	metrics   *metrics.Metrics
	log       *zap.Logger
	now       func() time.Time
}

func NewUsecase(
	contracts domain.Repository,
	buyers buyer.Repository,
	farmers farmer.Repository,
	notify *notification.Service,
	rec *auditlog.Recorder,
	m *metrics.Metrics,
	log *zap.Logger,
) *Usecase {
	return &Usecase{
		contracts: contracts,
		buyers:    buyers,
		farmers:   farmers,
		notify:    notify,
		audit:     rec,
		metrics:   m,
		log:       log,
		now:       time.Now,
	}
}

// Create opens a Draft. The caller's role decides which side of the deal it fills.
func (u *Usecase) Create(ctx context.Context, caller user.Principal, in CreateInput) (*domain.Contract, error) {
	now := u.now().UTC()
	c := &domain.Contract{
		ContractID:      id.New("CTR"),
		CropType:        in.CropType,
		Quantity:        in.Quantity,
		LockedPrice:     in.LockedPrice,
		QualityStandard: in.QualityStandard,
		DeliveryDate:    in.DeliveryDate,
		Status:          domain.StatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if c.QualityStandard == "" {
		c.QualityStandard = domain.DefaultQualityStandard
	}
	callerID := caller.UserID
	switch caller.Role {
	case user.RoleFarmer:
		c.FarmerID = &callerID
	case user.RoleBuyer:
		c.BuyerID = &callerID
	}

	if err := u.contracts.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create contract: %w", err)
	}
	u.metrics.ContractCreated(string(caller.Role))
	u.log.Info("contract created",
		zap.String("contract_id", c.ContractID),
		zap.String("role", string(caller.Role)),
		zap.String("crop", c.CropType),
	)
	return c, nil
}

// List returns what the caller is party to; admins see everything.
func (u *Usecase) List(ctx context.Context, caller user.Principal) ([]domain.Contract, error) {
	var f domain.Filter
	switch caller.Role {
	case user.RoleFarmer:
		f.FarmerID = caller.UserID
	case user.RoleBuyer:
		f.BuyerID = caller.UserID
	case user.RoleAdmin:
	default:
		return []domain.Contract{}, nil
	}
	return u.contracts.List(ctx, f)
}

func (u *Usecase) Get(ctx context.Context, contractID string) (*domain.Contract, error) {
	return u.contracts.GetByContractID(ctx, contractID)
}

// Marketplace lists open Drafts that no buyer has taken yet.
func (u *Usecase) Marketplace(ctx context.Context) ([]domain.Contract, error) {
	return u.contracts.List(ctx, domain.Filter{Status: domain.StatusDraft, OpenOnly: true})
}

// Accept binds the buyer and activates the contract in one conditional write.
// Of two concurrent accepts only one matches; the other gets ErrInvalidTransition.
func (u *Usecase) Accept(ctx context.Context, caller user.Principal, contractID string) (*domain.Contract, error) {
	c, err := u.contracts.GetByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.StatusDraft || c.BuyerID != nil {
		u.metrics.ContractTransition(string(c.Status), string(domain.StatusActive), "rejected")
		return nil, domain.ErrInvalidTransition
	}

	if err := u.contracts.Accept(ctx, contractID, caller.UserID); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			u.metrics.ContractTransition(string(domain.StatusDraft), string(domain.StatusActive), "conflict")
		}
		return nil, err
	}
	u.metrics.ContractTransition(string(domain.StatusDraft), string(domain.StatusActive), "ok")

	if err := u.buyers.RecordPurchase(ctx, caller.UserID); err != nil {
		// contract is already bound; the counter is best effort
		u.log.Warn("record purchase failed", zap.String("buyer_id", caller.UserID), zap.Error(err))
	}

	buyerID := caller.UserID
	c.BuyerID = &buyerID
	c.Status = domain.StatusActive
	c.UpdatedAt = u.now().UTC()

	if c.FarmerID != nil {
		u.notify.ContractUpdate(ctx, *c.FarmerID, c.ContractID, c.Status)
	}
	u.notify.ContractUpdate(ctx, buyerID, c.ContractID, c.Status)
	return c, nil
}

// UpdateStatus validates against the transition table and writes only if the
// stored status is still the one that was read.
func (u *Usecase) UpdateStatus(ctx context.Context, caller user.Principal, contractID string, to domain.Status) (*domain.Contract, error) {
	if _, err := domain.ParseStatus(string(to)); err != nil {
		return nil, err
	}
	c, err := u.contracts.GetByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	from := c.Status
	if from == to {
		return c, nil
	}
	if !domain.CanTransition(from, to) {
		u.metrics.ContractTransition(string(from), string(to), "rejected")
		u.audit.Record(ctx, caller, audit.ActionContractStatus, contractID, "rejected",
			fmt.Sprintf("%s -> %s", from, to))
		return nil, domain.ErrInvalidTransition
	}
	if err := u.contracts.UpdateStatus(ctx, contractID, from, to); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			u.metrics.ContractTransition(string(from), string(to), "conflict")
		}
		return nil, err
	}
	u.metrics.ContractTransition(string(from), string(to), "ok")
	u.audit.Record(ctx, caller, audit.ActionContractStatus, contractID, "ok",
		fmt.Sprintf("%s -> %s", from, to))

	c.Status = to
	c.UpdatedAt = u.now().UTC()

	if to == domain.StatusCompleted && c.FarmerID != nil {
		u.bumpCredibility(ctx, *c.FarmerID)
	}
	if c.FarmerID != nil {
		u.notify.ContractUpdate(ctx, *c.FarmerID, contractID, to)
	}
	if c.BuyerID != nil {
		u.notify.ContractUpdate(ctx, *c.BuyerID, contractID, to)
	}
	return c, nil
}

func (u *Usecase) bumpCredibility(ctx context.Context, farmerUserID string) {
	err := u.farmers.UpdateCredibility(ctx, farmerUserID, CompletionCredibility)
	switch {
	case err == nil:
	case errors.Is(err, farmer.ErrNotFound):
		// farmers without a profile have no score to move
	default:
		u.log.Warn("credibility update failed", zap.String("farmer_id", farmerUserID), zap.Error(err))
	}
}

// LockPrice issues a lock receipt for an agreed price. The contract's
// lockedPrice itself is never rewritten.
func (u *Usecase) LockPrice(ctx context.Context, in LockPriceInput) (*pricing.Lock, error) {
	if _, err := u.contracts.GetByContractID(ctx, in.ContractID); err != nil {
		return nil, err
	}
	lock := pricing.FinalizeLockPrice(in.ContractID, in.AgreedPrice, u.now())
	return &lock, nil
}
