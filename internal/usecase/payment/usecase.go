package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"agrimarket-backend/internal/domain/audit"
	"agrimarket-backend/internal/domain/contract"
	domain "agrimarket-backend/internal/domain/payment"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/infrastructure/metrics"
	"agrimarket-backend/internal/usecase/auditlog"
	"agrimarket-backend/internal/usecase/notification"
	"agrimarket-backend/internal/usecase/pricing"
	"agrimarket-backend/pkg/id"

	"go.uber.org/zap"
)

const verifiedMessage = "Payment Verified. Contract is now Active."

type Usecase struct {
	payments  domain.Repository
	contracts contract.Repository
	gateway   domain.Gateway
	secret    string
	audit     *auditlog.Recorder
	notify    *notification.Service
	metrics   *metrics.Metrics
	log       *zap.Logger
	now       func() time.Time
}

func NewUsecase(
	payments domain.Repository,
	contracts contract.Repository,
	gw domain.Gateway,
	secret string,
	rec *auditlog.Recorder,
	notify *notification.Service,
	m *metrics.Metrics,
	log *zap.Logger,
) *Usecase {
	return &Usecase{
		payments:  payments,
		contracts: contracts,
		gateway:   gw,
		secret:    secret,
		audit:     rec,
		notify:    notify,
		metrics:   m,
		log:       log,
		now:       time.Now,
	}
}

func receipt(contractID string, at time.Time) string {
	ms := strconv.FormatInt(at.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "rcpt_" + contractID + "_" + ms
}

// CreateOrder asks the gateway for an order and records a pending payment
// against it, so an abandoned checkout still leaves a trace.
func (u *Usecase) CreateOrder(ctx context.Context, in CreateOrderInput) (*OrderDTO, error) {
	if _, err := u.contracts.GetByContractID(ctx, in.ContractID); err != nil {
		return nil, err
	}

	now := u.now().UTC()
	order, err := u.gateway.CreateOrder(ctx, domain.OrderRequest{
		Amount:         pricing.ToMinorUnits(in.Amount),
		Currency:       domain.CurrencyINR,
		Receipt:        receipt(in.ContractID, now),
		PaymentCapture: 1,
	})
	if err != nil {
		u.log.Error("gateway order failed", zap.String("contract_id", in.ContractID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}

	p := &domain.Payment{
		PaymentID:      id.New("PAY"),
		ContractID:     in.ContractID,
		Amount:         in.Amount,
		Currency:       domain.CurrencyINR,
		Status:         domain.StatusPending,
		Method:         domain.MethodGateway,
		GatewayOrderID: order.ID,
		CreatedAt:      now,
	}
	if err := u.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	u.log.Info("payment order created",
		zap.String("contract_id", in.ContractID),
		zap.String("order_id", order.ID),
		zap.Int64("amount_paise", order.Amount),
	)

	return &OrderDTO{
		ID:       order.ID,
		Currency: order.Currency,
		Amount:   order.Amount,
		KeyID:    u.gateway.KeyID(),
	}, nil
}

// Verify checks the checkout signature before touching anything. A valid
// signature marks the payment paid and forces the order's own contract to Active;
// a contractId naming any other contract is rejected before any write.
func (u *Usecase) Verify(ctx context.Context, caller user.Principal, in VerifyInput) (*VerifyResult, error) {
	if !ValidSignature(u.secret, in.OrderID, in.PaymentID, in.Signature) {
		u.metrics.PaymentVerification("invalid_signature")
		u.log.Warn("payment signature mismatch",
			zap.String("order_id", in.OrderID),
			zap.String("payment_id", in.PaymentID),
			zap.String("actor_id", caller.UserID),
		)
		u.audit.Record(ctx, caller, audit.ActionSignatureMismatch, in.OrderID, "rejected", "invalid signature")
		return nil, domain.ErrInvalidSignature
	}

	p, err := u.payments.GetByOrderID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if p.ContractID != in.ContractID {
		u.metrics.PaymentVerification("contract_mismatch")
		u.log.Warn("payment order used for another contract",
			zap.String("order_id", in.OrderID),
			zap.String("order_contract_id", p.ContractID),
			zap.String("requested_contract_id", in.ContractID),
			zap.String("actor_id", caller.UserID),
		)
		u.audit.Record(ctx, caller, audit.ActionContractMismatch, in.OrderID, "rejected", "order belongs to contract "+p.ContractID)
		return nil, domain.ErrContractMismatch
	}

	c, err := u.contracts.GetByContractID(ctx, p.ContractID)
	if err != nil {
		return nil, err
	}
	switch {
	case c.Status == contract.StatusActive:
	case contract.CanTransition(c.Status, contract.StatusActive):
	default:
		// money arrived for a contract that can no longer become binding
		if err := u.payments.MarkFailed(ctx, in.OrderID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			u.log.Warn("mark payment failed", zap.String("order_id", in.OrderID), zap.Error(err))
		}
		u.metrics.PaymentVerification("conflict")
		return nil, contract.ErrInvalidTransition
	}

	if err := u.payments.MarkPaid(ctx, in.OrderID, in.PaymentID, u.now().UTC()); err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	if c.Status != contract.StatusActive {
		if err := u.contracts.UpdateStatus(ctx, c.ContractID, c.Status, contract.StatusActive); err != nil {
			if !errors.Is(err, contract.ErrInvalidTransition) {
				return nil, fmt.Errorf("activate contract: %w", err)
			}
			// someone else moved it; fine only if it landed on Active
			cur, gerr := u.contracts.GetByContractID(ctx, c.ContractID)
			if gerr != nil {
				return nil, gerr
			}
			if cur.Status != contract.StatusActive {
				u.metrics.PaymentVerification("conflict")
				return nil, contract.ErrInvalidTransition
			}
		}
		u.metrics.ContractTransition(string(c.Status), string(contract.StatusActive), "ok")
	}

	u.metrics.PaymentVerification("ok")
	u.audit.Record(ctx, caller, audit.ActionPaymentVerified, in.OrderID, "ok", "contract "+c.ContractID)
	u.log.Info("payment verified",
		zap.String("order_id", in.OrderID),
		zap.String("contract_id", c.ContractID),
	)

	if c.BuyerID != nil {
		u.notify.PaymentAlert(ctx, *c.BuyerID, p.Amount, false)
	}
	if c.FarmerID != nil {
		u.notify.ContractUpdate(ctx, *c.FarmerID, c.ContractID, contract.StatusActive)
	}
	return &VerifyResult{Success: true, Message: verifiedMessage}, nil
}
