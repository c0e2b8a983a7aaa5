package notification

import (
	"context"
	"time"

	"agrimarket-backend/internal/domain/contract"
	"agrimarket-backend/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

// Service fans templated messages out to every configured sender.
// Delivery failures are logged and never surface to the caller.
// A nil *Service drops everything.
type Service struct {
	senders []Sender
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(log *zap.Logger, m *metrics.Metrics, senders ...Sender) *Service {
	return &Service{senders: senders, log: log, metrics: m, now: time.Now}
}

func (s *Service) ContractUpdate(ctx context.Context, userID, contractID string, status contract.Status) {
	s.dispatch(ctx, userID, TypeContractUpdate, ContractUpdateMessage(contractID, status))
}

func (s *Service) PaymentAlert(ctx context.Context, userID string, amount float64, credit bool) {
	s.dispatch(ctx, userID, TypePaymentAlert, PaymentAlertMessage(amount, credit))
}

func (s *Service) RiskAlert(ctx context.Context, userID, crop, riskFactor string) {
	s.dispatch(ctx, userID, TypeRiskWarning, RiskAlertMessage(crop, riskFactor))
}

func (s *Service) DeliveryUpdate(ctx context.Context, userID, location string) {
	s.dispatch(ctx, userID, TypeDeliveryTracking, DeliveryUpdateMessage(location))
}

func (s *Service) dispatch(ctx context.Context, userID, kind, body string) {
	if s == nil || userID == "" {
		return
	}
	m := Message{UserID: userID, Type: kind, Body: body, SentAt: s.now().UTC()}
	for _, snd := range s.senders {
		if err := snd.Send(ctx, m); err != nil {
			s.log.Warn("notification failed",
				zap.String("channel", snd.Name()),
				zap.String("type", kind),
				zap.Error(err),
			)
			s.metrics.NotificationSent(kind, "error")
			continue
		}
		s.metrics.NotificationSent(kind, "ok")
	}
}
