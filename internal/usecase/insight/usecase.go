package insight

import (
	"context"
	"fmt"
	"time"

	domain "agrimarket-backend/internal/domain/insight"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/infrastructure/metrics"
	"agrimarket-backend/internal/usecase/notification"
	"agrimarket-backend/pkg/id"

	"go.uber.org/zap"
)

type Usecase struct {
	insights domain.Repository
	source   domain.PredictionSource
	notify   *notification.Service
	metrics  *metrics.Metrics
	log      *zap.Logger
	sim      *simulator
	now      func() time.Time
}

func NewUsecase(
	insights domain.Repository,
	source domain.PredictionSource,
	notify *notification.Service,
	m *metrics.Metrics,
	log *zap.Logger,
) *Usecase {
	return &Usecase{
		insights: insights,
		source:   source,
		notify:   notify,
		metrics:  m,
		log:      log,
		sim:      newSimulator(time.Now().UnixNano()),
		now:      time.Now,
	}
}

// Generate predicts, persists the result unconditionally, and attaches advice.
func (u *Usecase) Generate(ctx context.Context, in GenerateInput) (*InsightDTO, error) {
	base := in.BasePrice
	if base <= 0 {
		base = DefaultBasePrice
	}
	p, err := u.source.Predict(ctx, domain.PredictionRequest{ContractID: in.ContractID, CropType: in.CropType, BasePrice: base})
	if err != nil {
		u.log.Error("prediction failed", zap.String("crop", in.CropType), zap.Error(err))
		return nil, fmt.Errorf("predict: %w", err)
	}

	ins := domain.Insight{
		InsightID:       id.New("INS"),
		ContractID:      in.ContractID,
		CropType:        in.CropType,
		PredictedPrice:  p.PredictedPrice,
		DemandLevel:     p.DemandLevel,
		RiskLevel:       p.RiskLevel,
		AIModelVersion:  p.ModelVersion,
		ConfidenceScore: p.ConfidenceScore,
		CreatedAt:       u.now().UTC(),
	}
	if err := u.insights.Create(ctx, &ins); err != nil {
		return nil, fmt.Errorf("save insight: %w", err)
	}
	u.metrics.InsightGenerated(ins.RiskLevel)

	return &InsightDTO{Insight: ins, Advice: Advice(ins.RiskLevel, ins.DemandLevel, ins.PredictedPrice)}, nil
}

// History returns only the latest insight for the contract.
func (u *Usecase) History(ctx context.Context, contractID string) ([]domain.Insight, error) {
	latest, err := u.insights.LatestByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return []domain.Insight{*latest}, nil
}

// Report bundles price, demand and risk outlooks. A High risk alerts the caller.
func (u *Usecase) Report(ctx context.Context, caller user.Principal, in ReportInput) *Report {
	base := in.BasePrice
	if base <= 0 {
		base = DefaultBasePrice
	}
	now := u.now().UTC()
	variance, demand, rainy := u.sim.draw()

	r := &Report{
		ReportID:       id.New("AIR"),
		CropType:       in.CropType,
		PriceOutlook:   priceOutlook(base, variance, now),
		DemandOutlook:  demandOutlook(demand, now),
		RiskAssessment: riskAssessment(rainy),
		GeneratedAt:    now,
	}
	if r.RiskAssessment.RiskLevel == domain.RiskHigh {
		u.notify.RiskAlert(ctx, caller.UserID, in.CropType, r.RiskAssessment.Warnings[0])
	}
	return r
}
