package insightmock

import (
	"context"

	domain "agrimarket-backend/internal/domain/insight"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, in *domain.Insight) error
	LatestByContractIDFn func(ctx context.Context, contractID string) (*domain.Insight, error)
}

func (m *Repo) Create(ctx context.Context, in *domain.Insight) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, in)
	}
	return nil
}

func (m *Repo) LatestByContractID(ctx context.Context, contractID string) (*domain.Insight, error) {
	if m.LatestByContractIDFn != nil {
		return m.LatestByContractIDFn(ctx, contractID)
	}
	return nil, domain.ErrNotFound
}

// Source is a fixed PredictionSource.
type Source struct {
	PredictFn func(ctx context.Context, req domain.PredictionRequest) (domain.Prediction, error)
}

func (s *Source) Predict(ctx context.Context, req domain.PredictionRequest) (domain.Prediction, error) {
	if s.PredictFn != nil {
		return s.PredictFn(ctx, req)
	}
	return domain.Prediction{
		PredictedPrice:  req.BasePrice,
		DemandLevel:     domain.DemandMedium,
		RiskLevel:       domain.RiskLow,
		ModelVersion:    "mock",
		ConfidenceScore: "100%",
	}, nil
}
