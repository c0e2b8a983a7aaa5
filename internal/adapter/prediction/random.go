package prediction

import (
	"context"
	"math"
	"math/rand"
	"sync"

	insightDomain "agrimarket-backend/internal/domain/insight"
)

const (
	MockModelVersion = "v1.0-mock-generator"
	mockConfidence   = "85%"
)

var (
	demandLevels = []string{insightDomain.DemandLow, insightDomain.DemandMedium, insightDomain.DemandHigh}
	riskLevels   = []string{insightDomain.RiskLow, insightDomain.RiskModerate, insightDomain.RiskHigh}
)

// Random stands in for a trained model. Output is plausible, not predictive.
type Random struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rnd: rand.New(rand.NewSource(seed))}
}

func (r *Random) Predict(_ context.Context, req insightDomain.PredictionRequest) (insightDomain.Prediction, error) {
	r.mu.Lock()
	variance := r.rnd.Float64()*0.2 - 0.1
	demand := demandLevels[r.rnd.Intn(len(demandLevels))]
	risk := riskLevels[r.rnd.Intn(len(riskLevels))]
	r.mu.Unlock()

	return insightDomain.Prediction{
		PredictedPrice:  math.Round(req.BasePrice * (1 + variance)),
		DemandLevel:     demand,
		RiskLevel:       risk,
		ModelVersion:    MockModelVersion,
		ConfidenceScore: mockConfidence,
	}, nil
}
