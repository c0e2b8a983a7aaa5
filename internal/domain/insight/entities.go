package insight

import (
	"context"
	"errors"
	"time"
)

const (
	DemandLow    = "Low"
	DemandMedium = "Medium"
	DemandHigh   = "High"

	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
)

var (
	ErrNotFound    = errors.New("no insights found")
	ErrUnavailable = errors.New("prediction source unavailable")
)

type Insight struct {
	InsightID       string    `bson:"insightId" json:"insightId"`
	ContractID      string    `bson:"contractId" json:"contractId"`
	CropType        string    `bson:"cropType,omitempty" json:"cropType,omitempty"`
	PredictedPrice  float64   `bson:"predictedPrice" json:"predictedPrice"`
	DemandLevel     string    `bson:"demandLevel" json:"demandLevel"`
	RiskLevel       string    `bson:"riskLevel" json:"riskLevel"`
	AIModelVersion  string    `bson:"aiModelVersion" json:"aiModelVersion"`
	ConfidenceScore string    `bson:"confidenceScore" json:"confidenceScore"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

type PredictionRequest struct {
	ContractID string  `json:"contractId"`
	CropType   string  `json:"cropType"`
	BasePrice  float64 `json:"basePrice"`
}

type Prediction struct {
	PredictedPrice  float64 `json:"predictedPrice"`
	DemandLevel     string  `json:"demandLevel"`
	RiskLevel       string  `json:"riskLevel"`
	ModelVersion    string  `json:"modelVersion"`
	ConfidenceScore string  `json:"confidenceScore"`
}

// PredictionSource produces a price/demand/risk prediction for one crop.
type PredictionSource interface {
	Predict(ctx context.Context, req PredictionRequest) (Prediction, error)
}
