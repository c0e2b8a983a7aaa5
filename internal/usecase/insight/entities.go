package insight

import (
	"time"

	"agrimarket-backend/internal/domain/geo"
	domain "agrimarket-backend/internal/domain/insight"
)

const DefaultBasePrice = 2000

const (
	AdviceCaution     = "Caution: High risk detected. Consider purchasing crop insurance immediately."
	AdviceOpportunity = "Opportunity: Demand is peaking. Try to lock in a contract above the current market rate."
	AdviceStable      = "Stable: Market conditions are normal. Proceed with standard contract terms."
)

type GenerateInput struct {
	ContractID string
	CropType   string
	BasePrice  float64
}

type InsightDTO struct {
	domain.Insight
	Advice string `json:"advice"`
}

type ReportInput struct {
	CropType  string
	BasePrice float64
	Location  geo.Location
}

type PriceOutlook struct {
	PredictedPrice  float64   `json:"predictedPrice"`
	ConfidenceScore string    `json:"confidenceScore"`
	Trend           string    `json:"trend"`
	Currency        string    `json:"currency"`
	AnalysisDate    time.Time `json:"analysisDate"`
}

type DemandOutlook struct {
	Level      string    `json:"level"`
	Factors    []string  `json:"factors"`
	ValidUntil time.Time `json:"validUntil"`
}

type RiskAssessment struct {
	RiskScore        int      `json:"riskScore"`
	RiskLevel        string   `json:"riskLevel"`
	Warnings         []string `json:"warnings"`
	MitigationAdvice string   `json:"mitigationAdvice"`
}

type Report struct {
	ReportID       string         `json:"reportId"`
	CropType       string         `json:"cropType"`
	PriceOutlook   PriceOutlook   `json:"priceOutlook"`
	DemandOutlook  DemandOutlook  `json:"demandOutlook"`
	RiskAssessment RiskAssessment `json:"riskAssessment"`
	GeneratedAt    time.Time      `json:"generatedAt"`
}
