package insight

import (
	"math"
	"math/rand"
	"sync"
	"time"

	domain "agrimarket-backend/internal/domain/insight"
)

const (
	TrendBullish = "Bullish"
	TrendBearish = "Bearish"
	TrendStable  = "Stable"

	reportConfidence = "87%"
	outlookValidFor  = 7 * 24 * time.Hour
	highRiskScore    = 65
	lowRiskScore     = 20
)

var demandFactors = map[string][]string{
	domain.DemandHigh:   {"Festive season approaching", "Low carry-over stock from last year"},
	domain.DemandMedium: {"Steady industrial consumption", "Average export demand"},
	domain.DemandLow:    {"Bumper harvest predicted globally", "Export restrictions in place"},
}

// simulator draws the report's random inputs. Guarded so handlers can share it.
type simulator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newSimulator(seed int64) *simulator {
	return &simulator{rnd: rand.New(rand.NewSource(seed))}
}

func (s *simulator) draw() (variance float64, demand string, rainy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	variance = s.rnd.Float64()*0.20 - 0.05
	demand = []string{domain.DemandHigh, domain.DemandMedium, domain.DemandLow}[s.rnd.Intn(3)]
	rainy = s.rnd.Float64() > 0.5
	return
}

// Trend reads the variance the way a trader would: any rise is bullish,
// a drop past 2% is bearish.
func Trend(variance float64) string {
	switch {
	case variance > 0:
		return TrendBullish
	case variance < -0.02:
		return TrendBearish
	default:
		return TrendStable
	}
}

func priceOutlook(base, variance float64, now time.Time) PriceOutlook {
	return PriceOutlook{
		PredictedPrice:  math.Round(base * (1 + variance)),
		ConfidenceScore: reportConfidence,
		Trend:           Trend(variance),
		Currency:        "INR",
		AnalysisDate:    now,
	}
}

func demandOutlook(level string, now time.Time) DemandOutlook {
	return DemandOutlook{Level: level, Factors: demandFactors[level], ValidUntil: now.Add(outlookValidFor)}
}

func riskAssessment(rainy bool) RiskAssessment {
	if rainy {
		return RiskAssessment{
			RiskScore: highRiskScore,
			RiskLevel: domain.RiskHigh,
			Warnings: []string{
				"High moisture levels detected - Risk of fungal infection.",
				"Price volatility expected due to erratic weather.",
			},
			MitigationAdvice: "Recommendation: Apply fungicides and speed up harvest.",
		}
	}
	return RiskAssessment{
		RiskScore:        lowRiskScore,
		RiskLevel:        domain.RiskLow,
		Warnings:         []string{"Weather conditions optimal for harvest."},
		MitigationAdvice: "Recommendation: Standard storage procedures apply.",
	}
}

// Advice turns a prediction into one line for the dashboard. Risk wins over demand.
func Advice(riskLevel, demandLevel string, predictedPrice float64) string {
	if riskLevel == domain.RiskHigh {
		return AdviceCaution
	}
	if demandLevel == domain.DemandHigh && predictedPrice > 0 {
		return AdviceOpportunity
	}
	return AdviceStable
}
