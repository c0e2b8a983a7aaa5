package demand

import (
	"math/rand"
	"sync"
	"time"

	"agrimarket-backend/internal/domain/insight"
)

var staples = map[string]bool{"Rice": true, "Wheat": true, "Onion": true, "Potato": true}

const (
	baseScore    = 50
	stapleBoost  = 20
	highAbove    = 75
	lowBelow     = 35
	fluctuateMin = -10
	fluctuateMax = 20 // exclusive
)

type Level struct {
	Crop        string    `json:"crop"`
	Level       string    `json:"level"`
	DemandScore int       `json:"demandScore"`
	Reasoning   string    `json:"reasoning"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type Forecast struct {
	Trend           string `json:"trend"`
	PeakDemandMonth string `json:"peakDemandMonth"`
	Advice          string `json:"advice"`
}

// Estimator scores market demand. rnd is injectable for deterministic tests.
type Estimator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func NewEstimator(seed int64) *Estimator {
	return &Estimator{rnd: rand.New(rand.NewSource(seed)), now: time.Now}
}

func (e *Estimator) Level(crop string) Level {
	e.mu.Lock()
	f := fluctuateMin + e.rnd.Intn(fluctuateMax-fluctuateMin)
	e.mu.Unlock()
	return ScoreLevel(crop, f, e.now())
}

// ScoreLevel is the deterministic half of Level.
func ScoreLevel(crop string, fluctuation int, at time.Time) Level {
	score := baseScore
	if staples[crop] {
		score += stapleBoost
	}
	score += fluctuation
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	out := Level{
		Crop:        crop,
		Level:       insight.DemandMedium,
		DemandScore: score,
		Reasoning:   "Stable consumption patterns observed.",
		LastUpdated: at.UTC(),
	}
	switch {
	case score > highAbove:
		out.Level = insight.DemandHigh
		out.Reasoning = "Shortage detected in local mandis. Buyers are aggressively bidding."
	case score < lowBelow:
		out.Level = insight.DemandLow
		out.Reasoning = "Surplus stock from previous harvest is depressing prices."
	}
	return out
}

// SeasonalForecast looks at the calendar month only.
func SeasonalForecast(month time.Month) Forecast {
	trend := "Stable"
	if month > time.September {
		trend = "Rising (Winter Demand)"
	}
	return Forecast{
		Trend:           trend,
		PeakDemandMonth: "October",
		Advice:          "Hold stock until late Q3 for better pricing.",
	}
}
