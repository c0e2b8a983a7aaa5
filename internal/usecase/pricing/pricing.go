package pricing

import (
	"fmt"
	"time"

	"agrimarket-backend/pkg/id"

	"github.com/shopspring/decimal"
)

// Base rates in INR per quintal.
var marketRates = map[string]int64{
	"Wheat":   2125,
	"Rice":    2060,
	"Corn":    1960,
	"Soybean": 4600,
	"Cotton":  6380,
	"Potato":  1200,
}

const (
	fallbackRate    = 2000
	quintalsPerTon  = 10
	LockStatusFinal = "IMMUTABLE"
)

var (
	qualityPremium = decimal.NewFromFloat(1.05)
	minFactor      = decimal.NewFromFloat(0.90)
	maxFactor      = decimal.NewFromFloat(2.5)
)

func MarketRate(crop string) decimal.Decimal {
	if r, ok := marketRates[crop]; ok {
		return decimal.NewFromInt(r)
	}
	return decimal.NewFromInt(fallbackRate)
}

type Suggestion struct {
	Crop                    string  `json:"crop"`
	MarketRatePerQuintal    float64 `json:"marketRatePerQuintal"`
	SuggestedRatePerQuintal float64 `json:"suggestedRatePerQuintal"`
	TotalContractValue      float64 `json:"totalContractValue"`
	Currency                string  `json:"currency"`
	Note                    string  `json:"note"`
}

// SuggestedPrice is pure: quantity is in tons, rates in quintals.
func SuggestedPrice(crop string, tons float64) Suggestion {
	base := MarketRate(crop)
	premium := base.Mul(qualityPremium).Round(0)
	total := premium.Mul(decimal.NewFromFloat(tons).Mul(decimal.NewFromInt(quintalsPerTon)))

	return Suggestion{
		Crop:                    crop,
		MarketRatePerQuintal:    base.InexactFloat64(),
		SuggestedRatePerQuintal: premium.InexactFloat64(),
		TotalContractValue:      total.InexactFloat64(),
		Currency:                "INR",
		Note:                    "Includes 5% quality premium",
	}
}

type RangeCheck struct {
	IsValid bool    `json:"isValid"`
	Message string  `json:"message"`
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
}

func ValidatePriceRange(crop string, proposedPerQuintal float64) RangeCheck {
	base := MarketRate(crop)
	lo := base.Mul(minFactor)
	hi := base.Mul(maxFactor)
	p := decimal.NewFromFloat(proposedPerQuintal)

	out := RangeCheck{Minimum: lo.InexactFloat64(), Maximum: hi.InexactFloat64()}
	switch {
	case p.LessThan(lo):
		out.Message = fmt.Sprintf("Unfair price: ₹%s is too low. Market rate is ₹%s. System minimum is ₹%s.",
			p.String(), base.String(), lo.Round(0).String())
	case p.GreaterThan(hi):
		out.Message = "Price flagged: offer is suspiciously high above market averages."
	default:
		out.IsValid = true
		out.Message = "Price is within fair range."
	}
	return out
}

type Lock struct {
	LockID     string    `json:"lockId"`
	ContractID string    `json:"contractId"`
	Amount     float64   `json:"amount"`
	LockedAt   time.Time `json:"lockedAt"`
	Status     string    `json:"status"`
}

func FinalizeLockPrice(contractID string, agreed float64, at time.Time) Lock {
	return Lock{
		LockID:     id.New("LCK"),
		ContractID: contractID,
		Amount:     agreed,
		LockedAt:   at.UTC(),
		Status:     LockStatusFinal,
	}
}

// ToMinorUnits converts rupees to paise, rounding half away from zero.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
