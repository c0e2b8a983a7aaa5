package logistics

import (
	"fmt"
	"math"
	"time"

	"agrimarket-backend/internal/domain/geo"
)

const (
	earthRadiusKm = 6371.0
	avgSpeedKmph  = 40.0
	bufferHours   = 2.0
	mockPolyline  = "mock_encoded_polyline_string_for_demo"

	StatusDelayed    = "DELAYED"
	StatusOnSchedule = "ON_TIME"
)

type ETA struct {
	DistanceKm     float64   `json:"distanceKm"`
	EstimatedHours int       `json:"estimatedHours"`
	ArrivalDate    time.Time `json:"arrivalDate"`
	RoutePolyline  string    `json:"routePolyline"`
}

// DistanceKm is the Haversine great-circle distance, not rounded.
func DistanceKm(a, b geo.Location) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// CalculateETA assumes a fixed average road speed plus a loading buffer.
func CalculateETA(origin, dest geo.Location, now time.Time) ETA {
	d := math.Round(DistanceKm(origin, dest))
	hours := int(math.Round(d/avgSpeedKmph + bufferHours))
	return ETA{
		DistanceKm:     d,
		EstimatedHours: hours,
		ArrivalDate:    now.UTC().Add(time.Duration(hours) * time.Hour),
		RoutePolyline:  mockPolyline,
	}
}

type DelayCheck struct {
	IsDelayed  bool   `json:"isDelayed"`
	DelayHours int    `json:"delayHours"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

func CheckDeliveryDelay(promised, now time.Time) DelayCheck {
	diff := int(math.Floor(now.Sub(promised).Hours()))
	if diff > 0 {
		return DelayCheck{
			IsDelayed:  true,
			DelayHours: diff,
			Status:     StatusDelayed,
			Message:    fmt.Sprintf("Shipment is running %d hours late.", diff),
		}
	}
	return DelayCheck{Status: StatusOnSchedule, Message: "Shipment is on schedule."}
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
