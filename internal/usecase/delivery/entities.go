package delivery

import (
	"time"

	domain "agrimarket-backend/internal/domain/delivery"
	"agrimarket-backend/internal/domain/geo"
	"agrimarket-backend/internal/usecase/logistics"
)

type StartInput struct {
	ContractID    string
	FarmLocation  geo.Location
	BuyerLocation geo.Location
	EstimatedTime *time.Time
}

type LocationInput struct {
	DeliveryID    string
	Lat           float64
	Lng           float64
	Status        *domain.Status
	EstimatedTime *time.Time
}

// StatusDTO is the tracking view: the delivery plus whether it is running late.
type StatusDTO struct {
	*domain.Delivery
	Delay *logistics.DelayCheck `json:"delay,omitempty"`
}
