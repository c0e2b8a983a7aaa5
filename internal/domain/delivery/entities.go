package delivery

import (
	"errors"
	"time"

	"agrimarket-backend/internal/domain/geo"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusDispatched Status = "Dispatched"
	StatusInTransit  Status = "In Transit"
	StatusDelivered  Status = "Delivered"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusDispatched, StatusInTransit, StatusDelivered:
		return st, nil
	}
	return "", ErrInvalidStatus
}

var (
	ErrNotFound      = errors.New("delivery not found")
	ErrInvalidStatus = errors.New("unknown delivery status")
)

type Delivery struct {
	DeliveryID            string       `bson:"deliveryId" json:"deliveryId"`
	ContractID            string       `bson:"contractId" json:"contractId"`
	FarmLocation          geo.Location `bson:"farmLocation" json:"farmLocation"`
	BuyerLocation         geo.Location `bson:"buyerLocation" json:"buyerLocation"`
	CurrentLocation       geo.Location `bson:"currentLocation" json:"currentLocation"`
	EstimatedDeliveryTime *time.Time   `bson:"estimatedDeliveryTime,omitempty" json:"estimatedDeliveryTime,omitempty"`
	Status                Status       `bson:"deliveryStatus" json:"deliveryStatus"`
	LastUpdated           time.Time    `bson:"lastUpdated" json:"lastUpdated"`
	DeliveredAt           *time.Time   `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt             time.Time    `bson:"createdAt" json:"createdAt"`
}

// Update is a partial location/status patch. Nil fields are left untouched.
type Update struct {
	Lat                   float64
	Lng                   float64
	Status                *Status
	EstimatedDeliveryTime *time.Time
}
