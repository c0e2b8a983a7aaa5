package contract

import (
	"errors"
	"time"
)

type Status string

const (
	StatusDraft     Status = "Draft"
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

const DefaultQualityStandard = "Standard FAQ"

var (
	ErrNotFound          = errors.New("contract not found")
	ErrInvalidTransition = errors.New("invalid contract status transition")
	ErrInvalidStatus     = errors.New("unknown contract status")
	ErrAlreadyAccepted   = errors.New("contract already has a buyer")
)

type Contract struct {
	ContractID      string    `bson:"contractId" json:"contractId"`
	FarmerID        *string   `bson:"farmerId" json:"farmerId"`
	BuyerID         *string   `bson:"buyerId" json:"buyerId"`
	CropType        string    `bson:"cropType" json:"cropType"`
	Quantity        float64   `bson:"quantity" json:"quantity"`
	LockedPrice     float64   `bson:"lockedPrice" json:"lockedPrice"`
	QualityStandard string    `bson:"qualityStandard" json:"qualityStandard"`
	DeliveryDate    string    `bson:"deliveryDate,omitempty" json:"deliveryDate,omitempty"`
	Status          Status    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Value is quantity × lockedPrice.
func (c *Contract) Value() float64 { return c.Quantity * c.LockedPrice }

// Filter narrows List; empty fields match everything.
type Filter struct {
	FarmerID string
	BuyerID  string
	Status   Status
	OpenOnly bool // buyerId is null
	Limit    int64
}
