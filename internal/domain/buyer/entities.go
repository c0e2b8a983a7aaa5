package buyer

import (
	"errors"
	"time"

	"agrimarket-backend/pkg/id"
)

const (
	DefaultBusinessType   = "Retailer"
	DefaultVerifiedStatus = "Pending"
)

var (
	ErrNotFound      = errors.New("buyer profile not found")
	ErrProfileExists = errors.New("buyer profile already exists")
)

type Buyer struct {
	BuyerID            string    `bson:"buyerId" json:"buyerId"`
	UserID             string    `bson:"userId" json:"userId"`
	CompanyName        string    `bson:"companyName" json:"companyName"`
	BusinessType       string    `bson:"businessType" json:"businessType"`
	RegistrationNumber string    `bson:"registrationNumber,omitempty" json:"registrationNumber,omitempty"`
	VerifiedStatus     string    `bson:"verifiedStatus" json:"verifiedStatus"`
	TotalPurchases     int       `bson:"totalPurchases" json:"totalPurchases"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
}

func NewProfile(userID, companyName, businessType string, now time.Time) *Buyer {
	if businessType == "" {
		businessType = DefaultBusinessType
	}
	return &Buyer{
		BuyerID:        id.New("BYR"),
		UserID:         userID,
		CompanyName:    companyName,
		BusinessType:   businessType,
		VerifiedStatus: DefaultVerifiedStatus,
		CreatedAt:      now,
	}
}
