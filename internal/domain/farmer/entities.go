package farmer

import (
	"errors"
	"time"

	"agrimarket-backend/internal/domain/geo"
	"agrimarket-backend/pkg/id"
)

const DefaultTrustScore = 50

var (
	ErrNotFound          = errors.New("farmer profile not found")
	ErrProfileExists     = errors.New("farmer profile already exists")
	ErrCropNotFound      = errors.New("crop not found")
	ErrInvalidCropStatus = errors.New("unknown crop status")
)

// Farmer is keyed 1:1 by the owning user id. TrustScore is not clamped.
type Farmer struct {
	FarmerID       string       `bson:"farmerId" json:"farmerId"`
	UserID         string       `bson:"userId" json:"userId"`
	FarmLocation   geo.Location `bson:"farmLocation" json:"farmLocation"`
	CropsGrown     []string     `bson:"cropsGrown" json:"cropsGrown"`
	LandSize       float64      `bson:"landSize" json:"landSize"`
	TrustScore     int          `bson:"trustScore" json:"trustScore"`
	TotalContracts int          `bson:"totalContracts" json:"totalContracts"`
	CreatedAt      time.Time    `bson:"createdAt" json:"createdAt"`
}

// NewProfile applies the registration defaults.
func NewProfile(userID string, loc geo.Location, now time.Time) *Farmer {
	return &Farmer{
		FarmerID:     id.New("FRM"),
		UserID:       userID,
		FarmLocation: loc,
		CropsGrown:   []string{},
		TrustScore:   DefaultTrustScore,
		CreatedAt:    now,
	}
}

type CropStatus string

const (
	CropSown        CropStatus = "Sown"
	CropGerminating CropStatus = "Germinating"
	CropFlowering   CropStatus = "Flowering"
	CropReady       CropStatus = "Ready for Harvest"
	CropHarvested   CropStatus = "Harvested"
)

func ParseCropStatus(s string) (CropStatus, error) {
	switch cs := CropStatus(s); cs {
	case CropSown, CropGerminating, CropFlowering, CropReady, CropHarvested:
		return cs, nil
	}
	return "", ErrInvalidCropStatus
}

type Crop struct {
	CropID              string     `bson:"cropId" json:"cropId"`
	FarmerID            string     `bson:"farmerId" json:"farmerId"`
	ContractID          string     `bson:"contractId,omitempty" json:"contractId,omitempty"`
	CropName            string     `bson:"cropName" json:"cropName"`
	SowingDate          string     `bson:"sowingDate,omitempty" json:"sowingDate,omitempty"`
	ExpectedHarvestDate string     `bson:"expectedHarvestDate,omitempty" json:"expectedHarvestDate,omitempty"`
	CropStatus          CropStatus `bson:"cropStatus" json:"cropStatus"`
	LastUpdated         time.Time  `bson:"lastUpdated" json:"lastUpdated"`
	CreatedAt           time.Time  `bson:"createdAt" json:"createdAt"`
}
