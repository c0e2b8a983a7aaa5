package farmer

import (
	"agrimarket-backend/internal/domain/contract"
	domain "agrimarket-backend/internal/domain/farmer"
	"agrimarket-backend/internal/domain/geo"
	"agrimarket-backend/internal/usecase/demand"
)

const recentLimit = 5

type ProfileInput struct {
	FarmLocation geo.Location
	CropsGrown   []string
	LandSize     float64
}

type CropInput struct {
	CropName            string
	ContractID          string
	SowingDate          string
	ExpectedHarvestDate string
}

type ProfileSummary struct {
	TrustScore     int          `json:"trustScore"`
	Location       geo.Location `json:"location"`
	TotalContracts int          `json:"totalContracts"`
}

type Stats struct {
	Active       int     `json:"active"`
	Pending      int     `json:"pending"`
	Completed    int     `json:"completed"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type Dashboard struct {
	Profile         ProfileSummary      `json:"profile"`
	Stats           Stats               `json:"stats"`
	RecentContracts []contract.Contract `json:"recentContracts"`
	Crops           []domain.Crop       `json:"crops"`
}

type DemandView struct {
	demand.Level
	Forecast demand.Forecast `json:"forecast"`
}
