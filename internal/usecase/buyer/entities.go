package buyer

import "agrimarket-backend/internal/domain/contract"

const recentLimit = 5

type ProfileInput struct {
	CompanyName        string
	BusinessType       string
	RegistrationNumber string
}

type ProfileSummary struct {
	Company string `json:"company"`
	Type    string `json:"type"`
	Status  string `json:"status"`
}

type Stats struct {
	ActiveContracts   int `json:"activeContracts"`
	TotalPurchases    int `json:"totalPurchases"`
	PendingDeliveries int `json:"pendingDeliveries"`
}

type Dashboard struct {
	Profile        ProfileSummary      `json:"profile"`
	Stats          Stats               `json:"stats"`
	RecentActivity []contract.Contract `json:"recentActivity"`
}
