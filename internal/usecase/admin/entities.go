package admin

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type ContractVolume struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

type Financials struct {
	TotalEscrow float64 `json:"totalEscrow"`
}

type PendingActions struct {
	Verifications int64 `json:"verifications"`
	QualityChecks int64 `json:"qualityChecks"`
}

type Analytics struct {
	PlatformHealth string         `json:"platformHealth"`
	ContractVolume ContractVolume `json:"contractVolume"`
	Financials     Financials     `json:"financials"`
	PendingActions PendingActions `json:"pendingActions"`
}
