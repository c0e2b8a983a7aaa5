package contract

type CreateInput struct {
	CropType        string
	Quantity        float64
	LockedPrice     float64
	QualityStandard string
	DeliveryDate    string
}

type LockPriceInput struct {
	ContractID  string
	AgreedPrice float64
}
