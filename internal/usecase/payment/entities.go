package payment

type CreateOrderInput struct {
	ContractID string
	Amount     float64 // rupees
}

// OrderDTO is what the checkout widget needs. KeyID is the public key, never the secret.
type OrderDTO struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
	KeyID    string `json:"key_id"`
}

type VerifyInput struct {
	OrderID    string
	PaymentID  string
	Signature  string
	ContractID string
}

type VerifyResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
