package payment

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

const (
	CurrencyINR   = "INR"
	MethodGateway = "razorpay"
)

var (
	ErrNotFound         = errors.New("payment not found")
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrGateway          = errors.New("payment gateway error")
	ErrContractMismatch = errors.New("payment order does not belong to this contract")
)

type Payment struct {
	PaymentID      string     `bson:"paymentId" json:"paymentId"`
	ContractID     string     `bson:"contractId" json:"contractId"`
	Amount         float64    `bson:"amount" json:"amount"`
	Currency       string     `bson:"currency" json:"currency"`
	Status         Status     `bson:"status" json:"status"`
	Method         string     `bson:"method" json:"method"`
	GatewayOrderID string     `bson:"gatewayOrderId" json:"gatewayOrderId"`
	TransactionID  string     `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaidAt         *time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
}
