package razorpay

import (
	"context"
	"strings"

	paymentDomain "agrimarket-backend/internal/domain/payment"
	"agrimarket-backend/pkg/id"
)

// Fake creates orders in process. Demo mode only: nothing is charged.
type Fake struct{ keyID string }

func NewFake(keyID string) *Fake { return &Fake{keyID: keyID} }

func (f *Fake) KeyID() string { return f.keyID }

func (f *Fake) CreateOrder(_ context.Context, req paymentDomain.OrderRequest) (*paymentDomain.Order, error) {
	return &paymentDomain.Order{
		ID:       "order_" + strings.ToLower(id.NewID32()[:14]),
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   "created",
	}, nil
}
