package buyer

import "context"

type Repository interface {
	Create(ctx context.Context, b *Buyer) error
	GetByUserID(ctx context.Context, userID string) (*Buyer, error)
	RecordPurchase(ctx context.Context, userID string) error
}
