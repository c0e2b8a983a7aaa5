package delivery

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, d *Delivery) error
	GetByDeliveryID(ctx context.Context, deliveryID string) (*Delivery, error)
	LatestByContractID(ctx context.Context, contractID string) (*Delivery, error)
	ApplyUpdate(ctx context.Context, deliveryID string, u Update, at time.Time) error
	MarkDelivered(ctx context.Context, deliveryID string, at time.Time) error
}
