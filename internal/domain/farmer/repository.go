package farmer

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, f *Farmer) error
	GetByUserID(ctx context.Context, userID string) (*Farmer, error)
	// UpdateCredibility adds delta to trustScore and bumps totalContracts by one.
	UpdateCredibility(ctx context.Context, userID string, delta int) error
}

type CropRepository interface {
	Create(ctx context.Context, c *Crop) error
	GetByCropID(ctx context.Context, cropID string) (*Crop, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]Crop, error)
	UpdateStatus(ctx context.Context, cropID string, status CropStatus, at time.Time) error
}
