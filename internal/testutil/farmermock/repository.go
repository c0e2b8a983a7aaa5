package farmermock

import (
	"context"
	"time"

	domain "agrimarket-backend/internal/domain/farmer"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, f *domain.Farmer) error
	GetByUserIDFn       func(ctx context.Context, userID string) (*domain.Farmer, error)
	UpdateCredibilityFn func(ctx context.Context, userID string, delta int) error
}

func (m *Repo) Create(ctx context.Context, f *domain.Farmer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Farmer, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) UpdateCredibility(ctx context.Context, userID string, delta int) error {
	if m.UpdateCredibilityFn != nil {
		return m.UpdateCredibilityFn(ctx, userID, delta)
	}
	return nil
}

// CropRepo satisfies domain.CropRepository.
type CropRepo struct {
	CreateFn       func(ctx context.Context, c *domain.Crop) error
	GetByCropIDFn  func(ctx context.Context, cropID string) (*domain.Crop, error)
	ListByFarmerFn func(ctx context.Context, farmerID string) ([]domain.Crop, error)
	UpdateStatusFn func(ctx context.Context, cropID string, status domain.CropStatus, at time.Time) error
}

func (m *CropRepo) Create(ctx context.Context, c *domain.Crop) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *CropRepo) GetByCropID(ctx context.Context, cropID string) (*domain.Crop, error) {
	if m.GetByCropIDFn != nil {
		return m.GetByCropIDFn(ctx, cropID)
	}
	return nil, domain.ErrCropNotFound
}

func (m *CropRepo) ListByFarmer(ctx context.Context, farmerID string) ([]domain.Crop, error) {
	if m.ListByFarmerFn != nil {
		return m.ListByFarmerFn(ctx, farmerID)
	}
	return nil, nil
}

func (m *CropRepo) UpdateStatus(ctx context.Context, cropID string, status domain.CropStatus, at time.Time) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, cropID, status, at)
	}
	return nil
}
