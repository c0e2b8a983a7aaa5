package farmer

import (
	"context"
	"fmt"
	"time"

	"agrimarket-backend/internal/domain/contract"
	domain "agrimarket-backend/internal/domain/farmer"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/usecase/demand"
	"agrimarket-backend/pkg/id"

	"github.com/shopspring/decimal"
)

type Usecase struct {
	farmers   domain.Repository
	crops     domain.CropRepository
	contracts contract.Repository
	estimator *demand.Estimator
	now       func() time.Time
}

func NewUsecase(farmers domain.Repository, crops domain.CropRepository, contracts contract.Repository, est *demand.Estimator) *Usecase {
	return &Usecase{farmers: farmers, crops: crops, contracts: contracts, estimator: est, now: time.Now}
}

func (u *Usecase) CreateProfile(ctx context.Context, caller user.Principal, in ProfileInput) (*domain.Farmer, error) {
	f := domain.NewProfile(caller.UserID, in.FarmLocation, u.now().UTC())
	if in.CropsGrown != nil {
		f.CropsGrown = in.CropsGrown
	}
	f.LandSize = in.LandSize
	if err := u.farmers.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Dashboard requires a profile. Revenue counts completed contracts only.
func (u *Usecase) Dashboard(ctx context.Context, caller user.Principal) (*Dashboard, error) {
	profile, err := u.farmers.GetByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	mine, err := u.Contracts(ctx, caller)
	if err != nil {
		return nil, err
	}
	crops, err := u.crops.ListByFarmer(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}

	out := &Dashboard{
		Profile: ProfileSummary{
			TrustScore:     profile.TrustScore,
			Location:       profile.FarmLocation,
			TotalContracts: profile.TotalContracts,
		},
		RecentContracts: []contract.Contract{},
		Crops:           crops,
	}
	revenue := decimal.Zero
	for _, c := range mine {
		switch c.Status {
		case contract.StatusActive:
			out.Stats.Active++
			if len(out.RecentContracts) < recentLimit {
				out.RecentContracts = append(out.RecentContracts, c)
			}
		case contract.StatusDraft:
			out.Stats.Pending++
		case contract.StatusCompleted:
			out.Stats.Completed++
			revenue = revenue.Add(decimal.NewFromFloat(c.Quantity).Mul(decimal.NewFromFloat(c.LockedPrice)))
		}
	}
	out.Stats.TotalRevenue = revenue.InexactFloat64()
	return out, nil
}

func (u *Usecase) Contracts(ctx context.Context, caller user.Principal) ([]contract.Contract, error) {
	return u.contracts.List(ctx, contract.Filter{FarmerID: caller.UserID})
}

func (u *Usecase) AddCrop(ctx context.Context, caller user.Principal, in CropInput) (*domain.Crop, error) {
	now := u.now().UTC()
	c := &domain.Crop{
		CropID:              id.New("CRP"),
		FarmerID:            caller.UserID,
		ContractID:          in.ContractID,
		CropName:            in.CropName,
		SowingDate:          in.SowingDate,
		ExpectedHarvestDate: in.ExpectedHarvestDate,
		CropStatus:          domain.CropSown,
		LastUpdated:         now,
		CreatedAt:           now,
	}
	if err := u.crops.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create crop: %w", err)
	}
	return c, nil
}

// UpdateCropStatus only lets the owning farmer move a crop. Someone else's
// crop looks the same as a missing one.
func (u *Usecase) UpdateCropStatus(ctx context.Context, caller user.Principal, cropID, status string) (domain.CropStatus, error) {
	st, err := domain.ParseCropStatus(status)
	if err != nil {
		return "", err
	}
	c, err := u.crops.GetByCropID(ctx, cropID)
	if err != nil {
		return "", err
	}
	if c.FarmerID != caller.UserID {
		return "", domain.ErrCropNotFound
	}
	if err := u.crops.UpdateStatus(ctx, cropID, st, u.now().UTC()); err != nil {
		return "", err
	}
	return st, nil
}

func (u *Usecase) Demand(crop string) DemandView {
	return DemandView{Level: u.estimator.Level(crop), Forecast: demand.SeasonalForecast(u.now().Month())}
}
