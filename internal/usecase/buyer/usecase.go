package buyer

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "agrimarket-backend/internal/domain/buyer"
	"agrimarket-backend/internal/domain/contract"
	"agrimarket-backend/internal/domain/user"
)

type Usecase struct {
	buyers    domain.Repository
	contracts contract.Repository
	now       func() time.Time
}

func NewUsecase(buyers domain.Repository, contracts contract.Repository) *Usecase {
	return &Usecase{buyers: buyers, contracts: contracts, now: time.Now}
}

func (u *Usecase) CreateProfile(ctx context.Context, caller user.Principal, in ProfileInput) (*domain.Buyer, error) {
	b := domain.NewProfile(caller.UserID, in.CompanyName, in.BusinessType, u.now().UTC())
	b.RegistrationNumber = in.RegistrationNumber
	if err := u.buyers.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Dashboard counts completed contracts as purchases. Every Active contract
// is treated as awaiting delivery.
func (u *Usecase) Dashboard(ctx context.Context, caller user.Principal) (*Dashboard, error) {
	out := &Dashboard{Profile: ProfileSummary{Company: "Unknown"}, RecentActivity: []contract.Contract{}}

	profile, err := u.buyers.GetByUserID(ctx, caller.UserID)
	switch {
	case err == nil:
		out.Profile = ProfileSummary{Company: profile.CompanyName, Type: profile.BusinessType, Status: profile.VerifiedStatus}
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("load buyer profile: %w", err)
	}

	mine, err := u.contracts.List(ctx, contract.Filter{BuyerID: caller.UserID})
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	for _, c := range mine {
		switch c.Status {
		case contract.StatusActive:
			out.Stats.ActiveContracts++
			if len(out.RecentActivity) < recentLimit {
				out.RecentActivity = append(out.RecentActivity, c)
			}
		case contract.StatusCompleted:
			out.Stats.TotalPurchases++
		}
	}
	out.Stats.PendingDeliveries = out.Stats.ActiveContracts
	return out, nil
}
