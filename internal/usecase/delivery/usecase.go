package delivery

import (
	"context"
	"fmt"
	"time"

	"agrimarket-backend/internal/domain/contract"
	domain "agrimarket-backend/internal/domain/delivery"
	"agrimarket-backend/internal/domain/geo"
	"agrimarket-backend/internal/usecase/logistics"
	"agrimarket-backend/internal/usecase/notification"
	"agrimarket-backend/pkg/id"

	"go.uber.org/zap"
)

type Usecase struct {
	deliveries domain.Repository
	contracts  contract.Repository
	notify     *notification.Service
	log        *zap.Logger
	now        func() time.Time
}

func NewUsecase(deliveries domain.Repository, contracts contract.Repository, notify *notification.Service, log *zap.Logger) *Usecase {
	return &Usecase{deliveries: deliveries, contracts: contracts, notify: notify, log: log, now: time.Now}
}

// Start dispatches from the farm. Without an explicit ETA one is estimated from distance.
func (u *Usecase) Start(ctx context.Context, in StartInput) (*domain.Delivery, error) {
	if _, err := u.contracts.GetByContractID(ctx, in.ContractID); err != nil {
		return nil, err
	}
	now := u.now().UTC()
	eta := in.EstimatedTime
	if eta == nil {
		arrival := logistics.CalculateETA(in.FarmLocation, in.BuyerLocation, now).ArrivalDate
		eta = &arrival
	}
	d := &domain.Delivery{
		DeliveryID:            id.New("DLV"),
		ContractID:            in.ContractID,
		FarmLocation:          in.FarmLocation,
		BuyerLocation:         in.BuyerLocation,
		CurrentLocation:       in.FarmLocation,
		EstimatedDeliveryTime: eta,
		Status:                domain.StatusDispatched,
		LastUpdated:           now,
		CreatedAt:             now,
	}
	if err := u.deliveries.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	u.log.Info("delivery dispatched", zap.String("delivery_id", d.DeliveryID), zap.String("contract_id", d.ContractID))
	return d, nil
}

// UpdateLocation merges a partial ping. Coordinates are taken as given.
func (u *Usecase) UpdateLocation(ctx context.Context, in LocationInput) error {
	d, err := u.deliveries.GetByDeliveryID(ctx, in.DeliveryID)
	if err != nil {
		return err
	}
	if err := u.deliveries.ApplyUpdate(ctx, in.DeliveryID, domain.Update{
		Lat:                   in.Lat,
		Lng:                   in.Lng,
		Status:                in.Status,
		EstimatedDeliveryTime: in.EstimatedTime,
	}, u.now().UTC()); err != nil {
		return err
	}

	if c, err := u.contracts.GetByContractID(ctx, d.ContractID); err == nil && c.BuyerID != nil {
		u.notify.DeliveryUpdate(ctx, *c.BuyerID, describe(geo.Location{Lat: in.Lat, Lng: in.Lng}))
	}
	return nil
}

func describe(l geo.Location) string {
	if l.Address != "" {
		return l.Address
	}
	return fmt.Sprintf("%.4f, %.4f", l.Lat, l.Lng)
}

func (u *Usecase) StatusByContract(ctx context.Context, contractID string) (*StatusDTO, error) {
	d, err := u.deliveries.LatestByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	out := &StatusDTO{Delivery: d}
	if d.EstimatedDeliveryTime != nil && d.Status != domain.StatusDelivered {
		check := logistics.CheckDeliveryDelay(*d.EstimatedDeliveryTime, u.now())
		out.Delay = &check
	}
	return out, nil
}

func (u *Usecase) Complete(ctx context.Context, deliveryID string) error {
	return u.deliveries.MarkDelivered(ctx, deliveryID, u.now().UTC())
}

func (u *Usecase) ETA(origin, dest geo.Location) logistics.ETA {
	return logistics.CalculateETA(origin, dest, u.now())
}
