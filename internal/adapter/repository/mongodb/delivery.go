package mongodb

import (
	"context"
	"time"

	deliveryDomain "agrimarket-backend/internal/domain/delivery"
	"agrimarket-backend/internal/domain/geo"
	"agrimarket-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DeliveryRepository struct{ coll *mongo.Collection }

func NewDeliveryRepository(db *mongo.Database) *DeliveryRepository {
	return &DeliveryRepository{coll: db.Collection(docstore.Deliveries)}
}

func (r *DeliveryRepository) Create(ctx context.Context, d *deliveryDomain.Delivery) error {
	_, err := r.coll.InsertOne(ctx, d)
	return err
}

func (r *DeliveryRepository) GetByDeliveryID(ctx context.Context, deliveryID string) (*deliveryDomain.Delivery, error) {
	var out deliveryDomain.Delivery
	if err := r.coll.FindOne(ctx, bson.M{"deliveryId": deliveryID}).Decode(&out); err != nil {
		return nil, mapNotFound(err, deliveryDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *DeliveryRepository) LatestByContractID(ctx context.Context, contractID string) (*deliveryDomain.Delivery, error) {
	var out deliveryDomain.Delivery
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if err := r.coll.FindOne(ctx, bson.M{"contractId": contractID}, opts).Decode(&out); err != nil {
		return nil, mapNotFound(err, deliveryDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *DeliveryRepository) ApplyUpdate(ctx context.Context, deliveryID string, u deliveryDomain.Update, at time.Time) error {
	// The whole location is replaced so a stale address never outlives its coordinates.
	set := bson.M{
		"currentLocation": geo.Location{Lat: u.Lat, Lng: u.Lng},
		"lastUpdated":     at,
	}
	if u.Status != nil {
		set["deliveryStatus"] = *u.Status
	}
	if u.EstimatedDeliveryTime != nil {
		set["estimatedDeliveryTime"] = *u.EstimatedDeliveryTime
	}
	return r.set(ctx, deliveryID, set)
}

func (r *DeliveryRepository) MarkDelivered(ctx context.Context, deliveryID string, at time.Time) error {
	return r.set(ctx, deliveryID, bson.M{
		"deliveryStatus": deliveryDomain.StatusDelivered,
		"deliveredAt":    at,
		"lastUpdated":    at,
	})
}

func (r *DeliveryRepository) set(ctx context.Context, deliveryID string, fields bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"deliveryId": deliveryID}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return deliveryDomain.ErrNotFound
	}
	return nil
}
