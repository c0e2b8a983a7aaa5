package mongodb

import (
	"context"
	"time"

	farmerDomain "agrimarket-backend/internal/domain/farmer"
	"agrimarket-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FarmerRepository struct{ coll *mongo.Collection }

func NewFarmerRepository(db *mongo.Database) *FarmerRepository {
	return &FarmerRepository{coll: db.Collection(docstore.Farmers)}
}

func (r *FarmerRepository) Create(ctx context.Context, f *farmerDomain.Farmer) error {
	_, err := r.coll.InsertOne(ctx, f)
	if mongo.IsDuplicateKeyError(err) {
		return farmerDomain.ErrProfileExists
	}
	return err
}

func (r *FarmerRepository) GetByUserID(ctx context.Context, userID string) (*farmerDomain.Farmer, error) {
	var out farmerDomain.Farmer
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&out); err != nil {
		return nil, mapNotFound(err, farmerDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *FarmerRepository) UpdateCredibility(ctx context.Context, userID string, delta int) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$inc": bson.M{"trustScore": delta, "totalContracts": 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return farmerDomain.ErrNotFound
	}
	return nil
}

type CropRepository struct{ coll *mongo.Collection }

func NewCropRepository(db *mongo.Database) *CropRepository {
	return &CropRepository{coll: db.Collection(docstore.Crops)}
}

func (r *CropRepository) Create(ctx context.Context, c *farmerDomain.Crop) error {
	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *CropRepository) GetByCropID(ctx context.Context, cropID string) (*farmerDomain.Crop, error) {
	var out farmerDomain.Crop
	if err := r.coll.FindOne(ctx, bson.M{"cropId": cropID}).Decode(&out); err != nil {
		return nil, mapNotFound(err, farmerDomain.ErrCropNotFound)
	}
	return &out, nil
}

func (r *CropRepository) ListByFarmer(ctx context.Context, farmerID string) ([]farmerDomain.Crop, error) {
	cur, err := r.coll.Find(ctx, bson.M{"farmerId": farmerID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	out := make([]farmerDomain.Crop, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CropRepository) UpdateStatus(ctx context.Context, cropID string, status farmerDomain.CropStatus, at time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"cropId": cropID},
		bson.M{"$set": bson.M{"cropStatus": status, "lastUpdated": at}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return farmerDomain.ErrCropNotFound
	}
	return nil
}
