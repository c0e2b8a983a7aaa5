package mongodb

import (
	"context"

	buyerDomain "agrimarket-backend/internal/domain/buyer"
	"agrimarket-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BuyerRepository struct{ coll *mongo.Collection }

func NewBuyerRepository(db *mongo.Database) *BuyerRepository {
	return &BuyerRepository{coll: db.Collection(docstore.Buyers)}
}

func (r *BuyerRepository) Create(ctx context.Context, b *buyerDomain.Buyer) error {
	_, err := r.coll.InsertOne(ctx, b)
	if mongo.IsDuplicateKeyError(err) {
		return buyerDomain.ErrProfileExists
	}
	return err
}

func (r *BuyerRepository) GetByUserID(ctx context.Context, userID string) (*buyerDomain.Buyer, error) {
	var out buyerDomain.Buyer
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&out); err != nil {
		return nil, mapNotFound(err, buyerDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *BuyerRepository) RecordPurchase(ctx context.Context, userID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$inc": bson.M{"totalPurchases": 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return buyerDomain.ErrNotFound
	}
	return nil
}
