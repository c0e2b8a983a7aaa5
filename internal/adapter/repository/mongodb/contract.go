package mongodb

import (
	"context"
	"errors"
	"time"

	contractDomain "agrimarket-backend/internal/domain/contract"
	"agrimarket-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContractRepository struct{ coll *mongo.Collection }

func NewContractRepository(db *mongo.Database) *ContractRepository {
	return &ContractRepository{coll: db.Collection(docstore.Contracts)}
}

func (r *ContractRepository) Create(ctx context.Context, c *contractDomain.Contract) error {
	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *ContractRepository) GetByContractID(ctx context.Context, contractID string) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	err := r.coll.FindOne(ctx, bson.M{"contractId": contractID}).Decode(&out)
	if err != nil {
		return nil, mapNotFound(err, contractDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ContractRepository) List(ctx context.Context, f contractDomain.Filter) ([]contractDomain.Contract, error) {
	filter := bson.M{}
	if f.FarmerID != "" {
		filter["farmerId"] = f.FarmerID
	}
	if f.BuyerID != "" {
		filter["buyerId"] = f.BuyerID
	}
	if f.OpenOnly {
		filter["buyerId"] = nil
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	out := make([]contractDomain.Contract, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContractRepository) UpdateStatus(ctx context.Context, contractID string, from, to contractDomain.Status) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"contractId": contractID, "status": from},
		bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.missOrConflict(ctx, contractID)
	}
	return nil
}

func (r *ContractRepository) Accept(ctx context.Context, contractID, buyerID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"contractId": contractID, "status": contractDomain.StatusDraft, "buyerId": nil},
		bson.M{"$set": bson.M{
			"buyerId":   buyerID,
			"status":    contractDomain.StatusActive,
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.missOrConflict(ctx, contractID)
	}
	return nil
}

// missOrConflict tells a missing contract apart from one whose status moved on.
func (r *ContractRepository) missOrConflict(ctx context.Context, contractID string) error {
	if _, err := r.GetByContractID(ctx, contractID); err != nil {
		if errors.Is(err, contractDomain.ErrNotFound) {
			return contractDomain.ErrNotFound
		}
		return err
	}
	return contractDomain.ErrInvalidTransition
}
