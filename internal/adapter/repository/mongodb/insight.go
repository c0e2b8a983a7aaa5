package mongodb

import (
	"context"

	insightDomain "agrimarket-backend/internal/domain/insight"
	"agrimarket-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InsightRepository struct{ coll *mongo.Collection }

func NewInsightRepository(db *mongo.Database) *InsightRepository {
	return &InsightRepository{coll: db.Collection(docstore.Insights)}
}

func (r *InsightRepository) Create(ctx context.Context, in *insightDomain.Insight) error {
	_, err := r.coll.InsertOne(ctx, in)
	return err
}

func (r *InsightRepository) LatestByContractID(ctx context.Context, contractID string) (*insightDomain.Insight, error) {
	var out insightDomain.Insight
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if err := r.coll.FindOne(ctx, bson.M{"contractId": contractID}, opts).Decode(&out); err != nil {
		return nil, mapNotFound(err, insightDomain.ErrNotFound)
	}
	return &out, nil
}
