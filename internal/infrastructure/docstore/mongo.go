package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names.
const (
	Users       = "users"
	Credentials = "credentials"
	Farmers     = "farmers"
	Crops       = "crops"
	Buyers      = "buyers"
	Contracts   = "contracts"
	Payments    = "payments"
	Deliveries  = "deliveries"
	Qualities   = "quality_checks"
	Insights    = "ai_insights"
)

// Store owns the Mongo client. Open it once at startup and Close it at shutdown.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(50)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) DB() *mongo.Database { return s.db }

func (s *Store) Close(ctx context.Context) error { return s.client.Disconnect(ctx) }

// EnsureIndexes creates the unique public-id indexes and the lookup indexes
// the repositories filter on. Safe to call on every boot.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	unique := options.Index().SetUnique(true)
	specs := map[string][]mongo.IndexModel{
		Users: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		Credentials: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		Farmers: {{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique}},
		Buyers:  {{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique}},
		Crops: {
			{Keys: bson.D{{Key: "cropId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "farmerId", Value: 1}}},
		},
		Contracts: {
			{Keys: bson.D{{Key: "contractId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "farmerId", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "buyerId", Value: 1}, {Key: "status", Value: 1}}},
		},
		Payments: {
			{Keys: bson.D{{Key: "paymentId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "gatewayOrderId", Value: 1}}, Options: unique},
		},
		Deliveries: {
			{Keys: bson.D{{Key: "deliveryId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "contractId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		Qualities: {
			{Keys: bson.D{{Key: "qualityId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "verificationStatus", Value: 1}}},
		},
		Insights: {
			{Keys: bson.D{{Key: "insightId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "contractId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}
	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
		log.Debug("mongo indexes ensured", zap.String("collection", coll), zap.Int("count", len(models)))
	}
	return nil
}
