package mongodb

import (
	"context"
	"time"

	qualityDomain "agrimarket-backend/internal/domain/quality"
	"agrimarket-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type QualityRepository struct{ coll *mongo.Collection }

func NewQualityRepository(db *mongo.Database) *QualityRepository {
	return &QualityRepository{coll: db.Collection(docstore.Qualities)}
}

func (r *QualityRepository) Create(ctx context.Context, c *qualityDomain.Check) error {
	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *QualityRepository) GetByQualityID(ctx context.Context, qualityID string) (*qualityDomain.Check, error) {
	var out qualityDomain.Check
	if err := r.coll.FindOne(ctx, bson.M{"qualityId": qualityID}).Decode(&out); err != nil {
		return nil, mapNotFound(err, qualityDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *QualityRepository) Finalize(ctx context.Context, qualityID string, status qualityDomain.VerificationStatus, remarks string, at time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"qualityId": qualityID},
		bson.M{"$set": bson.M{
			"verificationStatus": status,
			"remarks":            remarks,
			"verifiedAt":         at,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return qualityDomain.ErrNotFound
	}
	return nil
}

func (r *QualityRepository) CountPending(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"verificationStatus": qualityDomain.StatusPending})
}
