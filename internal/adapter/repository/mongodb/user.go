package mongodb

import (
	"context"
	"time"

	userDomain "agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct{ coll *mongo.Collection }

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(docstore.Users)}
}

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	_, err := r.coll.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return userDomain.ErrEmailTaken
	}
	return err
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*userDomain.User, error) {
	var out userDomain.User
	if err := r.coll.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, mapNotFound(err, userDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *UserRepository) SetVerified(ctx context.Context, userID string, verified bool) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"isVerified": verified, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return userDomain.ErrNotFound
	}
	return nil
}

func (r *UserRepository) CountUnverified(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"isVerified": false})
}
