package mongodb

import (
	"context"
	"testing"

	userDomain "agrimarket-backend/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		repo := NewUserRepository(mt.DB)

		err := repo.Create(ctx, &userDomain.User{UserID: "u1", Email: "a@b.c"})
		assert.ErrorIs(mt, err, userDomain.ErrEmailTaken)
	})

	mt.Run("get by email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "agrimarket.users", mtest.FirstBatch, bson.D{
			{Key: "userId", Value: "u1"},
			{Key: "email", Value: "a@b.c"},
			{Key: "role", Value: "buyer"},
			{Key: "isVerified", Value: false},
		}))
		repo := NewUserRepository(mt.DB)

		got, err := repo.GetByEmail(ctx, "a@b.c")
		require.NoError(mt, err)
		assert.Equal(mt, userDomain.RoleBuyer, got.Role)
	})

	mt.Run("set verified on unknown user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		repo := NewUserRepository(mt.DB)

		assert.ErrorIs(mt, repo.SetVerified(ctx, "ghost", true), userDomain.ErrNotFound)
	})

	mt.Run("count unverified", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "agrimarket.users", mtest.FirstBatch, bson.D{
			{Key: "n", Value: int32(3)},
		}))
		repo := NewUserRepository(mt.DB)

		n, err := repo.CountUnverified(ctx)
		require.NoError(mt, err)
		assert.EqualValues(mt, 3, n)
	})
}
