package mongodb

import (
	"context"
	"testing"
	"time"

	deliveryDomain "agrimarket-backend/internal/domain/delivery"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDeliveryRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("latest by contract missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "agrimarket.deliveries", mtest.FirstBatch))
		repo := NewDeliveryRepository(mt.DB)

		_, err := repo.LatestByContractID(ctx, "CTR-1")
		assert.ErrorIs(mt, err, deliveryDomain.ErrNotFound)
	})

	mt.Run("apply partial update", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		repo := NewDeliveryRepository(mt.DB)

		st := deliveryDomain.StatusInTransit
		err := repo.ApplyUpdate(ctx, "DLV-1", deliveryDomain.Update{Lat: 12.9, Lng: 77.5, Status: &st}, time.Now().UTC())
		assert.NoError(mt, err)
	})

	mt.Run("apply update replaces the whole location", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		repo := NewDeliveryRepository(mt.DB)

		err := repo.ApplyUpdate(ctx, "DLV-1", deliveryDomain.Update{Lat: 19.07, Lng: 72.87}, time.Now().UTC())
		assert.NoError(mt, err)

		evt := mt.GetStartedEvent()
		if !assert.NotNil(mt, evt) {
			return
		}
		set := evt.Command.Lookup("updates", "0", "u", "$set").Document()
		_, dotted := set.LookupErr("currentLocation.lat")
		assert.Error(mt, dotted, "location must not be patched field by field")

		loc := set.Lookup("currentLocation").Document()
		assert.Equal(mt, 19.07, loc.Lookup("lat").Double())
		assert.Equal(mt, 72.87, loc.Lookup("lng").Double())
		_, hasAddress := loc.LookupErr("address")
		assert.Error(mt, hasAddress, "address must be cleared with the coordinates")
	})

	mt.Run("mark delivered unknown", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		repo := NewDeliveryRepository(mt.DB)

		assert.ErrorIs(mt, repo.MarkDelivered(ctx, "DLV-X", time.Now().UTC()), deliveryDomain.ErrNotFound)
	})
}
