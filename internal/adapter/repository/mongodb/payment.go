package mongodb

import (
	"context"
	"time"

	paymentDomain "agrimarket-backend/internal/domain/payment"
	"agrimarket-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository struct{ coll *mongo.Collection }

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(docstore.Payments)}
}

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	if err := r.coll.FindOne(ctx, bson.M{"gatewayOrderId": orderID}).Decode(&out); err != nil {
		return nil, mapNotFound(err, paymentDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *PaymentRepository) MarkPaid(ctx context.Context, orderID, transactionID string, at time.Time) error {
	return r.set(ctx, orderID, bson.M{
		"status":        paymentDomain.StatusPaid,
		"transactionId": transactionID,
		"paidAt":        at,
	})
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, orderID string) error {
	return r.set(ctx, orderID, bson.M{"status": paymentDomain.StatusFailed})
}

func (r *PaymentRepository) set(ctx context.Context, orderID string, fields bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"gatewayOrderId": orderID}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return paymentDomain.ErrNotFound
	}
	return nil
}
