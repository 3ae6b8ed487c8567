package mongorepo

import (
	"context"
	"errors"
	"fmt"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentMongoRepository stores payments with a unique index on
// transactionId (see EnsureIndexes).
type PaymentMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IPaymentRepository = (*PaymentMongoRepository)(nil)

func NewPaymentMongoRepository(db *mongo.Database) *PaymentMongoRepository {
	return newPaymentMongoRepository(db.Collection(paymentsCollection))
}

func newPaymentMongoRepository(coll *mongo.Collection) *PaymentMongoRepository {
	return &PaymentMongoRepository{coll: coll}
}

func (r *PaymentMongoRepository) Create(ctx context.Context, p entities.Payment) (entities.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, toPaymentDocument(p))
	if mongo.IsDuplicateKeyError(err) {
		return entities.InsertResult{}, interfaces.ErrPaymentAlreadyRecorded
	}
	if err != nil {
		return entities.InsertResult{}, err
	}
	return entities.InsertResult{Acknowledged: true, InsertedID: fmt.Sprint(res.InsertedID)}, nil
}

func (r *PaymentMongoRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.Payment, error) {
	var doc paymentDocument
	err := r.coll.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return doc.entity(), nil
}

func (r *PaymentMongoRepository) ListByCustomerEmail(ctx context.Context, email string) ([]entities.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"customerEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	var docs []paymentDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(docs))
	for _, d := range docs {
		payments = append(payments, d.entity())
	}
	return payments, nil
}
