package mongorepo

import (
	"context"
	"errors"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RiderMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IRiderRepository = (*RiderMongoRepository)(nil)

func NewRiderMongoRepository(db *mongo.Database) *RiderMongoRepository {
	return newRiderMongoRepository(db.Collection(ridersCollection))
}

func newRiderMongoRepository(coll *mongo.Collection) *RiderMongoRepository {
	return &RiderMongoRepository{coll: coll}
}

func (r *RiderMongoRepository) Create(ctx context.Context, rider entities.Rider) (entities.Rider, error) {
	if _, err := r.coll.InsertOne(ctx, toRiderDocument(rider)); err != nil {
		return entities.Rider{}, err
	}
	return rider, nil
}

func (r *RiderMongoRepository) GetByID(ctx context.Context, id string) (entities.Rider, error) {
	var doc riderDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Rider{}, nil
	}
	if err != nil {
		return entities.Rider{}, err
	}
	return doc.entity(), nil
}

func (r *RiderMongoRepository) ListByStatus(ctx context.Context, status entities.RiderStatus) ([]entities.Rider, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []riderDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	riders := make([]entities.Rider, 0, len(docs))
	for _, d := range docs {
		riders = append(riders, d.entity())
	}
	return riders, nil
}

func (r *RiderMongoRepository) UpdateStatus(ctx context.Context, id string, status entities.RiderStatus) (entities.Rider, error) {
	var doc riderDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Rider{}, nil
	}
	if err != nil {
		return entities.Rider{}, err
	}
	return doc.entity(), nil
}
