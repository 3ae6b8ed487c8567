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

type ParcelMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IParcelRepository = (*ParcelMongoRepository)(nil)

func NewParcelMongoRepository(db *mongo.Database) *ParcelMongoRepository {
	return newParcelMongoRepository(db.Collection(parcelsCollection))
}

func newParcelMongoRepository(coll *mongo.Collection) *ParcelMongoRepository {
	return &ParcelMongoRepository{coll: coll}
}

func (r *ParcelMongoRepository) Create(ctx context.Context, p entities.Parcel) (entities.Parcel, error) {
	if _, err := r.coll.InsertOne(ctx, toParcelDocument(p)); err != nil {
		return entities.Parcel{}, err
	}
	return p, nil
}

func (r *ParcelMongoRepository) GetByID(ctx context.Context, id string) (entities.Parcel, error) {
	var doc parcelDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Parcel{}, nil
	}
	if err != nil {
		return entities.Parcel{}, err
	}
	return doc.entity(), nil
}

func (r *ParcelMongoRepository) ListBySenderEmail(ctx context.Context, email string) ([]entities.Parcel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"sendarEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	var docs []parcelDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	parcels := make([]entities.Parcel, 0, len(docs))
	for _, d := range docs {
		parcels = append(parcels, d.entity())
	}
	return parcels, nil
}

func (r *ParcelMongoRepository) Delete(ctx context.Context, id string) (entities.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return entities.DeleteResult{}, err
	}
	return entities.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// MarkPaid only touches a parcel whose tracking id is absent, empty or equal
// to trackingID. A non-match is told apart from a missing parcel by id.
func (r *ParcelMongoRepository) MarkPaid(ctx context.Context, id string, trackingID string) (entities.UpdateResult, error) {
	filter := bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"trackingId": nil},
			bson.M{"trackingId": ""},
			bson.M{"trackingId": trackingID},
		},
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{
			"deliveryStatus": string(entities.DeliveryStatusPaid),
			"trackingId":     trackingID,
		},
	})
	if err != nil {
		return entities.UpdateResult{}, err
	}
	if res.MatchedCount == 0 {
		n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return entities.UpdateResult{}, err
		}
		if n > 0 {
			return entities.UpdateResult{}, interfaces.ErrTrackingIDConflict
		}
		return entities.UpdateResult{}, nil
	}
	return entities.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
