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

type UserMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IUserRepository = (*UserMongoRepository)(nil)

func NewUserMongoRepository(db *mongo.Database) *UserMongoRepository {
	return newUserMongoRepository(db.Collection(usersCollection))
}

func newUserMongoRepository(coll *mongo.Collection) *UserMongoRepository {
	return &UserMongoRepository{coll: coll}
}

func (r *UserMongoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	doc := userDocument{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserMongoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserMongoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserMongoRepository) List(ctx context.Context) ([]entities.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]entities.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.entity())
	}
	return users, nil
}

func (r *UserMongoRepository) UpdateRole(ctx context.Context, id string, role entities.UserRole) (entities.User, error) {
	var doc userDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": string(role)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return doc.entity(), nil
}

func (r *UserMongoRepository) findOne(ctx context.Context, filter bson.M) (entities.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return doc.entity(), nil
}
