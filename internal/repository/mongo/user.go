package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dtroode/espresso-emporium-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db         *Connection
	collection *mongo.Collection
}

func NewUserRepository(db *Connection, collection string) *UserRepository {
	return &UserRepository{
		db:         db,
		collection: db.Collection(collection),
	}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Insert(ctx context.Context, user model.User) (model.InsertResult, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return insertResult(res)
}
