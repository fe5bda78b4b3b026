package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dtroode/espresso-emporium-server/internal/model"
)

var _ model.CoffeeStore = (*CoffeeRepository)(nil)

type CoffeeRepository struct {
	db         *Connection
	collection *mongo.Collection
}

func NewCoffeeRepository(db *Connection, collection string) *CoffeeRepository {
	return &CoffeeRepository{
		db:         db,
		collection: db.Collection(collection),
	}
}

func (r *CoffeeRepository) List(ctx context.Context) ([]model.Coffee, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to find coffees: %w", err)
	}

	coffees := []model.Coffee{}
	if err := cursor.All(ctx, &coffees); err != nil {
		return nil, fmt.Errorf("failed to decode coffees: %w", err)
	}

	return coffees, nil
}

func (r *CoffeeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (model.Coffee, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var coffee model.Coffee
	err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&coffee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get coffee by id: %w", err)
	}

	return coffee, nil
}

func (r *CoffeeRepository) Insert(ctx context.Context, coffee model.Coffee) (model.InsertResult, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	res, err := r.collection.InsertOne(ctx, coffee)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to insert coffee: %w", err)
	}

	return insertResult(res)
}

// Upsert replaces exactly the seven coffee fields of the document with the
// given id, creating the document when nothing matches.
func (r *CoffeeRepository) Upsert(ctx context.Context, id primitive.ObjectID, fields model.CoffeeFields) (model.UpdateResult, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: fields.Name},
		{Key: "chef", Value: fields.Chef},
		{Key: "supplier", Value: fields.Supplier},
		{Key: "taste", Value: fields.Taste},
		{Key: "category", Value: fields.Category},
		{Key: "details", Value: fields.Details},
		{Key: "photo", Value: fields.Photo},
	}}}

	res, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to upsert coffee: %w", err)
	}

	out := model.UpdateResult{
		Acknowledged:  res.Acknowledged,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if upserted, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = &upserted
	}

	return out, nil
}

func (r *CoffeeRepository) Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteResult, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	res, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to delete coffee: %w", err)
	}

	return model.DeleteResult{
		Acknowledged: res.Acknowledged,
		DeletedCount: res.DeletedCount,
	}, nil
}

func insertResult(res *mongo.InsertOneResult) (model.InsertResult, error) {
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return model.InsertResult{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return model.InsertResult{
		Acknowledged: res.Acknowledged,
		InsertedID:   id,
	}, nil
}
