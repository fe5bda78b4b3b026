package model

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CoffeeStore defines persistence operations for coffees.
type CoffeeStore interface {
	List(ctx context.Context) ([]Coffee, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Coffee, error)
	Insert(ctx context.Context, coffee Coffee) (InsertResult, error)
	Upsert(ctx context.Context, id primitive.ObjectID, fields CoffeeFields) (UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
}

// Coffee is a stored coffee document. It holds whatever was submitted on
// insert plus the storage-assigned "_id".
type Coffee bson.M

// ID returns the document id, or NilObjectID when it has none.
func (c Coffee) ID() primitive.ObjectID {
	id, _ := c["_id"].(primitive.ObjectID)
	return id
}

// CoffeeFields is the set of fields an upsert replaces. Values are opaque;
// an absent field is written as null.
type CoffeeFields struct {
	Name     any `bson:"name" json:"name"`
	Chef     any `bson:"chef" json:"chef"`
	Supplier any `bson:"supplier" json:"supplier"`
	Taste    any `bson:"taste" json:"taste"`
	Category any `bson:"category" json:"category"`
	Details  any `bson:"details" json:"details"`
	Photo    any `bson:"photo" json:"photo"`
}
