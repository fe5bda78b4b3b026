package model

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	List(ctx context.Context) ([]User, error)
	Insert(ctx context.Context, user User) (InsertResult, error)
}

// User is a schemaless document. Only "_id" is guaranteed and it is
// always assigned by storage.
type User bson.M
