package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// ParseID parses a 24-hex-character ObjectID.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, NewErrInvalidID(raw)
	}
	return id, nil
}
