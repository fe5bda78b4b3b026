package model

import (
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrInvalidID = errors.New("invalid id")
)

// APIError is an error that can be returned to HTTP clients as is.
type APIError struct {
	Code    int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewErrInvalidID reports a path identifier that is not a 24-hex ObjectID.
func NewErrInvalidID(raw string) *APIError {
	return &APIError{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("invalid id: %s", raw),
		Err:     ErrInvalidID,
	}
}

// NewErrCoffeeNotFound reports a missing coffee. The id is kept for logs
// only and is not part of the message.
func NewErrCoffeeNotFound(id primitive.ObjectID) *APIError {
	return &APIError{
		Code:    http.StatusNotFound,
		Message: "coffee not found",
		Err:     fmt.Errorf("coffee %s: %w", id.Hex(), ErrNotFound),
	}
}

// NewErrInvalidBody reports a request body that could not be decoded.
func NewErrInvalidBody(reason string) *APIError {
	return &APIError{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("invalid request body: %s", reason),
	}
}

// NewErrUnauthorized reports a missing or rejected bearer token.
func NewErrUnauthorized() *APIError {
	return &APIError{
		Code:    http.StatusUnauthorized,
		Message: "unauthorized, token missing or invalid",
	}
}
