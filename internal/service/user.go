package service

import (
	"context"
	"fmt"

	"github.com/dtroode/espresso-emporium-server/internal/logger"
	"github.com/dtroode/espresso-emporium-server/internal/model"
)

type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

func (s *User) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// CreateUser stores the document as submitted, except for "_id" which is
// always left to storage.
func (s *User) CreateUser(ctx context.Context, user model.User) (model.InsertResult, error) {
	res, err := s.userStore.Insert(ctx, withoutID(user))
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", "user_id", res.InsertedID.Hex())

	return res, nil
}
