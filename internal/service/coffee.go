package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dtroode/espresso-emporium-server/internal/logger"
	"github.com/dtroode/espresso-emporium-server/internal/model"
)

type Coffee struct {
	coffeeStore model.CoffeeStore
	logger      *logger.Logger
}

func NewCoffee(coffeeStore model.CoffeeStore, logger *logger.Logger) *Coffee {
	return &Coffee{
		coffeeStore: coffeeStore,
		logger:      logger,
	}
}

func (s *Coffee) ListCoffees(ctx context.Context) ([]model.Coffee, error) {
	coffees, err := s.coffeeStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coffees: %w", err)
	}

	return coffees, nil
}

func (s *Coffee) GetCoffee(ctx context.Context, id primitive.ObjectID) (model.Coffee, error) {
	coffee, err := s.coffeeStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.NewErrCoffeeNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get coffee by id: %w", err)
	}

	return coffee, nil
}

// CreateCoffee stores the document as submitted under a storage-assigned
// id. Any "_id" set by the caller is discarded.
func (s *Coffee) CreateCoffee(ctx context.Context, coffee model.Coffee) (model.InsertResult, error) {
	res, err := s.coffeeStore.Insert(ctx, withoutID(coffee))
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to create coffee: %w", err)
	}

	s.logger.Info("coffee created", "coffee_id", res.InsertedID.Hex())

	return res, nil
}

func (s *Coffee) UpdateCoffee(ctx context.Context, id primitive.ObjectID, fields model.CoffeeFields) (model.UpdateResult, error) {
	res, err := s.coffeeStore.Upsert(ctx, id, fields)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to update coffee: %w", err)
	}

	s.logger.Info("coffee updated",
		"coffee_id", id.Hex(),
		"matched", res.MatchedCount,
		"upserted", res.UpsertedCount)

	return res, nil
}

func (s *Coffee) DeleteCoffee(ctx context.Context, id primitive.ObjectID) (model.DeleteResult, error) {
	res, err := s.coffeeStore.Delete(ctx, id)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to delete coffee: %w", err)
	}

	s.logger.Info("coffee deleted", "coffee_id", id.Hex(), "deleted", res.DeletedCount)

	return res, nil
}
