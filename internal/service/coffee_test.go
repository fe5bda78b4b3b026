package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dtroode/espresso-emporium-server/internal/model"
	"github.com/dtroode/espresso-emporium-server/internal/testutil"
)

// MockCoffeeStore mocks the CoffeeStore interface
type MockCoffeeStore struct {
	mock.Mock
}

func (m *MockCoffeeStore) List(ctx context.Context) ([]model.Coffee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Coffee), args.Error(1)
}

func (m *MockCoffeeStore) GetByID(ctx context.Context, id primitive.ObjectID) (model.Coffee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Coffee), args.Error(1)
}

func (m *MockCoffeeStore) Insert(ctx context.Context, coffee model.Coffee) (model.InsertResult, error) {
	args := m.Called(ctx, coffee)
	return args.Get(0).(model.InsertResult), args.Error(1)
}

func (m *MockCoffeeStore) Upsert(ctx context.Context, id primitive.ObjectID, fields model.CoffeeFields) (model.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *MockCoffeeStore) Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.DeleteResult), args.Error(1)
}

func TestCoffeeService_ListCoffees(t *testing.T) {
	t.Run("returns store result", func(t *testing.T) {
		store := &MockCoffeeStore{}
		coffees := []model.Coffee{
			{"_id": primitive.NewObjectID(), "name": "Americano"},
			{"_id": primitive.NewObjectID(), "name": "Latte", "price": 4.5},
		}
		store.On("List", mock.Anything).Return(coffees, nil)

		svc := NewCoffee(store, testutil.MakeNoopLogger())
		got, err := svc.ListCoffees(context.Background())

		require.NoError(t, err)
		assert.Equal(t, coffees, got)
		store.AssertExpectations(t)
	})

	t.Run("wraps store error", func(t *testing.T) {
		store := &MockCoffeeStore{}
		dbErr := errors.New("database error")
		store.On("List", mock.Anything).Return([]model.Coffee(nil), dbErr)

		svc := NewCoffee(store, testutil.MakeNoopLogger())
		_, err := svc.ListCoffees(context.Background())

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestCoffeeService_GetCoffee(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name      string
		mockSetup func(*MockCoffeeStore)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "found",
			mockSetup: func(store *MockCoffeeStore) {
				store.On("GetByID", mock.Anything, id).
					Return(model.Coffee{"_id": id, "name": "Mocha"}, nil)
			},
		},
		{
			name: "not found becomes api error",
			mockSetup: func(store *MockCoffeeStore) {
				store.On("GetByID", mock.Anything, id).Return(model.Coffee(nil), model.ErrNotFound)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "store failure",
			mockSetup: func(store *MockCoffeeStore) {
				store.On("GetByID", mock.Anything, id).Return(model.Coffee(nil), errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockCoffeeStore{}
			tt.mockSetup(store)

			svc := NewCoffee(store, testutil.MakeNoopLogger())
			got, err := svc.GetCoffee(context.Background(), id)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, id, got.ID())
				assert.Equal(t, "Mocha", got["name"])
				return
			}

			require.Error(t, err)
			var apiErr *model.APIError
			if tt.wantCode != 0 {
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				assert.Equal(t, "coffee not found", apiErr.Message)
				assert.ErrorIs(t, err, model.ErrNotFound)
			} else {
				assert.False(t, errors.As(err, &apiErr))
			}
			store.AssertExpectations(t)
		})
	}
}

func TestCoffeeService_CreateCoffee(t *testing.T) {
	tests := []struct {
		name   string
		input  model.Coffee
		stored model.Coffee
	}{
		{
			name:   "caller id dropped",
			input:  model.Coffee{"_id": primitive.NewObjectID(), "name": "Cappuccino", "chef": "Paul"},
			stored: model.Coffee{"name": "Cappuccino", "chef": "Paul"},
		},
		{
			name:   "extra fields kept",
			input:  model.Coffee{"name": "Latte", "price": 4.5, "origin": "Kenya"},
			stored: model.Coffee{"name": "Latte", "price": 4.5, "origin": "Kenya"},
		},
		{
			name:   "non-string and empty values kept",
			input:  model.Coffee{"name": "", "chef": float64(42), "details": nil},
			stored: model.Coffee{"name": "", "chef": float64(42), "details": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockCoffeeStore{}
			newID := primitive.NewObjectID()
			store.On("Insert", mock.Anything, tt.stored).
				Return(model.InsertResult{Acknowledged: true, InsertedID: newID}, nil)

			svc := NewCoffee(store, testutil.MakeNoopLogger())
			res, err := svc.CreateCoffee(context.Background(), tt.input)

			require.NoError(t, err)
			assert.True(t, res.Acknowledged)
			assert.Equal(t, newID, res.InsertedID)
			store.AssertExpectations(t)
		})
	}

	t.Run("input is not modified", func(t *testing.T) {
		store := &MockCoffeeStore{}
		store.On("Insert", mock.Anything, mock.Anything).
			Return(model.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil)

		input := model.Coffee{"_id": "mine", "name": "Mocha"}
		svc := NewCoffee(store, testutil.MakeNoopLogger())
		_, err := svc.CreateCoffee(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "mine", input["_id"])
	})

	t.Run("store error", func(t *testing.T) {
		store := &MockCoffeeStore{}
		store.On("Insert", mock.Anything, mock.Anything).Return(model.InsertResult{}, errors.New("duplicate"))

		svc := NewCoffee(store, testutil.MakeNoopLogger())
		_, err := svc.CreateCoffee(context.Background(), model.Coffee{})

		assert.Error(t, err)
	})
}

func TestCoffeeService_UpdateCoffee(t *testing.T) {
	id := primitive.NewObjectID()
	fields := model.CoffeeFields{Name: "Flat White", Taste: "Smooth"}

	t.Run("upsert creates document", func(t *testing.T) {
		store := &MockCoffeeStore{}
		store.On("Upsert", mock.Anything, id, fields).Return(model.UpdateResult{
			Acknowledged:  true,
			UpsertedCount: 1,
			UpsertedID:    &id,
		}, nil)

		svc := NewCoffee(store, testutil.MakeNoopLogger())
		res, err := svc.UpdateCoffee(context.Background(), id, fields)

		require.NoError(t, err)
		assert.EqualValues(t, 1, res.UpsertedCount)
		require.NotNil(t, res.UpsertedID)
		assert.Equal(t, id, *res.UpsertedID)
		store.AssertExpectations(t)
	})

	t.Run("store error", func(t *testing.T) {
		store := &MockCoffeeStore{}
		store.On("Upsert", mock.Anything, id, fields).Return(model.UpdateResult{}, errors.New("write conflict"))

		svc := NewCoffee(store, testutil.MakeNoopLogger())
		_, err := svc.UpdateCoffee(context.Background(), id, fields)

		assert.Error(t, err)
	})
}

func TestCoffeeService_DeleteCoffee(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name    string
		result  model.DeleteResult
		err     error
		wantErr bool
	}{
		{name: "existing document", result: model.DeleteResult{Acknowledged: true, DeletedCount: 1}},
		{name: "missing document is not an error", result: model.DeleteResult{Acknowledged: true, DeletedCount: 0}},
		{name: "store error", err: errors.New("network"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockCoffeeStore{}
			store.On("Delete", mock.Anything, id).Return(tt.result, tt.err)

			svc := NewCoffee(store, testutil.MakeNoopLogger())
			res, err := svc.DeleteCoffee(context.Background(), id)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.result, res)
		})
	}
}
