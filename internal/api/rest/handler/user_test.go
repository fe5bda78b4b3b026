package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dtroode/espresso-emporium-server/internal/model"
	"github.com/dtroode/espresso-emporium-server/internal/testutil"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, user model.User) (model.InsertResult, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.InsertResult), args.Error(1)
}

func newUserEngine(svc UserService) *gin.Engine {
	h := NewUser(svc, testutil.MakeNoopLogger())
	r := gin.New()
	r.GET("/users", h.ListUsers)
	r.POST("/users", h.CreateUser)
	return r
}

func TestUser_ListUsers(t *testing.T) {
	id := primitive.NewObjectID()
	svc := &MockUserService{}
	svc.On("ListUsers", mock.Anything).Return([]model.User{
		{"_id": id, "email": "a@example.com", "createdAt": "2024-05-01"},
	}, nil)

	w := serve(newUserEngine(svc), http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"`+id.Hex()+`","email":"a@example.com","createdAt":"2024-05-01"}]`, w.Body.String())
}

func TestUser_CreateUser(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name       string
		body       string
		mockSetup  func(*MockUserService)
		wantStatus int
	}{
		{
			name: "arbitrary object",
			body: `{"email":"a@example.com","nested":{"k":[1,2]}}`,
			mockSetup: func(s *MockUserService) {
				s.On("CreateUser", mock.Anything, model.User{
					"email":  "a@example.com",
					"nested": map[string]any{"k": []any{float64(1), float64(2)}},
				}).Return(model.InsertResult{Acknowledged: true, InsertedID: id}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "array body rejected",
			body:       `[1,2,3]`,
			mockSetup:  func(*MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "null body rejected",
			body:       `null`,
			mockSetup:  func(*MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: `{"email":"a@example.com"}`,
			mockSetup: func(s *MockUserService) {
				s.On("CreateUser", mock.Anything, mock.Anything).Return(model.InsertResult{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockUserService{}
			tt.mockSetup(svc)

			w := serve(newUserEngine(svc), http.MethodPost, "/users", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
