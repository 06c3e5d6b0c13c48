package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/middleware"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddItem(ctx context.Context, userID, productID uuid.UUID, delta int) (*model.CartItem, error) {
	args := m.Called(ctx, userID, productID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	args := m.Called(ctx, userID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockCartService) ListItems(ctx context.Context, userID uuid.UUID) ([]model.CartItemDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItemDetail), args.Error(1)
}

func authenticatedRequest(method, path string, body []byte, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	return req.WithContext(middleware.WithIdentity(req.Context(), userID, model.RoleUser))
}

func TestCartHandler_Add(t *testing.T) {
	logger := zerolog.Nop()
	userID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name           string
		path           string
		mockReturn     *model.CartItem
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			path:           "/api/cart/" + productID.String(),
			mockReturn:     &model.CartItem{ID: uuid.New(), UserID: userID, ProductID: productID, Quantity: 3},
			mockError:      nil,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Invalid product ID",
			path:           "/api/cart/not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Product not found",
			path:           "/api/cart/" + productID.String(),
			mockReturn:     nil,
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCartService)
			handler := NewCartHandler(mockService, logger)

			if tt.expectService {
				mockService.On("AddItem", mock.Anything, userID, productID, 1).Return(tt.mockReturn, tt.mockError)
			}

			req := authenticatedRequest(http.MethodPost, tt.path, nil, userID)
			w := httptest.NewRecorder()

			handler.Add(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "AddItem")
			}
		})
	}
}

func TestCartHandler_List(t *testing.T) {
	logger := zerolog.Nop()
	userID := uuid.New()

	details := []model.CartItemDetail{
		{ID: uuid.New(), ProductID: uuid.New(), Name: "PSN Card $25", Price: decimal.RequireFromString("25.00"), Quantity: 2},
	}

	mockService := new(MockCartService)
	handler := NewCartHandler(mockService, logger)

	mockService.On("ListItems", mock.Anything, userID).Return(details, nil)

	req := authenticatedRequest(http.MethodGet, "/api/cart", nil, userID)
	w := httptest.NewRecorder()

	handler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []model.CartItemDetail
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Len(t, got, 1)
	assert.Equal(t, "PSN Card $25", got[0].Name)
}

func TestCartHandler_Update(t *testing.T) {
	logger := zerolog.Nop()
	userID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			body:           model.UpdateCartItemRequest{ProductID: productID, Quantity: 4},
			mockError:      nil,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Invalid quantity",
			body:           model.UpdateCartItemRequest{ProductID: productID, Quantity: 0},
			mockError:      model.ErrInvalidQuantity,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Cart item not found",
			body:           model.UpdateCartItemRequest{ProductID: productID, Quantity: 4},
			mockError:      model.ErrCartItemNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCartService)
			handler := NewCartHandler(mockService, logger)

			var body []byte
			if s, ok := tt.body.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.body)
			}

			if tt.expectService {
				req := tt.body.(model.UpdateCartItemRequest)
				mockService.On("UpdateQuantity", mock.Anything, userID, req.ProductID, req.Quantity).Return(tt.mockError)
			}

			req := authenticatedRequest(http.MethodPut, "/api/cart", body, userID)
			w := httptest.NewRecorder()

			handler.Update(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCartHandler_Remove(t *testing.T) {
	logger := zerolog.Nop()
	userID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name           string
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			mockError:      nil,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Cart item not found",
			mockError:      model.ErrCartItemNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCartService)
			handler := NewCartHandler(mockService, logger)

			mockService.On("RemoveItem", mock.Anything, userID, productID).Return(tt.mockError)

			body, _ := json.Marshal(model.RemoveCartItemRequest{ProductID: productID})
			req := authenticatedRequest(http.MethodDelete, "/api/cart", body, userID)
			w := httptest.NewRecorder()

			handler.Remove(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
