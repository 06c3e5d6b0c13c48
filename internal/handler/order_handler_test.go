package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/middleware"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) GetByID(ctx context.Context, userID uuid.UUID, role model.Role, orderID uuid.UUID) (*model.OrderResponse, error) {
	args := m.Called(ctx, userID, role, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.OrderSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderSummary), args.Error(1)
}

func (m *MockOrderService) ListAll(ctx context.Context, page, limit int) (*model.AdminOrderPage, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminOrderPage), args.Error(1)
}

func TestOrderHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	userID := uuid.New()
	orderID := uuid.New()

	order := &model.OrderResponse{
		Order: model.Order{
			ID:     orderID,
			UserID: userID,
			Status: model.OrderStatusPending,
			Total:  decimal.RequireFromString("25.50"),
		},
		Items: []model.OrderItem{
			{ProductID: uuid.New(), Quantity: 2, Price: decimal.RequireFromString("10.00")},
		},
	}

	tests := []struct {
		name           string
		path           string
		mockReturn     *model.OrderResponse
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			path:           "/api/orders/" + orderID.String(),
			mockReturn:     order,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			path:           "/api/orders/" + orderID.String(),
			mockError:      model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid order ID",
			path:           "/api/orders/not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetByID", mock.Anything, userID, model.RoleUser, orderID).Return(tt.mockReturn, tt.mockError)
			}

			req := authenticatedRequest(http.MethodGet, tt.path, nil, userID)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if !tt.expectService {
				mockService.AssertNotCalled(t, "GetByID")
			}
		})
	}
}

func TestOrderHandler_GetByID_AdminRole(t *testing.T) {
	logger := zerolog.Nop()
	adminID := uuid.New()
	orderID := uuid.New()

	order := &model.OrderResponse{
		Order: model.Order{ID: orderID, UserID: uuid.New(), Status: model.OrderStatusPending},
	}

	mockService := new(MockOrderService)
	handler := NewOrderHandler(mockService, logger)

	mockService.On("GetByID", mock.Anything, adminID, model.RoleAdmin, orderID).Return(order, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID.String(), nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), adminID, model.RoleAdmin))
	w := httptest.NewRecorder()

	handler.GetByID(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestOrderHandler_ListMine(t *testing.T) {
	logger := zerolog.Nop()
	userID := uuid.New()

	summaries := []model.OrderSummary{
		{ID: uuid.New(), Total: decimal.RequireFromString("25.50"), Status: model.OrderStatusPending, CreatedAt: time.Now()},
		{ID: uuid.New(), Total: decimal.RequireFromString("75.00"), Status: model.OrderStatusDelivered, CreatedAt: time.Now().Add(-time.Hour)},
	}

	mockService := new(MockOrderService)
	handler := NewOrderHandler(mockService, logger)

	mockService.On("ListByUser", mock.Anything, userID).Return(summaries, nil)

	req := authenticatedRequest(http.MethodGet, "/api/user/orders", nil, userID)
	w := httptest.NewRecorder()

	handler.ListMine(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []model.OrderSummary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Len(t, got, 2)
}

func TestOrderHandler_ListAll(t *testing.T) {
	logger := zerolog.Nop()

	page := &model.AdminOrderPage{
		Orders: []model.AdminOrder{
			{
				OrderSummary: model.OrderSummary{ID: uuid.New(), Total: decimal.RequireFromString("25.50"), Status: model.OrderStatusPending},
				UserName:     "Jane Customer",
				UserEmail:    "jane@example.com",
			},
		},
		TotalPages:  3,
		CurrentPage: 2,
	}

	tests := []struct {
		name           string
		url            string
		setupMock      func(m *MockOrderService)
		expectedStatus int
	}{
		{
			name: "Success with explicit paging",
			url:  "/api/admin/orders?page=2&limit=10",
			setupMock: func(m *MockOrderService) {
				m.On("ListAll", mock.Anything, 2, 10).Return(page, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Defaults when paging absent",
			url:  "/api/admin/orders",
			setupMock: func(m *MockOrderService) {
				m.On("ListAll", mock.Anything, 1, 10).Return(page, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid page parameter",
			url:            "/api/admin/orders?page=abc",
			setupMock:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, logger)
			tt.setupMock(mockService)

			req := authenticatedRequest(http.MethodGet, tt.url, nil, uuid.New())
			w := httptest.NewRecorder()

			handler.ListAll(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got model.AdminOrderPage
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, page.TotalPages, got.TotalPages)
			}
			mockService.AssertExpectations(t)
		})
	}
}
