package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_GetByID_Owner(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	userID := uuid.New()
	orderID := uuid.New()

	order := &model.Order{
		ID:        orderID,
		UserID:    userID,
		Status:    model.OrderStatusPending,
		Total:     decimal.RequireFromString("99.99"),
		CreatedAt: time.Now(),
	}
	items := []model.OrderItem{
		{ID: uuid.New(), OrderID: orderID, ProductID: uuid.New(), Quantity: 1, Price: decimal.RequireFromString("99.99")},
	}

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, logger)

	mockOrderRepo.On("GetByID", ctx, orderID).Return(order, items, nil)

	resp, err := service.GetByID(ctx, userID, model.RoleUser, orderID)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, orderID, resp.ID)
	assert.Len(t, resp.Items, 1)
	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_GetByID_OtherUserSeesNotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	ownerID := uuid.New()
	otherID := uuid.New()
	orderID := uuid.New()

	order := &model.Order{
		ID:     orderID,
		UserID: ownerID,
		Status: model.OrderStatusPending,
	}

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, logger)

	mockOrderRepo.On("GetByID", ctx, orderID).Return(order, []model.OrderItem{}, nil)

	resp, err := service.GetByID(ctx, otherID, model.RoleUser, orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	assert.Nil(t, resp)
}

func TestOrderService_GetByID_AdminSeesAnyOrder(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	ownerID := uuid.New()
	adminID := uuid.New()
	orderID := uuid.New()

	order := &model.Order{
		ID:     orderID,
		UserID: ownerID,
		Status: model.OrderStatusShipped,
	}

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, logger)

	mockOrderRepo.On("GetByID", ctx, orderID).Return(order, []model.OrderItem{}, nil)

	resp, err := service.GetByID(ctx, adminID, model.RoleAdmin, orderID)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, orderID, resp.ID)
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orderID := uuid.New()

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, logger)

	mockOrderRepo.On("GetByID", ctx, orderID).Return(nil, nil, nil)

	resp, err := service.GetByID(ctx, uuid.New(), model.RoleUser, orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	assert.Nil(t, resp)
}

func TestOrderService_ListByUser(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	userID := uuid.New()
	summaries := []model.OrderSummary{
		{ID: uuid.New(), Total: decimal.RequireFromString("75.00"), Status: model.OrderStatusDelivered, CreatedAt: time.Now()},
		{ID: uuid.New(), Total: decimal.RequireFromString("25.50"), Status: model.OrderStatusPending, CreatedAt: time.Now().Add(-time.Hour)},
	}

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, logger)

	mockOrderRepo.On("ListByUser", ctx, userID).Return(summaries, nil)

	orders, err := service.ListByUser(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderService_ListByUser_Empty(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	userID := uuid.New()

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, logger)

	mockOrderRepo.On("ListByUser", ctx, userID).Return(nil, nil)

	orders, err := service.ListByUser(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderService_ListAll_Pagination(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, logger)

	adminOrders := []model.AdminOrder{
		{OrderSummary: model.OrderSummary{ID: uuid.New(), Total: decimal.RequireFromString("10.00")}, UserName: "Jane", UserEmail: "jane@example.com"},
	}

	// Page 3 with a limit of 10 starts at offset 20. 25 orders total make 3 pages.
	mockOrderRepo.On("ListAll", ctx, 10, 20).Return(adminOrders, 25, nil)

	page, err := service.ListAll(ctx, 3, 10)

	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Orders, 1)
	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_ListAll_ClampsInvalidPaging(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, logger)

	mockOrderRepo.On("ListAll", ctx, 10, 0).Return([]model.AdminOrder{}, 0, nil)

	page, err := service.ListAll(ctx, -5, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 0, page.TotalPages)
	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_ListAll_RepositoryError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, logger)

	mockOrderRepo.On("ListAll", ctx, 10, 0).Return(nil, 0, errors.New("connection lost"))

	page, err := service.ListAll(ctx, 1, 10)

	require.Error(t, err)
	assert.Nil(t, page)
}
