package service

import (
	"context"
	"fmt"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// GetByID retrieves an order with its line items. Another user's order is
// reported as not found rather than forbidden, so order IDs stay unguessable.
func (s *orderService) GetByID(ctx context.Context, userID uuid.UUID, role model.Role, orderID uuid.UUID) (*model.OrderResponse, error) {
	if userID == uuid.Nil {
		return nil, model.ErrUnauthorised
	}

	order, items, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", orderID.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	if order.UserID != userID && role != model.RoleAdmin {
		s.logger.Warn().
			Str("order_id", orderID.String()).
			Str("user_id", userID.String()).
			Msg("order access denied")
		return nil, model.ErrOrderNotFound
	}

	if items == nil {
		items = []model.OrderItem{}
	}

	return &model.OrderResponse{
		Order: *order,
		Items: items,
	}, nil
}

// ListByUser retrieves the caller's order history, newest first.
func (s *orderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.OrderSummary, error) {
	if userID == uuid.Nil {
		return nil, model.ErrUnauthorised
	}

	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list user orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if orders == nil {
		orders = []model.OrderSummary{}
	}

	return orders, nil
}

// ListAll retrieves a page of all orders for the admin dashboard.
func (s *orderService) ListAll(ctx context.Context, page, limit int) (*model.AdminOrderPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	offset := (page - 1) * limit

	orders, total, err := s.orderRepo.ListAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Int("page", page).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if orders == nil {
		orders = []model.AdminOrder{}
	}

	totalPages := (total + limit - 1) / limit

	return &model.AdminOrderPage{
		Orders:      orders,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}
