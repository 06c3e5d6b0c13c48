package service

import (
	"context"
	"fmt"
	"time"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/notification"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	sender      notification.Sender
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	sender notification.Sender,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		sender:      sender,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout builds and commits an order from the user's cart, then runs the
// best-effort follow-ups. Once the order transaction commits, a failing cart
// clear or notification is logged as a warning and never rolls the order back.
func (s *checkoutService) Checkout(ctx context.Context, userID uuid.UUID, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if userID == uuid.Nil {
		return nil, model.ErrUnauthorised
	}
	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	order, lines, err := s.buildOrder(ctx, userID, req.Address)
	if err != nil {
		return nil, err
	}

	// Best-effort: a stale cart is a UX issue, not a data-integrity issue.
	if _, err := s.cartRepo.ClearByUser(ctx, userID); err != nil {
		s.logger.Warn().Err(err).
			Str("user_id", userID.String()).
			Str("order_id", order.ID.String()).
			Msg("failed to clear cart after checkout")
	}

	message := notification.FormatOrderMessage(order.ID, lines, order.Total, notification.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})

	// Fire-and-forget: the order is already committed.
	link, err := s.sender.Send(ctx, message)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to deliver order notification")
		link = ""
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Str("order_id", order.ID.String()).
		Str("total", order.Total.StringFixed(2)).
		Msg("checkout completed")

	return &model.CheckoutResponse{
		OrderID:      order.ID,
		WhatsAppLink: link,
	}, nil
}

// buildOrder snapshots the user's cart into an immutable order and persists
// the order and all line items in a single transaction.
func (s *checkoutService) buildOrder(ctx context.Context, userID uuid.UUID, shippingAddress string) (*model.Order, []notification.OrderLine, error) {
	cartItems, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to read cart")
		return nil, nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(cartItems) == 0 {
		s.logger.Debug().Str("user_id", userID.String()).Msg("checkout attempted with empty cart")
		return nil, nil, model.ErrEmptyCart
	}

	productIDs := make([]uuid.UUID, len(cartItems))
	for i, item := range cartItems {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to read products for checkout")
		return nil, nil, fmt.Errorf("failed to read products: %w", err)
	}

	productsByID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	// A cart row pointing at a deleted product is an inconsistency that must
	// be surfaced, not skipped.
	for _, item := range cartItems {
		if _, ok := productsByID[item.ProductID]; !ok {
			s.logger.Warn().
				Str("user_id", userID.String()).
				Str("product_id", item.ProductID.String()).
				Msg("cart references missing product")
			return nil, nil, model.ErrProductNotFound
		}
	}

	now := time.Now()
	order := &model.Order{
		ID:              uuid.New(),
		UserID:          userID,
		Status:          model.OrderStatusPending,
		Total:           decimal.Zero,
		ShippingAddress: shippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	orderItems := make([]model.OrderItem, len(cartItems))
	lines := make([]notification.OrderLine, len(cartItems))
	for i, item := range cartItems {
		product := productsByID[item.ProductID]
		orderItems[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		}
		lines[i] = notification.OrderLine{
			Name:     product.Name,
			Quantity: item.Quantity,
			Price:    product.Price,
		}
		order.Total = order.Total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(orderItems)).
		Str("total", order.Total.StringFixed(2)).
		Msg("order committed")

	return order, lines, nil
}

// validateCheckoutRequest validates the contact information collected at checkout.
func validateCheckoutRequest(req *model.CheckoutRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeMissingField, "Checkout payload is required")
	}
	if req.Name == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Name is required")
	}
	if req.Phone == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Phone is required")
	}
	if req.Address == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Shipping address is required")
	}
	return nil
}
