package service

import (
	"context"
	"fmt"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// AddItem adds delta units of a product to the user's cart. The repository
// upsert is a single atomic statement, so concurrent adds for the same
// (user, product) pair accumulate without lost updates.
func (s *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, delta int) (*model.CartItem, error) {
	if userID == uuid.Nil {
		return nil, model.ErrUnauthorised
	}
	if delta < 1 {
		s.logger.Warn().
			Str("product_id", productID.String()).
			Int("delta", delta).
			Msg("invalid add quantity")
		return nil, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to look up product")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	if product == nil {
		s.logger.Debug().Str("product_id", productID.String()).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	item, err := s.cartRepo.Upsert(ctx, userID, productID, delta)
	if err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to upsert cart item")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Str("product_id", productID.String()).
		Int("quantity", item.Quantity).
		Msg("cart item added")

	return item, nil
}

// UpdateQuantity sets the quantity of an existing cart row. Removal must go
// through RemoveItem, so quantities below one are rejected.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	if userID == uuid.Nil {
		return model.ErrUnauthorised
	}
	if quantity < 1 {
		s.logger.Warn().
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Int("quantity", quantity).
			Msg("invalid quantity")
		return model.ErrInvalidQuantity
	}

	found, err := s.cartRepo.UpdateQuantity(ctx, userID, productID, quantity)
	if err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to update cart item")
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if !found {
		s.logger.Debug().
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("cart item not found")
		return model.ErrCartItemNotFound
	}

	return nil
}

// RemoveItem removes a cart row. A missing row is an error so that client
// bugs surface instead of silently succeeding.
func (s *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	if userID == uuid.Nil {
		return model.ErrUnauthorised
	}

	found, err := s.cartRepo.Remove(ctx, userID, productID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to remove cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if !found {
		s.logger.Debug().
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("cart item not found")
		return model.ErrCartItemNotFound
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Str("product_id", productID.String()).
		Msg("cart item removed")

	return nil
}

// ListItems retrieves the user's cart joined with live catalogue data.
func (s *cartService) ListItems(ctx context.Context, userID uuid.UUID) ([]model.CartItemDetail, error) {
	if userID == uuid.Nil {
		return nil, model.ErrUnauthorised
	}

	items, err := s.cartRepo.ListDetailsByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list cart items")
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	if items == nil {
		items = []model.CartItemDetail{}
	}

	return items, nil
}
