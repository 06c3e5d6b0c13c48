package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	db     DB
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(db DB, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		db:     db,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// Upsert inserts a cart row or atomically increments the quantity of an
// existing row for the same (user, product) pair. The single statement keeps
// concurrent adds from losing increments.
func (r *cartRepository) Upsert(ctx context.Context, userID, productID uuid.UUID, delta int) (*model.CartItem, error) {
	query := `
		INSERT INTO cart_items (id, user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`

	now := time.Now()
	var item model.CartItem
	err := r.db.QueryRow(ctx, query, uuid.New(), userID, productID, delta, now).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to upsert cart item")
		return nil, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	r.logger.Debug().
		Str("user_id", userID.String()).
		Str("product_id", productID.String()).
		Int("quantity", item.Quantity).
		Msg("cart item upserted")

	return &item, nil
}

// UpdateQuantity sets the quantity of an existing row.
func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (bool, error) {
	query := `
		UPDATE cart_items
		SET quantity = $3, updated_at = $4
		WHERE user_id = $1 AND product_id = $2
	`

	tag, err := r.db.Exec(ctx, query, userID, productID, quantity, time.Now())
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to update cart item quantity")
		return false, fmt.Errorf("failed to update cart item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Remove deletes the row for the pair.
func (r *cartRepository) Remove(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`

	tag, err := r.db.Exec(ctx, query, userID, productID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to remove cart item")
		return false, fmt.Errorf("failed to remove cart item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListByUser retrieves the user's raw cart rows.
func (r *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	query := `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query cart items")
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var item model.CartItem
		err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart item row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart item rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// ListDetailsByUser retrieves the user's cart rows joined with current
// product name, price and image. Prices are live, not snapshots.
func (r *cartRepository) ListDetailsByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItemDetail, error) {
	query := `
		SELECT c.id, c.product_id, p.name, p.price, c.quantity, p.image_url
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query cart details")
		return nil, fmt.Errorf("failed to query cart details: %w", err)
	}
	defer rows.Close()

	var items []model.CartItemDetail
	for rows.Next() {
		var item model.CartItemDetail
		err := rows.Scan(&item.ID, &item.ProductID, &item.Name, &item.Price, &item.Quantity, &item.ImageURL)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart detail row")
			return nil, fmt.Errorf("failed to scan cart detail: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart detail rows")
		return nil, fmt.Errorf("error iterating cart details: %w", err)
	}

	return items, nil
}

// ClearByUser deletes all of the user's cart rows.
func (r *cartRepository) ClearByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to clear cart")
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	r.logger.Debug().
		Str("user_id", userID.String()).
		Int64("removed", tag.RowsAffected()).
		Msg("cart cleared")

	return tag.RowsAffected(), nil
}
