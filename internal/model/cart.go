package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem represents a persisted (user, product, quantity) association.
// At most one row exists per (UserID, ProductID) pair.
type CartItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CartItemDetail is a cart row joined with the current catalogue data for
// display. Price reflects the live product price, not an order snapshot.
type CartItemDetail struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"imageUrl"`
}

// UpdateCartItemRequest represents the payload for changing a cart row's quantity.
type UpdateCartItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// RemoveCartItemRequest represents the payload for removing a cart row.
type RemoveCartItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
}
