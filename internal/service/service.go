package service

import (
	"context"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// List retrieves products, optionally filtered by category, with pagination.
	List(ctx context.Context, category string, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create adds a new product to the catalogue.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update replaces a product's mutable fields.
	Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product from the catalogue.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartService defines operations on a user's cart. Every operation requires a
// resolved user identity.
type CartService interface {
	// AddItem adds delta units of a product to the user's cart, creating the
	// row or incrementing an existing one.
	AddItem(ctx context.Context, userID, productID uuid.UUID, delta int) (*model.CartItem, error)

	// UpdateQuantity sets the quantity of an existing cart row.
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error

	// RemoveItem removes a cart row.
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error

	// ListItems retrieves the user's cart joined with live catalogue data.
	ListItems(ctx context.Context, userID uuid.UUID) ([]model.CartItemDetail, error)
}

// CheckoutService turns the user's current cart into a committed order.
type CheckoutService interface {
	// Checkout builds and commits an order from the user's cart, clears the
	// cart (best-effort) and hands a notification to the delivery channel
	// (best-effort). The returned order ID is always valid on success, even
	// when the best-effort steps degraded.
	Checkout(ctx context.Context, userID uuid.UUID, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
}

// OrderService defines read operations over committed orders.
type OrderService interface {
	// GetByID retrieves an order with its line items. Non-admin callers may
	// only read their own orders.
	GetByID(ctx context.Context, userID uuid.UUID, role model.Role, orderID uuid.UUID) (*model.OrderResponse, error)

	// ListByUser retrieves the caller's order history, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.OrderSummary, error)

	// ListAll retrieves a page of all orders for the admin dashboard.
	ListAll(ctx context.Context, page, limit int) (*model.AdminOrderPage, error)
}

// AnalyticsService serves the admin dashboard widgets, backed by cached
// aggregates.
type AnalyticsService interface {
	// Dashboard returns the admin overview aggregates.
	Dashboard(ctx context.Context) (*model.Dashboard, error)

	// DailySales returns the daily revenue series for the sales chart.
	DailySales(ctx context.Context) ([]model.DailySales, error)

	// CategoryCounts returns the product count per category.
	CategoryCounts(ctx context.Context) ([]model.CategoryCount, error)

	// RefreshDashboard recomputes the dashboard aggregates and re-primes the
	// cache. Called by the background refresh job.
	RefreshDashboard(ctx context.Context) error
}
