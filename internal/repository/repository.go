package repository

import (
	"context"
	"time"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// DB is the subset of pgxpool.Pool the repositories rely on. It is satisfied
// by pgxmock pools in unit tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// List retrieves products with optional category filtering and pagination.
	List(ctx context.Context, category string, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product, or nil if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update replaces a product's mutable fields. Returns false if the
	// product does not exist.
	Update(ctx context.Context, product *model.Product) (bool, error)

	// Delete removes a product. Returns false if the product does not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// SKUInUse reports whether another product already carries the given SKU.
	SKUInUse(ctx context.Context, sku string, excludeID uuid.UUID) (bool, error)
}

// CartRepository defines the interface for cart data access. All writes for
// a (user, product) pair are single atomic statements.
type CartRepository interface {
	// Upsert inserts a cart row or atomically increments the quantity of an
	// existing row for the same (user, product) pair.
	Upsert(ctx context.Context, userID, productID uuid.UUID, delta int) (*model.CartItem, error)

	// UpdateQuantity sets the quantity of an existing row. Returns false if
	// no row exists for the pair.
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (bool, error)

	// Remove deletes the row for the pair. Returns false if no row exists.
	Remove(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// ListByUser retrieves the user's raw cart rows.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)

	// ListDetailsByUser retrieves the user's cart rows joined with current
	// product name, price and image.
	ListDetailsByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItemDetail, error)

	// ClearByUser deletes all of the user's cart rows and returns how many
	// were removed.
	ClearByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items, or nil if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// ListByUser retrieves the user's order summaries, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.OrderSummary, error)

	// ListAll retrieves a page of all orders joined with their owners,
	// newest first, along with the total order count.
	ListAll(ctx context.Context, limit, offset int) ([]model.AdminOrder, int, error)
}

// AnalyticsRepository defines the aggregate queries behind the admin widgets.
type AnalyticsRepository interface {
	// TotalRevenue sums the total of all orders.
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)

	// CountOrders returns the total number of orders.
	CountOrders(ctx context.Context) (int, error)

	// CountUsers returns the total number of registered users.
	CountUsers(ctx context.Context) (int, error)

	// CountLowStockProducts returns how many products have stock below the threshold.
	CountLowStockProducts(ctx context.Context, threshold int) (int, error)

	// RecentOrders returns the most recently created orders.
	RecentOrders(ctx context.Context, limit int) ([]model.OrderSummary, error)

	// DailySales returns per-day revenue for orders created since the given time.
	DailySales(ctx context.Context, since time.Time) ([]model.DailySales, error)

	// CategoryCounts returns the number of products per category.
	CategoryCounts(ctx context.Context) ([]model.CategoryCount, error)
}
