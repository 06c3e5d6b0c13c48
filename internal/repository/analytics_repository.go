package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// analyticsRepository implements the AnalyticsRepository interface using PostgreSQL.
type analyticsRepository struct {
	db     DB
	logger zerolog.Logger
}

// NewAnalyticsRepository creates a new PostgreSQL-backed analytics repository.
func NewAnalyticsRepository(db DB, logger zerolog.Logger) AnalyticsRepository {
	return &analyticsRepository{
		db:     db,
		logger: logger.With().Str("repository", "analytics").Logger(),
	}
}

// TotalRevenue sums the total of all orders.
func (r *analyticsRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(total), 0) FROM orders`).Scan(&revenue)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to sum order totals")
		return decimal.Zero, fmt.Errorf("failed to sum order totals: %w", err)
	}
	return revenue, nil
}

// CountOrders returns the total number of orders.
func (r *analyticsRepository) CountOrders(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count orders")
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// CountUsers returns the total number of registered users.
func (r *analyticsRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count users")
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountLowStockProducts returns how many products have stock below the threshold.
func (r *analyticsRepository) CountLowStockProducts(ctx context.Context, threshold int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE stock_quantity < $1`, threshold).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Int("threshold", threshold).Msg("failed to count low stock products")
		return 0, fmt.Errorf("failed to count low stock products: %w", err)
	}
	return count, nil
}

// RecentOrders returns the most recently created orders.
func (r *analyticsRepository) RecentOrders(ctx context.Context, limit int) ([]model.OrderSummary, error) {
	query := `
		SELECT id, total, status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query recent orders")
		return nil, fmt.Errorf("failed to query recent orders: %w", err)
	}
	defer rows.Close()

	var orders []model.OrderSummary
	for rows.Next() {
		var o model.OrderSummary
		if err := rows.Scan(&o.ID, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan recent order row")
			return nil, fmt.Errorf("failed to scan recent order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating recent order rows")
		return nil, fmt.Errorf("error iterating recent orders: %w", err)
	}

	return orders, nil
}

// DailySales returns per-day revenue for orders created since the given time.
func (r *analyticsRepository) DailySales(ctx context.Context, since time.Time) ([]model.DailySales, error) {
	query := `
		SELECT TO_CHAR(DATE_TRUNC('day', created_at), 'YYYY-MM-DD') AS day, SUM(total)
		FROM orders
		WHERE created_at >= $1
		GROUP BY DATE_TRUNC('day', created_at)
		ORDER BY DATE_TRUNC('day', created_at)
	`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		r.logger.Error().Err(err).Time("since", since).Msg("failed to query daily sales")
		return nil, fmt.Errorf("failed to query daily sales: %w", err)
	}
	defer rows.Close()

	var sales []model.DailySales
	for rows.Next() {
		var s model.DailySales
		if err := rows.Scan(&s.Date, &s.Sales); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan daily sales row")
			return nil, fmt.Errorf("failed to scan daily sales: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating daily sales rows")
		return nil, fmt.Errorf("error iterating daily sales: %w", err)
	}

	return sales, nil
}

// CategoryCounts returns the number of products per category.
func (r *analyticsRepository) CategoryCounts(ctx context.Context) ([]model.CategoryCount, error) {
	query := `
		SELECT category, COUNT(*)
		FROM products
		GROUP BY category
		ORDER BY category
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query category counts")
		return nil, fmt.Errorf("failed to query category counts: %w", err)
	}
	defer rows.Close()

	var counts []model.CategoryCount
	for rows.Next() {
		var c model.CategoryCount
		if err := rows.Scan(&c.Name, &c.Value); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category count row")
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category count rows")
		return nil, fmt.Errorf("error iterating category counts: %w", err)
	}

	return counts, nil
}
