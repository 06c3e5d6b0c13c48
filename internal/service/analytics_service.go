package service

import (
	"context"
	"fmt"
	"time"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/cache"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/repository"

	"github.com/rs/zerolog"
)

const (
	cacheKeyDashboard      = "storefront:analytics:dashboard"
	cacheKeyDailySales     = "storefront:analytics:sales:30d"
	cacheKeyCategoryCounts = "storefront:analytics:categories"

	lowStockThreshold = 10
	recentOrderLimit  = 5
	salesWindowDays   = 30
)

// analyticsService implements AnalyticsService. Aggregates are served from
// the cache when possible; cache failures degrade to direct queries.
type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	cache         cache.Cache
	logger        zerolog.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	c cache.Cache,
	logger zerolog.Logger,
) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		cache:         c,
		logger:        logger.With().Str("service", "analytics").Logger(),
	}
}

// Dashboard returns the admin overview aggregates.
func (s *analyticsService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	var cached model.Dashboard
	hit, err := s.cache.Get(ctx, cacheKeyDashboard, &cached)
	if err != nil {
		s.logger.Warn().Err(err).Msg("dashboard cache read failed")
	}
	if hit {
		s.logger.Debug().Msg("dashboard served from cache")
		return &cached, nil
	}

	dashboard, err := s.computeDashboard(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKeyDashboard, dashboard); err != nil {
		s.logger.Warn().Err(err).Msg("dashboard cache write failed")
	}

	return dashboard, nil
}

// DailySales returns the daily revenue series for the sales chart.
func (s *analyticsService) DailySales(ctx context.Context) ([]model.DailySales, error) {
	var cached []model.DailySales
	hit, err := s.cache.Get(ctx, cacheKeyDailySales, &cached)
	if err != nil {
		s.logger.Warn().Err(err).Msg("daily sales cache read failed")
	}
	if hit {
		return cached, nil
	}

	since := time.Now().AddDate(0, 0, -salesWindowDays)
	sales, err := s.analyticsRepo.DailySales(ctx, since)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to compute daily sales")
		return nil, fmt.Errorf("failed to get daily sales: %w", err)
	}
	if sales == nil {
		sales = []model.DailySales{}
	}

	if err := s.cache.Set(ctx, cacheKeyDailySales, sales); err != nil {
		s.logger.Warn().Err(err).Msg("daily sales cache write failed")
	}

	return sales, nil
}

// CategoryCounts returns the product count per category.
func (s *analyticsService) CategoryCounts(ctx context.Context) ([]model.CategoryCount, error) {
	var cached []model.CategoryCount
	hit, err := s.cache.Get(ctx, cacheKeyCategoryCounts, &cached)
	if err != nil {
		s.logger.Warn().Err(err).Msg("category counts cache read failed")
	}
	if hit {
		return cached, nil
	}

	counts, err := s.analyticsRepo.CategoryCounts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to compute category counts")
		return nil, fmt.Errorf("failed to get category counts: %w", err)
	}
	if counts == nil {
		counts = []model.CategoryCount{}
	}

	if err := s.cache.Set(ctx, cacheKeyCategoryCounts, counts); err != nil {
		s.logger.Warn().Err(err).Msg("category counts cache write failed")
	}

	return counts, nil
}

// RefreshDashboard recomputes the dashboard aggregates and re-primes the cache.
func (s *analyticsService) RefreshDashboard(ctx context.Context) error {
	dashboard, err := s.computeDashboard(ctx)
	if err != nil {
		return err
	}

	if err := s.cache.Set(ctx, cacheKeyDashboard, dashboard); err != nil {
		return fmt.Errorf("failed to prime dashboard cache: %w", err)
	}

	s.logger.Debug().Msg("dashboard cache refreshed")
	return nil
}

// computeDashboard runs the aggregate queries behind the overview widgets.
func (s *analyticsService) computeDashboard(ctx context.Context) (*model.Dashboard, error) {
	revenue, err := s.analyticsRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard: %w", err)
	}

	orders, err := s.analyticsRepo.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard: %w", err)
	}

	users, err := s.analyticsRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard: %w", err)
	}

	lowStock, err := s.analyticsRepo.CountLowStockProducts(ctx, lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard: %w", err)
	}

	recent, err := s.analyticsRepo.RecentOrders(ctx, recentOrderLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard: %w", err)
	}
	if recent == nil {
		recent = []model.OrderSummary{}
	}

	since := time.Now().AddDate(0, 0, -salesWindowDays)
	sales, err := s.analyticsRepo.DailySales(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard: %w", err)
	}
	if sales == nil {
		sales = []model.DailySales{}
	}

	return &model.Dashboard{
		TotalRevenue:     revenue,
		TotalOrders:      orders,
		TotalUsers:       users,
		LowStockProducts: lowStock,
		RecentOrders:     recent,
		SalesData:        sales,
	}, nil
}
