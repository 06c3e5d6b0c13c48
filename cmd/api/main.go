package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/cache"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/config"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/database"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/handler"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/jobs"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/notification"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/repository"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/router"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting storefront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Apply schema migrations before opening the pool
	if err := database.Migrate(cfg.Database, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize analytics cache; Redis is optional
	var analyticsCache cache.Cache
	if cfg.Redis.Enabled {
		analyticsCache, err = cache.NewRedis(
			ctx,
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.TTL)*time.Second,
			logger,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to connect to redis, analytics caching disabled")
			analyticsCache = cache.NewNoop()
		}
	} else {
		analyticsCache = cache.NewNoop()
		logger.Info().Msg("analytics caching disabled (redis not enabled)")
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	cartRepo := repository.NewCartRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	analyticsRepo := repository.NewAnalyticsRepository(pool, logger)

	// Initialize notification sender
	sender := notification.NewWhatsAppSender(cfg.Notification.StorePhone, logger)

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	cartService := service.NewCartService(cartRepo, productRepo, logger)
	checkoutService := service.NewCheckoutService(cartRepo, productRepo, orderRepo, sender, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	analyticsService := service.NewAnalyticsService(analyticsRepo, analyticsCache, logger)

	// Start the analytics refresh job when caching is active
	if cfg.Redis.Enabled {
		scheduler, err := jobs.NewScheduler(analyticsService, time.Duration(cfg.Redis.TTL)*time.Second/2, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize scheduler: %w", err)
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Shutdown(); err != nil {
				logger.Error().Err(err).Msg("failed to shut down scheduler")
			}
		}()
	}

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)

	// Initialize router
	mux := router.New(
		productHandler,
		cartHandler,
		checkoutHandler,
		orderHandler,
		analyticsHandler,
		cfg.Auth.JWTSecret,
		logger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
