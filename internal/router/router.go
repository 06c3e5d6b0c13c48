package router

import (
	"net/http"
	"strings"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/handler"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	orderHandler *handler.OrderHandler,
	analyticsHandler *handler.AnalyticsHandler,
	jwtSecret string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	admin := middleware.RequireAdmin(logger)

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product routes: reads are public, writes are admin-only
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		isCollection := r.URL.Path == "/api/products" || r.URL.Path == "/api/products/"

		switch {
		case r.Method == http.MethodGet && isCollection:
			productHandler.List(w, r)
		case r.Method == http.MethodGet:
			productHandler.GetByID(w, r)
		case r.Method == http.MethodPost && isCollection:
			admin(http.HandlerFunc(productHandler.Create)).ServeHTTP(w, r)
		case r.Method == http.MethodPut && !isCollection:
			admin(http.HandlerFunc(productHandler.Update)).ServeHTTP(w, r)
		case r.Method == http.MethodDelete && !isCollection:
			admin(http.HandlerFunc(productHandler.Delete)).ServeHTTP(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		isCollection := r.URL.Path == "/api/cart" || r.URL.Path == "/api/cart/"

		switch {
		case r.Method == http.MethodGet && isCollection:
			cartHandler.List(w, r)
		case r.Method == http.MethodPut && isCollection:
			cartHandler.Update(w, r)
		case r.Method == http.MethodDelete && isCollection:
			cartHandler.Remove(w, r)
		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/api/cart/") && !isCollection:
			cartHandler.Add(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	// Checkout
	mux.HandleFunc("/api/checkout", checkoutHandler.Checkout)

	// Order routes
	mux.HandleFunc("/api/user/orders", orderHandler.ListMine)
	mux.HandleFunc("/api/orders/", orderHandler.GetByID)

	// Admin analytics and order management
	mux.Handle("/api/admin/orders", admin(http.HandlerFunc(orderHandler.ListAll)))
	mux.Handle("/api/admin/dashboard", admin(http.HandlerFunc(analyticsHandler.Dashboard)))
	mux.Handle("/api/sales", admin(http.HandlerFunc(analyticsHandler.Sales)))
	mux.Handle("/api/categories", admin(http.HandlerFunc(analyticsHandler.Categories)))

	// Apply middleware in order: Recovery -> Logging -> CORS -> Session
	var h http.Handler = mux
	h = middleware.Session(jwtSecret, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
