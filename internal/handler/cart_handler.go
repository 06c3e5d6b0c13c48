package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/middleware"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Add handles POST /api/cart/{productId} requests. One unit is added per call.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	idStr := strings.TrimPrefix(r.URL.Path, "/api/cart/")
	if idStr == "" || idStr == r.URL.Path {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "product ID is required", h.logger)
		return
	}

	productID, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid product ID format", h.logger)
		return
	}

	item, err := h.service.AddItem(r.Context(), userID, productID, 1)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// List handles GET /api/cart requests.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	items, err := h.service.ListItems(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Update handles PUT /api/cart requests.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req model.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateQuantity(r.Context(), userID, req.ProductID, req.Quantity); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Remove handles DELETE /api/cart requests.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req model.RemoveCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.RemoveItem(r.Context(), userID, req.ProductID); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
