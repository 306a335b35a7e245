package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

type Handler struct {
	svc    port.StorefrontService
	ping   func(ctx context.Context) error
	logger *zap.Logger
}

// NewHandler wires the storefront core. ping backs the health check and
// may be nil.
func NewHandler(svc port.StorefrontService, ping func(ctx context.Context) error, logger *zap.Logger) *Handler {
	return &Handler{
		svc:    svc,
		ping:   ping,
		logger: logger,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			h.logger.Warn("health check failed", zap.Error(err))
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a valid id")
		return
	}

	quantity := domain.MinItemQuantity
	if req.Quantity != "" {
		n, err := req.Quantity.Int64()
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be a whole number")
			return
		}
		// range is checked by the core
		quantity = int(n)
	}

	result, err := h.svc.AddOrMergeItem(r.Context(), userID, productID, quantity)
	if err != nil {
		handleServiceError(w, h.logger, err, "product not found")
		return
	}

	status := http.StatusCreated
	message := "item added to cart"
	if result.Merged {
		status = http.StatusOK
		message = "cart item quantity updated"
	}

	respondJSON(w, status, AddItemResponseDTO{
		Message: message,
		Item:    mapCartItem(result.Item),
		Cart:    mapCart(result.Summary),
	})
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserIDFromContext(r.Context()); !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_cart_item_id", "cart item id must be a valid id")
		return
	}

	if err := h.svc.RemoveCartItem(r.Context(), itemID); err != nil {
		handleServiceError(w, h.logger, err, "cart item not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "item removed from cart"})
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	summary, err := h.svc.GetCartSummary(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.logger, err, "cart not found")
		return
	}

	respondJSON(w, http.StatusOK, mapCart(summary))
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	result, err := h.svc.Checkout(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.logger, err, "")
		return
	}

	respondJSON(w, http.StatusCreated, mapCheckout(result))
}

func (h *Handler) SellerStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	dashboard, err := h.svc.GetSellerStats(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.logger, err, "seller profile not found")
		return
	}

	respondJSON(w, http.StatusOK, mapSellerStats(dashboard))
}
