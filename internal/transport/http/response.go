package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nikolayk812/storefront/internal/domain"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// headers are gone at this point, nothing useful to do on failure
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

var errorCodes = []struct {
	target error
	status int
	code   string
}{
	{target: domain.ErrNoActiveCart, status: http.StatusNotFound, code: "no_active_cart"},
	{target: domain.ErrNotFound, status: http.StatusNotFound, code: "not_found"},
	{target: domain.ErrInvalidQuantity, status: http.StatusBadRequest, code: "invalid_quantity"},
	{target: domain.ErrUnavailable, status: http.StatusBadRequest, code: "product_unavailable"},
	{target: domain.ErrInsufficientStock, status: http.StatusBadRequest, code: "insufficient_stock"},
	{target: domain.ErrEmptyCart, status: http.StatusBadRequest, code: "empty_cart"},
	{target: domain.ErrCurrencyMismatch, status: http.StatusBadRequest, code: "currency_mismatch"},
}

// handleServiceError renders business outcomes with their own message and
// hides everything else behind a 500. notFound replaces the bare "not found"
// text when no product is involved.
func handleServiceError(w http.ResponseWriter, logger *zap.Logger, err error, notFound string) {
	for _, ec := range errorCodes {
		if !errors.Is(err, ec.target) {
			continue
		}

		respondError(w, ec.status, ec.code, businessMessage(err, ec.target, notFound))
		return
	}

	logger.Error("request failed", zap.Error(err))
	respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

func businessMessage(err, target error, notFound string) string {
	var productErr *domain.ProductError
	if errors.As(err, &productErr) {
		return productErr.Error()
	}

	var quantityErr *domain.QuantityError
	if errors.As(err, &quantityErr) {
		return quantityErr.Error()
	}

	if errors.Is(target, domain.ErrNotFound) && notFound != "" {
		return notFound
	}

	return target.Error()
}
