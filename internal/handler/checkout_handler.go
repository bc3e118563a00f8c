package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"jewelstore/internal/model"
	"jewelstore/internal/service"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles checkout HTTP requests.
type CheckoutHandler struct {
	checkout service.CheckoutService
	logger   zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkout service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		logger:   logger.With().Str("handler", "checkout").Logger(),
	}
}

// Create handles POST /api/checkout requests. Malformed payloads get a 422;
// a degraded document store never fails the request.
func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body", h.logger)
		return
	}

	receipt, err := h.checkout.Checkout(r.Context(), &req)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeDetail(w, http.StatusUnprocessableEntity, verr.Error(), h.logger)
			return
		}
		h.logger.Error().Err(err).Msg("checkout failed")
		writeDetail(w, http.StatusInternalServerError, "failed to process checkout", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}
