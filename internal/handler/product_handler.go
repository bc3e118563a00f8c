package handler

import (
	"errors"
	"net/http"
	"strconv"

	"jewelstore/internal/model"
	"jewelstore/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	catalogue service.CatalogueService
	logger    zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalogue service.CatalogueService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalogue: catalogue,
		logger:    logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests with optional category and limit
// query parameters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	limit := service.DefaultListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
			return
		}
	}

	products, err := h.catalogue.List(r.Context(), category, limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list products")
		writeDetail(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		writeDetail(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.catalogue.Get(r.Context(), productID)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeDetail(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		h.logger.Error().Err(err).Str("product_id", productID).Msg("failed to get product")
		writeDetail(w, http.StatusInternalServerError, "failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}
