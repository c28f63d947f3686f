package handler

import (
	"net/http"
	"strconv"

	"github.com/jayramanidev/portfolio/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests with pagination and an optional
// category filter.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		products, err := h.service.GetByCategory(r.Context(), category)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, products)
		return
	}

	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")

	limit := 10 // default
	if limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
			return
		}
	}

	offset := 0 // default
	if offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset parameter", h.logger)
			return
		}
	}

	products, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{productID} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		if domainErr := asDomainError(err); domainErr != nil {
			writeError(w, statusForDomainError(domainErr), domainErr.Message, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}
