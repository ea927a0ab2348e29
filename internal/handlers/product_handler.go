package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Lixing-Zhang/product-catalog/internal/models"
	"github.com/Lixing-Zhang/product-catalog/internal/repository"
	"github.com/Lixing-Zhang/product-catalog/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /products
// Returns the whole catalog in load order
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, models.ProductsResponse{Products: products}, h.logger)
}

// GetProduct handles GET /products/{productId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	id, err := strconv.ParseInt(productID, 10, 64)
	if err != nil {
		h.logger.Warn("invalid product ID format", "productId", productID, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	product, err := h.service.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", id)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to get product", "productId", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// Search handles GET /search?query=
// Matches product names by case-insensitive substring
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query, err := requiredString(r, "query")
	if err != nil {
		h.logger.Warn("search without query parameter")
		WriteError(w, http.StatusBadRequest, "query parameter is required", h.logger)
		return
	}

	results, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.logger.Error("failed to search products", "query", query, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	h.logger.Debug("search completed", "query", query, "found", len(results))
	WriteJSON(w, http.StatusOK, models.SearchResponse{
		SearchQuery: query,
		FoundItems:  len(results),
		Results:     results,
	}, h.logger)
}

// Filter handles GET /filter?category=&max_price=
// Both parameters are optional and combine with AND
func (h *ProductHandler) Filter(w http.ResponseWriter, r *http.Request) {
	maxPrice, err := optionalFloat(r, "max_price")
	if err != nil {
		h.logger.Warn("invalid max_price", "max_price", r.URL.Query().Get("max_price"), "error", err)
		WriteError(w, http.StatusBadRequest, service.ErrInvalidMaxPrice.Error(), h.logger)
		return
	}

	filter := models.ProductFilter{
		Category: optionalString(r, "category"),
		MaxPrice: maxPrice,
	}

	results, err := h.service.Filter(r.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMaxPrice) {
			h.logger.Warn("invalid max_price", "max_price", r.URL.Query().Get("max_price"))
			WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
			return
		}

		h.logger.Error("failed to filter products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, models.FilterResponse{
		Filters: filter,
		Found:   len(results),
		Results: results,
	}, h.logger)
}
