package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"product-catalog/internal/model"
	"product-catalog/internal/service"

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

// Create handles POST /products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	created, err := h.service.Create(r.Context(), &product)
	if err != nil {
		writeDomainError(w, err, "failed to create product", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetAll handles GET /products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Search handles GET /products/search?name= requests. The name parameter
// is applied as a case-insensitive pattern against product names.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	products, err := h.service.SearchByName(r.Context(), name)
	if err != nil {
		h.logger.Debug().Err(err).Str("name", name).Msg("product search failed")
		writeDomainError(w, err, "failed to search products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Categories handles GET /products/categories requests.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		writeDomainError(w, err, "failed to retrieve categories", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// GetByID handles GET /products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Update handles PUT /products/{id} requests with a full-replace payload.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	updated, err := h.service.Update(r.Context(), id, &product)
	if err != nil {
		writeDomainError(w, err, "failed to update product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete product", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetByCategory handles GET /products/category/{category} requests.
func (h *ProductHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	products, err := h.service.GetByCategory(r.Context(), category)
	if err != nil {
		writeDomainError(w, err, "failed to retrieve products by category", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetSorted handles GET /products/sorted/{criteria} requests.
func (h *ProductHandler) GetSorted(w http.ResponseWriter, r *http.Request) {
	criteria := chi.URLParam(r, "criteria")

	products, err := h.service.GetSorted(r.Context(), criteria)
	if err != nil {
		writeDomainError(w, err, "failed to retrieve sorted products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// discountRequest is the payload of a discount update.
type discountRequest struct {
	TemporaryPrice float64 `json:"temporaryPrice"`
}

// SetDiscount handles PUT /products/{id}/discount requests.
func (h *ProductHandler) SetDiscount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req discountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	updated, err := h.service.SetDiscount(r.Context(), id, req.TemporaryPrice)
	if err != nil {
		h.logger.Debug().Err(err).Str("product_id", id).Msg("discount update failed")
		writeDomainError(w, err, "failed to set discount", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// GetCart handles GET /products/cart/{ids} requests, where ids is a
// comma-separated list. Ids without a matching product are omitted.
func (h *ProductHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ids := strings.Split(chi.URLParam(r, "ids"), ",")

	products, err := h.service.GetByIDs(r.Context(), ids)
	if err != nil {
		writeDomainError(w, err, "failed to retrieve cart products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}
