package handler

import (
	"encoding/json"
	"net/http"

	"shop-catalog/internal/model"
	"shop-catalog/internal/service"

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

// List handles GET /api/v1/products requests. Optional category, brand, and
// name query parameters narrow the result; combinations dispatch to the
// corresponding filtered lookups. No match yields an empty list, not an error.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	brand := q.Get("brand")
	name := q.Get("name")

	var (
		products []model.Product
		err      error
	)

	switch {
	case category != "" && brand != "":
		products, err = h.service.GetByCategoryAndBrand(r.Context(), category, brand)
	case brand != "" && name != "":
		products, err = h.service.GetByBrandAndName(r.Context(), brand, name)
	case category != "":
		products, err = h.service.GetByCategory(r.Context(), category)
	case brand != "":
		products, err = h.service.GetByBrand(r.Context(), brand)
	case name != "":
		products, err = h.service.GetByName(r.Context(), name)
	default:
		products, err = h.service.GetAll(r.Context())
	}

	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}

	writeMessage(w, http.StatusOK, "Products retrieved successfully", products)
}

// Count handles GET /api/v1/products/count requests.
func (h *ProductHandler) Count(w http.ResponseWriter, r *http.Request) {
	brand := r.URL.Query().Get("brand")
	name := r.URL.Query().Get("name")
	if brand == "" || name == "" {
		writeError(w, http.StatusBadRequest, "brand and name query parameters are required", h.logger)
		return
	}

	count, err := h.service.CountByBrandAndName(r.Context(), brand, name)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Product count retrieved successfully", count)
}

// GetByID handles GET /api/v1/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Product retrieved successfully", product)
}

// Add handles POST /api/v1/products requests.
func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	product, err := h.service.Add(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusCreated, "Product added successfully", product)
}

// Update handles PUT /api/v1/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), &req, id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Product updated successfully", product)
}

// Delete handles DELETE /api/v1/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Product deleted successfully", nil)
}
